package main

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *cli) newViewsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "views [name]",
		Short: "List registered views, or print one view's schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.registry()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				schema, err := r.Get(args[0])
				if err != nil {
					return err
				}
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(schema); err != nil {
					return err
				}
				return enc.Close()
			}

			if format == "names" {
				for _, s := range r.Schemas() {
					fmt.Fprintln(w, s.Name)
				}
				return nil
			}

			table := tablewriter.NewWriter(w)
			table.SetHeader([]string{"View", "Entity", "Filters", "Search", "Default Sort"})
			for _, s := range r.Schemas() {
				keys := make([]string, len(s.Filters))
				for i, f := range s.Filters {
					keys[i] = f.Key
				}
				table.Append([]string{s.Name, s.Entity, strings.Join(keys, ", "), strings.Join(s.SearchFields, ", "), s.DefaultSort})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|names")
	return cmd
}
