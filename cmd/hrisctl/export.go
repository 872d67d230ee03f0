package main

import (
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/storage"
	"github.com/spf13/cobra"
)

func (c *cli) newExportCmd() *cobra.Command {
	var (
		viewName string
		in       string
		outDir   string
		params   []string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered records of a view as <entity>_export_<date>.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := c.schema(viewName)
			if err != nil {
				return err
			}
			records, err := readRecords(cmd.InOrStdin(), in)
			if err != nil {
				return err
			}
			values, err := parseParams(params)
			if err != nil {
				return err
			}

			file, err := schema.ExportCSV(records, values, c.now())
			if err != nil {
				return err
			}

			store, err := storage.NewLocalStorage(outDir)
			if err != nil {
				return err
			}
			path, err := store.SaveBytes(cmd.Context(), file.Name, file.Body)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	addQueryFlags(cmd, &viewName, &in, &params)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}
