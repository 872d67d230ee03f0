package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type queryOutput struct {
	Items      []recordquery.Record `json:"items" yaml:"items"`
	Aggregates recordquery.Result   `json:"aggregates" yaml:"aggregates"`
	Totals     recordquery.Result   `json:"totals" yaml:"totals"`
	Page       pageOutput           `json:"page" yaml:"page"`
}

type pageOutput struct {
	Page       int `json:"page" yaml:"page"`
	Limit      int `json:"limit" yaml:"limit"`
	TotalItems int `json:"total_items" yaml:"total_items"`
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

func (c *cli) newQueryCmd() *cobra.Command {
	var (
		viewName string
		in       string
		format   string
		params   []string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, search and sort a view and print records with aggregates",
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

			out, err := schema.List(records, values)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, schema, out)
		},
	}

	addQueryFlags(cmd, &viewName, &in, &params)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|yaml")
	return cmd
}

func render(w io.Writer, format string, schema *view.Schema, out view.Outcome) error {
	result := queryOutput{
		Items:      plainRecords(out.Items),
		Aggregates: plainResult(out.Aggregates),
		Totals:     plainResult(out.Totals),
		Page: pageOutput{
			Page:       out.Page.Page,
			Limit:      out.Page.Limit,
			TotalItems: out.Page.TotalItems,
			TotalPages: out.Page.TotalPages,
		},
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		renderTable(w, schema, out)
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected table, json or yaml", format)
	}
}

func renderTable(w io.Writer, schema *view.Schema, out view.Outcome) {
	records := tablewriter.NewWriter(w)
	header := make([]string, len(schema.Columns))
	for i, col := range schema.Columns {
		header[i] = col.Label
		if header[i] == "" {
			header[i] = col.Field
		}
	}
	records.SetHeader(header)
	for _, r := range out.Items {
		row := make([]string, len(schema.Columns))
		for i, col := range schema.Columns {
			value, ok := recordquery.ToText(r[col.Field])
			if !ok {
				value = recordquery.Placeholder
			}
			row[i] = value
		}
		records.Append(row)
	}
	records.Render()

	fmt.Fprintf(w, "page %d of %d (%d records)\n", out.Page.Page, out.Page.TotalPages, out.Page.TotalItems)

	if len(out.Aggregates) == 0 && len(out.Totals) == 0 {
		return
	}
	metrics := tablewriter.NewWriter(w)
	metrics.SetHeader([]string{"Scope", "Metric", "Value"})
	for _, scope := range []struct {
		name   string
		result recordquery.Result
	}{{"filtered", out.Aggregates}, {"all", out.Totals}} {
		for _, name := range sortedKeys(scope.result) {
			metrics.Append([]string{scope.name, name, formatMetric(scope.result[name])})
		}
	}
	metrics.Render()
}

func sortedKeys(r recordquery.Result) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatMetric(v any) string {
	switch m := v.(type) {
	case []recordquery.Bucket:
		b, _ := json.Marshal(m)
		return string(b)
	case map[string]int, map[string]float64:
		b, _ := json.Marshal(m)
		return string(b)
	}
	s, _ := recordquery.ToText(v)
	return s
}

// plainRecords replaces json.Number values so YAML prints numbers unquoted.
func plainRecords(in []recordquery.Record) []recordquery.Record {
	out := make([]recordquery.Record, 0, len(in))
	for _, r := range in {
		c := r.Clone()
		for k, v := range c {
			c[k] = plain(v)
		}
		out = append(out, c)
	}
	return out
}

func plainResult(in recordquery.Result) recordquery.Result {
	out := make(recordquery.Result, len(in))
	for k, v := range in {
		out[k] = plain(v)
	}
	return out
}

func plain(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
