package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const employeesJSON = `{"results": [
  {"id": "1", "name": "Sarah Johnson", "email": "sarah@acme.io", "phone": "555-0101", "department": "Engineering", "role": "Senior Developer", "employment_type": "full-time", "status": "active", "salary": 115000, "hire_date": "2021-03-15"},
  {"id": "2", "name": "Lisa Wang", "email": "lisa@acme.io", "phone": null, "department": "Engineering", "role": "Developer", "employment_type": "contract", "status": "active", "salary": 75000, "hire_date": "2023-01-09"},
  {"id": "3", "name": "Emily Rodriguez", "email": "emily@acme.io", "phone": "555-0103", "department": "Sales", "role": "Account Executive", "employment_type": "full-time", "status": "inactive", "salary": 75000, "hire_date": "2022-07-01"}
]}`

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(employeesJSON), 0o644))
	return path
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExport_WritesNamedCSV(t *testing.T) {
	in := writeInput(t)
	outDir := t.TempDir()

	c := &cli{now: func() time.Time { return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC) }}
	root := &cobra.Command{Use: "hrisctl"}
	root.AddCommand(c.newExportCmd())

	out, err := execute(t, root, "", "export", "--view", "employees", "--in", in, "--out", outDir, "--param", "departments=Engineering")
	require.NoError(t, err)

	path := filepath.Join(outDir, "employees_export_2024-06-15.csv")
	assert.Equal(t, path, strings.TrimSpace(out))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(body), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], `"Lisa Wang","lisa@acme.io","N/A"`))
}

func TestExport_RejectsBadParam(t *testing.T) {
	_, err := execute(t, newRootCmd(), "", "export", "--view", "employees", "--in", writeInput(t), "--param", "departments")

	assert.ErrorContains(t, err, "expected key=value")
}

func TestQuery_JSONFromStdin(t *testing.T) {
	out, err := execute(t, newRootCmd(), employeesJSON, "query", "--view", "employees", "--in", "-", "-p", "status=active", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Items      []map[string]any `json:"items"`
		Aggregates map[string]any   `json:"aggregates"`
		Totals     map[string]any   `json:"totals"`
		Page       map[string]int   `json:"page"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Items, 2)
	assert.Equal(t, float64(95000), got.Aggregates["average_salary"])
	assert.Equal(t, float64(3), got.Totals["all"])
	assert.Equal(t, 2, got.Page["total_items"])
}

func TestQuery_YAMLNumbersUnquoted(t *testing.T) {
	out, err := execute(t, newRootCmd(), employeesJSON, "query", "--view", "employees", "--in", "-", "-p", "q=wang", "--format", "yaml")
	require.NoError(t, err)

	var got struct {
		Items []map[string]any `yaml:"items"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Items, 1)
	assert.Equal(t, 75000, got.Items[0]["salary"])
}

func TestQuery_Table(t *testing.T) {
	out, err := execute(t, newRootCmd(), employeesJSON, "query", "--view", "employees", "--in", "-", "-p", "departments=Sales")
	require.NoError(t, err)

	assert.Contains(t, out, "Emily Rodriguez")
	assert.NotContains(t, out, "Lisa Wang")
	assert.Contains(t, out, "page 1 of 1 (1 records)")
	assert.Contains(t, out, "average_salary")
}

func TestQuery_InvalidParamValue(t *testing.T) {
	_, err := execute(t, newRootCmd(), employeesJSON, "query", "--view", "employees", "--in", "-", "-p", "min_salary=lots")

	assert.ErrorContains(t, err, "must be a number")
}

func TestQuery_UnknownView(t *testing.T) {
	_, err := execute(t, newRootCmd(), employeesJSON, "query", "--view", "payroll", "--in", "-")

	assert.ErrorContains(t, err, "unknown view")
}

func TestViews(t *testing.T) {
	out, err := execute(t, newRootCmd(), "", "views", "--format", "names")
	require.NoError(t, err)
	assert.Equal(t, "employees\nleave\njobs\ncandidates\nattendance\nprojects\ntasks\nmilestones\nremuneration\n", out)

	out, err = execute(t, newRootCmd(), "", "views", "leave")
	require.NoError(t, err)
	assert.Contains(t, out, "name: leave")
}

func TestViews_CustomDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.yaml")
	require.NoError(t, os.WriteFile(path, []byte("views:\n  - name: people\n    search_fields: [name]\n"), 0o644))

	out, err := execute(t, newRootCmd(), "", "--views", path, "views", "--format", "names")
	require.NoError(t, err)
	assert.Equal(t, "people\n", out)
}

func TestHashPassword(t *testing.T) {
	out, err := execute(t, newRootCmd(), "s3cret-pass\n", "hash-password", "--cost", "4")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("s3cret-pass")))

	_, err = execute(t, newRootCmd(), "", "hash-password", "short")
	assert.Error(t, err)
}

func TestMigrate_ListTables(t *testing.T) {
	out, err := execute(t, newRootCmd(), "", "migrate", "--tables")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "departments\nemployees\n"))
}
