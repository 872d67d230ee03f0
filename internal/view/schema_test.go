package view

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employees() []recordquery.Record {
	return []recordquery.Record{
		{"id": "1", "name": "Sarah Johnson", "email": "sarah@acme.io", "phone": "555-0101", "department": "Engineering", "role": "Senior Developer", "employment_type": "full-time", "status": "active", "salary": 115000, "hire_date": "2021-03-15"},
		{"id": "2", "name": "Lisa Wang", "email": "lisa@acme.io", "phone": nil, "department": "Engineering", "role": "Developer", "employment_type": "contract", "status": "active", "salary": 75000, "hire_date": "2023-01-09"},
		{"id": "3", "name": "Emily Rodriguez", "email": "emily@acme.io", "phone": "555-0103", "department": "Sales", "role": "Account Executive", "employment_type": "full-time", "status": "inactive", "salary": 75000, "hire_date": "2022-07-01"},
		{"id": "4", "name": "David Thompson", "email": "david@acme.io", "phone": "555-0104", "department": "Marketing", "role": "Manager", "employment_type": "part-time", "status": "terminated", "salary": 98000, "hire_date": "2019-11-20"},
	}
}

func names(records []recordquery.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r["name"].(string))
	}
	return out
}

func employeeSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := MustBuiltin().Get(Employees)
	require.NoError(t, err)
	return s
}

func TestBind_DepartmentsScenario(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"departments": {"Engineering"}})
	require.NoError(t, err)

	out := s.Run(employees(), q)
	assert.Equal(t, []string{"Lisa Wang", "Sarah Johnson"}, names(out.Items))
	assert.Equal(t, 2, out.Aggregates.Int("count"))
	assert.Equal(t, float64(95000), out.Aggregates.Float("average_salary"))
}

func TestBind_MultiselectRepeatedAndCommaSeparated(t *testing.T) {
	s := employeeSchema(t)

	repeated, err := s.Bind(url.Values{"departments": {"Sales", "Marketing"}})
	require.NoError(t, err)
	comma, err := s.Bind(url.Values{"departments": {"Sales, Marketing"}})
	require.NoError(t, err)

	assert.Equal(t, names(s.Run(employees(), repeated).Items), names(s.Run(employees(), comma).Items))
	assert.Equal(t, []string{"David Thompson", "Emily Rodriguez"}, names(s.Run(employees(), comma).Items))
}

func TestBind_SelectAllSentinel(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"status": {"all"}, "departments": {"all"}})
	require.NoError(t, err)

	assert.Equal(t, 0, q.Criteria.ActiveCount())
	assert.Len(t, s.Run(employees(), q).Items, 4)
}

func TestBind_SalaryRangeConvertedOnce(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"min_salary": {"80000"}, "max_salary": {" 120000 "}})
	require.NoError(t, err)

	rg, ok := q.Criteria["salary"].(recordquery.Range)
	require.True(t, ok)
	assert.Equal(t, 80000.0, *rg.Min)
	assert.Equal(t, 120000.0, *rg.Max)
	assert.Equal(t, []string{"David Thompson", "Sarah Johnson"}, names(s.Run(employees(), q).Items))
}

func TestBind_InvalidNumberAndDate(t *testing.T) {
	s := employeeSchema(t)

	_, err := s.Bind(url.Values{"min_salary": {"lots"}, "hired_from": {"15/03/2021"}})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{
		"min_salary": "must be a number",
		"hired_from": "must be a date in YYYY-MM-DD format",
	}, verrs.ToMap())
}

func TestBind_InvertedRange(t *testing.T) {
	s := employeeSchema(t)

	_, err := s.Bind(url.Values{"min_salary": {"100000"}, "max_salary": {"50000"}})

	assert.ErrorIs(t, err, recordquery.ErrInvalidRange)
}

func TestBind_HireDateWindow(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"hired_from": {"2021-01-01"}, "hired_to": {"2022-12-31"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"Emily Rodriguez", "Sarah Johnson"}, names(s.Run(employees(), q).Items))
}

func TestBind_SearchSortAndPaging(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"q": {"WANG"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lisa Wang"}, names(s.Run(employees(), q).Items))

	q, err = s.Bind(url.Values{"sort_by": {"salary"}, "sort_order": {"desc"}, "page": {"2"}, "limit": {"2"}})
	require.NoError(t, err)
	out := s.Run(employees(), q)
	assert.Equal(t, []string{"Lisa Wang", "Emily Rodriguez"}, names(out.Items))
	assert.Equal(t, recordquery.Page{Page: 2, Limit: 2, TotalItems: 4, TotalPages: 2}, out.Page)

	q, err = s.Bind(url.Values{"sort": {"department,-salary"}, "page": {"x"}, "limit": {"5000"}})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxPageSize, q.Limit)
	assert.Equal(t, []string{"Sarah Johnson", "Lisa Wang", "David Thompson", "Emily Rodriguez"}, names(s.Run(employees(), q).Items))
}

func TestList_HugePageNumber(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"page": {"100000000000000000"}, "limit": {"100"}})
	require.NoError(t, err)
	assert.Equal(t, MaxPage, q.Page)

	var out Outcome
	require.NotPanics(t, func() {
		out, err = s.List(employees(), url.Values{"page": {"100000000000000000"}, "limit": {"100"}})
	})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 4, out.Page.TotalItems)
	assert.Equal(t, 1, out.Page.TotalPages)
}

func TestBind_UnknownParamsIgnored(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"colour": {"blue"}})
	require.NoError(t, err)

	assert.Equal(t, 0, q.Criteria.ActiveCount())
	assert.Equal(t, DefaultPageSize, q.Limit)
}

func TestRun_TotalsCoverAllRecords(t *testing.T) {
	s := employeeSchema(t)

	q, err := s.Bind(url.Values{"status": {"active"}})
	require.NoError(t, err)
	out := s.Run(employees(), q)

	assert.Len(t, out.Items, 2)
	assert.Equal(t, 4, out.Totals.Int("all"))
	assert.Equal(t, 2, out.Totals.Int("active"))
	assert.Equal(t, 1, out.Totals.Int("inactive"))
	assert.Equal(t, 1, out.Totals.Int("terminated"))
}

func TestExport_IgnoresPagination(t *testing.T) {
	s := employeeSchema(t)
	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	q, err := s.Bind(url.Values{"departments": {"Engineering"}, "limit": {"1"}})
	require.NoError(t, err)
	filename, body := s.Export(employees(), q, at)

	assert.Equal(t, "employees_export_2024-06-15.csv", filename)
	lines := strings.Split(body, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `"Name","Email","Phone"`))
	assert.True(t, strings.HasPrefix(lines[1], `"Lisa Wang","lisa@acme.io","N/A"`))
}

func TestRemunerationView(t *testing.T) {
	s, err := MustBuiltin().Get(Remuneration)
	require.NoError(t, err)

	out := s.Run(employees(), Query{Page: 1})

	assert.Equal(t, 4, out.Aggregates.Int("headcount"))
	assert.Equal(t, float64(363000), out.Aggregates.Float("total_payroll"))
	assert.Equal(t, float64(75000), out.Aggregates.Float("lowest_salary"))
	assert.Equal(t, map[string]float64{"Engineering": 95000, "Sales": 75000, "Marketing": 98000}, out.Aggregates["average_salary_by_department"])

	buckets, ok := out.Aggregates["salary_distribution"].([]recordquery.Bucket)
	require.True(t, ok)
	counts := map[string]int{}
	for _, b := range buckets {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, map[string]int{"<50000": 0, "50000-75000": 0, "75000-100000": 3, "100000-125000": 1, ">=125000": 0}, counts)
}
