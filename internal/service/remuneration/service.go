package remuneration

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/domain/remuneration"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/cmlabs-hris/hr-admin-go/internal/view"
	"github.com/shopspring/decimal"
)

const distributionMetric = "salary_distribution"

type RemunerationServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	schema       *view.Schema
	now          func() time.Time
}

func NewRemunerationService(employeeRepo employee.EmployeeRepository, schema *view.Schema) remuneration.RemunerationService {
	return &RemunerationServiceImpl{
		employeeRepo: employeeRepo,
		schema:       schema,
		now:          time.Now,
	}
}

func (s *RemunerationServiceImpl) records(ctx context.Context) ([]recordquery.Record, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return recordquery.From(employees), nil
}

// GetSummary implements remuneration.RemunerationService. Money totals and
// the per department averages are summed as decimals; the distribution comes
// from the view's aggregates.
func (s *RemunerationServiceImpl) GetSummary(ctx context.Context, params url.Values) (remuneration.Summary, error) {
	records, err := s.records(ctx)
	if err != nil {
		return remuneration.Summary{}, err
	}
	q, err := s.schema.Bind(params)
	if err != nil {
		return remuneration.Summary{}, err
	}
	selected := s.schema.Select(records, q)

	summary := remuneration.Summary{
		Headcount:           len(selected),
		TotalPayroll:        decimal.Zero,
		AverageSalary:       decimal.Zero,
		LowestSalary:        decimal.Zero,
		HighestSalary:       decimal.Zero,
		AverageByDepartment: map[string]decimal.Decimal{},
	}

	var paid int
	deptSums := map[string]decimal.Decimal{}
	deptCounts := map[string]int64{}
	for _, r := range selected {
		dept, hasDept := recordquery.ToText(r["department"])
		if hasDept {
			if _, seen := deptCounts[dept]; !seen {
				deptSums[dept] = decimal.Zero
				deptCounts[dept] = 0
			}
		}
		salary, ok := salaryOf(r)
		if !ok {
			continue
		}
		if hasDept {
			deptSums[dept] = deptSums[dept].Add(salary)
			deptCounts[dept]++
		}
		if paid == 0 || salary.LessThan(summary.LowestSalary) {
			summary.LowestSalary = salary
		}
		if paid == 0 || salary.GreaterThan(summary.HighestSalary) {
			summary.HighestSalary = salary
		}
		summary.TotalPayroll = summary.TotalPayroll.Add(salary)
		paid++
	}
	if paid > 0 {
		summary.AverageSalary = summary.TotalPayroll.Div(decimal.NewFromInt(int64(paid))).Round(2)
	}

	for dept, n := range deptCounts {
		if n == 0 {
			summary.AverageByDepartment[dept] = decimal.Zero
			continue
		}
		summary.AverageByDepartment[dept] = deptSums[dept].Div(decimal.NewFromInt(n)).Round(2)
	}

	agg := recordquery.Aggregate(selected, s.schema.Aggregates)
	if buckets, ok := agg[distributionMetric].([]recordquery.Bucket); ok {
		summary.Distribution = buckets
	}
	return summary, nil
}

func salaryOf(r recordquery.Record) (decimal.Decimal, bool) {
	switch v := r["salary"].(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	}
	f, ok := recordquery.ToNumber(r["salary"])
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// ExportSalaries implements remuneration.RemunerationService.
func (s *RemunerationServiceImpl) ExportSalaries(ctx context.Context, params url.Values) (view.File, error) {
	records, err := s.records(ctx)
	if err != nil {
		return view.File{}, err
	}
	return s.schema.ExportCSV(records, params, s.now())
}
