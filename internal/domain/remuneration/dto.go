package remuneration

import (
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/recordquery"
	"github.com/shopspring/decimal"
)

// Summary is the salary overview of the employees matching a query.
type Summary struct {
	Headcount           int                        `json:"headcount"`
	TotalPayroll        decimal.Decimal            `json:"total_payroll"`
	AverageSalary       decimal.Decimal            `json:"average_salary"`
	LowestSalary        decimal.Decimal            `json:"lowest_salary"`
	HighestSalary       decimal.Decimal            `json:"highest_salary"`
	AverageByDepartment map[string]decimal.Decimal `json:"average_salary_by_department"`
	Distribution        []recordquery.Bucket       `json:"salary_distribution"`
}
