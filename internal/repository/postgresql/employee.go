package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.email, e.phone, e.department_id, d.name,
		e.gender, e.role, e.employment_type, e.salary, e.hire_date, e.status, e.address,
		e.created_at, e.updated_at
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.DepartmentID, &emp.DepartmentName, &emp.Gender, &emp.Role,
		&emp.EmploymentType, &emp.Salary, &emp.HireDate, &emp.Status, &emp.Address,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// List returns every employee that has not been deleted. Filtering happens
// in the record query engine, so no WHERE clauses are built here.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, employeeSelect+` WHERE e.deleted_at IS NULL ORDER BY e.last_name, e.first_name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1 AND e.deleted_at IS NULL`, id))
	if err != nil {
		return employee.Employee{}, notFound(err, employee.ErrEmployeeNotFound, "get employee")
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL AND ($2::uuid IS NULL OR id <> $2::uuid)
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check employee email: %w", err)
	}
	return exists, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, phone, department_id, gender, role,
			employment_type, salary, hire_date, status, address, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query,
		newEmployee.FirstName, newEmployee.LastName, newEmployee.Email, newEmployee.Phone,
		newEmployee.DepartmentID, newEmployee.Gender, newEmployee.Role, newEmployee.EmploymentType,
		newEmployee.Salary, newEmployee.HireDate, newEmployee.Status, newEmployee.Address,
	).Scan(&id)
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err, "create employee")
	}
	return r.GetByID(ctx, id)
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone = $4, department_id = $5,
			gender = $6, role = $7, employment_type = $8, salary = $9, hire_date = $10,
			status = $11, address = $12, updated_at = NOW()
		WHERE id = $13 AND deleted_at IS NULL
	`
	tag, err := q.Exec(ctx, query,
		e.FirstName, e.LastName, e.Email, e.Phone, e.DepartmentID,
		e.Gender, e.Role, e.EmploymentType, e.Salary, e.HireDate,
		e.Status, e.Address, e.ID,
	)
	if err != nil {
		return employee.Employee{}, mapEmployeeWriteError(err, "update employee")
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.GetByID(ctx, e.ID)
}

// Delete soft-deletes the employee.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func mapEmployeeWriteError(err error, op string) error {
	switch pgErrorCode(err) {
	case uniqueViolation:
		return employee.ErrEmailExists
	case foreignKeyViolation:
		return employee.ErrDepartmentNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
