package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, newDepartment Department) (Department, error)
}
