package employee

import "context"

// EmployeeRepository is the HR API's employee resource.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, employeeID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, employeeID string, employee Employee) (Employee, error)
	Delete(ctx context.Context, employeeID string) error
}
