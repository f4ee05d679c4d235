package employee

import (
	"context"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
)

// EmployeeService backs the employee list view and the JSON API.
type EmployeeService interface {
	listview.Resource[Employee, Filter]

	// GetEmployee fetches one employee by EmployeeID
	GetEmployee(ctx context.Context, employeeID string) (Employee, error)

	// SuggestEmployees ranks employees by fuzzy match on id and name
	SuggestEmployees(ctx context.Context, req SuggestEmployeeRequest) ([]SuggestEmployeeResponse, error)
}
