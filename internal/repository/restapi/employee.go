package restapi

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	client *Client
}

func NewEmployeeRepository(client *Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := r.client.do(ctx, http.MethodGet, resourcePath("employees"), nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	var e employee.Employee
	if err := r.client.do(ctx, http.MethodGet, resourcePath("employees", employeeID), nil, nil, &e); err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.UID = ""

	var created employee.Employee
	if err := r.client.do(ctx, http.MethodPost, resourcePath("employees"), nil, newEmployee, &created); err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, employeeID string, e employee.Employee) (employee.Employee, error) {
	var updated employee.Employee
	if err := r.client.do(ctx, http.MethodPut, resourcePath("employees", employeeID), nil, e, &updated); err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	return r.client.do(ctx, http.MethodDelete, resourcePath("employees", employeeID), nil, nil, nil)
}
