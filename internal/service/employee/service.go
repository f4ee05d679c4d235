package employee

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 50
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, _ employee.Filter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, draft form.Draft) error {
	newEmployee, err := employee.FromDraft(draft)
	if err != nil {
		return err
	}

	if _, err := s.employeeRepo.Create(ctx, newEmployee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, employeeID string, draft form.Draft) error {
	e, err := employee.FromDraft(draft)
	if err != nil {
		return err
	}

	if _, err := s.employeeRepo.Update(ctx, employeeID, e); err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	return nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.Delete(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	return nil
}

// Identity implements employee.EmployeeService. Employees are addressed by
// EmployeeID, not by uid.
func (s *EmployeeServiceImpl) Identity(e employee.Employee) string {
	return e.EmployeeID
}

// Form implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Form(e *employee.Employee) *form.Form {
	if e == nil {
		return form.New(employee.Schema, nil)
	}
	return form.New(employee.Schema, employee.ToDraft(*e))
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	if strings.TrimSpace(employeeID) == "" {
		return employee.Employee{}, listview.ErrMissingIdentity
	}

	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return e, nil
}

// SuggestEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SuggestEmployees(ctx context.Context, req employee.SuggestEmployeeRequest) ([]employee.SuggestEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultSuggestLimit
	}
	if limit > maxSuggestLimit {
		limit = maxSuggestLimit
	}

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	words := make([]string, len(employees))
	for i, e := range employees {
		words[i] = e.EmployeeID + " " + e.EmployeeName
	}
	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(req.Query), words)
	sort.Stable(ranks)

	results := make([]employee.SuggestEmployeeResponse, 0, min(limit, len(ranks)))
	for _, rank := range ranks {
		if len(results) == limit {
			break
		}
		e := employees[rank.OriginalIndex]
		results = append(results, employee.SuggestEmployeeResponse{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.EmployeeName,
			Department:   e.Department,
		})
	}

	return results, nil
}
