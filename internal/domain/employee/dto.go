package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Schema is the employee form, in display order.
var Schema = form.Schema{
	{Name: "EmployeeID", Label: "Employee ID", Kind: form.KindText, Required: true},
	{Name: "EmployeeName", Label: "Employee Name", Kind: form.KindText, Required: true},
	{Name: "CNIC", Label: "CNIC", Kind: form.KindText},
	{Name: "FatherName", Label: "Father Name", Kind: form.KindText},
	{Name: "DOB", Label: "Date of Birth", Kind: form.KindDate},
	{Name: "MobileNo", Label: "Mobile No", Kind: form.KindText},
	{Name: "Department", Label: "Department", Kind: form.KindText},
	{Name: "Designation", Label: "Designation", Kind: form.KindText},
	{Name: "DateOfJoining", Label: "Date of Joining", Kind: form.KindDate},
	{Name: "EmployeeStatus", Label: "Status", Kind: form.KindText},
	{Name: "BasicSalary", Label: "Basic Salary", Kind: form.KindNumber},
	{Name: "ApplyTax", Label: "Apply Tax", Kind: form.KindText},
}

// ToDraft seeds a form draft from e.
func ToDraft(e Employee) form.Draft {
	return Schema.Seed(map[string]string{
		"EmployeeID":     e.EmployeeID,
		"EmployeeName":   e.EmployeeName,
		"CNIC":           e.CNIC,
		"FatherName":     e.FatherName,
		"DOB":            e.DOB,
		"MobileNo":       e.MobileNo,
		"Department":     e.Department,
		"Designation":    e.Designation,
		"DateOfJoining":  e.DateOfJoining,
		"EmployeeStatus": e.EmployeeStatus,
		"BasicSalary":    salaryString(e.BasicSalary),
		"ApplyTax":       e.ApplyTax,
	})
}

// FromDraft builds the request body for create and update. The uid is never
// part of the body.
func FromDraft(d form.Draft) (Employee, error) {
	e := Employee{
		EmployeeID:     d["EmployeeID"],
		EmployeeName:   d["EmployeeName"],
		CNIC:           d["CNIC"],
		FatherName:     d["FatherName"],
		DOB:            d["DOB"],
		MobileNo:       d["MobileNo"],
		Department:     d["Department"],
		Designation:    d["Designation"],
		DateOfJoining:  d["DateOfJoining"],
		EmployeeStatus: d["EmployeeStatus"],
		ApplyTax:       d["ApplyTax"],
	}

	if s := strings.TrimSpace(d["BasicSalary"]); s != "" {
		salary, err := decimal.NewFromString(s)
		if err != nil {
			return Employee{}, validator.ValidationErrors{{
				Field:   "BasicSalary",
				Message: ErrInvalidBasicSalary.Error(),
			}}
		}
		e.BasicSalary = decimal.NewNullDecimal(salary)
	}

	return e, nil
}

// SuggestEmployeeRequest is the autocomplete query used by the leave form.
type SuggestEmployeeRequest struct {
	Query string `form:"q" json:"q"`
	Limit int    `form:"limit" json:"limit"`
}

func (r *SuggestEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Query) {
		errs = append(errs, validator.ValidationError{
			Field:   "q",
			Message: ErrSuggestQueryRequired.Error(),
		})
	}
	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SuggestEmployeeResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department,omitempty"`
}

func statusClass(status string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(status), " ", "-"))
}

// ListEmployeeRequest is the employee page query. Search is only taken
// when Apply is set; nil page fields keep the current value.
type ListEmployeeRequest struct {
	Apply    bool   `form:"apply"`
	Search   string `form:"q"`
	Page     *int   `form:"page"`
	PageSize *int   `form:"size"`
}
