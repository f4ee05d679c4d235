package employee

import (
	"github.com/shopspring/decimal"
)

// Employee is the record owned by the HR API. Field names follow the API's
// JSON keys.
type Employee struct {
	UID            string              `json:"uid,omitempty"`
	EmployeeID     string              `json:"EmployeeID"`
	EmployeeName   string              `json:"EmployeeName"`
	CNIC           string              `json:"CNIC"`
	FatherName     string              `json:"FatherName"`
	DOB            string              `json:"DOB"`
	MobileNo       string              `json:"MobileNo"`
	Department     string              `json:"Department"`
	Designation    string              `json:"Designation"`
	DateOfJoining  string              `json:"DateOfJoining"`
	EmployeeStatus string              `json:"EmployeeStatus"`
	BasicSalary    decimal.NullDecimal `json:"BasicSalary"`
	ApplyTax       string              `json:"ApplyTax"`
}

// Filter is the server-side employee filter. The API has none.
type Filter struct{}

// RowKey prefers the server uid and falls back to EmployeeID.
func (e Employee) RowKey() string {
	if e.UID != "" {
		return e.UID
	}
	return e.EmployeeID
}

func (e Employee) SearchValues() []string {
	return []string{
		e.UID,
		e.EmployeeID,
		e.EmployeeName,
		e.CNIC,
		e.FatherName,
		e.DOB,
		e.MobileNo,
		e.Department,
		e.Designation,
		e.DateOfJoining,
		e.EmployeeStatus,
		salaryString(e.BasicSalary),
		e.ApplyTax,
	}
}

// StatusClass is the lowercased status used as a CSS class.
func (e Employee) StatusClass() string {
	return statusClass(e.EmployeeStatus)
}

func salaryString(d decimal.NullDecimal) string {
	if !d.Valid || d.Decimal.IsZero() {
		return ""
	}
	return d.Decimal.String()
}
