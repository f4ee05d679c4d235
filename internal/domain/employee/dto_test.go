package employee

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_RowKey(t *testing.T) {
	assert.Equal(t, "u1", Employee{UID: "u1", EmployeeID: "E1"}.RowKey())
	assert.Equal(t, "E1", Employee{EmployeeID: "E1"}.RowKey())
	assert.Empty(t, Employee{}.RowKey())
}

func TestEmployee_SearchAnyField(t *testing.T) {
	alice := Employee{EmployeeID: "E1", EmployeeName: "Alice", Department: "Eng"}
	bob := Employee{EmployeeID: "E2", EmployeeName: "Bob", Department: "Sales"}

	assert.True(t, listview.Matches(alice, "eng"))
	assert.False(t, listview.Matches(bob, "eng"))

	paid := Employee{EmployeeID: "E3", BasicSalary: decimal.NewNullDecimal(decimal.RequireFromString("52000.50"))}
	assert.True(t, listview.Matches(paid, "52000.5"))
}

func TestDraftRoundTrip(t *testing.T) {
	e := Employee{
		UID:          "u1",
		EmployeeID:   "E1",
		EmployeeName: "Alice",
		DOB:          "1990-01-02",
		BasicSalary:  decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	}

	d := ToDraft(e)
	assert.Equal(t, "1000", d["BasicSalary"])
	assert.Equal(t, "", d["CNIC"])
	assert.NotContains(t, d, "uid")

	got, err := FromDraft(d)
	require.NoError(t, err)
	assert.Empty(t, got.UID)
	assert.Equal(t, "Alice", got.EmployeeName)
	assert.True(t, got.BasicSalary.Decimal.Equal(decimal.NewFromInt(1000)))
}

func TestFromDraft_InvalidSalary(t *testing.T) {
	_, err := FromDraft(form.Draft{"EmployeeID": "E1", "BasicSalary": "lots"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Basic Salary must be a number", verrs.ToMap()["BasicSalary"])
}

func TestFromDraft_BlankSalaryIsNull(t *testing.T) {
	got, err := FromDraft(form.Draft{"EmployeeID": "E1", "BasicSalary": "  "})
	require.NoError(t, err)
	assert.False(t, got.BasicSalary.Valid)
}

func TestSchema_RequiredFields(t *testing.T) {
	f := form.New(Schema, nil)
	err := f.Validate()

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, map[string]string{
		"EmployeeID":   "Employee ID is required",
		"EmployeeName": "Employee Name is required",
	}, verrs.ToMap())
}
