package leave

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// Schema is the leave form, in display order.
var Schema = form.Schema{
	{Name: "EmployeeID", Label: "Employee ID", Kind: form.KindText, Required: true},
	{Name: "LeaveTypeName", Label: "Leave Type", Kind: form.KindText, Required: true},
	{Name: "StartDate", Label: "Start Date", Kind: form.KindDate, Required: true},
	{Name: "EndDate", Label: "End Date", Kind: form.KindDate, Required: true},
	{Name: "TotalDays", Label: "Total Days", Kind: form.KindNumber},
	{Name: "Status", Label: "Status", Kind: form.KindSelect, Options: statusOptions()},
	{Name: "AppliedDate", Label: "Applied Date", Kind: form.KindDate},
}

func statusOptions() []string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return out
}

// BlankDraft is a new leave: pending, applied today.
func BlankDraft(now time.Time) form.Draft {
	return Schema.Seed(map[string]string{
		"Status":      string(StatusPending),
		"AppliedDate": now.Format(DateLayout),
	})
}

// ToDraft seeds a form draft from l. A missing status or applied date
// gets the same defaults as a new leave.
func ToDraft(l Leave, now time.Time) form.Draft {
	d := Schema.Seed(map[string]string{
		"EmployeeID":    l.EmployeeID,
		"LeaveTypeName": l.LeaveTypeName,
		"StartDate":     l.StartDate,
		"EndDate":       l.EndDate,
		"TotalDays":     daysString(l.TotalDays),
		"Status":        string(l.Status),
		"AppliedDate":   l.AppliedDate,
	})
	if d["Status"] == "" {
		d["Status"] = string(StatusPending)
	}
	if d["AppliedDate"] == "" {
		d["AppliedDate"] = now.Format(DateLayout)
	}
	return d
}

// FromDraft builds the request body for create and update. Date order is
// not checked here; the API decides.
func FromDraft(d form.Draft) (Leave, error) {
	var errs validator.ValidationErrors

	l := Leave{
		EmployeeID:    d["EmployeeID"],
		LeaveTypeName: d["LeaveTypeName"],
		StartDate:     d["StartDate"],
		EndDate:       d["EndDate"],
		Status:        Status(d["Status"]),
		AppliedDate:   d["AppliedDate"],
	}

	if s := strings.TrimSpace(d["TotalDays"]); s != "" {
		days, err := decimal.NewFromString(s)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "TotalDays",
				Message: ErrInvalidTotalDays.Error(),
			})
		} else {
			l.TotalDays = decimal.NewNullDecimal(days)
		}
	}
	if l.Status != "" && !l.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "Status",
			Message: ErrInvalidStatus.Error(),
		})
	}

	if len(errs) > 0 {
		return Leave{}, errs
	}

	return l, nil
}

// ListLeaveRequest is the leave page query: server filters plus the local
// search and paging state. Filters and search are only taken when Apply is
// set; nil page fields keep the current value.
type ListLeaveRequest struct {
	Apply      bool   `form:"apply"`
	EmployeeID string `form:"employee_id"`
	Status     Status `form:"status"`
	Year       string `form:"year"`
	Skip       int    `form:"skip"`
	Limit      int    `form:"limit"`
	Search     string `form:"q"`
	Page       *int   `form:"page"`
	PageSize   *int   `form:"size"`
}

func (r ListLeaveRequest) Filter() Filter {
	return Filter{
		EmployeeID: r.EmployeeID,
		Status:     r.Status,
		Year:       r.Year,
		Skip:       r.Skip,
		Limit:      r.Limit,
	}
}

func (r *ListLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Year = strings.TrimSpace(r.Year)

	if r.Status != "" && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: ErrInvalidStatus.Error(),
		})
	}
	if r.Year != "" && !validYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: ErrInvalidYear.Error(),
		})
	}
	if r.Skip < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "skip",
			Message: "skip must not be negative",
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

// StatsRequest asks for one employee's leave summary, optionally for a
// single year.
type StatsRequest struct {
	EmployeeID string `form:"-"`
	Year       string `form:"year"`
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Year = strings.TrimSpace(r.Year)

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: ErrEmployeeIDRequired.Error(),
		})
	}
	if r.Year != "" && !validYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: ErrInvalidYear.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatsResponse combines the summary with the employee's leave history.
type StatsResponse struct {
	EmployeeID string  `json:"employee_id"`
	Year       string  `json:"year,omitempty"`
	Stats      Stats   `json:"stats"`
	Leaves     []Leave `json:"leaves"`
}

func validYear(s string) bool {
	if !validator.IsNumeric(s) {
		return false
	}
	y, err := strconv.Atoi(s)
	return err == nil && y >= 1900 && y <= 9999
}
