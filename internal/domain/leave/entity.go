package leave

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Class is the lowercased status used as a CSS class.
func (s Status) Class() string {
	return strings.ToLower(string(s))
}

// Leave is a leave record owned by the HR API.
type Leave struct {
	UID           string              `json:"uid,omitempty"`
	EmployeeID    string              `json:"EmployeeID"`
	LeaveTypeName string              `json:"LeaveTypeName"`
	StartDate     string              `json:"StartDate"`
	EndDate       string              `json:"EndDate"`
	TotalDays     decimal.NullDecimal `json:"TotalDays"`
	Status        Status              `json:"Status"`
	AppliedDate   string              `json:"AppliedDate"`
}

// RowKey is the server uid. Leaves without one get a positional key from
// the list view.
func (l Leave) RowKey() string {
	return l.UID
}

func (l Leave) SearchValues() []string {
	return []string{
		l.UID,
		l.EmployeeID,
		l.LeaveTypeName,
		l.StartDate,
		l.EndDate,
		daysString(l.TotalDays),
		string(l.Status),
		l.AppliedDate,
	}
}

// Filter is applied by the API. Zero fields are left out of the query.
type Filter struct {
	EmployeeID string `form:"employee_id" json:"employee_id,omitempty"`
	Status     Status `form:"status" json:"status,omitempty"`
	Year       string `form:"year" json:"year,omitempty"`
	Skip       int    `form:"skip" json:"skip,omitempty"`
	Limit      int    `form:"limit" json:"limit,omitempty"`
}

// Values encodes the filter as query parameters, omitting empty strings
// and zero numbers.
func (f Filter) Values() url.Values {
	q := url.Values{}
	if f.EmployeeID != "" {
		q.Set("employee_id", f.EmployeeID)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Year != "" {
		q.Set("year", f.Year)
	}
	if f.Skip != 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit != 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Stats is the per-employee summary returned by the API. Its shape is
// owned by the server and rendered as-is.
type Stats map[string]any

func daysString(d decimal.NullDecimal) string {
	if !d.Valid || d.Decimal.IsZero() {
		return ""
	}
	return d.Decimal.String()
}
