package validator

import (
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var validate = playground.New()

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required") != nil
}

// Required returns a ValidationError for field when value is blank.
func Required(field, label, value string) *ValidationError {
	if !IsEmpty(value) {
		return nil
	}
	if label == "" {
		label = field
	}
	return &ValidationError{
		Field:   field,
		Message: label + " is required",
	}
}

// IsNumeric reports whether s parses as a decimal number.
func IsNumeric(s string) bool {
	return validate.Var(strings.TrimSpace(s), "numeric") == nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// IsValidDate parses the date formats the HR API returns.
func IsValidDate(dateStr string) (time.Time, bool) {
	s := strings.TrimSpace(dateStr)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
