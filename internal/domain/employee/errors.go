package employee

import "errors"

var (
	ErrInvalidBasicSalary   = errors.New("Basic Salary must be a number")
	ErrSuggestQueryRequired = errors.New("q is required")
)
