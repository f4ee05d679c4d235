package leave

import "errors"

var (
	ErrInvalidTotalDays   = errors.New("Total Days must be a number")
	ErrInvalidStatus      = errors.New("status must be Pending, Approved or Rejected")
	ErrInvalidYear        = errors.New("year must be a four digit year")
	ErrEmployeeIDRequired = errors.New("employee_id is required")
)
