package leave

import "context"

// LeaveRepository is the HR API's leave resource.
type LeaveRepository interface {
	List(ctx context.Context, filter Filter) ([]Leave, error)
	GetByID(ctx context.Context, uid string) (Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	Update(ctx context.Context, uid string, leave Leave) (Leave, error)
	Delete(ctx context.Context, uid string) error
	// Stats returns the summary for one employee; year may be empty.
	Stats(ctx context.Context, employeeID string, year string) (Stats, error)
}
