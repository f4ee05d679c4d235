// Package workspace holds the per-session list views.
package workspace

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
)

type (
	EmployeeView = listview.View[employee.Employee, employee.Filter]
	LeaveView    = listview.View[leave.Leave, leave.Filter]
)

// Workspace is one browser session's state. Employee and leave views are
// independent of each other.
type Workspace struct {
	ID        string
	Employees *EmployeeView
	Leaves    *LeaveView
}

// Close unmounts both views; fetches still in flight are discarded.
func (w *Workspace) Close() {
	w.Employees.Close()
	w.Leaves.Close()
}

type Factory struct {
	employeeService employee.EmployeeService
	leaveService    leave.LeaveService
	pageSizes       []int
	pageSize        int
	logger          *slog.Logger
}

func NewFactory(
	employeeService employee.EmployeeService,
	leaveService leave.LeaveService,
	pageSizes []int,
	pageSize int,
	logger *slog.Logger,
) *Factory {
	return &Factory{
		employeeService: employeeService,
		leaveService:    leaveService,
		pageSizes:       pageSizes,
		pageSize:        pageSize,
		logger:          logger,
	}
}

// New builds the workspace for session id.
func (f *Factory) New(id string) *Workspace {
	logger := f.logger.With("session_id", id)
	return &Workspace{
		ID: id,
		Employees: listview.New[employee.Employee, employee.Filter](f.employeeService,
			listview.WithNoun("employee"),
			listview.WithPageSizes(f.pageSizes, f.pageSize),
			listview.WithLogger(logger),
		),
		Leaves: listview.New[leave.Leave, leave.Filter](f.leaveService,
			listview.WithNoun("leave"),
			listview.WithPageSizes(f.pageSizes, f.pageSize),
			listview.WithLogger(logger),
		),
	}
}
