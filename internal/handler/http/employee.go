package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-frontend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-frontend-go/internal/service/workspace"
	"github.com/go-chi/chi/v5"
)

const employeesPath = "/employees"

type EmployeeHandler interface {
	// Pages
	List(w http.ResponseWriter, r *http.Request)
	New(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	ConfirmDelete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)

	// JSON API
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	SuggestEmployees(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	workspaces      WorkspaceStore
	events          EventPublisher
	renderer        *renderer
}

func NewEmployeeHandler(employeeService employee.EmployeeService, workspaces WorkspaceStore, events EventPublisher, logger *slog.Logger) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		workspaces:      workspaces,
		events:          events,
		renderer:        newRenderer(logger),
	}
}

var employeeColumns = []export.Column[employee.Employee]{
	{Header: "Employee ID", Width: 14, Value: func(e employee.Employee) any { return e.EmployeeID }},
	{Header: "Employee Name", Width: 24, Value: func(e employee.Employee) any { return e.EmployeeName }},
	{Header: "CNIC", Width: 18, Value: func(e employee.Employee) any { return e.CNIC }},
	{Header: "Father Name", Width: 24, Value: func(e employee.Employee) any { return e.FatherName }},
	{Header: "Date of Birth", Width: 14, Value: func(e employee.Employee) any { return e.DOB }},
	{Header: "Mobile No", Width: 16, Value: func(e employee.Employee) any { return e.MobileNo }},
	{Header: "Department", Width: 18, Value: func(e employee.Employee) any { return e.Department }},
	{Header: "Designation", Width: 18, Value: func(e employee.Employee) any { return e.Designation }},
	{Header: "Date of Joining", Width: 16, Value: func(e employee.Employee) any { return e.DateOfJoining }},
	{Header: "Status", Width: 12, Value: func(e employee.Employee) any { return e.EmployeeStatus }},
	{Header: "Basic Salary", Width: 14, Value: func(e employee.Employee) any {
		if !e.BasicSalary.Valid {
			return nil
		}
		return e.BasicSalary.Decimal.InexactFloat64()
	}},
	{Header: "Apply Tax", Width: 10, Value: func(e employee.Employee) any { return e.ApplyTax }},
}

// load mounts the session's employee view and applies the query. With
// retry set, a view whose last fetch failed is fetched again.
func (h *employeeHandlerImpl) load(r *http.Request, retry bool) (*workspace.Workspace, error) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		return nil, err
	}

	var req employee.ListEmployeeRequest
	if err := decodeQuery(r, &req); err != nil {
		return nil, err
	}

	view := ws.Employees
	if retry && view.State() == listview.Failed {
		err = view.Refresh(r.Context())
	} else {
		err = view.Mount(r.Context())
	}
	if err := ignoreLoadError(err); err != nil {
		return nil, err
	}
	if req.Apply {
		view.SetSearch(req.Search)
	}
	applyPaging(view, req.Page, req.PageSize)
	return ws, nil
}

// List implements EmployeeHandler
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ws, err := h.load(r, false)
	if err != nil {
		h.renderer.error(w, err, "/")
		return
	}

	h.renderer.page(w, http.StatusOK, "employees", listPage[employee.Employee, employee.Filter]{
		layoutData: layoutData{
			Title:  "Employees",
			Active: "employees",
			Stream: sse.EventEmployeesRefreshed,
			Notice: ws.Employees.TakeNotice(),
		},
		Base:     employeesPath,
		Noun:     "employee",
		Snapshot: ws.Employees.Snapshot(),
	})
}

// New implements EmployeeHandler
func (h *employeeHandlerImpl) New(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	ws.Employees.Create()
	http.Redirect(w, r, employeesPath, http.StatusSeeOther)
}

// Edit implements EmployeeHandler
func (h *employeeHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	ws, err := h.load(r, false)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	if err := ws.Employees.Edit(chi.URLParam(r, "key")); err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	http.Redirect(w, r, employeesPath, http.StatusSeeOther)
}

// Cancel implements EmployeeHandler
func (h *employeeHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	ws.Employees.CloseDialog()
	http.Redirect(w, r, employeesPath, http.StatusSeeOther)
}

// Save implements EmployeeHandler
func (h *employeeHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	values, err := formValues(r, employee.Schema)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}

	err = ws.Employees.Submit(r.Context(), values)
	finishMutation(w, r, h.renderer, h.events, ws, err, employeesPath, sse.EventEmployeesRefreshed)
}

// ConfirmDelete implements EmployeeHandler
func (h *employeeHandlerImpl) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	label := id
	if ws, err := currentWorkspace(r, h.workspaces); err == nil {
		for _, e := range ws.Employees.Filtered() {
			if e.EmployeeID == id && e.EmployeeName != "" {
				label = e.EmployeeName + " (" + id + ")"
				break
			}
		}
	}

	h.renderer.page(w, http.StatusOK, "confirm_delete", confirmPage{
		layoutData: layoutData{Title: "Delete employee", Active: "employees"},
		Base:       employeesPath,
		Noun:       "employee",
		ID:         id,
		Label:      label,
	})
}

// Delete implements EmployeeHandler
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}

	id := chi.URLParam(r, "id")
	err = ws.Employees.Delete(r.Context(), id, r.PostFormValue("confirm") == "yes")
	if errors.Is(err, listview.ErrNotConfirmed) {
		http.Redirect(w, r, employeesPath+"/"+url.PathEscape(id)+"/delete", http.StatusSeeOther)
		return
	}
	finishMutation(w, r, h.renderer, h.events, ws, err, employeesPath, sse.EventEmployeesRefreshed)
}

// Refresh implements EmployeeHandler
func (h *employeeHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	if err := ignoreLoadError(ws.Employees.Refresh(r.Context())); err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	http.Redirect(w, r, employeesPath, http.StatusSeeOther)
}

// Export implements EmployeeHandler. It writes every employee matching the
// current search, not just the visible page.
func (h *employeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	ws, err := h.load(r, true)
	if err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}
	if ws.Employees.State() != listview.Loaded {
		h.renderer.error(w, listview.ErrFetchFailed, employeesPath)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Employees", employeeColumns, ws.Employees.Filtered()); err != nil {
		h.renderer.error(w, err, employeesPath)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	_, _ = buf.WriteTo(w)
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ws, err := h.load(r, true)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	snap := ws.Employees.Snapshot()
	if snap.State == listview.Failed {
		response.HandleError(w, listview.ErrFetchFailed)
		return
	}
	response.SuccessWithMeta(w, snap.Rows, listMeta(snap))
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	e, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, e)
}

// SuggestEmployees implements EmployeeHandler - autocomplete search
func (h *employeeHandlerImpl) SuggestEmployees(w http.ResponseWriter, r *http.Request) {
	var req employee.SuggestEmployeeRequest
	if err := decodeQuery(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.employeeService.SuggestEmployees(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}
