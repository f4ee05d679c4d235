package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-frontend-go/internal/service/workspace"
	"github.com/go-chi/chi/v5"
)

const leavesPath = "/leaves"

type LeaveHandler interface {
	// Pages
	List(w http.ResponseWriter, r *http.Request)
	New(w http.ResponseWriter, r *http.Request)
	Edit(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	ConfirmDelete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	ClearFilters(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)

	// JSON API
	ListLeaves(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
	workspaces   WorkspaceStore
	events       EventPublisher
	renderer     *renderer
}

func NewLeaveHandler(leaveService leave.LeaveService, workspaces WorkspaceStore, events EventPublisher, logger *slog.Logger) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
		workspaces:   workspaces,
		events:       events,
		renderer:     newRenderer(logger),
	}
}

var leaveColumns = []export.Column[leave.Leave]{
	{Header: "Employee ID", Width: 14, Value: func(l leave.Leave) any { return l.EmployeeID }},
	{Header: "Leave Type", Width: 18, Value: func(l leave.Leave) any { return l.LeaveTypeName }},
	{Header: "Start Date", Width: 14, Value: func(l leave.Leave) any { return l.StartDate }},
	{Header: "End Date", Width: 14, Value: func(l leave.Leave) any { return l.EndDate }},
	{Header: "Total Days", Width: 10, Value: func(l leave.Leave) any {
		if !l.TotalDays.Valid {
			return nil
		}
		return l.TotalDays.Decimal.InexactFloat64()
	}},
	{Header: "Status", Width: 12, Value: func(l leave.Leave) any { return string(l.Status) }},
	{Header: "Applied Date", Width: 14, Value: func(l leave.Leave) any { return l.AppliedDate }},
}

// load mounts the session's leave view and applies the query. Invalid
// filters are returned as field errors and leave the current filter in
// place.
func (h *leaveHandlerImpl) load(r *http.Request, retry bool) (*workspace.Workspace, map[string]string, error) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		return nil, nil, err
	}

	var req leave.ListLeaveRequest
	if err := decodeQuery(r, &req); err != nil {
		return nil, nil, err
	}

	view := ws.Leaves
	var filterErrs map[string]string
	fetched := false
	if req.Apply {
		if err := req.Validate(); err != nil {
			var validationErrs validator.ValidationErrors
			if !errors.As(err, &validationErrs) {
				return nil, nil, err
			}
			filterErrs = validationErrs.ToMap()
		} else {
			filter := req.Filter()
			fetched = view.State() == listview.Idle || view.Filter() != filter
			view.SetSearch(req.Search)
			if err := ignoreLoadError(view.SetFilter(r.Context(), filter)); err != nil {
				return nil, nil, err
			}
		}
	}

	// An unchanged filter does not refetch, so a failed view still gets
	// its one retry here.
	if !fetched {
		if retry && view.State() == listview.Failed {
			err = view.Refresh(r.Context())
		} else {
			err = view.Mount(r.Context())
		}
		if err := ignoreLoadError(err); err != nil {
			return nil, nil, err
		}
	}

	applyPaging(view, req.Page, req.PageSize)
	return ws, filterErrs, nil
}

// List implements LeaveHandler
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ws, filterErrs, err := h.load(r, false)
	if err != nil {
		h.renderer.error(w, err, "/")
		return
	}

	status := http.StatusOK
	if len(filterErrs) > 0 {
		status = http.StatusUnprocessableEntity
	}
	h.renderer.page(w, status, "leaves", listPage[leave.Leave, leave.Filter]{
		layoutData: layoutData{
			Title:  "Leave Records",
			Active: "leaves",
			Stream: sse.EventLeavesRefreshed,
			Notice: ws.Leaves.TakeNotice(),
		},
		Base:         leavesPath,
		Noun:         "leave",
		Snapshot:     ws.Leaves.Snapshot(),
		Statuses:     leave.Statuses,
		FilterErrors: filterErrs,
	})
}

// New implements LeaveHandler
func (h *leaveHandlerImpl) New(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	ws.Leaves.Create()
	http.Redirect(w, r, leavesPath, http.StatusSeeOther)
}

// Edit implements LeaveHandler
func (h *leaveHandlerImpl) Edit(w http.ResponseWriter, r *http.Request) {
	ws, _, err := h.load(r, false)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	if err := ws.Leaves.Edit(chi.URLParam(r, "key")); err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	http.Redirect(w, r, leavesPath, http.StatusSeeOther)
}

// Cancel implements LeaveHandler
func (h *leaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	ws.Leaves.CloseDialog()
	http.Redirect(w, r, leavesPath, http.StatusSeeOther)
}

// Save implements LeaveHandler
func (h *leaveHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	values, err := formValues(r, leave.Schema)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}

	err = ws.Leaves.Submit(r.Context(), values)
	finishMutation(w, r, h.renderer, h.events, ws, err, leavesPath, sse.EventLeavesRefreshed)
}

// ConfirmDelete implements LeaveHandler
func (h *leaveHandlerImpl) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	label := ""
	if ws, err := currentWorkspace(r, h.workspaces); err == nil {
		for _, l := range ws.Leaves.Filtered() {
			if l.UID == id {
				label = fmt.Sprintf("%s, %s from %s", l.EmployeeID, l.LeaveTypeName, formatDate(l.StartDate))
				break
			}
		}
	}

	h.renderer.page(w, http.StatusOK, "confirm_delete", confirmPage{
		layoutData: layoutData{Title: "Delete leave", Active: "leaves"},
		Base:       leavesPath,
		Noun:       "leave",
		ID:         id,
		Label:      label,
	})
}

// Delete implements LeaveHandler
func (h *leaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}

	id := chi.URLParam(r, "id")
	err = ws.Leaves.Delete(r.Context(), id, r.PostFormValue("confirm") == "yes")
	if errors.Is(err, listview.ErrNotConfirmed) {
		http.Redirect(w, r, leavesPath+"/"+url.PathEscape(id)+"/delete", http.StatusSeeOther)
		return
	}
	finishMutation(w, r, h.renderer, h.events, ws, err, leavesPath, sse.EventLeavesRefreshed)
}

// Refresh implements LeaveHandler
func (h *leaveHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	if err := ignoreLoadError(ws.Leaves.Refresh(r.Context())); err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	http.Redirect(w, r, leavesPath, http.StatusSeeOther)
}

// ClearFilters implements LeaveHandler
func (h *leaveHandlerImpl) ClearFilters(w http.ResponseWriter, r *http.Request) {
	ws, err := currentWorkspace(r, h.workspaces)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	if err := ignoreLoadError(ws.Leaves.ClearFilters(r.Context())); err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	http.Redirect(w, r, leavesPath, http.StatusSeeOther)
}

// Export implements LeaveHandler. Rows are the current server filter plus
// the search term, across all pages.
func (h *leaveHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	ws, _, err := h.load(r, true)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}
	if ws.Leaves.State() != listview.Loaded {
		h.renderer.error(w, listview.ErrFetchFailed, leavesPath)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, "Leaves", leaveColumns, ws.Leaves.Filtered()); err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="leaves.xlsx"`)
	_, _ = buf.WriteTo(w)
}

func (h *leaveHandlerImpl) stats(r *http.Request) (leave.StatsResponse, error) {
	var req leave.StatsRequest
	if err := decodeQuery(r, &req); err != nil {
		return leave.StatsResponse{}, err
	}
	req.EmployeeID = chi.URLParam(r, "employeeId")
	return h.leaveService.GetStats(r.Context(), req)
}

// Stats implements LeaveHandler
func (h *leaveHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats(r)
	if err != nil {
		h.renderer.error(w, err, leavesPath)
		return
	}

	h.renderer.page(w, http.StatusOK, "leave_stats", statsPage{
		layoutData: layoutData{Title: "Leave summary", Active: "leaves"},
		Stats:      stats,
	})
}

// ListLeaves implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	ws, filterErrs, err := h.load(r, true)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if len(filterErrs) > 0 {
		response.ValidationError(w, filterErrs)
		return
	}

	snap := ws.Leaves.Snapshot()
	if snap.State == listview.Failed {
		response.HandleError(w, listview.ErrFetchFailed)
		return
	}
	response.SuccessWithMeta(w, snap.Rows, listMeta(snap))
}

// GetLeave implements LeaveHandler
func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave ID is required", nil)
		return
	}

	l, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, l)
}

// GetStats implements LeaveHandler
func (h *leaveHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
