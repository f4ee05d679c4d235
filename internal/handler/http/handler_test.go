package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/session"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-frontend-go/internal/repository/restapi"
	employeeService "github.com/cmlabs-hris/hris-frontend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-frontend-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/service/workspace"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testSessionID = "session-1"

var errUpstream = errors.New("upstream unavailable")

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []employee.Employee
	listErr   error
	saveErr   error
	created   []employee.Employee
	updated   map[string]employee.Employee
	deleted   []string
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]employee.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return employee.Employee{}, errUpstream
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return employee.Employee{}, f.saveErr
	}
	f.created = append(f.created, e)
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, employeeID string, e employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return employee.Employee{}, f.saveErr
	}
	if f.updated == nil {
		f.updated = make(map[string]employee.Employee)
	}
	f.updated[employeeID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, employeeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.deleted = append(f.deleted, employeeID)
	return nil
}

type fakeLeaveRepo struct {
	mu        sync.Mutex
	leaves    []leave.Leave
	filters   []leave.Filter
	statsReqs []string
	created   []leave.Leave
	listErr   error
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []leave.Leave
	for _, l := range f.leaves {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, uid string) (leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.leaves {
		if l.UID == uid {
			return l, nil
		}
	}
	return leave.Leave{}, &restapi.TransportError{
		Method:     http.MethodGet,
		Path:       "/leaves/" + uid,
		StatusCode: http.StatusNotFound,
		Err:        restapi.ErrUnexpectedStatus,
	}
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, l)
	return l, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, uid string, l leave.Leave) (leave.Leave, error) {
	return l, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, uid string) error {
	return nil
}

func (f *fakeLeaveRepo) Stats(ctx context.Context, employeeID string, year string) (leave.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statsReqs = append(f.statsReqs, employeeID+"/"+year)
	return leave.Stats{"total_taken": 3, "remaining": 9}, nil
}

type testApp struct {
	router    http.Handler
	employees *fakeEmployeeRepo
	leaves    *fakeLeaveRepo
	hub       *sse.Hub
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	employees := &fakeEmployeeRepo{employees: []employee.Employee{
		{UID: "u1", EmployeeID: "EMP001", EmployeeName: "Alice Khan", Department: "Engineering", EmployeeStatus: "Active",
			BasicSalary: decimal.NewNullDecimal(decimal.RequireFromString("50000"))},
		{UID: "u2", EmployeeID: "EMP002", EmployeeName: "Bilal Ahmed", Department: "Finance", EmployeeStatus: "Active"},
	}}
	leaves := &fakeLeaveRepo{leaves: []leave.Leave{
		{UID: "l1", EmployeeID: "EMP001", LeaveTypeName: "Annual", StartDate: "2024-03-01", EndDate: "2024-03-03", Status: leave.StatusApproved},
		{UID: "l2", EmployeeID: "EMP002", LeaveTypeName: "Sick", StartDate: "2024-04-10", EndDate: "2024-04-10", Status: leave.StatusPending},
	}}

	employeeSvc := employeeService.NewEmployeeService(employees)
	leaveSvc := leaveService.NewLeaveService(leaves)
	hub := sse.NewHub()
	factory := workspace.NewFactory(employeeSvc, leaveSvc, []int{5, 10, 20, 50}, 10, logger)
	store := session.NewStore(time.Hour, factory.New, func(id string, ws *workspace.Workspace) {
		ws.Close()
		hub.Evict(id)
	})
	t.Cleanup(store.Close)

	fixedSession := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.WithID(r.Context(), testSessionID)))
		})
	}

	router := NewRouter(RouterConfig{
		Logger:         logger,
		LogLevel:       slog.LevelError,
		AllowedOrigins: []string{"http://localhost:3000"},
		Session:        fixedSession,
	},
		NewEmployeeHandler(employeeSvc, store, hub, logger),
		NewLeaveHandler(leaveSvc, store, hub, logger),
		NewEventsHandler(hub, logger),
	)

	return &testApp{router: router, employees: employees, leaves: leaves, hub: hub}
}

func (a *testApp) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (a *testApp) post(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type apiEnvelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
	Meta    *response.Meta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRoot_RedirectsToEmployees(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/employees", rec.Header().Get("Location"))
}

func TestEmployeesPage_RendersRows(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/employees")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Alice Khan")
	assert.Contains(t, body, "Bilal Ahmed")
	assert.Contains(t, body, "50000")
	assert.Contains(t, body, "Found 2 of 2 records")
}

func TestEmployeesAPI_SearchAndPaging(t *testing.T) {
	app := newTestApp(t)
	for i := 3; i <= 12; i++ {
		app.employees.employees = append(app.employees.employees, employee.Employee{
			EmployeeID:   fmt.Sprintf("EMP%03d", i),
			EmployeeName: fmt.Sprintf("Employee %d", i),
		})
	}

	rec := app.get(t, "/api/v1/employees?apply=1&q=emp01")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 12, env.Meta.TotalItems)
	assert.Equal(t, 3, env.Meta.MatchedItems)
	assert.Equal(t, 1, env.Meta.Page)

	rec = app.get(t, "/api/v1/employees?apply=1&q=&size=5&page=2")

	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, 3, env.Meta.Page)
	assert.Equal(t, 5, env.Meta.Limit)
	assert.Equal(t, 3, env.Meta.TotalPages)

	var rows []struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	assert.Len(t, rows, 2)
}

func TestEmployeesAPI_InvalidQuery(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/api/v1/employees?page=abc")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "page")
}

func TestEmployeeSave_CreatesAndPublishes(t *testing.T) {
	app := newTestApp(t)
	events, cleanup := app.hub.Subscribe(testSessionID)
	defer cleanup()

	require.Equal(t, http.StatusOK, app.get(t, "/employees").Code)
	rec := app.get(t, "/employees/new")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = app.post(t, "/employees/save", url.Values{
		"EmployeeID":   {"EMP003"},
		"EmployeeName": {"Sara Malik"},
		"BasicSalary":  {"42000.50"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/employees", rec.Header().Get("Location"))
	require.Len(t, app.employees.created, 1)
	assert.Equal(t, "Sara Malik", app.employees.created[0].EmployeeName)
	assert.Equal(t, "42000.5", app.employees.created[0].BasicSalary.Decimal.String())

	select {
	case ev := <-events:
		assert.Equal(t, sse.EventEmployeesRefreshed, ev.Name)
	case <-time.After(time.Second):
		t.Fatal("no refresh event published")
	}

	page := app.get(t, "/employees").Body.String()
	assert.Contains(t, page, "Employee created successfully")
	assert.Contains(t, page, "Sara Malik")
	assert.NotContains(t, page, `class="dialog"`)
}

func TestEmployeeSave_ValidationKeepsDialog(t *testing.T) {
	app := newTestApp(t)
	app.get(t, "/employees/new")

	rec := app.post(t, "/employees/save", url.Values{"EmployeeID": {"EMP003"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, app.employees.created)

	page := app.get(t, "/employees").Body.String()
	assert.Contains(t, page, `class="dialog"`)
	assert.Contains(t, page, "Employee Name is required")
	assert.Contains(t, page, `value="EMP003"`)
}

func TestEmployeeSave_FailureShowsNotice(t *testing.T) {
	app := newTestApp(t)
	app.get(t, "/employees/new")
	app.employees.saveErr = errUpstream

	rec := app.post(t, "/employees/save", url.Values{
		"EmployeeID":   {"EMP003"},
		"EmployeeName": {"Sara Malik"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	page := app.get(t, "/employees").Body.String()
	assert.Contains(t, page, "Failed to create employee")
	assert.Contains(t, page, `class="dialog"`)
}

func TestEmployeeEdit(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/employees/u1/edit")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	page := app.get(t, "/employees").Body.String()
	assert.Contains(t, page, "Edit employee")
	assert.Contains(t, page, `value="Alice Khan"`)

	rec = app.post(t, "/employees/save", url.Values{
		"EmployeeID":   {"EMP001"},
		"EmployeeName": {"Alice K."},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, app.employees.updated, "EMP001")
	assert.Equal(t, "Alice K.", app.employees.updated["EMP001"].EmployeeName)
}

func TestEmployeeEdit_UnknownKey(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/employees/missing/edit")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeCancel_ClosesDialog(t *testing.T) {
	app := newTestApp(t)
	app.get(t, "/employees/new")

	rec := app.post(t, "/employees/cancel", nil)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotContains(t, app.get(t, "/employees").Body.String(), `class="dialog"`)
}

func TestEmployeeDelete_RequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	app.get(t, "/employees")

	rec := app.post(t, "/employees/EMP001/delete", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/employees/EMP001/delete", rec.Header().Get("Location"))
	assert.Empty(t, app.employees.deleted)

	confirm := app.get(t, "/employees/EMP001/delete")
	require.Equal(t, http.StatusOK, confirm.Code)
	assert.Contains(t, confirm.Body.String(), "Alice Khan (EMP001)")

	rec = app.post(t, "/employees/EMP001/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"EMP001"}, app.employees.deleted)
	assert.Contains(t, app.get(t, "/employees").Body.String(), "Employee deleted successfully")
}

func TestEmployeesPage_FetchFailure(t *testing.T) {
	app := newTestApp(t)
	app.employees.listErr = errUpstream

	rec := app.get(t, "/employees")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load employee records")

	rec = app.get(t, "/api/v1/employees")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	app.employees.listErr = nil
	rec = app.post(t, "/employees/refresh", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, app.get(t, "/employees").Body.String(), "Alice Khan")
}

func TestEmployeeExport(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/employees/export.xlsx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "employees.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	id, err := f.GetCellValue("Employees", "A2")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", id)
	name, err := f.GetCellValue("Employees", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Bilal Ahmed", name)
}

func TestEmployeeAPI_GetAndSuggest(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/api/v1/employees/EMP002")
	require.Equal(t, http.StatusOK, rec.Code)
	var e employee.Employee
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &e))
	assert.Equal(t, "Bilal Ahmed", e.EmployeeName)

	rec = app.get(t, "/api/v1/employees/suggest?q=alice")
	require.Equal(t, http.StatusOK, rec.Code)
	var suggestions []employee.SuggestEmployeeResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &suggestions))
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "EMP001", suggestions[0].EmployeeID)

	rec = app.get(t, "/api/v1/employees/suggest")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEmployeeAPI_CORS(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/employees", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	app.router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLeavesPage_AppliesFilters(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/leaves?apply=1&status=Approved&year=2024")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Annual")
	assert.NotContains(t, body, "Sick")
	require.NotEmpty(t, app.leaves.filters)
	assert.Equal(t, leave.Filter{Status: leave.StatusApproved, Year: "2024"}, app.leaves.filters[len(app.leaves.filters)-1])

	calls := len(app.leaves.filters)
	app.get(t, "/leaves?page=0")
	assert.Len(t, app.leaves.filters, calls, "paging must not refetch")

	rec = app.post(t, "/leaves/clear", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, leave.Filter{}, app.leaves.filters[len(app.leaves.filters)-1])
	assert.Contains(t, app.get(t, "/leaves").Body.String(), "Sick")
}

func TestLeavesAPI_UnchangedFilterRetriesFailedView(t *testing.T) {
	app := newTestApp(t)
	app.leaves.listErr = errUpstream

	rec := app.get(t, "/leaves")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load leave records")
	calls := len(app.leaves.filters)

	app.leaves.listErr = nil
	rec = app.get(t, "/api/v1/leaves?apply=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, app.leaves.filters, calls+1, "failed view is fetched once more")
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.TotalItems)
}

func TestLeavesPage_InvalidFilter(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/leaves?apply=1&year=20x4")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), leave.ErrInvalidYear.Error())
	require.NotEmpty(t, app.leaves.filters)
	assert.Equal(t, leave.Filter{}, app.leaves.filters[len(app.leaves.filters)-1])

	rec = app.get(t, "/api/v1/leaves?apply=1&status=Unknown")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLeaveSave_DefaultsAndPublishes(t *testing.T) {
	app := newTestApp(t)
	events, cleanup := app.hub.Subscribe(testSessionID)
	defer cleanup()

	app.get(t, "/leaves/new")
	page := app.get(t, "/leaves").Body.String()
	assert.Contains(t, page, `<option value="Pending" selected>`)

	rec := app.post(t, "/leaves/save", url.Values{
		"EmployeeID":    {"EMP002"},
		"LeaveTypeName": {"Casual"},
		"StartDate":     {"2024-05-01"},
		"EndDate":       {"2024-05-02"},
		"TotalDays":     {"2"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, app.leaves.created, 1)
	assert.Equal(t, leave.StatusPending, app.leaves.created[0].Status)

	select {
	case ev := <-events:
		assert.Equal(t, sse.EventLeavesRefreshed, ev.Name)
	case <-time.After(time.Second):
		t.Fatal("no refresh event published")
	}
}

func TestLeaveStats(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/leaves/stats/EMP001?year=2024")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Leave summary for EMP001")
	assert.Contains(t, body, "total_taken")
	assert.Contains(t, body, "Annual")
	assert.Equal(t, []string{"EMP001/2024"}, app.leaves.statsReqs)

	rec = app.get(t, "/api/v1/leaves/stats/EMP001?year=24")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = app.get(t, "/api/v1/leaves/stats/EMP001")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats leave.StatsResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &stats))
	assert.Equal(t, "EMP001", stats.EmployeeID)
	assert.Len(t, stats.Leaves, 1)
}

func TestLeaveAPI_Get(t *testing.T) {
	app := newTestApp(t)

	rec := app.get(t, "/api/v1/leaves/l2")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.get(t, "/api/v1/leaves/missing")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestEventsStream(t *testing.T) {
	app := newTestApp(t)
	server := httptest.NewServer(app.router)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	app.hub.Publish(testSessionID, sse.Event{SessionID: testSessionID, Name: sse.EventLeavesRefreshed})

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: ") && line != "event: connected\n" {
			break
		}
	}
	assert.Equal(t, "event: "+sse.EventLeavesRefreshed+"\n", line)
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2024-03-01", "Mar 1, 2024"},
		{"2024-03-01T08:00:00Z", "Mar 1, 2024"},
		{"soon", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDate(tt.in))
		})
	}
}
