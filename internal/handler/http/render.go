package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

const displayDateLayout = "Jan 2, 2006"

var templateFuncs = template.FuncMap{
	"formatDate": formatDate,
	"amount":     amount,
	"inc":        func(i int) int { return i + 1 },
	"dec":        func(i int) int { return i - 1 },
	"pageHref": func(base string, page, size int) string {
		return fmt.Sprintf("%s?page=%d&size=%d", base, page, size)
	},
}

// formatDate renders an API date for display. Values that do not parse
// are shown unchanged.
func formatDate(s string) string {
	if validator.IsEmpty(s) {
		return ""
	}
	t, ok := validator.IsValidDate(s)
	if !ok {
		return s
	}
	return t.Format(displayDateLayout)
}

func amount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

type layoutData struct {
	Title  string
	Active string
	// Stream is the SSE event that reloads the page, "" for none.
	Stream string
	Notice *listview.Notice
}

type listPage[R any, F any] struct {
	layoutData
	Base         string
	Noun         string
	Snapshot     listview.Snapshot[R, F]
	Statuses     []leave.Status
	FilterErrors map[string]string
}

type confirmPage struct {
	layoutData
	Base  string
	Noun  string
	ID    string
	Label string
}

type statsPage struct {
	layoutData
	Stats leave.StatsResponse
}

type errorPage struct {
	layoutData
	Status  int
	Message string
	Back    string
}

type renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

func newRenderer(logger *slog.Logger) *renderer {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"employees", "leaves", "confirm_delete", "leave_stats", "error"} {
		pages[name] = template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
	return &renderer{pages: pages, logger: logger}
}

// page renders a full page. Output is buffered so a template failure can
// still become a clean 500.
func (rd *renderer) page(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := rd.pages[name]
	if !ok {
		rd.logger.Error("Unknown page template", "template", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		rd.logger.Error("Failed to render page", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// error renders err as an error page with a link back to back.
func (rd *renderer) error(w http.ResponseWriter, err error, back string) {
	status := response.StatusCode(err)
	rd.page(w, status, "error", errorPage{
		layoutData: layoutData{Title: http.StatusText(status)},
		Status:     status,
		Message:    response.Message(err),
		Back:       back,
	})
}
