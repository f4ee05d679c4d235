package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type RouterConfig struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	// Session resolves the browser session for every route except the
	// health check.
	Session func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig, employeeHandler EmployeeHandler, leaveHandler LeaveHandler, eventsHandler EventsHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Group(func(r chi.Router) {
		r.Use(cfg.Session)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, employeesPath, http.StatusFound)
		})
		r.Get("/events", eventsHandler.Stream)

		r.Route(employeesPath, func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/new", employeeHandler.New)
			r.Get("/export.xlsx", employeeHandler.Export)
			r.Post("/save", employeeHandler.Save)
			r.Post("/cancel", employeeHandler.Cancel)
			r.Post("/refresh", employeeHandler.Refresh)
			r.Get("/{key}/edit", employeeHandler.Edit)
			r.Get("/{id}/delete", employeeHandler.ConfirmDelete)
			r.Post("/{id}/delete", employeeHandler.Delete)
		})

		r.Route(leavesPath, func(r chi.Router) {
			r.Get("/", leaveHandler.List)
			r.Get("/new", leaveHandler.New)
			r.Get("/export.xlsx", leaveHandler.Export)
			r.Get("/stats/{employeeId}", leaveHandler.Stats)
			r.Post("/save", leaveHandler.Save)
			r.Post("/cancel", leaveHandler.Cancel)
			r.Post("/refresh", leaveHandler.Refresh)
			r.Post("/clear", leaveHandler.ClearFilters)
			r.Get("/{key}/edit", leaveHandler.Edit)
			r.Get("/{id}/delete", leaveHandler.ConfirmDelete)
			r.Post("/{id}/delete", leaveHandler.Delete)
		})

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   cfg.AllowedOrigins,
				AllowCredentials: true,
				AllowedMethods:   []string{"GET", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			}))
			r.Use(chiMiddleware.AllowContentEncoding("application/json"))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/suggest", employeeHandler.SuggestEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaves)
				r.Get("/stats/{employeeId}", leaveHandler.GetStats)
				r.Get("/{id}", leaveHandler.GetLeave)
			})
		})
	})

	return r
}
