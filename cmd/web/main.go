package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-frontend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-frontend-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/session"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-frontend-go/internal/repository/restapi"
	employeeService "github.com/cmlabs-hris/hris-frontend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-frontend-go/internal/service/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/service/workspace"
	"github.com/go-chi/httplog/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		fmt.Println("Invalid LOG_LEVEL, using info:", err)
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-frontend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	client, err := restapi.NewClient(cfg.API.BaseURL, restapi.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create API client", "error", err)
		os.Exit(1)
	}

	employeeRepo := restapi.NewEmployeeRepository(client)
	leaveRepo := restapi.NewLeaveRepository(client)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)

	hub := sse.NewHub()
	workspaces := workspace.NewFactory(employeeSvc, leaveSvc, cfg.UI.PageSizeOptions, cfg.UI.DefaultPageSize, logger)
	sessions := session.NewStore(cfg.Session.IdleTimeout, workspaces.New, func(id string, ws *workspace.Workspace) {
		ws.Close()
		hub.Evict(id)
		logger.Debug("Session evicted", "session_id", id)
	})

	sessionManager := session.NewManager(cfg.Session.Secret, cfg.Session.IdleTimeout, cfg.IsProduction())

	scheduler := cron.NewScheduler(logger)
	cron.NewSessionJobs(sessions, cfg.Session.SweepInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, sessions, hub, logger)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc, sessions, hub, logger)
	eventsHandler := appHTTP.NewEventsHandler(hub, logger)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		LogLevel:       level,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Session:        sessionManager.Middleware,
	}, employeeHandler, leaveHandler, eventsHandler)

	server := newServer(fmt.Sprintf(":%d", cfg.App.Port), router, sessions.Close)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server running", "addr", server.Addr, "api_base_url", client.BaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// newServer builds the HTTP server. onShutdown runs as soon as Shutdown
// starts; it must end long-lived streams, which Shutdown does not cancel.
func newServer(addr string, handler http.Handler, onShutdown func()) *http.Server {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(onShutdown)
	return server
}
