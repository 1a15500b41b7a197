package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/grievance-portal/api"
	"github.com/frahmantamala/grievance-portal/internal"
	"github.com/frahmantamala/grievance-portal/internal/auth"
	authPostgres "github.com/frahmantamala/grievance-portal/internal/auth/postgres"
	"github.com/frahmantamala/grievance-portal/internal/complaint"
	complaintPostgres "github.com/frahmantamala/grievance-portal/internal/complaint/postgres"
	"github.com/frahmantamala/grievance-portal/internal/core/events"
	"github.com/frahmantamala/grievance-portal/internal/transport"
	"github.com/frahmantamala/grievance-portal/internal/transport/middleware"
	"github.com/frahmantamala/grievance-portal/internal/transport/rest"
	"github.com/frahmantamala/grievance-portal/internal/user"
	userPostgres "github.com/frahmantamala/grievance-portal/internal/user/postgres"
	"github.com/frahmantamala/grievance-portal/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Gorm     *gorm.DB
	Router   *chi.Mux
	Registry *prometheus.Registry
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "environment", deps.Config.Environment)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			_ = deps.DB.Close()
			os.Exit(1)
		}
	}

	if err := deps.DB.Close(); err != nil {
		deps.Logger.Error("Database close error", "error", err)
	}
	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	base := transport.NewBaseHandler(deps.Logger)

	bus := events.NewBus(deps.Logger)
	events.SubscribeLifecycleLog(bus, deps.Logger)

	tokenGen := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, cfg.Security.AccessTokenDuration)
	authService := auth.NewService(authPostgres.NewRepository(deps.Gorm), tokenGen)
	userService := user.NewService(userPostgres.NewUserRepository(deps.Gorm), cfg.Security.BCryptCost, deps.Logger)
	complaintService := complaint.NewService(
		complaintPostgres.NewComplaintRepository(deps.Gorm),
		complaintPostgres.NewStatsRepository(deps.DB),
		complaint.NewMetrics(deps.Registry),
		deps.Logger,
	).WithPublisher(bus)

	routes := rest.Routes{
		DB:               deps.DB.DB,
		AuthHandler:      auth.NewHandler(authService),
		RBAC:             auth.NewRoleAuthorization(deps.Logger),
		UserHandler:      user.NewHandler(base, userService),
		ComplaintHandler: complaint.NewHandler(base, complaintService),
		AllowedOrigins:   cfg.Server.Origins(),
		OpenAPISpec:      api.OpenAPI,
	}

	if cfg.Observability.Metrics.Enabled {
		routes.HTTPMetrics = middleware.NewHTTPMetrics(deps.Registry)
		routes.MetricsGatherer = deps.Registry
		routes.MetricsPath = cfg.Observability.Metrics.Path
	}

	return rest.RegisterAllRoutes(deps.Router, routes, deps.Logger)
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if config.Database.AutoMigrate {
		lg.Info("applying database migrations")
		if err := runMigrations(ctx, db.DB, false); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	gdb, err := openGorm(db.DB)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "grievance"),
	)

	return &Dependencies{
		Config:   config,
		DB:       db,
		Gorm:     gdb,
		Router:   chi.NewRouter(),
		Registry: registry,
		Logger:   lg,
	}, nil
}
