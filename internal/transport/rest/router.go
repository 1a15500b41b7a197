package rest

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/grievance-portal/internal/auth"
	"github.com/frahmantamala/grievance-portal/internal/complaint"
	"github.com/frahmantamala/grievance-portal/internal/transport/middleware"
	"github.com/frahmantamala/grievance-portal/internal/transport/swagger"
	"github.com/frahmantamala/grievance-portal/internal/user"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes groups what RegisterAllRoutes needs to build the HTTP surface.
type Routes struct {
	DB               *sql.DB
	AuthHandler      *auth.Handler
	RBAC             *auth.RoleAuthorization
	UserHandler      *user.Handler
	ComplaintHandler *complaint.Handler

	AllowedOrigins []string
	OpenAPISpec    []byte

	HTTPMetrics     *middleware.HTTPMetrics
	MetricsGatherer prometheus.Gatherer
	MetricsPath     string
}

func RegisterAllRoutes(router *chi.Mux, routes Routes, logger *slog.Logger) error {
	healthHandler := NewHealthHandler(routes.DB)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.CORS(routes.AllowedOrigins))
	if routes.HTTPMetrics != nil {
		router.Use(routes.HTTPMetrics.Middleware)
	}

	if len(routes.OpenAPISpec) > 0 {
		doc, err := swagger.DocumentHandler(context.Background(), routes.OpenAPISpec)
		if err != nil {
			return err
		}
		router.Method("GET", swagger.DocumentPath, doc)
		router.Handle("/swagger/*", swagger.Handler())
	}

	if routes.MetricsGatherer != nil && routes.MetricsPath != "" {
		router.Method("GET", routes.MetricsPath, promhttp.HandlerFor(routes.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.livenessHandler)
		r.Get("/health/ready", healthHandler.readinessHandler)

		r.Post("/register", routes.UserHandler.Register)
		r.Post("/login", routes.AuthHandler.Login)
		r.Post("/admin/login", routes.AuthHandler.AdminLogin)

		// Routes that require a session token
		r.Group(func(pr chi.Router) {
			pr.Use(routes.AuthHandler.AuthMiddleware)
			pr.Use(middleware.UserContext)

			pr.Route("/complaints", func(cr chi.Router) {
				cr.Post("/", routes.ComplaintHandler.SubmitComplaint)
				cr.Get("/", routes.ComplaintHandler.ListComplaints)
				cr.Get("/{id}", routes.ComplaintHandler.GetComplaint)
			})

			// Admin routes
			pr.Group(func(ar chi.Router) {
				ar.Use(routes.RBAC.RequireAdmin())
				ar.Get("/admin/complaints", routes.ComplaintHandler.ListAllComplaints)
				ar.Get("/admin/stats", routes.ComplaintHandler.GetStats)
				ar.Put("/admin/complaints/{id}/status", routes.ComplaintHandler.UpdateComplaintStatus)
			})
		})
	})

	return nil
}
