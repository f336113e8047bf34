// Package server wires the REST surface: public catalog and content
// reads, inquiry intake, and the session-gated admin routes.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sabi-consults/internal/admin"
	"sabi-consults/internal/auth"
	"sabi-consults/internal/catalog"
	"sabi-consults/internal/common/config"
	apperrors "sabi-consults/internal/common/errors"
	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/districts"
	"sabi-consults/internal/inquiries"
	"sabi-consults/internal/store"
)

// Deps carries everything the HTTP layer delegates to.
type Deps struct {
	Catalog   *catalog.Service
	Inquiries *inquiries.Service
	Gateway   *admin.Gateway
	Sessions  *auth.SessionManager
	Blogs     store.BlogStore
	Team      store.TeamStore
	Settings  store.SettingsStore
	Directory *districts.Directory
	Logger    logger.Logger
}

// Server owns the router and the underlying http.Server.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

func New(cfg config.ServerConfig, deps Deps) *Server {
	h := &handlers{
		deps:   deps,
		errors: apperrors.NewHTTPHandler(deps.Logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(recordMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.listProperties)
			r.Post("/", h.createProperty)
			r.Get("/map", h.propertiesMapPlan)
			r.Get("/{id}", h.getProperty)
			r.Put("/{id}", h.updateProperty)
			r.Delete("/{id}", h.deleteProperty)
			r.Get("/{id}/map", h.propertyMapPlan)
		})

		r.Get("/districts", h.listDistricts)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.listBlogPosts)
			r.Post("/", h.createBlogPost)
			r.Get("/{slug}", h.getBlogPost)
			r.Put("/{id}", h.updateBlogPost)
			r.Delete("/{id}", h.deleteBlogPost)
		})

		r.Route("/team", func(r chi.Router) {
			r.Get("/", h.listTeam)
			r.Post("/", h.createTeamMember)
			r.Put("/{id}", h.updateTeamMember)
			r.Delete("/{id}", h.removeTeamMember)
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Post("/", h.submitInquiry)
			r.Get("/", h.listInquiries)
			r.Put("/{id}/status", h.updateInquiryStatus)
		})

		r.Get("/settings", h.getSettings)
		r.Put("/settings", h.updateSettings)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Delete("/logout", h.logout)
			r.Get("/session", h.session)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      r,
			ReadTimeout:  cfg.ReadDuration(),
			WriteTimeout: cfg.WriteDuration(),
		},
		logger: deps.Logger,
	}
}

// Start blocks until the listener fails or the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func allowedOrigins(cfg config.ServerConfig) []string {
	if len(cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.AllowedOrigins
}
