package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/database"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/http/handler"
	"github.com/gunnargantzel/NMS-sub000/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/gunnargantzel/NMS-sub000/docs" // registers the swagger docs
)

// Handlers groups the HTTP handlers served under /api
type Handlers struct {
	Auth       *handler.AuthHandler
	Orders     *handler.OrderHandler
	Ships      *handler.ShipHandler
	ShipPorts  *handler.ShipPortHandler
	OrderLines *handler.OrderLineHandler
	Timelog    *handler.TimelogHandler
	Sampling   *handler.SamplingHandler
	Remarks    *handler.RemarkHandler
	Surveys    *handler.SurveyTypeHandler
	Reference  *handler.ReferenceHandler
	Email      *handler.EmailHandler
	Dashboard  *handler.DashboardHandler
	Audit      *handler.AuditHandler
}

type Router struct {
	cfg             *config.Config
	logger          *zap.Logger
	db              *gorm.DB
	authMiddleware  *auth.Middleware
	rateLimiter     *middleware.RateLimiter
	auditMiddleware *middleware.AuditMiddleware
	h               Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	auditMiddleware *middleware.AuditMiddleware,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		auditMiddleware: auditMiddleware,
		h:               handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, domain.ErrorTypeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, domain.ErrorTypeMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", rt.health)
	r.Get("/health/db", rt.healthDB)
	r.Get("/health/ready", rt.healthReady)

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api", func(r chi.Router) {
		// Login and verify dispatch on ?action= and check credentials themselves
		r.HandleFunc("/auth", rt.h.Auth.Handle)

		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)
			r.Use(rt.auditMiddleware.Audit)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", rt.h.Orders.List)
				r.Post("/", rt.h.Orders.Create)
				r.Get("/{id}", rt.h.Orders.GetByID)
				r.Put("/{id}", rt.h.Orders.Update)
				r.Delete("/{id}", rt.h.Orders.Delete)
			})

			r.Route("/ships", func(r chi.Router) {
				r.Get("/", rt.h.Ships.List)
				r.Post("/", rt.h.Ships.Create)
				r.Get("/{id}", rt.h.Ships.GetByID)
				r.Put("/{id}", rt.h.Ships.Update)
				r.Delete("/{id}", rt.h.Ships.Delete)
			})

			r.Route("/ship-ports", func(r chi.Router) {
				r.Get("/", rt.h.ShipPorts.List)
				r.Post("/", rt.h.ShipPorts.Create)
				r.Get("/{id}", rt.h.ShipPorts.GetByID)
				r.Put("/{id}", rt.h.ShipPorts.Update)
				r.Delete("/{id}", rt.h.ShipPorts.Delete)
			})

			r.Route("/order-lines", func(r chi.Router) {
				r.Get("/", rt.h.OrderLines.List)
				r.Post("/", rt.h.OrderLines.Create)
				r.Get("/{id}", rt.h.OrderLines.GetByID)
				r.Put("/{id}", rt.h.OrderLines.Update)
				r.Delete("/{id}", rt.h.OrderLines.Delete)
			})

			r.Route("/timelog", func(r chi.Router) {
				r.Get("/", rt.h.Timelog.List)
				r.Post("/", rt.h.Timelog.Create)
				r.Get("/activities", rt.h.Timelog.ListActivities)
				r.Post("/activities", rt.h.Timelog.CreateActivity)
				r.Put("/activities/{id}", rt.h.Timelog.UpdateActivity)
				r.Delete("/activities/{id}", rt.h.Timelog.DeleteActivity)
				r.Put("/{id}", rt.h.Timelog.Update)
				r.Delete("/{id}", rt.h.Timelog.Delete)
			})

			r.Route("/sampling", func(r chi.Router) {
				r.Get("/", rt.h.Sampling.List)
				r.Post("/", rt.h.Sampling.Create)
				r.Put("/{id}", rt.h.Sampling.Update)
				r.Delete("/{id}", rt.h.Sampling.Delete)
			})

			r.Route("/remarks", func(r chi.Router) {
				r.Get("/", rt.h.Remarks.List)
				r.Post("/", rt.h.Remarks.Create)
				r.Get("/templates", rt.h.Remarks.ListTemplates)
				r.Post("/templates", rt.h.Remarks.CreateTemplate)
				r.Put("/templates/{id}", rt.h.Remarks.UpdateTemplate)
				r.Delete("/templates/{id}", rt.h.Remarks.DeleteTemplate)
				r.Put("/{id}", rt.h.Remarks.Update)
				r.Delete("/{id}", rt.h.Remarks.Delete)
			})

			r.Route("/surveys/types", func(r chi.Router) {
				r.Get("/", rt.h.Surveys.List)
				r.Post("/", rt.h.Surveys.Create)
				r.Put("/{id}", rt.h.Surveys.Update)
				r.Delete("/{id}", rt.h.Surveys.Delete)
			})

			r.Route("/ports", func(r chi.Router) {
				r.Get("/", rt.h.Reference.ListPorts)
				r.Post("/", rt.h.Reference.CreatePort)
				r.Put("/{id}", rt.h.Reference.UpdatePort)
				r.Delete("/{id}", rt.h.Reference.DeletePort)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", rt.h.Reference.ListProducts)
				r.Post("/", rt.h.Reference.CreateProduct)
				r.Put("/{id}", rt.h.Reference.UpdateProduct)
				r.Delete("/{id}", rt.h.Reference.DeleteProduct)
			})

			r.Post("/email/order-confirmation/{orderId}", rt.h.Email.SendOrderConfirmation)
			r.Get("/dashboard/stats", rt.h.Dashboard.GetStats)

			r.With(rt.authMiddleware.RequireRole(domain.RoleAdmin)).Get("/audit", rt.h.Audit.List)
		})
	})

	return r
}

// health is the liveness probe
func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// healthDB reports connection pool statistics
func (rt *Router) healthDB(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(r.Context(), rt.db)
	if err != nil {
		rt.logger.Error("database health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"service": "database",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats":   stats,
	})
}

// healthReady is the readiness probe over all dependencies
func (rt *Router) healthReady(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	status := http.StatusOK

	if err := database.HealthCheck(r.Context(), rt.db); err != nil {
		rt.logger.Error("database health check failed", zap.Error(err))
		checks["database"] = "unhealthy"
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "healthy"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, errType, detail string) {
	writeJSON(w, status, domain.APIError{
		Type:   errType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	})
}
