package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"go.uber.org/zap"
)

// AuditRecorder stores audit entries. Failures are handled by the recorder.
type AuditRecorder interface {
	Record(ctx context.Context, entry *domain.AuditLog)
}

// AuditConfig holds configuration for audit middleware
type AuditConfig struct {
	// SkipPaths are path prefixes that are never audited
	SkipPaths []string
	// AuditReads also records GET requests
	AuditReads bool
}

// DefaultAuditConfig returns default audit configuration
func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		SkipPaths: []string{
			"/health",
			"/swagger",
			"/api/auth",
		},
	}
}

// AuditMiddleware records successful mutating requests
type AuditMiddleware struct {
	recorder AuditRecorder
	config   *AuditConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(recorder AuditRecorder, config *AuditConfig, logger *zap.Logger) *AuditMiddleware {
	if config == nil {
		config = DefaultAuditConfig()
	}
	return &AuditMiddleware{
		recorder: recorder,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// Audit must run inside the chi router so the route pattern is known
// once the handler returns
func (m *AuditMiddleware) Audit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.recorder == nil || !m.shouldAudit(r) {
			next.ServeHTTP(w, r)
			return
		}

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		if rw.statusCode < 200 || rw.statusCode >= 300 {
			return
		}
		m.recorder.Record(context.WithoutCancel(r.Context()), m.buildEntry(r, rw.statusCode))
	})
}

func (m *AuditMiddleware) shouldAudit(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	case http.MethodGet:
		if !m.config.AuditReads {
			return false
		}
	default:
		return false
	}

	for _, skip := range m.config.SkipPaths {
		if strings.HasPrefix(r.URL.Path, skip) {
			return false
		}
	}
	return true
}

func (m *AuditMiddleware) buildEntry(r *http.Request, status int) *domain.AuditLog {
	entry := &domain.AuditLog{
		Method:     r.Method,
		Path:       r.URL.Path,
		StatusCode: status,
		RequestID:  r.Header.Get(RequestIDHeader),
		IPAddress:  clientIP(r),
		CreatedAt:  m.now().UTC(),
	}

	if userCtx, ok := auth.FromContext(r.Context()); ok && userCtx != nil {
		entry.UserName = userCtx.Username
		if !userCtx.System {
			id := userCtx.UserID
			entry.UserID = &id
		}
	}

	entry.EntityType, entry.EntityID = entityFromRoute(r)
	return entry
}

// entityFromRoute derives the entity from the matched route, e.g.
// "/api/timelog/activities/{id}" gives "timelog/activities" and the id
func entityFromRoute(r *http.Request) (string, *int64) {
	pattern := r.URL.Path
	var rctx *chi.Context
	if rctx = chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		pattern = rctx.RoutePattern()
	}

	var segments []string
	for _, part := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if part == "" || part == "api" || part == "*" || strings.HasPrefix(part, "{") {
			continue
		}
		if _, err := strconv.ParseInt(part, 10, 64); err == nil {
			continue
		}
		segments = append(segments, part)
	}
	entityType := strings.Join(segments, "/")

	if rctx == nil {
		return entityType, nil
	}
	for _, key := range []string{"id", "orderId"} {
		if raw := rctx.URLParam(key); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return entityType, &id
			}
		}
	}
	return entityType, nil
}
