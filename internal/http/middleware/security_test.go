package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/http/middleware"
	"github.com/stretchr/testify/assert"
)

func fullSecurityConfig() *config.SecurityConfig {
	return &config.SecurityConfig{
		EnableHSTS:            true,
		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		FrameOptions:          "DENY",
		ContentTypeNosniff:    true,
		XSSProtection:         "1; mode=block",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}
}

func TestSecurityHeaders_AllSet(t *testing.T) {
	h := middleware.SecurityHeaders(fullSecurityConfig())(okHandler())
	w := serve(h, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Empty(t, w.Header().Get("Permissions-Policy"))
}

func TestSecurityHeaders_HSTSDisabled(t *testing.T) {
	cfg := fullSecurityConfig()
	cfg.EnableHSTS = false

	h := middleware.SecurityHeaders(cfg)(okHandler())
	w := serve(h, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_SwaggerGetsRelaxedCSP(t *testing.T) {
	h := middleware.SecurityHeaders(fullSecurityConfig())(okHandler())
	w := serve(h, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "'unsafe-inline'")
	assert.NotContains(t, csp, "default-src 'none'")
}
