package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMiddleware(t *testing.T) (*auth.Middleware, *auth.TokenManager) {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	return auth.NewMiddleware(tm, "system-key", zap.NewNop()), tm
}

func whoAmI(t *testing.T, seen **auth.UserContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.FromContext(r.Context())
		require.True(t, ok)
		*seen = u
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	m, tm := newMiddleware(t)
	token, _, err := tm.Issue(testUser())
	require.NoError(t, err)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantSystem bool
	}{
		{"bearer token", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK, false},
		{"api key", map[string]string{"x-api-key": "system-key"}, http.StatusOK, true},
		{"wrong api key", map[string]string{"x-api-key": "nope"}, http.StatusUnauthorized, false},
		{"missing header", nil, http.StatusUnauthorized, false},
		{"basic scheme", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized, false},
		{"garbage token", map[string]string{"Authorization": "Bearer abc.def.ghi"}, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *auth.UserContext
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(whoAmI(t, &seen)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, tt.wantSystem, seen.System)
			} else {
				assert.Contains(t, rec.Body.String(), domain.ErrorTypeUnauthorized)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	m, _ := newMiddleware(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := m.RequireRole(domain.RoleAdmin)(ok)

	t.Run("surveyor forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/audit", nil)
		req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{UserID: 1, Role: domain.RoleSurveyor}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/audit", nil)
		req = req.WithContext(auth.WithUserContext(req.Context(), &auth.UserContext{UserID: 1, Role: domain.RoleAdmin}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audit", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreatorID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, auth.CreatorID(req.Context()))

	ctx := auth.WithUserContext(req.Context(), &auth.UserContext{UserID: 7})
	require.NotNil(t, auth.CreatorID(ctx))
	assert.Equal(t, int64(7), *auth.CreatorID(ctx))

	sys := auth.WithUserContext(req.Context(), &auth.UserContext{System: true})
	assert.Nil(t, auth.CreatorID(sys))
}
