package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/http/handler"
	"github.com/gunnargantzel/NMS-sub000/internal/http/middleware"
	"github.com/gunnargantzel/NMS-sub000/internal/http/router"
	"github.com/gunnargantzel/NMS-sub000/internal/notification"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/gunnargantzel/NMS-sub000/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-api-key"

type outbox struct {
	mu   sync.Mutex
	sent []notification.Message
}

func (o *outbox) Send(ctx context.Context, msg notification.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

type testServer struct {
	handler http.Handler
	store   *repository.Store
	tokens  *auth.TokenManager
	auth    *service.AuthService
	mail    *outbox
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()
	db := testutil.NewTestDB(t)
	store := repository.NewStore(db)

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{
		App:       config.AppConfig{Name: "nms", Environment: "development"},
		Security:  config.SecurityConfig{ContentTypeNosniff: true, FrameOptions: "DENY"},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}

	orders := service.NewOrderService(store, service.NewOrderNumberGenerator(), log)
	audit := service.NewAuditLogService(store.AuditLogs, log)
	authService := service.NewAuthService(store.Users, tokens, log)
	mail := &outbox{}

	rt := router.NewRouter(cfg, log, db,
		auth.NewMiddleware(tokens, testAPIKey, log),
		middleware.NewRateLimiter(&cfg.RateLimit, log),
		middleware.NewAuditMiddleware(audit, nil, log),
		router.Handlers{
			Auth:       handler.NewAuthHandler(authService, log),
			Orders:     handler.NewOrderHandler(orders, log),
			Ships:      handler.NewShipHandler(service.NewShipService(store, log), log),
			ShipPorts:  handler.NewShipPortHandler(service.NewShipPortService(store, log), log),
			OrderLines: handler.NewOrderLineHandler(service.NewOrderLineService(store, log), log),
			Timelog:    handler.NewTimelogHandler(service.NewTimelogService(store, log), service.NewTimelogActivityService(store, log), log),
			Sampling:   handler.NewSamplingHandler(service.NewSamplingService(store, log), log),
			Remarks:    handler.NewRemarkHandler(service.NewRemarkService(store, log), service.NewRemarksTemplateService(store, log), log),
			Surveys:    handler.NewSurveyTypeHandler(service.NewSurveyTypeService(store, log), log),
			Reference:  handler.NewReferenceHandler(service.NewPortService(store, log), service.NewProductService(store, log), log),
			Email:      handler.NewEmailHandler(service.NewNotificationService(orders, notification.NewFormatter(), mail, nil, log), log),
			Dashboard:  handler.NewDashboardHandler(service.NewDashboardService(store, log), log),
			Audit:      handler.NewAuditHandler(audit, log),
		},
	)

	return &testServer{
		handler: rt.Setup(),
		store:   store,
		tokens:  tokens,
		auth:    authService,
		mail:    mail,
	}
}

// do sends a request authenticated with the system API key unless headers
// are given
func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if headers == nil {
		req.Header.Set("x-api-key", testAPIKey)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *testServer) createOrder(t *testing.T) domain.CreateOrderResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"client_name":  "Nordic Bulk AS",
		"client_email": "ops@nordicbulk.test",
		"survey_type":  "Draft Survey",
		"ships": []map[string]interface{}{
			{
				"vessel_name": "MV Fjord",
				"ports":       []map[string]string{{"name": "Bergen"}, {"name": "Rotterdam"}},
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[domain.CreateOrderResponse](t, w)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, "Accept", "*/*")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = s.do(t, http.MethodGet, "/health/ready", nil, "Accept", "*/*")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"healthy"`)
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/nope", nil, "Accept", "*/*")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrorTypeNotFound, decode[domain.APIError](t, w).Type)
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/orders", nil, "Accept", "*/*")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders", nil, "x-api-key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders", nil, "Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginAndVerify(t *testing.T) {
	s := newTestServer(t)
	_, err := s.auth.EnsureAdmin(context.Background(), "admin", "s3cret-pass")
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/api/auth?action=login",
		map[string]string{"username": "admin", "password": "wrong"}, "Accept", "*/*")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth?action=login",
		map[string]string{"username": "admin", "password": "s3cret-pass"}, "Accept", "*/*")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[domain.LoginResponse](t, w)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, domain.RoleAdmin, login.User.Role)

	w = s.do(t, http.MethodGet, "/api/auth?action=verify", nil, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	verify := decode[domain.VerifyResponse](t, w)
	assert.True(t, verify.Valid)
	assert.Equal(t, "admin", verify.User.Username)

	// The token opens the protected API
	w = s.do(t, http.MethodGet, "/api/orders", nil, "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthUnknownActionIs405(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/api/auth", "/api/auth?action=logout", "/api/auth?action=login"} {
		w := s.do(t, http.MethodGet, target, nil, "Accept", "*/*")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, target)
		assert.Equal(t, domain.ErrorTypeMethodNotAllowed, decode[domain.APIError](t, w).Type)
	}
}

func TestOrderLifecycle(t *testing.T) {
	s := newTestServer(t)
	created := s.createOrder(t)

	assert.Equal(t, 1, created.TotalShips)
	assert.Equal(t, 2, created.TotalPorts)
	assert.True(t, strings.HasPrefix(created.OrderNumber, "ORD-"), created.OrderNumber)

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[domain.OrderDetailDTO](t, w)
	require.Len(t, detail.Ships, 1)
	require.Len(t, detail.Ships[0].ShipPorts, 2)
	assert.Equal(t, "Bergen", detail.Ships[0].ShipPorts[0].PortName)
	assert.Equal(t, 2, detail.Ships[0].ShipPorts[1].PortSequence)

	w = s.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%d", created.OrderID), map[string]string{"status": "in_progress"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.OrderStatusInProgress, decode[domain.OrderDTO](t, w).Status)

	w = s.do(t, http.MethodGet, "/api/orders?status=in_progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[domain.OrderListResponse](t, w)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, int64(1), list.Pagination.Total)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/orders/%d", created.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Order deleted successfully", decode[domain.MessageResponse](t, w).Message)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.OrderID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode[domain.APIError](t, w).Detail)
}

func TestOrderCreateSetsLocation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"client_name": "Acme",
		"survey_type": "Bunker Survey",
		"ships":       []map[string]string{{"vessel_name": "MT Alpha"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[domain.CreateOrderResponse](t, w)
	assert.Equal(t, fmt.Sprintf("/api/orders/%d", created.OrderID), w.Header().Get("Location"))
}

func TestOrderValidationErrorsUseFieldPaths(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"survey_type":  "Draft Survey",
		"client_email": "not-an-email",
		"ships":        []map[string]string{{"vessel_imo": "1234567"}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	apiErr := decode[domain.APIError](t, w)
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "client_name")
	assert.Contains(t, apiErr.Errors, "client_email")
	assert.Contains(t, apiErr.Errors, "ships[0].vessel_name")
}

func TestOrderRequiresAShip(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/orders", map[string]interface{}{
		"client_name": "Acme",
		"survey_type": "Draft Survey",
		"ships":       []interface{}{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[domain.APIError](t, w).Errors, "ships")
}

func TestMalformedBodyAndID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	req.Header.Set("x-api-key", testAPIKey)
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decode[domain.APIError](t, w).Detail)

	w = s.do(t, http.MethodGet, "/api/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid order ID", decode[domain.APIError](t, w).Detail)
}

func TestUpdateWithoutFields(t *testing.T) {
	s := newTestServer(t)
	created := s.createOrder(t)

	w := s.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%d", created.OrderID), map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decode[domain.APIError](t, w).Detail)
}

func TestChildListsRequireParent(t *testing.T) {
	s := newTestServer(t)

	for path, detail := range map[string]string{
		"/api/ship-ports":  "ship_id is required",
		"/api/order-lines": "ship_port_id is required",
		"/api/sampling":    "ship_port_id is required",
		"/api/remarks":     "ship_port_id is required",
	} {
		w := s.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, detail, decode[domain.APIError](t, w).Detail, path)
	}
}

func TestPortCallRecords(t *testing.T) {
	s := newTestServer(t)
	created := s.createOrder(t)

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/ships?order_id=%d", created.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	ships := decode[[]domain.ShipDTO](t, w)
	require.Len(t, ships, 1)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/ship-ports?ship_id=%d", ships[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	ports := decode[[]domain.ShipPortDTO](t, w)
	require.Len(t, ports, 2)
	portID := ports[0].ID

	w = s.do(t, http.MethodPost, "/api/order-lines", map[string]interface{}{
		"ship_port_id": portID,
		"description":  "Wheat, bulk",
		"quantity":     "1000",
		"unit_price":   "2.5",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	line := decode[domain.OrderLineDTO](t, w)
	assert.Equal(t, 1, line.LineNumber)
	assert.True(t, line.TotalPrice.Equal(decimal.NewFromInt(2500)), line.TotalPrice.String())

	w = s.do(t, http.MethodPost, "/api/timelog", map[string]interface{}{
		"ship_port_id": portID,
		"activity":     "All fast",
		"start_time":   "2024-05-01T06:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/sampling", map[string]interface{}{
		"ship_port_id":  portID,
		"sample_number": "S-001",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, domain.StatusPending, decode[domain.SamplingRecordDTO](t, w).Status)

	w = s.do(t, http.MethodPost, "/api/remarks", map[string]interface{}{
		"ship_port_id": portID,
		"content":      "Hatch 3 wet on arrival",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/timelog?ship_port_id=%d", portID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.TimelogEntryDTO](t, w), 1)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[domain.OrderDetailDTO](t, w).Ships[0].ShipPorts[0]
	assert.Equal(t, int64(1), first.OrderLinesCount)
	assert.Equal(t, int64(1), first.TimelogCount)
	assert.Equal(t, int64(1), first.SamplingCount)

	// Deleting the port call takes its records along
	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/ship-ports/%d", portID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/order-lines?ship_port_id=%d", portID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]domain.OrderLineDTO](t, w))
}

func TestChildCreateWithMissingParent(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/ships", map[string]interface{}{
		"order_id":    999,
		"vessel_name": "MV Ghost",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSurveyTypeConflict(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/surveys/types", map[string]string{"name": "Draft Survey"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/surveys/types", map[string]string{"name": "Draft Survey"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decode[domain.APIError](t, w)
	assert.Equal(t, domain.ErrorTypeConflict, apiErr.Type)
	assert.Contains(t, apiErr.Detail, "already exists")
}

func TestSendOrderConfirmation(t *testing.T) {
	s := newTestServer(t)
	created := s.createOrder(t)

	w := s.do(t, http.MethodPost, fmt.Sprintf("/api/email/order-confirmation/%d", created.OrderID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "ops@nordicbulk.test", decode[domain.SendConfirmationResponse](t, w).Recipient)

	s.mail.mu.Lock()
	defer s.mail.mu.Unlock()
	require.Len(t, s.mail.sent, 1)

	w = s.do(t, http.MethodPost, "/api/email/order-confirmation/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStats(t *testing.T) {
	s := newTestServer(t)
	s.createOrder(t)

	w := s.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[domain.DashboardStatsDTO](t, w)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.TotalShipPorts)
}

func TestAuditTrail(t *testing.T) {
	s := newTestServer(t)
	created := s.createOrder(t)
	s.do(t, http.MethodPut, fmt.Sprintf("/api/orders/%d", created.OrderID), map[string]string{"remarks": "rush"})
	// Failed mutations are not recorded
	s.do(t, http.MethodPut, "/api/orders/999", map[string]string{"remarks": "x"})

	w := s.do(t, http.MethodGet, "/api/audit?entity_type=orders", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page struct {
		Data       []domain.AuditLogDTO `json:"data"`
		Pagination domain.Pagination    `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Data, 2)
	methods := []string{page.Data[0].Method, page.Data[1].Method}
	assert.ElementsMatch(t, []string{http.MethodPost, http.MethodPut}, methods)
}

func TestAuditRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	user := &domain.User{Username: "surveyor", PasswordHash: "x", Role: domain.RoleSurveyor, IsActive: true}
	require.NoError(t, s.store.Users.Create(context.Background(), user))
	token, _, err := s.tokens.Issue(user)
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, "/api/audit", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/orders", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
