package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/gunnargantzel/NMS-sub000/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(testutil.NewTestDB(t))
}

func newOrderService(store *repository.Store) *service.OrderService {
	return service.NewOrderService(store, service.NewOrderNumberGenerator(), zap.NewNop())
}

// surveyorContext creates a user and returns a context authenticated as them
func surveyorContext(t *testing.T, store *repository.Store) (context.Context, *domain.User) {
	t.Helper()
	user := &domain.User{
		Username:     "kari",
		PasswordHash: "x",
		FullName:     "Kari Nordmann",
		Role:         domain.RoleSurveyor,
		IsActive:     true,
	}
	require.NoError(t, store.Users.Create(context.Background(), user))
	ctx := auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.FullName,
		Role:        user.Role,
	})
	return ctx, user
}

func acmeOrder() *domain.CreateOrderRequest {
	arrival := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	return &domain.CreateOrderRequest{
		ClientName:  "Acme",
		ClientEmail: "ops@acme.test",
		SurveyType:  "Cargo damage survey",
		Ships: []domain.CreateOrderShipRequest{
			{
				VesselName:      "M/T Test",
				ExpectedArrival: &arrival,
				Ports: []domain.CreateOrderPortRequest{
					{Name: "Bergen"},
					{Name: "Oslo"},
				},
			},
		},
	}
}

func createOrder(t *testing.T, ctx context.Context, svc *service.OrderService, req *domain.CreateOrderRequest) *domain.CreateOrderResponse {
	t.Helper()
	resp, err := svc.Create(ctx, req)
	require.NoError(t, err)
	return resp
}

var nopLogger = zap.NewNop()

func fixedClock() time.Time {
	return time.UnixMilli(1700000000123)
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
