package service_test

import (
	"context"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetStats(t *testing.T) {
	store := newStore(t)
	ctx, _ := surveyorContext(t, store)
	orders := newOrderService(store)

	var last int64
	for i := 0; i < 6; i++ {
		last = createOrder(t, ctx, orders, acmeOrder()).OrderID
	}
	status := domain.OrderStatusCompleted
	_, err := orders.Update(ctx, last, &domain.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)

	stats, err := service.NewDashboardService(store, nopLogger).GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.TotalOrders)
	assert.Equal(t, int64(6), stats.TotalShips)
	assert.Equal(t, int64(12), stats.TotalShipPorts)
	assert.Equal(t, int64(5), stats.OrdersByStatus[domain.OrderStatusPending])
	assert.Equal(t, int64(1), stats.OrdersByStatus[domain.OrderStatusCompleted])
	assert.Equal(t, int64(1), stats.ActiveUsers)
	require.Len(t, stats.RecentOrders, 5)
	assert.Equal(t, last, stats.RecentOrders[0].ID)
}

func TestAuditLogService_RecordListPurge(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	svc := service.NewAuditLogService(store.AuditLogs, nopLogger)

	userID := int64(3)
	svc.Record(ctx, &domain.AuditLog{UserID: &userID, Method: "POST", Path: "/api/orders", StatusCode: 201, EntityType: "orders"})
	svc.Record(ctx, &domain.AuditLog{Method: "DELETE", Path: "/api/ports/1", StatusCode: 200, EntityType: "ports"})

	page, err := svc.List(ctx, repository.AuditLogFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Pagination.Total)
	logs, ok := page.Data.([]domain.AuditLogDTO)
	require.True(t, ok)
	assert.Equal(t, "DELETE", logs[0].Method)

	page, err = svc.List(ctx, repository.AuditLogFilter{UserID: &userID}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)
	assert.Equal(t, 20, page.Pagination.Limit)

	deleted, err := svc.Purge(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}
