package service_test

import (
	"context"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipService_CreateWithPorts(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	order := createOrder(t, ctx, newOrderService(store), acmeOrder())
	svc := service.NewShipService(store, nopLogger)

	ship, err := svc.Create(ctx, &domain.CreateShipRequest{
		OrderID:    order.OrderID,
		VesselName: "M/V Added",
		Ports:      []domain.CreateOrderPortRequest{{Name: "Hamburg"}, {Name: "Rotterdam"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", ship.Status)
	require.Len(t, ship.ShipPorts, 2)
	assert.Equal(t, 1, ship.ShipPorts[0].PortSequence)
	assert.Equal(t, "Rotterdam", ship.ShipPorts[1].PortName)
	assert.Equal(t, 2, ship.ShipPorts[1].PortSequence)

	// totals are a creation-time snapshot
	stored, err := store.Orders.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TotalShips)
	assert.Equal(t, 2, stored.TotalPorts)

	detail, err := svc.GetByID(ctx, ship.ID)
	require.NoError(t, err)
	assert.Equal(t, "1:Hamburg;2:Rotterdam", detail.PortSummary)

	ships, err := svc.List(ctx, &order.OrderID)
	require.NoError(t, err)
	assert.Len(t, ships, 2)
}

func TestShipService_CreateUnknownOrder(t *testing.T) {
	store := newStore(t)
	svc := service.NewShipService(store, nopLogger)

	_, err := svc.Create(context.Background(), &domain.CreateShipRequest{
		OrderID:    42,
		VesselName: "Orphan",
		Ports:      []domain.CreateOrderPortRequest{{Name: "Bergen"}},
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	ports, err := store.ShipPorts.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ports, "no rows written on failure")
}

func TestShipService_UpdateAndDelete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	order := createOrder(t, ctx, newOrderService(store), acmeOrder())
	svc := service.NewShipService(store, nopLogger)

	ships, err := svc.List(ctx, &order.OrderID)
	require.NoError(t, err)
	shipID := ships[0].ID

	_, err = svc.Update(ctx, shipID, &domain.UpdateShipRequest{})
	assert.ErrorIs(t, err, service.ErrNoFieldsToUpdate)

	flag := "NO"
	updated, err := svc.Update(ctx, shipID, &domain.UpdateShipRequest{VesselFlag: &flag})
	require.NoError(t, err)
	assert.Equal(t, "NO", updated.VesselFlag)
	assert.Equal(t, "M/T Test", updated.VesselName)

	require.NoError(t, svc.Delete(ctx, shipID))
	assert.ErrorIs(t, svc.Delete(ctx, shipID), service.ErrNotFound)

	ports, err := store.ShipPorts.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, ports)
}

func TestShipPortService(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	order := createOrder(t, ctx, newOrderService(store), acmeOrder())
	ships, err := service.NewShipService(store, nopLogger).List(ctx, &order.OrderID)
	require.NoError(t, err)
	shipID := ships[0].ID
	svc := service.NewShipPortService(store, nopLogger)

	port, err := svc.Create(ctx, &domain.CreateShipPortRequest{ShipID: shipID, PortName: "Stavanger", PortSequence: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, port.PortSequence)
	assert.Equal(t, "pending", port.Status)

	next, err := svc.Create(ctx, &domain.CreateShipPortRequest{ShipID: shipID, PortName: "Tromsø"})
	require.NoError(t, err)
	assert.Equal(t, 4, next.PortSequence)

	_, err = svc.Create(ctx, &domain.CreateShipPortRequest{ShipID: 999, PortName: "Nowhere", PortSequence: 1})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	list, err := svc.ListByShip(ctx, shipID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, p := range list {
		assert.Equal(t, i+1, p.PortSequence)
	}

	status := "completed"
	updated, err := svc.Update(ctx, port.ID, &domain.UpdateShipPortRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	_, err = service.NewRemarkService(store, nopLogger).Create(ctx, &domain.CreateRemarkRequest{ShipPortID: port.ID, Content: "Rain delay"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, port.ID))
	_, err = svc.GetByID(ctx, port.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	remarks, err := service.NewRemarkService(store, nopLogger).ListByShipPort(ctx, port.ID)
	require.NoError(t, err)
	assert.Empty(t, remarks)

	assert.ErrorIs(t, svc.Delete(ctx, port.ID), service.ErrNotFound)
}
