package service_test

import (
	"context"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPort creates an order with one ship and port and returns the ids
func seedPort(t *testing.T, store *repository.Store) (orderID, portID int64) {
	t.Helper()
	ctx := context.Background()
	svc := newOrderService(store)
	resp := createOrder(t, ctx, svc, acmeOrder())
	agg, err := svc.GetAggregate(ctx, resp.OrderID)
	require.NoError(t, err)
	return resp.OrderID, agg.Ships[0].Ports[0].ID
}

func TestOrderLineService(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	_, portID := seedPort(t, store)
	svc := service.NewOrderLineService(store, nopLogger)

	line, err := svc.Create(ctx, &domain.CreateOrderLineRequest{
		ShipPortID:  portID,
		Description: "Bagged rice",
		Quantity:    decimal.RequireFromString("2.5"),
		UnitPrice:   decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, line.LineNumber)
	assert.True(t, decimal.RequireFromString("250").Equal(line.TotalPrice), "got %s", line.TotalPrice)

	explicit := decimal.NewFromInt(999)
	second, err := svc.Create(ctx, &domain.CreateOrderLineRequest{
		ShipPortID:  portID,
		Description: "Flat fee",
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.NewFromInt(1),
		TotalPrice:  &explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.LineNumber)
	assert.True(t, explicit.Equal(second.TotalPrice))

	_, err = svc.Create(ctx, &domain.CreateOrderLineRequest{ShipPortID: portID, Description: "x", Quantity: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.CreateOrderLineRequest{ShipPortID: 999, Description: "x"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	lines, err := svc.ListByShipPort(ctx, portID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Bagged rice", lines[0].Description)

	desc := "Bagged rice, 50kg"
	updated, err := svc.Update(ctx, line.ID, &domain.UpdateOrderLineRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)

	require.NoError(t, svc.Delete(ctx, line.ID))
	assert.ErrorIs(t, svc.Delete(ctx, line.ID), service.ErrNotFound)
}

func TestTimelogService(t *testing.T) {
	store := newStore(t)
	ctx, user := surveyorContext(t, store)
	orderID, portID := seedPort(t, store)
	svc := service.NewTimelogService(store, nopLogger)

	start := mustTime("2024-05-01T08:00:00Z")
	end := mustTime("2024-05-01T09:30:00Z")
	entry, err := svc.Create(ctx, &domain.CreateTimelogEntryRequest{
		ShipPortID: portID,
		Activity:   "Hatch inspection",
		StartTime:  &start,
		EndTime:    &end,
	})
	require.NoError(t, err)
	require.NotNil(t, entry.OrderID)
	assert.Equal(t, orderID, *entry.OrderID)
	require.NotNil(t, entry.CreatedBy)
	assert.Equal(t, user.ID, *entry.CreatedBy)
	assert.Equal(t, "2024-05-01T08:00:00Z", entry.StartTime)
	assert.Equal(t, "2024-05-01T09:30:00Z", entry.EndTime)

	early := mustTime("2024-05-01T07:00:00Z")
	_, err = svc.Create(ctx, &domain.CreateTimelogEntryRequest{ShipPortID: portID, Activity: "x", StartTime: &start, EndTime: &early})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.CreateTimelogEntryRequest{ShipPortID: portID, Activity: "x"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	first := mustTime("2024-05-01T06:00:00Z")
	_, err = svc.Create(ctx, &domain.CreateTimelogEntryRequest{ShipPortID: portID, Activity: "Arrived", StartTime: &first})
	require.NoError(t, err)

	byPort, err := svc.List(ctx, repository.TimelogFilter{ShipPortID: portID})
	require.NoError(t, err)
	require.Len(t, byPort, 2)
	assert.Equal(t, "Arrived", byPort[0].Activity)

	byOrder, err := svc.List(ctx, repository.TimelogFilter{OrderID: orderID})
	require.NoError(t, err)
	assert.Len(t, byOrder, 2)

	_, err = svc.List(ctx, repository.TimelogFilter{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Update(ctx, entry.ID, &domain.UpdateTimelogEntryRequest{EndTime: &early})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	remarks := "Hatch 3 wet"
	updated, err := svc.Update(ctx, entry.ID, &domain.UpdateTimelogEntryRequest{Remarks: &remarks})
	require.NoError(t, err)
	assert.Equal(t, remarks, updated.Remarks)

	require.NoError(t, svc.Delete(ctx, entry.ID))
	_, err = svc.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSamplingService(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	_, portID := seedPort(t, store)
	svc := service.NewSamplingService(store, nopLogger)

	rec, err := svc.Create(ctx, &domain.CreateSamplingRecordRequest{ShipPortID: portID, SampleNumber: " S-100 ", Laboratory: "SGS"})
	require.NoError(t, err)
	assert.Equal(t, "S-100", rec.SampleNumber)
	assert.Equal(t, "pending", rec.Status)
	assert.Nil(t, rec.CreatedBy)

	status := "analysed"
	updated, err := svc.Update(ctx, rec.ID, &domain.UpdateSamplingRecordRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "analysed", updated.Status)
	assert.Equal(t, "SGS", updated.Laboratory)

	_, err = svc.Update(ctx, rec.ID, &domain.UpdateSamplingRecordRequest{})
	assert.ErrorIs(t, err, service.ErrNoFieldsToUpdate)

	list, err := svc.ListByShipPort(ctx, portID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	assert.ErrorIs(t, svc.Delete(ctx, rec.ID), service.ErrNotFound)
}

func TestRemarkService_Template(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	_, portID := seedPort(t, store)
	templates := service.NewRemarksTemplateService(store, nopLogger)
	svc := service.NewRemarkService(store, nopLogger)

	tmpl, err := templates.Create(ctx, &domain.CreateRemarksTemplateRequest{Title: "Weather", Content: "Operations stopped due to weather"})
	require.NoError(t, err)
	assert.True(t, tmpl.IsActive)

	remark, err := svc.Create(ctx, &domain.CreateRemarkRequest{ShipPortID: portID, TemplateID: &tmpl.ID, Content: tmpl.Content})
	require.NoError(t, err)
	require.NotNil(t, remark.TemplateID)
	assert.Equal(t, tmpl.ID, *remark.TemplateID)

	missing := int64(999)
	_, err = svc.Create(ctx, &domain.CreateRemarkRequest{ShipPortID: portID, TemplateID: &missing, Content: "x"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	content := "Resumed 14:00"
	updated, err := svc.Update(ctx, remark.ID, &domain.UpdateRemarkRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, content, updated.Content)
}
