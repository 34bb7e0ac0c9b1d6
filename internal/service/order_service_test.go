package service_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestOrderService_CreateAndAggregate(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx, user := surveyorContext(t, store)

	resp := createOrder(t, ctx, svc, acmeOrder())
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{4}$`), resp.OrderNumber)
	assert.Equal(t, 1, resp.TotalShips)
	assert.Equal(t, 2, resp.TotalPorts)
	assert.Equal(t, "Order created successfully", resp.Message)

	agg, err := svc.GetAggregate(ctx, resp.OrderID)
	require.NoError(t, err)

	assert.Equal(t, "Acme", agg.ClientName)
	assert.Equal(t, domain.OrderStatusPending, agg.Status)
	require.NotNil(t, agg.CreatedBy)
	assert.Equal(t, user.ID, *agg.CreatedBy)
	require.NotNil(t, agg.CreatedByName)
	assert.Equal(t, "Kari Nordmann", *agg.CreatedByName)

	require.Len(t, agg.Ships, 1)
	ship := agg.Ships[0]
	assert.Equal(t, "M/T Test", ship.VesselName)
	assert.Equal(t, "1:Bergen;2:Oslo", ship.PortSummary)

	type portView struct {
		Name                     string
		Seq                      int
		Lines, Timelogs, Samples int64
	}
	var got []portView
	for _, p := range ship.Ports {
		got = append(got, portView{p.PortName, p.PortSequence, p.OrderLinesCount, p.TimelogCount, p.SamplingCount})
	}
	want := []portView{{"Bergen", 1, 0, 0, 0}, {"Oslo", 2, 0, 0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ports mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderService_AggregateCountsChildren(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx, _ := surveyorContext(t, store)

	req := acmeOrder()
	req.Ships = append(req.Ships, domain.CreateOrderShipRequest{
		VesselName: "M/V Second",
		Ports:      []domain.CreateOrderPortRequest{{Name: "Trondheim"}},
	})
	resp := createOrder(t, ctx, svc, req)

	agg, err := svc.GetAggregate(ctx, resp.OrderID)
	require.NoError(t, err)
	bergen := agg.Ships[0].Ports[0].ID

	lines := service.NewOrderLineService(store, nopLogger)
	timelogs := service.NewTimelogService(store, nopLogger)
	samples := service.NewSamplingService(store, nopLogger)

	for i := 0; i < 3; i++ {
		_, err := lines.Create(ctx, &domain.CreateOrderLineRequest{
			ShipPortID:  bergen,
			Description: "Steel coils",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}
	start := mustTime("2024-05-01T08:00:00Z")
	_, err = timelogs.Create(ctx, &domain.CreateTimelogEntryRequest{ShipPortID: bergen, Activity: "Arrived", StartTime: &start})
	require.NoError(t, err)
	_, err = samples.Create(ctx, &domain.CreateSamplingRecordRequest{ShipPortID: bergen, SampleNumber: "S-1"})
	require.NoError(t, err)
	_, err = samples.Create(ctx, &domain.CreateSamplingRecordRequest{ShipPortID: bergen, SampleNumber: "S-2"})
	require.NoError(t, err)

	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	agg, err = svc.GetAggregate(ctx, resp.OrderID)
	require.NoError(t, err)

	require.Len(t, agg.Ships, 2)
	assert.Equal(t, "M/T Test", agg.Ships[0].VesselName)
	assert.Equal(t, "M/V Second", agg.Ships[1].VesselName)
	assert.Equal(t, "1:Trondheim", agg.Ships[1].PortSummary)

	p := agg.Ships[0].Ports[0]
	assert.Equal(t, int64(3), p.OrderLinesCount)
	assert.Equal(t, int64(1), p.TimelogCount)
	assert.Equal(t, int64(2), p.SamplingCount)

	oslo := agg.Ships[0].Ports[1]
	assert.Zero(t, oslo.OrderLinesCount)
	assert.Zero(t, oslo.TimelogCount)
	assert.Zero(t, oslo.SamplingCount)
}

func TestOrderService_AggregateShipWithoutPorts(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx := context.Background()

	resp := createOrder(t, ctx, svc, &domain.CreateOrderRequest{
		ClientName: "Acme",
		SurveyType: "Draft survey",
		Ships:      []domain.CreateOrderShipRequest{{VesselName: "Empty"}},
	})
	assert.Equal(t, 0, resp.TotalPorts)

	detail, err := svc.GetByID(ctx, resp.OrderID)
	require.NoError(t, err)
	require.Len(t, detail.Ships, 1)
	assert.NotNil(t, detail.Ships[0].ShipPorts)
	assert.Empty(t, detail.Ships[0].ShipPorts)
	assert.Empty(t, detail.CreatedByName)
	assert.Nil(t, detail.CreatedBy)
}

func TestOrderService_GetAggregateNotFound(t *testing.T) {
	svc := newOrderService(newStore(t))

	_, err := svc.GetAggregate(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestOrderService_CreateValidation(t *testing.T) {
	svc := newOrderService(newStore(t))
	ctx := context.Background()

	tests := []struct {
		name string
		req  *domain.CreateOrderRequest
	}{
		{"missing client", &domain.CreateOrderRequest{SurveyType: "x", Ships: []domain.CreateOrderShipRequest{{VesselName: "v"}}}},
		{"missing survey type", &domain.CreateOrderRequest{ClientName: "c", Ships: []domain.CreateOrderShipRequest{{VesselName: "v"}}}},
		{"no ships", &domain.CreateOrderRequest{ClientName: "c", SurveyType: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestOrderService_OrderNumbersAreUnique(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp := createOrder(t, ctx, svc, acmeOrder())
		assert.False(t, seen[resp.OrderNumber], "duplicate %s", resp.OrderNumber)
		seen[resp.OrderNumber] = true
	}
}

func TestOrderService_CreateRetriesOnNumberCollision(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	// the second order first draws the number already taken by the first
	draws := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}
	i := 0
	gen := service.NewOrderNumberGeneratorWith(fixedClock, func(n int) int {
		v := draws[i%len(draws)]
		i++
		return v
	})
	svc := service.NewOrderService(store, gen, nopLogger)

	first := createOrder(t, ctx, svc, acmeOrder())
	second := createOrder(t, ctx, svc, acmeOrder())
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}

func TestOrderService_List(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createOrder(t, ctx, svc, acmeOrder())
	}
	other := acmeOrder()
	other.ClientName = "Nordic Shipping"
	other.SurveyType = "Draft survey"
	other.Ships[0].VesselName = "Polar Star"
	created := createOrder(t, ctx, svc, other)

	page, err := svc.List(ctx, domain.OrderListFilter{Page: 1, Limit: 4})
	require.NoError(t, err)
	assert.Len(t, page.Orders, 4)
	assert.Equal(t, domain.Pagination{Page: 1, Limit: 4, Total: 6, Pages: 2}, page.Pagination)
	assert.Equal(t, created.OrderID, page.Orders[0].ID, "newest first")

	page, err = svc.List(ctx, domain.OrderListFilter{Page: 2, Limit: 4})
	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)

	bySurvey, err := svc.List(ctx, domain.OrderListFilter{SurveyType: "Draft survey"})
	require.NoError(t, err)
	require.Len(t, bySurvey.Orders, 1)
	assert.Equal(t, 20, bySurvey.Pagination.Limit)

	byVessel, err := svc.List(ctx, domain.OrderListFilter{Search: "polar"})
	require.NoError(t, err)
	require.Len(t, byVessel.Orders, 1)
	assert.Equal(t, "Nordic Shipping", byVessel.Orders[0].ClientName)

	byNumber, err := svc.List(ctx, domain.OrderListFilter{Search: created.OrderNumber})
	require.NoError(t, err)
	assert.Len(t, byNumber.Orders, 1)

	_, err = svc.List(ctx, domain.OrderListFilter{Status: "archived"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	clamped, err := svc.List(ctx, domain.OrderListFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, clamped.Pagination.Limit)
}

func TestOrderService_Update(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx := context.Background()
	resp := createOrder(t, ctx, svc, acmeOrder())

	before, err := store.Orders.GetByID(ctx, resp.OrderID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, resp.OrderID, &domain.UpdateOrderRequest{})
	assert.ErrorIs(t, err, service.ErrNoFieldsToUpdate)

	unchanged, err := store.Orders.GetByID(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, before.UpdatedAt, unchanged.UpdatedAt)

	status := domain.OrderStatusInProgress
	remarks := "Surveyor booked"
	updated, err := svc.Update(ctx, resp.OrderID, &domain.UpdateOrderRequest{Status: &status, Remarks: &remarks})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusInProgress, updated.Status)
	assert.Equal(t, "Surveyor booked", updated.Remarks)
	assert.Equal(t, "Acme", updated.ClientName)
	assert.Equal(t, resp.OrderNumber, updated.OrderNumber)

	bad := domain.OrderStatus("lost")
	_, err = svc.Update(ctx, resp.OrderID, &domain.UpdateOrderRequest{Status: &bad})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Update(ctx, 999, &domain.UpdateOrderRequest{Remarks: &remarks})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestOrderService_DeleteCascades(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx := context.Background()

	keep := createOrder(t, ctx, svc, acmeOrder())
	gone := createOrder(t, ctx, svc, acmeOrder())

	agg, err := svc.GetAggregate(ctx, gone.OrderID)
	require.NoError(t, err)
	portID := agg.Ships[0].Ports[0].ID
	_, err = service.NewSamplingService(store, nopLogger).Create(ctx, &domain.CreateSamplingRecordRequest{ShipPortID: portID, SampleNumber: "S-1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gone.OrderID))

	_, err = svc.GetAggregate(ctx, gone.OrderID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	ships, err := store.Ships.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ships)
	ports, err := store.ShipPorts.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ports)
	samples, err := store.Samplings.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, samples)

	_, err = svc.GetAggregate(ctx, keep.OrderID)
	assert.NoError(t, err)
}

func TestOrderService_DeleteUnknownLeavesStore(t *testing.T) {
	store := newStore(t)
	svc := newOrderService(store)
	ctx := context.Background()
	createOrder(t, ctx, svc, acmeOrder())

	err := svc.Delete(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)

	count, err := store.Orders.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPortSummaries(t *testing.T) {
	got := service.PortSummaries([]domain.PortRef{
		{ID: 1, ShipID: 10, PortName: "Bergen", PortSequence: 1},
		{ID: 2, ShipID: 10, PortName: "Oslo", PortSequence: 2},
		{ID: 3, ShipID: 11, PortName: "Hamburg", PortSequence: 1},
	})
	want := map[int64]string{10: "1:Bergen;2:Oslo", 11: "1:Hamburg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summaries mismatch (-want +got):\n%s", diff)
	}
}
