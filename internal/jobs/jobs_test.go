package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/jobs"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"github.com/gunnargantzel/NMS-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestScheduler_AddRemove(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("b", "@hourly", func() {}))
	require.NoError(t, s.AddJob("a", "0 30 3 * * *", func() {}))
	assert.Error(t, s.AddJob("a", "@hourly", func() {}), "duplicate name")
	assert.Error(t, s.AddJob("c", "not a cron", func() {}))
	assert.Equal(t, []string{"a", "b"}, s.JobNames())

	require.NoError(t, s.RemoveJob("a"))
	assert.Error(t, s.RemoveJob("a"))
	assert.Equal(t, []string{"b"}, s.JobNames())

	s.Start()
	<-s.Stop().Done()
}

func TestTotalsDriftJob_ReportsWithoutRewriting(t *testing.T) {
	db := testutil.NewTestDB(t)
	store := repository.NewStore(db)
	ctx := context.Background()

	order := &domain.Order{OrderNumber: "ORD-1-AAAA", ClientName: "Acme", SurveyType: "x", Status: domain.OrderStatusPending, TotalShips: 1, TotalPorts: 1}
	require.NoError(t, store.Orders.Create(ctx, order))
	ship := &domain.Ship{OrderID: order.ID, VesselName: "v", Status: domain.StatusPending}
	require.NoError(t, store.Ships.Create(ctx, ship))
	for i := 1; i <= 2; i++ {
		require.NoError(t, store.ShipPorts.Create(ctx, &domain.ShipPort{ShipID: ship.ID, PortName: "p", PortSequence: i, Status: domain.StatusPending}))
	}

	core, logs := observer.New(zap.WarnLevel)
	job := jobs.NewTotalsDriftJob(store.Orders, zap.New(core), time.Minute)

	assert.Equal(t, 1, job.Run())
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "ORD-1-AAAA", fields["order_number"])
	assert.EqualValues(t, 2, fields["actual_ports"])

	stored, err := store.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TotalPorts)
}

type purgerFunc func(ctx context.Context, retention time.Duration) (int64, error)

func (f purgerFunc) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	return f(ctx, retention)
}

func TestAuditRetentionJob(t *testing.T) {
	var got time.Duration
	job := jobs.NewAuditRetentionJob(purgerFunc(func(ctx context.Context, retention time.Duration) (int64, error) {
		got = retention
		return 3, nil
	}), 30, zap.NewNop())
	job.Run()
	assert.Equal(t, 30*24*time.Hour, got)

	failing := jobs.NewAuditRetentionJob(purgerFunc(func(ctx context.Context, retention time.Duration) (int64, error) {
		return 0, errors.New("db down")
	}), 1, zap.NewNop())
	failing.Run()

	s := jobs.NewScheduler(zap.NewNop())
	require.NoError(t, jobs.RegisterAuditRetentionJob(s, nil, 0, zap.NewNop(), "@daily"))
	assert.Empty(t, s.JobNames())
}
