package service

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentOrdersLimit = 5

type DashboardService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewDashboardService(store *repository.Store, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:  store,
		logger: logger,
	}
}

// GetStats collects the dashboard counters. The queries are independent
// and run concurrently.
func (s *DashboardService) GetStats(ctx context.Context) (*domain.DashboardStatsDTO, error) {
	stats := &domain.DashboardStatsDTO{}
	var recent []domain.Order

	eg, egCtx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		eg.Go(func() error {
			n, err := fn(egCtx)
			*dst = n
			return err
		})
	}
	count(&stats.TotalOrders, s.store.Orders.Count)
	count(&stats.TotalShips, s.store.Ships.Count)
	count(&stats.TotalShipPorts, s.store.ShipPorts.Count)
	count(&stats.TotalSamples, s.store.Samplings.Count)
	count(&stats.TotalTimelogs, s.store.Timelogs.Count)
	count(&stats.ActiveUsers, s.store.Users.CountActive)
	eg.Go(func() error {
		byStatus, err := s.store.Orders.CountByStatus(egCtx)
		stats.OrdersByStatus = byStatus
		return err
	})
	eg.Go(func() error {
		var err error
		recent, err = s.store.Orders.Recent(egCtx, recentOrdersLimit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, translate(err, "load dashboard stats")
	}

	stats.RecentOrders = mapper.ToOrderDTOs(recent)
	return stats, nil
}
