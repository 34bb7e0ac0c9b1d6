package service

import (
	"context"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type TimelogService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewTimelogService(store *repository.Store, logger *zap.Logger) *TimelogService {
	return &TimelogService{
		store:  store,
		logger: logger,
	}
}

// Create records an activity at a port call. When order_id is omitted it
// is taken from the port call's ship.
func (s *TimelogService) Create(ctx context.Context, req *domain.CreateTimelogEntryRequest) (*domain.TimelogEntryDTO, error) {
	if req.StartTime == nil {
		return nil, invalidInput("start_time is required")
	}
	if err := checkInterval(*req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	port, err := requireShipPort(ctx, s.store, req.ShipPortID)
	if err != nil {
		return nil, err
	}

	orderID := req.OrderID
	if orderID == nil {
		ship, err := s.store.Ships.GetByID(ctx, port.ShipID)
		if err != nil {
			return nil, translate(err, "get ship")
		}
		orderID = &ship.OrderID
	}

	entry := &domain.TimelogEntry{
		ShipPortID: req.ShipPortID,
		OrderID:    orderID,
		Activity:   req.Activity,
		StartTime:  req.StartTime.UTC(),
		EndTime:    utcPtr(req.EndTime),
		Remarks:    req.Remarks,
		CreatedBy:  auth.CreatorID(ctx),
	}
	if err := s.store.Timelogs.Create(ctx, entry); err != nil {
		return nil, translate(err, "create timelog entry")
	}

	s.logger.Debug("timelog entry created",
		zap.Int64("timelog_id", entry.ID),
		zap.Int64("ship_port_id", entry.ShipPortID),
	)
	dto := mapper.ToTimelogEntryDTO(entry)
	return &dto, nil
}

func (s *TimelogService) GetByID(ctx context.Context, id int64) (*domain.TimelogEntryDTO, error) {
	entry, err := s.store.Timelogs.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get timelog entry")
	}
	dto := mapper.ToTimelogEntryDTO(entry)
	return &dto, nil
}

// List returns entries of a port call or an order by ascending start time
func (s *TimelogService) List(ctx context.Context, filter repository.TimelogFilter) ([]domain.TimelogEntryDTO, error) {
	if filter.ShipPortID <= 0 && filter.OrderID <= 0 {
		return nil, invalidInput("ship_port_id or order_id is required")
	}
	entries, err := s.store.Timelogs.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list timelog entries")
	}
	return mapper.ToTimelogEntryDTOs(entries), nil
}

func (s *TimelogService) Update(ctx context.Context, id int64, req *domain.UpdateTimelogEntryRequest) (*domain.TimelogEntryDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}

	if req.StartTime != nil || req.EndTime != nil {
		current, err := s.store.Timelogs.GetByID(ctx, id)
		if err != nil {
			return nil, translate(err, "get timelog entry")
		}
		start, end := current.StartTime, current.EndTime
		if req.StartTime != nil {
			start = *req.StartTime
		}
		if req.EndTime != nil {
			end = req.EndTime
		}
		if err := checkInterval(start, end); err != nil {
			return nil, err
		}
	}

	if err := s.store.Timelogs.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update timelog entry")
	}
	return s.GetByID(ctx, id)
}

func (s *TimelogService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.Timelogs.Delete(ctx, id), "delete timelog entry")
}

func checkInterval(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return invalidInput("end_time must not be before start_time")
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
