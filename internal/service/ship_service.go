package service

import (
	"context"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type ShipService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewShipService(store *repository.Store, logger *zap.Logger) *ShipService {
	return &ShipService{
		store:  store,
		logger: logger,
	}
}

// Create adds a ship to an existing order, with optional port calls.
// The order's stored totals are left unchanged.
func (s *ShipService) Create(ctx context.Context, req *domain.CreateShipRequest) (*domain.ShipDetailDTO, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusPending
	}
	ship := &domain.Ship{
		OrderID:           req.OrderID,
		VesselName:        strings.TrimSpace(req.VesselName),
		VesselIMO:         req.VesselIMO,
		VesselFlag:        req.VesselFlag,
		ExpectedArrival:   req.ExpectedArrival,
		ExpectedDeparture: req.ExpectedDeparture,
		Status:            status,
		Remarks:           req.Remarks,
	}

	var ports []domain.ShipPort
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Orders.GetByID(ctx, req.OrderID); err != nil {
			if isNotFound(err) {
				return invalidInput("order %d does not exist", req.OrderID)
			}
			return translate(err, "get order")
		}
		if err := tx.Ships.Create(ctx, ship); err != nil {
			return translate(err, "create ship")
		}
		var err error
		ports, err = createPortCalls(ctx, tx, ship.ID, 1, req.Ports)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ship created",
		zap.Int64("ship_id", ship.ID),
		zap.Int64("order_id", ship.OrderID),
		zap.Int("ports", len(ports)),
	)

	agg := &domain.ShipAggregate{Ship: *ship, Ports: make([]domain.ShipPortWithCounts, len(ports))}
	for i := range ports {
		agg.Ports[i] = domain.ShipPortWithCounts{ShipPort: ports[i]}
	}
	dto := mapper.ToShipDetailDTO(agg)
	return &dto, nil
}

// GetByID returns a ship with its port calls and their record counts
func (s *ShipService) GetByID(ctx context.Context, id int64) (*domain.ShipDetailDTO, error) {
	ship, err := s.store.Ships.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get ship")
	}
	ports, err := s.store.ShipPorts.ListWithCounts(ctx, id)
	if err != nil {
		return nil, translate(err, "list ship ports")
	}

	refs := make([]domain.PortRef, len(ports))
	for i := range ports {
		refs[i] = domain.PortRef{
			ID:           ports[i].ID,
			ShipID:       ports[i].ShipID,
			PortName:     ports[i].PortName,
			PortSequence: ports[i].PortSequence,
		}
	}

	dto := mapper.ToShipDetailDTO(&domain.ShipAggregate{
		Ship:        *ship,
		PortSummary: PortSummaries(refs)[id],
		Ports:       ports,
	})
	return &dto, nil
}

// List returns ships, optionally restricted to one order
func (s *ShipService) List(ctx context.Context, orderID *int64) ([]domain.ShipDTO, error) {
	ships, err := s.store.Ships.List(ctx, orderID)
	if err != nil {
		return nil, translate(err, "list ships")
	}
	return mapper.ToShipDTOs(ships), nil
}

func (s *ShipService) Update(ctx context.Context, id int64, req *domain.UpdateShipRequest) (*domain.ShipDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.Ships.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update ship")
	}
	ship, err := s.store.Ships.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get ship")
	}
	dto := mapper.ToShipDTO(ship)
	return &dto, nil
}

// Delete removes a ship with its port calls and their records
func (s *ShipService) Delete(ctx context.Context, id int64) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Ships.GetByID(ctx, id); err != nil {
			return translate(err, "get ship")
		}
		return deleteShips(ctx, tx, []int64{id})
	})
	if err != nil {
		return err
	}
	s.logger.Info("ship deleted", zap.Int64("ship_id", id))
	return nil
}
