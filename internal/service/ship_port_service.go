package service

import (
	"context"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type ShipPortService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewShipPortService(store *repository.Store, logger *zap.Logger) *ShipPortService {
	return &ShipPortService{
		store:  store,
		logger: logger,
	}
}

// Create adds a port call to a ship. A zero sequence takes the next free
// position; duplicate sequences are accepted.
func (s *ShipPortService) Create(ctx context.Context, req *domain.CreateShipPortRequest) (*domain.ShipPortDTO, error) {
	if _, err := s.store.Ships.GetByID(ctx, req.ShipID); err != nil {
		if isNotFound(err) {
			return nil, invalidInput("ship %d does not exist", req.ShipID)
		}
		return nil, translate(err, "get ship")
	}

	seq := req.PortSequence
	if seq <= 0 {
		next, err := s.store.ShipPorts.NextSequence(ctx, req.ShipID)
		if err != nil {
			return nil, translate(err, "allocate port sequence")
		}
		seq = next
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = domain.StatusPending
	}
	port := &domain.ShipPort{
		ShipID:          req.ShipID,
		PortName:        strings.TrimSpace(req.PortName),
		PortSequence:    seq,
		Status:          status,
		ActualArrival:   req.ActualArrival,
		ActualDeparture: req.ActualDeparture,
		Remarks:         req.Remarks,
	}
	if err := s.store.ShipPorts.Create(ctx, port); err != nil {
		return nil, translate(err, "create ship port")
	}

	s.logger.Info("ship port created",
		zap.Int64("ship_port_id", port.ID),
		zap.Int64("ship_id", port.ShipID),
		zap.Int("port_sequence", port.PortSequence),
	)
	dto := mapper.ToShipPortDTO(port)
	return &dto, nil
}

func (s *ShipPortService) GetByID(ctx context.Context, id int64) (*domain.ShipPortDTO, error) {
	port, err := s.store.ShipPorts.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get ship port")
	}
	dto := mapper.ToShipPortDTO(port)
	return &dto, nil
}

// ListByShip returns the port calls of a ship by ascending sequence, with
// record counts
func (s *ShipPortService) ListByShip(ctx context.Context, shipID int64) ([]domain.ShipPortDetailDTO, error) {
	ports, err := s.store.ShipPorts.ListWithCounts(ctx, shipID)
	if err != nil {
		return nil, translate(err, "list ship ports")
	}
	out := make([]domain.ShipPortDetailDTO, len(ports))
	for i := range ports {
		out[i] = mapper.ToShipPortDetailDTO(&ports[i])
	}
	return out, nil
}

func (s *ShipPortService) Update(ctx context.Context, id int64, req *domain.UpdateShipPortRequest) (*domain.ShipPortDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.ShipPorts.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update ship port")
	}
	return s.GetByID(ctx, id)
}

// Delete removes a port call with its order lines, timelog entries,
// samples and remarks
func (s *ShipPortService) Delete(ctx context.Context, id int64) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.ShipPorts.GetByID(ctx, id); err != nil {
			return translate(err, "get ship port")
		}
		if err := deletePortRecords(ctx, tx, []int64{id}); err != nil {
			return err
		}
		return translate(tx.ShipPorts.Delete(ctx, id), "delete ship port")
	})
	if err != nil {
		return err
	}
	s.logger.Info("ship port deleted", zap.Int64("ship_port_id", id))
	return nil
}
