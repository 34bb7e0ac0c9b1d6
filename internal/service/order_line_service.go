package service

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
)

type OrderLineService struct {
	store  *repository.Store
	logger *zap.Logger
}

func NewOrderLineService(store *repository.Store, logger *zap.Logger) *OrderLineService {
	return &OrderLineService{
		store:  store,
		logger: logger,
	}
}

// Create adds an order line to a port call. Without an explicit total the
// line is priced as quantity times unit price.
func (s *OrderLineService) Create(ctx context.Context, req *domain.CreateOrderLineRequest) (*domain.OrderLineDTO, error) {
	if _, err := requireShipPort(ctx, s.store, req.ShipPortID); err != nil {
		return nil, err
	}
	if req.Quantity.IsNegative() || req.UnitPrice.IsNegative() {
		return nil, invalidInput("quantity and unit_price must not be negative")
	}

	lineNumber := req.LineNumber
	if lineNumber == 0 {
		next, err := s.store.OrderLines.NextLineNumber(ctx, req.ShipPortID)
		if err != nil {
			return nil, translate(err, "allocate line number")
		}
		lineNumber = next
	}

	total := req.Quantity.Mul(req.UnitPrice)
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	}

	line := &domain.OrderLine{
		ShipPortID:  req.ShipPortID,
		LineNumber:  lineNumber,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		TotalPrice:  total,
		CargoType:   req.CargoType,
		PackageType: req.PackageType,
		Weight:      req.Weight,
		Volume:      req.Volume,
	}
	if err := s.store.OrderLines.Create(ctx, line); err != nil {
		return nil, translate(err, "create order line")
	}

	s.logger.Debug("order line created",
		zap.Int64("order_line_id", line.ID),
		zap.Int64("ship_port_id", line.ShipPortID),
	)
	dto := mapper.ToOrderLineDTO(line)
	return &dto, nil
}

func (s *OrderLineService) GetByID(ctx context.Context, id int64) (*domain.OrderLineDTO, error) {
	line, err := s.store.OrderLines.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get order line")
	}
	dto := mapper.ToOrderLineDTO(line)
	return &dto, nil
}

func (s *OrderLineService) ListByShipPort(ctx context.Context, shipPortID int64) ([]domain.OrderLineDTO, error) {
	lines, err := s.store.OrderLines.ListByShipPort(ctx, shipPortID)
	if err != nil {
		return nil, translate(err, "list order lines")
	}
	return mapper.ToOrderLineDTOs(lines), nil
}

func (s *OrderLineService) Update(ctx context.Context, id int64, req *domain.UpdateOrderLineRequest) (*domain.OrderLineDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if err := s.store.OrderLines.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update order line")
	}
	return s.GetByID(ctx, id)
}

func (s *OrderLineService) Delete(ctx context.Context, id int64) error {
	return translate(s.store.OrderLines.Delete(ctx, id), "delete order line")
}
