package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gunnargantzel/NMS-sub000/internal/auth"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"github.com/gunnargantzel/NMS-sub000/internal/logger"
	"github.com/gunnargantzel/NMS-sub000/internal/mapper"
	"github.com/gunnargantzel/NMS-sub000/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// maxPortFetches bounds the concurrent port queries of one aggregate
	maxPortFetches = 8

	orderNumberAttempts = 5
)

type OrderService struct {
	store   *repository.Store
	numbers *OrderNumberGenerator
	logger  *zap.Logger
}

func NewOrderService(store *repository.Store, numbers *OrderNumberGenerator, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:   store,
		numbers: numbers,
		logger:  logger,
	}
}

// Create stores an order with its ships and port calls in one transaction
// and captures the ship and port totals.
func (s *OrderService) Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, invalidInput("client_name is required")
	}
	if strings.TrimSpace(req.SurveyType) == "" {
		return nil, invalidInput("survey_type is required")
	}
	if len(req.Ships) == 0 {
		return nil, invalidInput("at least one ship is required")
	}

	totals := CalculateTotals(req.Ships)
	order := &domain.Order{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		SurveyType:  strings.TrimSpace(req.SurveyType),
		Status:      domain.OrderStatusPending,
		TotalShips:  totals.Ships,
		TotalPorts:  totals.Ports,
		Remarks:     req.Remarks,
		CreatedBy:   auth.CreatorID(ctx),
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		number, err := s.nextOrderNumber(ctx, tx)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := tx.Orders.Create(ctx, order); err != nil {
			return translate(err, "create order")
		}

		for _, sr := range req.Ships {
			ship := &domain.Ship{
				OrderID:           order.ID,
				VesselName:        strings.TrimSpace(sr.VesselName),
				VesselIMO:         sr.VesselIMO,
				VesselFlag:        sr.VesselFlag,
				ExpectedArrival:   sr.ExpectedArrival,
				ExpectedDeparture: sr.ExpectedDeparture,
				Status:            domain.StatusPending,
				Remarks:           sr.Remarks,
			}
			if err := tx.Ships.Create(ctx, ship); err != nil {
				return translate(err, "create ship")
			}
			if _, err := createPortCalls(ctx, tx, ship.ID, 1, sr.Ports); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithOrder(s.logger, order.ID, order.OrderNumber).Info("order created",
		zap.Int("total_ships", order.TotalShips),
		zap.Int("total_ports", order.TotalPorts),
	)

	return &domain.CreateOrderResponse{
		Message:     "Order created successfully",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		TotalShips:  order.TotalShips,
		TotalPorts:  order.TotalPorts,
	}, nil
}

func (s *OrderService) nextOrderNumber(ctx context.Context, tx *repository.Store) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		number := s.numbers.Next()
		taken, err := tx.Orders.ExistsByOrderNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("failed to check order number: %w", err)
		}
		if !taken {
			return number, nil
		}
	}
	return "", conflict("could not allocate a unique order number")
}

// createPortCalls inserts ports as consecutive sequences starting at first
func createPortCalls(ctx context.Context, tx *repository.Store, shipID int64, first int, ports []domain.CreateOrderPortRequest) ([]domain.ShipPort, error) {
	created := make([]domain.ShipPort, 0, len(ports))
	for i, p := range ports {
		port := domain.ShipPort{
			ShipID:       shipID,
			PortName:     strings.TrimSpace(p.Name),
			PortSequence: first + i,
			Status:       domain.StatusPending,
			Remarks:      p.Remarks,
		}
		if err := tx.ShipPorts.Create(ctx, &port); err != nil {
			return nil, translate(err, "create ship port")
		}
		created = append(created, port)
	}
	return created, nil
}

// GetAggregate loads an order with its ships in creation order, and each
// ship's port calls by ascending sequence with child record counts. The
// per-ship port queries run concurrently; any failure discards the whole
// aggregate.
func (s *OrderService) GetAggregate(ctx context.Context, id int64) (*domain.OrderAggregate, error) {
	order, err := s.store.Orders.GetWithCreator(ctx, id)
	if err != nil {
		return nil, translate(err, "get order")
	}

	ships, err := s.store.Ships.ListByOrder(ctx, id)
	if err != nil {
		return nil, translate(err, "list ships")
	}

	shipIDs := make([]int64, len(ships))
	for i := range ships {
		shipIDs[i] = ships[i].ID
	}
	refs, err := s.store.ShipPorts.ListRefsByShips(ctx, shipIDs)
	if err != nil {
		return nil, translate(err, "list port summaries")
	}
	summaries := PortSummaries(refs)

	agg := &domain.OrderAggregate{
		OrderWithCreator: *order,
		Ships:            make([]domain.ShipAggregate, len(ships)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxPortFetches)
	for i := range ships {
		agg.Ships[i] = domain.ShipAggregate{
			Ship:        ships[i],
			PortSummary: summaries[ships[i].ID],
		}
		eg.Go(func() error {
			ports, err := s.store.ShipPorts.ListWithCounts(egCtx, ships[i].ID)
			if err != nil {
				return fmt.Errorf("ship %d: %w", ships[i].ID, err)
			}
			if ports == nil {
				ports = []domain.ShipPortWithCounts{}
			}
			agg.Ships[i].Ports = ports
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load ship ports: %w", err)
	}

	return agg, nil
}

// PortSummaries renders "seq:name" pairs joined by ";" per ship. refs are
// expected in ship, sequence order.
func PortSummaries(refs []domain.PortRef) map[int64]string {
	parts := make(map[int64][]string)
	for _, r := range refs {
		parts[r.ShipID] = append(parts[r.ShipID], strconv.Itoa(r.PortSequence)+":"+r.PortName)
	}
	out := make(map[int64]string, len(parts))
	for shipID, p := range parts {
		out[shipID] = strings.Join(p, ";")
	}
	return out
}

// GetByID returns the full order aggregate as a DTO
func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.OrderDetailDTO, error) {
	agg, err := s.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToOrderDetailDTO(agg)
	return &dto, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderListFilter) (*domain.OrderListResponse, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, invalidInput("unknown status %q", filter.Status)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	orders, total, err := s.store.Orders.List(ctx, filter)
	if err != nil {
		return nil, translate(err, "list orders")
	}

	return &domain.OrderListResponse{
		Orders:     mapper.ToOrderDTOs(orders),
		Pagination: newPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Update applies a partial update. Totals and the order number cannot be
// changed.
func (s *OrderService) Update(ctx context.Context, id int64, req *domain.UpdateOrderRequest) (*domain.OrderDTO, error) {
	changes := req.Changes()
	if err := requireChanges(changes); err != nil {
		return nil, err
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, invalidInput("unknown status %q", *req.Status)
	}

	if err := s.store.Orders.Update(ctx, id, changes); err != nil {
		return nil, translate(err, "update order")
	}

	order, err := s.store.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get order")
	}
	dto := mapper.ToOrderDTO(order)
	return &dto, nil
}

// Delete removes an order with its ships, port calls and their records
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Orders.GetByID(ctx, id); err != nil {
			return translate(err, "get order")
		}
		shipIDs, err := tx.Ships.IDsByOrder(ctx, id)
		if err != nil {
			return translate(err, "list ships")
		}
		if err := deleteShips(ctx, tx, shipIDs); err != nil {
			return err
		}
		return translate(tx.Orders.Delete(ctx, id), "delete order")
	})
	if err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.Int64("order_id", id))
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func newPagination(page, limit int, total int64) domain.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return domain.Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
