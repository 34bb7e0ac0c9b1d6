package repository

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

type OrderLineRepository struct {
	db *gorm.DB
}

func NewOrderLineRepository(db *gorm.DB) *OrderLineRepository {
	return &OrderLineRepository{db: db}
}

func (r *OrderLineRepository) Create(ctx context.Context, line *domain.OrderLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *OrderLineRepository) GetByID(ctx context.Context, id int64) (*domain.OrderLine, error) {
	var line domain.OrderLine
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// ListByShipPort returns the lines of a port call ordered by line number
func (r *OrderLineRepository) ListByShipPort(ctx context.Context, shipPortID int64) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	err := r.db.WithContext(ctx).
		Where("ship_port_id = ?", shipPortID).
		Order("line_number ASC, id ASC").
		Find(&lines).Error
	return lines, err
}

// NextLineNumber returns one past the highest line number of a port call
func (r *OrderLineRepository) NextLineNumber(ctx context.Context, shipPortID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.OrderLine{}).Where("ship_port_id = ?", shipPortID).Count(&count).Error
	return int(count) + 1, err
}

func (r *OrderLineRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.OrderLine{}, id, updates)
}

func (r *OrderLineRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.OrderLine{}, id)
}

func (r *OrderLineRepository) DeleteByShipPorts(ctx context.Context, shipPortIDs []int64) error {
	if len(shipPortIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("ship_port_id IN ?", shipPortIDs).Delete(&domain.OrderLine{}).Error
}
