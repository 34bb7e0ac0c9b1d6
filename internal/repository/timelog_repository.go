package repository

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

// TimelogFilter narrows timelog lists. Zero values are ignored.
type TimelogFilter struct {
	ShipPortID int64
	OrderID    int64
}

type TimelogRepository struct {
	db *gorm.DB
}

func NewTimelogRepository(db *gorm.DB) *TimelogRepository {
	return &TimelogRepository{db: db}
}

func (r *TimelogRepository) Create(ctx context.Context, entry *domain.TimelogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TimelogRepository) GetByID(ctx context.Context, id int64) (*domain.TimelogEntry, error) {
	var entry domain.TimelogEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns entries ordered by start time
func (r *TimelogRepository) List(ctx context.Context, filter TimelogFilter) ([]domain.TimelogEntry, error) {
	var entries []domain.TimelogEntry
	query := r.db.WithContext(ctx).Model(&domain.TimelogEntry{})
	if filter.ShipPortID > 0 {
		query = query.Where("ship_port_id = ?", filter.ShipPortID)
	}
	if filter.OrderID > 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	err := query.Order("start_time ASC, id ASC").Find(&entries).Error
	return entries, err
}

func (r *TimelogRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.TimelogEntry{}, id, updates)
}

func (r *TimelogRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.TimelogEntry{}, id)
}

func (r *TimelogRepository) DeleteByShipPorts(ctx context.Context, shipPortIDs []int64) error {
	if len(shipPortIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("ship_port_id IN ?", shipPortIDs).Delete(&domain.TimelogEntry{}).Error
}

func (r *TimelogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TimelogEntry{}).Count(&count).Error
	return count, err
}
