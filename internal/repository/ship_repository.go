package repository

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

type ShipRepository struct {
	db *gorm.DB
}

func NewShipRepository(db *gorm.DB) *ShipRepository {
	return &ShipRepository{db: db}
}

func (r *ShipRepository) Create(ctx context.Context, ship *domain.Ship) error {
	return r.db.WithContext(ctx).Create(ship).Error
}

func (r *ShipRepository) GetByID(ctx context.Context, id int64) (*domain.Ship, error) {
	var ship domain.Ship
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ship).Error; err != nil {
		return nil, err
	}
	return &ship, nil
}

// ListByOrder returns the ships of an order in creation order
func (r *ShipRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Ship, error) {
	var ships []domain.Ship
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC, id ASC").
		Find(&ships).Error
	return ships, err
}

// List returns all ships, optionally narrowed to one order
func (r *ShipRepository) List(ctx context.Context, orderID *int64) ([]domain.Ship, error) {
	if orderID != nil {
		return r.ListByOrder(ctx, *orderID)
	}
	var ships []domain.Ship
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&ships).Error
	return ships, err
}

func (r *ShipRepository) IDsByOrder(ctx context.Context, orderID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Ship{}).Where("order_id = ?", orderID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ShipRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.Ship{}, id, updates)
}

func (r *ShipRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Ship{}, id)
}

func (r *ShipRepository) DeleteByOrder(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&domain.Ship{}).Error
}

func (r *ShipRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Ship{}).Count(&count).Error
	return count, err
}
