package repository

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

type RemarkRepository struct {
	db *gorm.DB
}

func NewRemarkRepository(db *gorm.DB) *RemarkRepository {
	return &RemarkRepository{db: db}
}

func (r *RemarkRepository) Create(ctx context.Context, remark *domain.Remark) error {
	return r.db.WithContext(ctx).Create(remark).Error
}

func (r *RemarkRepository) GetByID(ctx context.Context, id int64) (*domain.Remark, error) {
	var remark domain.Remark
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&remark).Error; err != nil {
		return nil, err
	}
	return &remark, nil
}

func (r *RemarkRepository) ListByShipPort(ctx context.Context, shipPortID int64) ([]domain.Remark, error) {
	var remarks []domain.Remark
	err := r.db.WithContext(ctx).
		Where("ship_port_id = ?", shipPortID).
		Order("created_at ASC, id ASC").
		Find(&remarks).Error
	return remarks, err
}

func (r *RemarkRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.Remark{}, id, updates)
}

func (r *RemarkRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Remark{}, id)
}

func (r *RemarkRepository) DeleteByShipPorts(ctx context.Context, shipPortIDs []int64) error {
	if len(shipPortIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("ship_port_id IN ?", shipPortIDs).Delete(&domain.Remark{}).Error
}
