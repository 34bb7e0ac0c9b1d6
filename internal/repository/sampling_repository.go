package repository

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

type SamplingRepository struct {
	db *gorm.DB
}

func NewSamplingRepository(db *gorm.DB) *SamplingRepository {
	return &SamplingRepository{db: db}
}

func (r *SamplingRepository) Create(ctx context.Context, record *domain.SamplingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *SamplingRepository) GetByID(ctx context.Context, id int64) (*domain.SamplingRecord, error) {
	var record domain.SamplingRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *SamplingRepository) ListByShipPort(ctx context.Context, shipPortID int64) ([]domain.SamplingRecord, error) {
	var records []domain.SamplingRecord
	err := r.db.WithContext(ctx).
		Where("ship_port_id = ?", shipPortID).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	return records, err
}

func (r *SamplingRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.SamplingRecord{}, id, updates)
}

func (r *SamplingRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.SamplingRecord{}, id)
}

func (r *SamplingRepository) DeleteByShipPorts(ctx context.Context, shipPortIDs []int64) error {
	if len(shipPortIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("ship_port_id IN ?", shipPortIDs).Delete(&domain.SamplingRecord{}).Error
}

func (r *SamplingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SamplingRecord{}).Count(&count).Error
	return count, err
}
