package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Store bundles the repositories over one connection. A Store created
// inside Transaction routes every repository through the transaction.
type Store struct {
	db *gorm.DB

	Orders            *OrderRepository
	Ships             *ShipRepository
	ShipPorts         *ShipPortRepository
	OrderLines        *OrderLineRepository
	Timelogs          *TimelogRepository
	Samplings         *SamplingRepository
	Remarks           *RemarkRepository
	SurveyTypes       *SurveyTypeRepository
	Ports             *PortRepository
	Products          *ProductRepository
	TimelogActivities *TimelogActivityRepository
	RemarksTemplates  *RemarksTemplateRepository
	Users             *UserRepository
	AuditLogs         *AuditLogRepository
}

// NewStore creates a store over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:                db,
		Orders:            NewOrderRepository(db),
		Ships:             NewShipRepository(db),
		ShipPorts:         NewShipPortRepository(db),
		OrderLines:        NewOrderLineRepository(db),
		Timelogs:          NewTimelogRepository(db),
		Samplings:         NewSamplingRepository(db),
		Remarks:           NewRemarkRepository(db),
		SurveyTypes:       NewSurveyTypeRepository(db),
		Ports:             NewPortRepository(db),
		Products:          NewProductRepository(db),
		TimelogActivities: NewTimelogActivityRepository(db),
		RemarksTemplates:  NewRemarksTemplateRepository(db),
		Users:             NewUserRepository(db),
		AuditLogs:         NewAuditLogRepository(db),
	}
}

// DB exposes the underlying connection
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn in a single database transaction. Returning an
// error from fn rolls back every write made through the tx store.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// updateColumns applies a partial update and stamps updated_at.
// It returns gorm.ErrRecordNotFound when no row has the id.
func updateColumns(ctx context.Context, db *gorm.DB, model interface{}, id int64, updates map[string]interface{}) error {
	cols := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		cols[k] = v
	}
	cols["updated_at"] = time.Now().UTC()

	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteByID hard deletes one row, gorm.ErrRecordNotFound when absent
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id int64) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
