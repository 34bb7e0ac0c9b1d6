package repository

import (
	"context"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetWithCreator loads an order together with its creator's full name
func (r *OrderRepository) GetWithCreator(ctx context.Context, id int64) (*domain.OrderWithCreator, error) {
	var row domain.OrderWithCreator
	result := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.*, users.full_name AS created_by_name").
		Joins("LEFT JOIN users ON users.id = orders.created_by").
		Where("orders.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// List returns one page of orders, newest first. Search matches the order
// number, the client name and the vessel names of the order's ships.
func (r *OrderRepository) List(ctx context.Context, filter domain.OrderListFilter) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Order{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SurveyType != "" {
		query = query.Where("survey_type = ?", filter.SurveyType)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where(
			"LOWER(order_number) LIKE ? OR LOWER(client_name) LIKE ? OR EXISTS (SELECT 1 FROM ships WHERE ships.order_id = orders.id AND LOWER(ships.vessel_name) LIKE ?)",
			p, p, p,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(filter.Limit).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.Order{}, id, updates)
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.Order{}, id)
}

func (r *OrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("order_number = ?", orderNumber).Count(&count).Error
	return count > 0, err
}

// CountBySurveyType counts the orders referencing a survey type name
func (r *OrderRepository) CountBySurveyType(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("survey_type = ?", name).Count(&count).Error
	return count, err
}

// RenameSurveyType moves every order from one survey type name to another
func (r *OrderRepository) RenameSurveyType(ctx context.Context, from, to string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("survey_type = ?", from).
		Updates(map[string]interface{}{"survey_type": to, "updated_at": time.Now().UTC()}).Error
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	var rows []struct {
		Status domain.OrderStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *OrderRepository) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// FindTotalsDrift returns orders whose stored ship/port totals no longer
// match the rows that reference them.
func (r *OrderRepository) FindTotalsDrift(ctx context.Context) ([]domain.TotalsDrift, error) {
	var drift []domain.TotalsDrift
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id AS order_id, o.order_number, o.total_ships, o.total_ports,
			COALESCE(s.cnt, 0) AS actual_ships, COALESCE(p.cnt, 0) AS actual_ports
		FROM orders o
		LEFT JOIN (SELECT order_id, COUNT(*) AS cnt FROM ships GROUP BY order_id) s ON s.order_id = o.id
		LEFT JOIN (
			SELECT sh.order_id, COUNT(*) AS cnt
			FROM ship_ports sp JOIN ships sh ON sh.id = sp.ship_id
			GROUP BY sh.order_id
		) p ON p.order_id = o.id
		WHERE o.total_ships <> COALESCE(s.cnt, 0) OR o.total_ports <> COALESCE(p.cnt, 0)
		ORDER BY o.id`).Scan(&drift).Error
	return drift, err
}
