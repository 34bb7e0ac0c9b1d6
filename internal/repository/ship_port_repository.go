package repository

import (
	"context"
	"database/sql"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"gorm.io/gorm"
)

type ShipPortRepository struct {
	db *gorm.DB
}

func NewShipPortRepository(db *gorm.DB) *ShipPortRepository {
	return &ShipPortRepository{db: db}
}

func (r *ShipPortRepository) Create(ctx context.Context, port *domain.ShipPort) error {
	return r.db.WithContext(ctx).Create(port).Error
}

func (r *ShipPortRepository) GetByID(ctx context.Context, id int64) (*domain.ShipPort, error) {
	var port domain.ShipPort
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&port).Error; err != nil {
		return nil, err
	}
	return &port, nil
}

// ListByShip returns the port calls of a ship by ascending sequence
func (r *ShipPortRepository) ListByShip(ctx context.Context, shipID int64) ([]domain.ShipPort, error) {
	var ports []domain.ShipPort
	err := r.db.WithContext(ctx).
		Where("ship_id = ?", shipID).
		Order("port_sequence ASC, id ASC").
		Find(&ports).Error
	return ports, err
}

// ListWithCounts returns the port calls of a ship by ascending sequence,
// each with the number of order lines, timelog entries and samples that
// reference it. Port calls without children report zero.
func (r *ShipPortRepository) ListWithCounts(ctx context.Context, shipID int64) ([]domain.ShipPortWithCounts, error) {
	var ports []domain.ShipPortWithCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT sp.*,
			COALESCE(ol.cnt, 0) AS order_lines_count,
			COALESCE(tl.cnt, 0) AS timelog_count,
			COALESCE(sr.cnt, 0) AS sampling_count
		FROM ship_ports sp
		LEFT JOIN (SELECT ship_port_id, COUNT(*) AS cnt FROM order_lines GROUP BY ship_port_id) ol ON ol.ship_port_id = sp.id
		LEFT JOIN (SELECT ship_port_id, COUNT(*) AS cnt FROM timelog_entries GROUP BY ship_port_id) tl ON tl.ship_port_id = sp.id
		LEFT JOIN (SELECT ship_port_id, COUNT(*) AS cnt FROM sampling_records GROUP BY ship_port_id) sr ON sr.ship_port_id = sp.id
		WHERE sp.ship_id = ?
		ORDER BY sp.port_sequence ASC, sp.id ASC`, shipID).Scan(&ports).Error
	return ports, err
}

// ListRefsByShips returns id, ship, name and sequence of every port call
// of the given ships
func (r *ShipPortRepository) ListRefsByShips(ctx context.Context, shipIDs []int64) ([]domain.PortRef, error) {
	var refs []domain.PortRef
	if len(shipIDs) == 0 {
		return refs, nil
	}
	err := r.db.WithContext(ctx).
		Model(&domain.ShipPort{}).
		Select("id, ship_id, port_name, port_sequence").
		Where("ship_id IN ?", shipIDs).
		Order("ship_id ASC, port_sequence ASC, id ASC").
		Scan(&refs).Error
	return refs, err
}

func (r *ShipPortRepository) IDsByShips(ctx context.Context, shipIDs []int64) ([]int64, error) {
	var ids []int64
	if len(shipIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).Model(&domain.ShipPort{}).Where("ship_id IN ?", shipIDs).Pluck("id", &ids).Error
	return ids, err
}

// NextSequence returns one past the highest port sequence of a ship
func (r *ShipPortRepository) NextSequence(ctx context.Context, shipID int64) (int, error) {
	var maxSeq sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&domain.ShipPort{}).
		Select("MAX(port_sequence)").
		Where("ship_id = ?", shipID).
		Row().Scan(&maxSeq)
	if err != nil {
		return 0, err
	}
	return int(maxSeq.Int64) + 1, nil
}

func (r *ShipPortRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return updateColumns(ctx, r.db, &domain.ShipPort{}, id, updates)
}

func (r *ShipPortRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, &domain.ShipPort{}, id)
}

func (r *ShipPortRepository) DeleteByShips(ctx context.Context, shipIDs []int64) error {
	if len(shipIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("ship_id IN ?", shipIDs).Delete(&domain.ShipPort{}).Error
}

func (r *ShipPortRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ShipPort{}).Count(&count).Error
	return count, err
}
