package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/domain"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewDatabase opens the configured store. Postgres is the persistent
// backing; sqlite serves demos and tests, and an in-memory sqlite path is
// shared across the pool so every connection sees the same data.
func NewDatabase(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres, "":
		dialector = postgres.Open(cfg.ConnectionString())
	case DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows one writer; a single connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established",
		zap.String("driver", dialector.Name()),
	)
	return db, nil
}

// SQLiteDSN turns a path into a DSN. ":memory:" and "" become a named
// shared-cache memory database.
func SQLiteDSN(path string) string {
	if path == "" || path == ":memory:" {
		return "file:nms?mode=memory&cache=shared"
	}
	return path
}

// Models lists every table managed by AutoMigrate
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.SurveyType{},
		&domain.Port{},
		&domain.Product{},
		&domain.TimelogActivity{},
		&domain.RemarksTemplate{},
		&domain.Order{},
		&domain.Ship{},
		&domain.ShipPort{},
		&domain.OrderLine{},
		&domain.TimelogEntry{},
		&domain.SamplingRecord{},
		&domain.Remark{},
		&domain.AuditLog{},
	}
}

// AutoMigrate creates or updates tables from the models. Production
// schemas are managed by the goose migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// HealthCheck pings the database
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Stats is a snapshot of connection pool usage
type Stats struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
	MaxOpen         int    `json:"max_open_connections"`
}

// HealthCheckWithStats pings the database and reports pool statistics
func HealthCheckWithStats(ctx context.Context, db *gorm.DB) (*Stats, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	s := sqlDB.Stats()
	stats := &Stats{
		Status:          "healthy",
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
		WaitCount:       s.WaitCount,
		WaitDuration:    s.WaitDuration.String(),
		MaxOpen:         s.MaxOpenConnections,
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		stats.Status = "unhealthy"
		return stats, err
	}
	return stats, nil
}
