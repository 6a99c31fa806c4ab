package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to open the database.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a GORM handle over Postgres, verifies connectivity with a
// ping, and returns it. A default timeout is applied when none is provided.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Close drains and closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the schema for all persisted record types.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRecord{}, &tableRecord{}, &reservationRecord{}, &promotionRecord{})
}

// SchemaManager exposes Migrate behind the ports.SchemaManager contract.
type SchemaManager struct {
	db *gorm.DB
}

func NewSchemaManager(db *gorm.DB) *SchemaManager {
	return &SchemaManager{db: db}
}

func (m *SchemaManager) CreateTables(ctx context.Context) error {
	return Migrate(m.db.WithContext(ctx))
}
