package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dronefleet/internal/adapters/out/postgres/batterylogrepo"
	"dronefleet/internal/adapters/out/postgres/dronerepo"
	"dronefleet/internal/adapters/out/postgres/migrations"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the store connection settings.
type Config struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN renders the connection string for the configured driver.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL renders a postgres:// URL for lib/pq.
func (c Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Open connects gorm to the configured driver. Duplicate key errors are
// translated to gorm.ErrDuplicatedKey.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres, "":
		dialector = gormpostgres.Open(cfg.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Models lists every persisted DTO.
func Models() []any {
	return []any{
		&dronerepo.DroneDTO{},
		&dronerepo.MedicationDTO{},
		&dronerepo.AttachmentDTO{},
		&batterylogrepo.EntryDTO{},
	}
}

// Migrate brings the schema up to date. PostgreSQL runs the versioned scripts
// through lib/pq; SQLite, used for local runs and tests, is auto-migrated.
func Migrate(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) error {
	if cfg.Driver == DriverSQLite {
		return db.WithContext(ctx).AutoMigrate(Models()...)
	}

	sqlDB, err := migrations.Open(ctx, cfg.URL())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	applied, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return err
	}
	logger.Info("schema migrated", "applied", applied)
	return nil
}
