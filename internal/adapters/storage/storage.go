// Package storage implements the repository ports on top of gorm. Postgres is
// the production backend; sqlite serves local runs and tests. Both share the
// same models, so the overlap query and the optimistic version check behave
// identically on either.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.UnitOfWork    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const slowQueryThreshold = 200 * time.Millisecond

// Store owns the database handle and hands out repositories bound to it.
type Store struct {
	db     *gorm.DB
	driver string
}

// Open connects to the database described by cfg. It does not migrate; call
// Migrate once at startup when cfg.AutoMigrate is set.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(cfg, logger),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB handle: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// One writer at a time; in-memory databases also vanish with their
		// last connection, so the single connection must never be recycled.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &Store{db: db, driver: cfg.Driver}, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(postgresDSN(cfg)), nil
	case "sqlite":
		return sqlite.Open(sqliteDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func postgresDSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// sqliteDSN enables foreign keys so usages cascade with their device or person.
func sqliteDSN(cfg config.DatabaseConfig) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", cfg.DSN, busy.Milliseconds())
}

func newGormLogger(cfg config.DatabaseConfig, logger *slog.Logger) gormlogger.Interface {
	if !cfg.LogQueries || logger == nil {
		return gormlogger.Default.LogMode(gormlogger.Silent)
	}
	return gormlogger.New(slog.NewLogLogger(logger.Handler(), slog.LevelDebug), gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Info,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates or updates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&deviceRecord{}, &personRecord{}, &usageRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Repositories returns repositories that run outside any transaction.
func (s *Store) Repositories() ports.Repositories {
	return repositoriesFor(s.db)
}

// WithinTx runs fn with repositories bound to one transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos ports.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, repositoriesFor(tx))
	})
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Join(errors.New("closing database"), err)
	}
	return sqlDB.Close()
}

func repositoriesFor(db *gorm.DB) ports.Repositories {
	return ports.Repositories{
		Devices: &DeviceRepository{db: db},
		People:  &PersonRepository{db: db},
		Usages:  &UsageRepository{db: db},
	}
}
