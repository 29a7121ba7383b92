package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ksred/contact-registry/internal/config"
)

// Database manages the database connection and operations
type Database struct {
	db  *gorm.DB
	cfg *config.Config
	mu  sync.RWMutex
}

// New creates a Database and establishes the connection with retry logic
func New(cfg *config.Config) (*Database, error) {
	d := &Database{cfg: cfg}
	if err := d.connect(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Database) connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(d.gormLogLevel()),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	dialector, err := d.dialector()
	if err != nil {
		return err
	}

	// Retry logic for connection
	maxRetries := 5
	retryDelay := time.Second * 2

	for i := 0; i < maxRetries; i++ {
		d.db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			time.Sleep(retryDelay)
			retryDelay *= 2 // Exponential backoff
		}
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(d.cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(d.cfg.Database.MaxConnections)
	sqlDB.SetConnMaxLifetime(d.cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(d.cfg.Database.ConnMaxIdleTime)

	return nil
}

// dialector picks the gorm driver for the configured database
func (d *Database) dialector() (gorm.Dialector, error) {
	switch d.cfg.Database.Driver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.cfg.Database.Host,
			d.cfg.Database.Port,
			d.cfg.Database.User,
			d.cfg.Database.Password,
			d.cfg.Database.DBName,
			d.cfg.Database.SSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(d.cfg.Database.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", d.cfg.Database.Driver)
	}
}

// Health checks the database connection health
func (d *Database) Health(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.db == nil {
		return fmt.Errorf("database not connected")
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	d.db = nil
	return nil
}

// DB returns the underlying gorm.DB instance
func (d *Database) DB() *gorm.DB {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.db
}

// SetDB sets the underlying gorm.DB instance (for testing)
func (d *Database) SetDB(db *gorm.DB) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.db = db
}

// WithTransaction executes a function within a database transaction
func (d *Database) WithTransaction(fn func(*gorm.DB) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.db == nil {
		return fmt.Errorf("database not connected")
	}

	// sqlite only supports its default isolation level
	if d.cfg.Database.Driver == config.DriverPostgres {
		return d.db.Transaction(fn, &sql.TxOptions{
			Isolation: sql.LevelReadCommitted,
		})
	}
	return d.db.Transaction(fn)
}

// gormLogLevel returns the GORM log level from config
func (d *Database) gormLogLevel() logger.LogLevel {
	if d.cfg.Server.Debug {
		return logger.Info
	}
	switch d.cfg.Server.LogLevel {
	case "debug":
		return logger.Info
	case "warn":
		return logger.Warn
	default:
		return logger.Error
	}
}
