// Package db creates gorm database handles for the storefront service.
//
// It wraps driver selection, DSN construction, connection pooling and
// SQL logging behind a single New function. All three supported engines
// expose the same *gorm.DB handle, which is safe for concurrent use and
// pools connections internally.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	mysqldriver "gorm.io/driver/mysql"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New creates a database handle from the provided options.
func New(opts *Options) (*gorm.DB, error) {
	return NewWithContext(context.Background(), opts)
}

// NewWithContext creates a database handle with context support; the
// context bounds the initial ping.
func NewWithContext(ctx context.Context, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		return nil, fmt.Errorf("db options cannot be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid db options: %w", err)
	}

	dialector, err := openDialector(opts)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(gormLogLevel(opts.LogLevel), 200*time.Millisecond, true),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", opts.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if opts.MaxIdleConnections > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConnections)
	}
	if opts.MaxOpenConnections > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConnections)
	}
	if opts.MaxConnectionLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(opts.MaxConnectionLifeTime)
	}
	if opts.MaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(opts.MaxIdleTime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping %s: %w", opts.Driver, err)
	}

	return db, nil
}

// openDialector builds the gorm dialector for the configured driver.
func openDialector(opts *Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverMySQL:
		return mysqldriver.Open(BuildMySQLDSN(opts)), nil
	case DriverPostgres:
		return postgresdriver.Open(BuildPostgresDSN(opts)), nil
	case DriverSQLite:
		return sqlite.Open(BuildSQLiteDSN(opts)), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", opts.Driver)
	}
}

// BuildMySQLDSN builds a MySQL connection string.
func BuildMySQLDSN(opts *Options) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		opts.Username, opts.Password, opts.Host, opts.Port, opts.Database)
}

// BuildPostgresDSN builds a PostgreSQL connection string.
func BuildPostgresDSN(opts *Options) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		opts.Host, opts.Port, opts.Username, opts.Password, opts.Database)
}

// BuildSQLiteDSN builds a SQLite connection string. Foreign key
// enforcement is opted in explicitly; without the pragma the engine
// silently accepts orphaned references.
func BuildSQLiteDSN(opts *Options) string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)", opts.Path)
}

// gormLogLevel maps the numeric option to gorm's log level.
func gormLogLevel(level int) gormlogger.LogLevel {
	switch level {
	case 2:
		return gormlogger.Error
	case 3:
		return gormlogger.Warn
	case 4:
		return gormlogger.Info
	default:
		return gormlogger.Silent
	}
}
