package db

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// redactedPassword is the placeholder used when serializing passwords.
const redactedPassword = "[REDACTED]"

// Supported drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options defines configuration options for the database connection.
type Options struct {
	// Driver selects the backing engine: mysql, postgres or sqlite.
	Driver   string `json:"driver" mapstructure:"driver"`
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"-" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`

	// Path is the database file for the sqlite driver.
	Path string `json:"path" mapstructure:"path"`

	MaxIdleConnections    int           `json:"max-idle-connections" mapstructure:"max-idle-connections"`
	MaxOpenConnections    int           `json:"max-open-connections" mapstructure:"max-open-connections"`
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time" mapstructure:"max-connection-life-time"`
	MaxIdleTime           time.Duration `json:"max-idle-time" mapstructure:"max-idle-time"`

	// LogLevel maps to gorm logging: 1 silent, 2 error, 3 warn, 4 info.
	LogLevel int `json:"log-level" mapstructure:"log-level"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Driver:                DriverMySQL,
		Host:                  "127.0.0.1",
		Port:                  3306,
		Username:              "root",
		Database:              "storefront",
		Path:                  "storefront.db",
		MaxIdleConnections:    20,
		MaxOpenConnections:    100,
		MaxConnectionLifeTime: 3600 * time.Second,
		MaxIdleTime:           600 * time.Second,
		LogLevel:              2,
	}
}

// String returns a string representation with the password redacted.
// Safe for logging and debugging.
func (o *Options) String() string {
	password := redactedPassword
	if o.Password == "" {
		password = ""
	}
	if o.Driver == DriverSQLite {
		return fmt.Sprintf("DB{driver=%s, path=%s}", o.Driver, o.Path)
	}
	return fmt.Sprintf("DB{driver=%s, host=%s, port=%d, user=%s, password=%s, database=%s}",
		o.Driver, o.Host, o.Port, o.Username, password, o.Database)
}

// Complete fills in any fields not set that are required to have valid
// data. The password falls back to the DB_PASSWORD environment variable
// so it never has to ride the command line.
func (o *Options) Complete() error {
	if o.Password == "" {
		o.Password = os.Getenv("DB_PASSWORD")
	}
	return nil
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	switch o.Driver {
	case DriverMySQL, DriverPostgres:
		if o.Host == "" {
			return fmt.Errorf("db host is required")
		}
		if o.Port <= 0 || o.Port > 65535 {
			return fmt.Errorf("db port must be between 1 and 65535")
		}
		if o.Database == "" {
			return fmt.Errorf("db database is required")
		}
	case DriverSQLite:
		if o.Path == "" {
			return fmt.Errorf("db path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported db driver %q", o.Driver)
	}
	return nil
}

// AddFlags adds flags for database options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Driver, "db.driver", o.Driver, "Database driver (mysql|postgres|sqlite)")
	fs.StringVar(&o.Host, "db.host", o.Host, "Database host")
	fs.IntVar(&o.Port, "db.port", o.Port, "Database port")
	fs.StringVar(&o.Username, "db.username", o.Username, "Database username")
	fs.StringVar(&o.Password, "db.password", o.Password, "Database password (prefer the DB_PASSWORD environment variable)")
	fs.StringVar(&o.Database, "db.database", o.Database, "Database name")
	fs.StringVar(&o.Path, "db.path", o.Path, "Database file path (sqlite driver only)")
	fs.IntVar(&o.MaxIdleConnections, "db.max-idle-connections", o.MaxIdleConnections, "Maximum idle connections")
	fs.IntVar(&o.MaxOpenConnections, "db.max-open-connections", o.MaxOpenConnections, "Maximum open connections")
	fs.DurationVar(&o.MaxConnectionLifeTime, "db.max-connection-life-time", o.MaxConnectionLifeTime, "Maximum connection life time")
	fs.DurationVar(&o.MaxIdleTime, "db.max-idle-time", o.MaxIdleTime, "Maximum connection idle time")
	fs.IntVar(&o.LogLevel, "db.log-level", o.LogLevel, "Database log level (1 silent, 2 error, 3 warn, 4 info)")
}
