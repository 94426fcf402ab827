// Package options contains flags and options for initializing the
// storefront server.
package options

import (
	"fmt"
	"os"

	cliflag "github.com/kart-io/storefront/pkg/app/cliflag"
	"github.com/kart-io/storefront/pkg/db"
	"github.com/kart-io/storefront/pkg/log"
	"github.com/kart-io/storefront/pkg/server"
)

// ServerOptions contains the configuration options for the server.
type ServerOptions struct {
	// HTTP contains HTTP server configuration.
	HTTP *server.Options `json:"http" mapstructure:"http"`

	// Log contains logger configuration.
	Log *log.Options `json:"log" mapstructure:"log"`

	// DB contains database configuration.
	DB *db.Options `json:"db" mapstructure:"db"`
}

// NewServerOptions creates a ServerOptions instance with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		HTTP: server.NewOptions(),
		Log:  log.NewOptions(),
		DB:   db.NewOptions(),
	}
}

// Flags returns the flags grouped by section.
func (o *ServerOptions) Flags() (fss cliflag.NamedFlagSets) {
	o.HTTP.AddFlags(fss.FlagSet("http"))
	o.Log.AddFlags(fss.FlagSet("log"))
	o.DB.AddFlags(fss.FlagSet("db"))
	return fss
}

// Complete completes all the required options. The PORT environment
// variable, when set, selects the listen port; otherwise the default
// address (:3000) applies.
func (o *ServerOptions) Complete() error {
	if port := os.Getenv("PORT"); port != "" {
		o.HTTP.Addr = ":" + port
	}
	if err := o.HTTP.Complete(); err != nil {
		return err
	}
	if err := o.Log.Complete(); err != nil {
		return err
	}
	return o.DB.Complete()
}

// Validate checks whether the options in ServerOptions are valid.
func (o *ServerOptions) Validate() error {
	if err := o.HTTP.Validate(); err != nil {
		return fmt.Errorf("http options: %w", err)
	}
	if err := o.Log.Validate(); err != nil {
		return fmt.Errorf("log options: %w", err)
	}
	if err := o.DB.Validate(); err != nil {
		return fmt.Errorf("db options: %w", err)
	}
	return nil
}
