// Package app implements the storefront API server application.
package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/kart-io/logger"

	"github.com/kart-io/storefront/cmd/storefront/app/options"
	"github.com/kart-io/storefront/internal/storefront/router"
	"github.com/kart-io/storefront/internal/storefront/store"
	"github.com/kart-io/storefront/pkg/app"
	"github.com/kart-io/storefront/pkg/db"
	"github.com/kart-io/storefront/pkg/server"
)

const serviceName = "storefront"

// NewApp creates the storefront application.
func NewApp() *app.App {
	opts := options.NewServerOptions()

	return app.NewApp(
		app.WithName(serviceName),
		app.WithShortDescription("Storefront REST API server"),
		app.WithDescription("The storefront server exposes a REST API for "+
			"managing users, their stores, and the products sold in those stores."),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return run(opts)
		}),
	)
}

func run(opts *options.ServerOptions) error {
	if err := opts.Log.Init(serviceName); err != nil {
		return err
	}

	factory := newStoreFactory(opts.DB)
	defer func() {
		if err := factory.Close(); err != nil {
			logger.Errorw("Failed to close database", "error", err)
		}
	}()

	engine := server.NewEngine(opts.HTTP.Mode)
	router.Register(engine, factory)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(engine, opts.HTTP)
	logger.Infow("Starting storefront server", "addr", opts.HTTP.Addr)

	return srv.Run(ctx)
}

// newStoreFactory opens the database and runs migrations. A connection
// failure does not abort startup: the server still serves requests and
// reports storage errors per call until the database comes back.
func newStoreFactory(opts *db.Options) store.Factory {
	gdb, err := db.New(opts)
	if err != nil {
		logger.Errorw("Failed to connect to database, continuing without storage",
			"driver", opts.Driver, "error", err)
		return store.New(nil)
	}

	factory := store.New(gdb)
	if err := factory.AutoMigrate(); err != nil {
		logger.Errorw("Failed to run database migrations", "error", err)
	}

	logger.Infow("Database connected", "driver", opts.Driver)

	return factory
}
