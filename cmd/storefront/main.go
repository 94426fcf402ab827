// Package main is the entry point for the storefront API server.
package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/kart-io/storefront/cmd/storefront/app"
)

func main() {
	app.NewApp().Run()
}
