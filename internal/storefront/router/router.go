// Package router wires the storefront routes onto a gin engine.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/storefront/internal/storefront/biz"
	"github.com/kart-io/storefront/internal/storefront/handler"
	"github.com/kart-io/storefront/internal/storefront/store"
)

// Register registers the storefront routes and services.
//
// The route table is the single source of truth for the API surface;
// paths use the plural form throughout.
func Register(engine *gin.Engine, factory store.Factory) {
	userHandler := handler.NewUserHandler(biz.NewUserService(factory))
	storeHandler := handler.NewStoreHandler(biz.NewStoreService(factory))
	productHandler := handler.NewProductHandler(biz.NewProductService(factory))

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is up and running!")
	})

	users := engine.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	stores := engine.Group("/stores")
	{
		stores.POST("", storeHandler.Create)
		stores.GET("", storeHandler.List)
		stores.GET("/:id", storeHandler.Get)
		stores.PUT("/:id", storeHandler.Update)
		stores.DELETE("/:id", storeHandler.Delete)
	}

	products := engine.Group("/products")
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	logger.Info("HTTP routes registered")
}
