package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/internal/pkg/httputils"
	"github.com/kart-io/storefront/internal/storefront/biz"
)

// ProductHandler handles product HTTP requests.
type ProductHandler struct {
	svc *biz.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *biz.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ProductRequest is the request body for creating or replacing a product.
type ProductRequest struct {
	Name    string  `json:"name" binding:"required"`
	Price   float64 `json:"price" binding:"required"`
	StoreID uint64  `json:"storeId" binding:"required"`
}

func (r *ProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:    r.Name,
		Price:   r.Price,
		StoreID: r.StoreID,
	}
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := bindJSON(c, &req); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	product := req.toModel()
	if err := h.svc.Create(c.Request.Context(), product); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteCreated(c, product)
}

// List handles GET /products. Each product inlines its store and the
// store's owning user.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	httputils.WriteResponse(c, err, products)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	product, err := h.svc.Get(c.Request.Context(), id)
	httputils.WriteResponse(c, err, product)
}

// Update handles PUT /products/:id with full-field replacement.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	var req ProductRequest
	if err := bindJSON(c, &req); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	httputils.WriteResponse(c, err, product)
}

// Delete handles DELETE /products/:id and responds with the deleted record.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	product, err := h.svc.Delete(c.Request.Context(), id)
	httputils.WriteResponse(c, err, product)
}
