package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/internal/pkg/httputils"
	"github.com/kart-io/storefront/internal/storefront/biz"
)

// StoreHandler handles store HTTP requests.
type StoreHandler struct {
	svc *biz.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(svc *biz.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// StoreRequest is the request body for creating or replacing a store.
type StoreRequest struct {
	Name   string `json:"name" binding:"required"`
	UserID uint64 `json:"userId" binding:"required"`
}

func (r *StoreRequest) toModel() *model.Store {
	return &model.Store{
		Name:   r.Name,
		UserID: r.UserID,
	}
}

// Create handles POST /stores.
func (h *StoreHandler) Create(c *gin.Context) {
	var req StoreRequest
	if err := bindJSON(c, &req); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	store := req.toModel()
	if err := h.svc.Create(c.Request.Context(), store); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteCreated(c, store)
}

// List handles GET /stores.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.svc.List(c.Request.Context())
	httputils.WriteResponse(c, err, stores)
}

// Get handles GET /stores/:id. The response inlines the owning user
// and the store's products.
func (h *StoreHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	store, err := h.svc.Get(c.Request.Context(), id)
	httputils.WriteResponse(c, err, store)
}

// Update handles PUT /stores/:id with full-field replacement.
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	var req StoreRequest
	if err := bindJSON(c, &req); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	store, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	httputils.WriteResponse(c, err, store)
}

// Delete handles DELETE /stores/:id and responds with the deleted record.
func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	store, err := h.svc.Delete(c.Request.Context(), id)
	httputils.WriteResponse(c, err, store)
}
