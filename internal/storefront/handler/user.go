package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/storefront/internal/model"
	"github.com/kart-io/storefront/internal/pkg/httputils"
	"github.com/kart-io/storefront/internal/storefront/biz"
)

// UserHandler handles user HTTP requests.
type UserHandler struct {
	svc *biz.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *biz.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserRequest is the request body for creating or replacing a user.
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

func (r *UserRequest) toModel() *model.User {
	user := &model.User{
		Name:     r.Name,
		Password: r.Password,
	}
	if r.Email != "" {
		user.Email = &r.Email
	}
	return user
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := bindJSON(c, &req); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user := req.toModel()
	if err := h.svc.Create(c.Request.Context(), user); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	httputils.WriteCreated(c, user)
}

// List handles GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	httputils.WriteResponse(c, err, users)
}

// Get handles GET /users/:id. The response inlines the user's stores.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	httputils.WriteResponse(c, err, user)
}

// Update handles PUT /users/:id with full-field replacement.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	var req UserRequest
	if err := bindJSON(c, &req); err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	httputils.WriteResponse(c, err, user)
}

// Delete handles DELETE /users/:id and responds with the deleted record.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputils.WriteResponse(c, err, nil)
		return
	}

	user, err := h.svc.Delete(c.Request.Context(), id)
	httputils.WriteResponse(c, err, user)
}
