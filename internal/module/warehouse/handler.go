package warehouse

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/warecat/internal/domain"
	"github.com/simp-lee/warecat/internal/pkg"
)

// Handler exposes the warehouse service over HTTP.
type Handler struct {
	svc Service
}

// NewHandler creates a warehouse Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/warehouses.
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), pkg.ParseListQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// Get handles GET /api/v1/warehouses/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	wh, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, wh)
}

// GetByCode handles GET /api/v1/warehouses/code/:code.
func (h *Handler) GetByCode(c *gin.Context) {
	wh, err := h.svc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, wh)
}

// Create handles POST /api/v1/warehouses.
func (h *Handler) Create(c *gin.Context) {
	var req CreateWarehouseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	wh, err := h.svc.Create(c.Request.Context(), req, pkg.ActorID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.SuccessWithMessage(c, http.StatusCreated, wh, "warehouse created")
}

// Update handles PUT /api/v1/warehouses/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateWarehouseRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	wh, err := h.svc.Update(c.Request.Context(), id, req, pkg.ActorID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.SuccessWithMessage(c, http.StatusOK, wh, "warehouse updated")
}

// Delete handles DELETE /api/v1/warehouses/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, pkg.ActorID(c)); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.SuccessWithMessage(c, http.StatusOK, nil, "warehouse deleted")
}

// parseID extracts the numeric path id, mapping malformed values to a
// validation outcome.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.Validation("id must be a positive integer")
	}
	return uint(id), nil
}
