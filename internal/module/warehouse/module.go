package warehouse

import "github.com/gin-gonic/gin"

// Module registers the warehouse routes.
type Module struct {
	handler *Handler
}

// NewModule creates a warehouse Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("warehouse.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the warehouse API routes on the given group.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/warehouses", m.handler.List)
	api.POST("/warehouses", m.handler.Create)
	api.GET("/warehouses/:id", m.handler.Get)
	api.GET("/warehouses/code/:code", m.handler.GetByCode)
	api.PUT("/warehouses/:id", m.handler.Update)
	api.DELETE("/warehouses/:id", m.handler.Delete)
}
