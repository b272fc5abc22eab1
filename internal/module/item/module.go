package item

import "github.com/gin-gonic/gin"

// Module registers the item routes.
type Module struct {
	handler *Handler
}

// NewModule creates an item Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("item.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers the item API routes on the given group.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/items", m.handler.List)
	api.POST("/items", m.handler.Create)
	api.GET("/items/:id", m.handler.Get)
	api.GET("/items/code/:code", m.handler.GetByCode)
	api.PUT("/items/:id", m.handler.Update)
	api.DELETE("/items/:id", m.handler.Delete)
}
