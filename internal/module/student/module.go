package student

import "github.com/gin-gonic/gin"

// Module wires the student resource into the router.
type Module struct {
	handler *Handler
}

// NewModule creates the student module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("student.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers student API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/students", m.handler.Create)
	api.GET("/students", m.handler.List)
	api.GET("/students/:id", m.handler.Get)
	api.PATCH("/students/:id", m.handler.Update)
	api.DELETE("/students/:id", m.handler.Delete)
}
