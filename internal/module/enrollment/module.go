package enrollment

import "github.com/gin-gonic/gin"

// Module wires the enrolled course resource into the router.
type Module struct {
	handler *Handler
}

// NewModule creates the enrollment module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("enrollment.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers enrolled course API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/enrolled-courses", m.handler.Create)
	api.GET("/enrolled-courses", m.handler.List)
	api.GET("/enrolled-courses/:id", m.handler.Get)
	api.PATCH("/enrolled-courses/:id", m.handler.Update)
	api.DELETE("/enrolled-courses/:id", m.handler.Delete)
}
