package registration

import "github.com/gin-gonic/gin"

// Module wires the semester registration resource into the router.
type Module struct {
	handler *Handler
}

// NewModule creates the registration module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("registration.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers semester registration API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/semester-registrations", m.handler.Create)
	api.GET("/semester-registrations", m.handler.List)
	api.GET("/semester-registrations/:id", m.handler.Get)
	api.PATCH("/semester-registrations/:id", m.handler.Update)
	api.DELETE("/semester-registrations/:id", m.handler.Delete)
}
