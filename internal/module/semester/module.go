package semester

import "github.com/gin-gonic/gin"

// Module wires the academic semester resource into the router.
type Module struct {
	handler *Handler
}

// NewModule creates the semester module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("semester.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers semester API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/academic-semesters", m.handler.Create)
	api.GET("/academic-semesters", m.handler.List)
	api.GET("/academic-semesters/:id", m.handler.Get)
	api.PATCH("/academic-semesters/:id", m.handler.Update)
	api.DELETE("/academic-semesters/:id", m.handler.Delete)
}
