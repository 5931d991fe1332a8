package marks

import "github.com/gin-gonic/gin"

// Module wires the course mark resource into the router.
type Module struct {
	handler *Handler
}

// NewModule creates the marks module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("marks.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers course mark API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/course-marks", m.handler.List)
	api.PATCH("/course-marks/update-marks", m.handler.UpdateMarks)
	api.POST("/course-marks/finalize-result", m.handler.FinalizeResult)
}
