package marks

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
)

// Handler handles REST API requests for course marks.
type Handler struct {
	svc domain.CourseMarkService
}

// NewHandler creates a marks Handler with the given service.
func NewHandler(svc domain.CourseMarkService) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/course-marks.
func (h *Handler) List(c *gin.Context) {
	filters, params := pkg.ParseListQuery(c, filterableFields)

	result, err := h.svc.List(c.Request.Context(), filters, params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Course marks fetched successfully", result)
}

// UpdateMarks handles PATCH /api/v1/course-marks/update-marks.
func (h *Handler) UpdateMarks(c *gin.Context) {
	var req UpdateMarksRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	mark, err := h.svc.UpdateMarks(c.Request.Context(), domain.UpdateMarksInput{
		StudentID:        req.StudentID,
		EnrolledCourseID: req.EnrolledCourseID,
		ExamType:         req.ExamType,
		Marks:            req.Marks,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Marks updated successfully", mark)
}

// FinalizeResult handles POST /api/v1/course-marks/finalize-result.
func (h *Handler) FinalizeResult(c *gin.Context) {
	var req FinalizeResultRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	enrollment, err := h.svc.FinalizeResult(c.Request.Context(), req.StudentID, req.EnrolledCourseID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Final result evaluated successfully", enrollment)
}
