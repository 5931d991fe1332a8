package enrollment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
)

// Handler handles REST API requests for enrolled courses.
type Handler struct {
	svc domain.EnrolledCourseService
}

// NewHandler creates an enrollment Handler with the given service.
func NewHandler(svc domain.EnrolledCourseService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/enrolled-courses.
func (h *Handler) Create(c *gin.Context) {
	var req CreateEnrollmentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ec, err := h.svc.Create(c.Request.Context(), &domain.EnrolledCourse{
		StudentID:          req.StudentID,
		CourseID:           req.CourseID,
		AcademicSemesterID: req.AcademicSemesterID,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Enrolled course created successfully", ec)
}

// Get handles GET /api/v1/enrolled-courses/:id.
func (h *Handler) Get(c *gin.Context) {
	ec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Enrolled course fetched successfully", ec)
}

// List handles GET /api/v1/enrolled-courses.
func (h *Handler) List(c *gin.Context) {
	filters, params := pkg.ParseListQuery(c, filterableFields)

	result, err := h.svc.List(c.Request.Context(), filters, params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Enrolled courses fetched successfully", result)
}

// Update handles PATCH /api/v1/enrolled-courses/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateEnrollmentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ec, err := h.svc.Update(c.Request.Context(), c.Param("id"), domain.EnrolledCoursePatch{
		Status:     req.Status,
		Grade:      req.Grade,
		Point:      req.Point,
		TotalMarks: req.TotalMarks,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Enrolled course updated successfully", ec)
}

// Delete handles DELETE /api/v1/enrolled-courses/:id.
func (h *Handler) Delete(c *gin.Context) {
	ec, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Enrolled course deleted successfully", ec)
}
