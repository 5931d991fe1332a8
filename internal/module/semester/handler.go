package semester

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
)

// Handler handles REST API requests for academic semesters.
type Handler struct {
	svc domain.AcademicSemesterService
}

// NewHandler creates a semester Handler with the given service.
func NewHandler(svc domain.AcademicSemesterService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/academic-semesters.
func (h *Handler) Create(c *gin.Context) {
	var req CreateSemesterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	semester, err := h.svc.Create(c.Request.Context(), &domain.AcademicSemester{
		Title:      req.Title,
		Code:       req.Code,
		Year:       req.Year,
		StartMonth: req.StartMonth,
		EndMonth:   req.EndMonth,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Academic semester created successfully", semester)
}

// Get handles GET /api/v1/academic-semesters/:id.
func (h *Handler) Get(c *gin.Context) {
	semester, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Academic semester fetched successfully", semester)
}

// List handles GET /api/v1/academic-semesters.
func (h *Handler) List(c *gin.Context) {
	filters, params := pkg.ParseListQuery(c, filterableFields)

	result, err := h.svc.List(c.Request.Context(), filters, params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Academic semesters fetched successfully", result)
}

// Update handles PATCH /api/v1/academic-semesters/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateSemesterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	semester, err := h.svc.Update(c.Request.Context(), c.Param("id"), domain.AcademicSemesterPatch{
		Title:      req.Title,
		Code:       req.Code,
		Year:       req.Year,
		StartMonth: req.StartMonth,
		EndMonth:   req.EndMonth,
		IsCurrent:  req.IsCurrent,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Academic semester updated successfully", semester)
}

// Delete handles DELETE /api/v1/academic-semesters/:id.
func (h *Handler) Delete(c *gin.Context) {
	semester, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Academic semester deleted successfully", semester)
}
