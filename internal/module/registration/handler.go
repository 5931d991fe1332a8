package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
)

// Handler handles REST API requests for semester registrations.
type Handler struct {
	svc domain.SemesterRegistrationService
}

// NewHandler creates a registration Handler with the given service.
func NewHandler(svc domain.SemesterRegistrationService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/semester-registrations.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRegistrationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	reg, err := h.svc.Create(c.Request.Context(), &domain.SemesterRegistration{
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		MinCredit:          req.MinCredit,
		MaxCredit:          req.MaxCredit,
		AcademicSemesterID: req.AcademicSemesterID,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Semester registration created successfully", reg)
}

// Get handles GET /api/v1/semester-registrations/:id.
func (h *Handler) Get(c *gin.Context) {
	reg, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Semester registration fetched successfully", reg)
}

// List handles GET /api/v1/semester-registrations.
func (h *Handler) List(c *gin.Context) {
	filters, params := pkg.ParseListQuery(c, filterableFields)

	result, err := h.svc.List(c.Request.Context(), filters, params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Semester registrations fetched successfully", result)
}

// Update handles PATCH /api/v1/semester-registrations/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRegistrationRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	reg, err := h.svc.Update(c.Request.Context(), c.Param("id"), domain.SemesterRegistrationPatch{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    req.Status,
		MinCredit: req.MinCredit,
		MaxCredit: req.MaxCredit,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Semester registration updated successfully", reg)
}

// Delete handles DELETE /api/v1/semester-registrations/:id.
func (h *Handler) Delete(c *gin.Context) {
	reg, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Semester registration deleted successfully", reg)
}
