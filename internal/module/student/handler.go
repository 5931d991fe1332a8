package student

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
)

// Handler handles REST API requests for students.
type Handler struct {
	svc domain.StudentService
}

// NewHandler creates a student Handler with the given service.
func NewHandler(svc domain.StudentService) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/students.
func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	student, err := h.svc.Create(c.Request.Context(), &domain.Student{
		StudentID:          req.StudentID,
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Email:              req.Email,
		ContactNo:          req.ContactNo,
		Gender:             req.Gender,
		BloodGroup:         req.BloodGroup,
		AcademicSemesterID: req.AcademicSemesterID,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "Student created successfully", student)
}

// Get handles GET /api/v1/students/:id.
func (h *Handler) Get(c *gin.Context) {
	student, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Student fetched successfully", student)
}

// List handles GET /api/v1/students.
func (h *Handler) List(c *gin.Context) {
	filters, params := pkg.ParseListQuery(c, filterableFields)

	result, err := h.svc.List(c.Request.Context(), filters, params)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, "Students fetched successfully", result)
}

// Update handles PATCH /api/v1/students/:id.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateStudentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	student, err := h.svc.Update(c.Request.Context(), c.Param("id"), domain.StudentPatch{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		ContactNo:  req.ContactNo,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Student updated successfully", student)
}

// Delete handles DELETE /api/v1/students/:id.
func (h *Handler) Delete(c *gin.Context) {
	student, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "Student deleted successfully", student)
}
