package enrollment

import "github.com/campuscore/backend/internal/domain"

// CreateEnrollmentRequest represents the input for enrolling a student in a
// course.
type CreateEnrollmentRequest struct {
	StudentID          string `json:"studentId" binding:"required,uuid"`
	CourseID           string `json:"courseId" binding:"required,uuid"`
	AcademicSemesterID string `json:"academicSemesterId" binding:"required,uuid"`
}

// UpdateEnrollmentRequest represents a partial update. Absent fields are
// left unchanged.
type UpdateEnrollmentRequest struct {
	Status     *domain.EnrollmentStatus `json:"status" binding:"omitempty,oneof=PENDING ONGOING COMPLETED WITHDRAWN"`
	Grade      *string                  `json:"grade" binding:"omitempty,max=5"`
	Point      *float64                 `json:"point" binding:"omitempty,min=0,max=4"`
	TotalMarks *int                     `json:"totalMarks" binding:"omitempty,min=0,max=100"`
}
