package marks

import "github.com/campuscore/backend/internal/domain"

// UpdateMarksRequest records the marks a student scored in one exam of one
// enrolled course.
type UpdateMarksRequest struct {
	StudentID        string          `json:"studentId" binding:"required,uuid"`
	EnrolledCourseID string          `json:"enrolledCourseId" binding:"required,uuid"`
	ExamType         domain.ExamType `json:"examType" binding:"required,oneof=MIDTERM FINAL"`
	Marks            int             `json:"marks" binding:"min=0,max=100"`
}

// FinalizeResultRequest identifies the enrollment whose result should be
// finalized.
type FinalizeResultRequest struct {
	StudentID        string `json:"studentId" binding:"required,uuid"`
	EnrolledCourseID string `json:"enrolledCourseId" binding:"required,uuid"`
}
