package domain

import (
	"context"

	"github.com/campuscore/backend/internal/query"
)

// ExamType identifies which exam a mark belongs to.
type ExamType string

const (
	ExamMidterm ExamType = "MIDTERM"
	ExamFinal   ExamType = "FINAL"
)

// CourseMark records a student's marks for one exam of one enrolled course.
type CourseMark struct {
	BaseModel
	StudentID          string            `gorm:"size:36;not null;index" json:"studentId"`
	Student            *Student          `json:"student,omitempty"`
	EnrolledCourseID   string            `gorm:"size:36;not null;index" json:"enrolledCourseId"`
	EnrolledCourse     *EnrolledCourse   `json:"enrolledCourse,omitempty"`
	AcademicSemesterID string            `gorm:"size:36;not null" json:"academicSemesterId"`
	AcademicSemester   *AcademicSemester `json:"academicSemester,omitempty"`
	ExamType           ExamType          `gorm:"size:20;not null" json:"examType"`
	Marks              int               `gorm:"default:0" json:"marks"`
	Grade              string            `gorm:"size:5" json:"grade"`
}

// UpdateMarksInput identifies one exam mark and the new marks value.
type UpdateMarksInput struct {
	StudentID        string
	EnrolledCourseID string
	ExamType         ExamType
	Marks            int
}

// CourseMarkRepository defines the data access interface for course marks.
type CourseMarkRepository interface {
	Create(ctx context.Context, mark *CourseMark) error
	FindOne(ctx context.Context, studentID, enrolledCourseID string, exam ExamType) (*CourseMark, error)
	FindByEnrollment(ctx context.Context, studentID, enrolledCourseID string) ([]CourseMark, error)
	List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[CourseMark], error)
	Update(ctx context.Context, mark *CourseMark) error
	// FinalizeResult persists per-exam grades and the completed enrollment in
	// one transaction.
	FinalizeResult(ctx context.Context, enrollment *EnrolledCourse, marks []CourseMark) error
}

// CourseMarkService defines the business logic interface for course marks.
type CourseMarkService interface {
	List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[CourseMark], error)
	// UpdateMarks records marks for one exam, creating the mark row when it
	// does not exist yet.
	UpdateMarks(ctx context.Context, in UpdateMarksInput) (*CourseMark, error)
	// FinalizeResult totals midterm and final marks, assigns the grade, and
	// completes the enrollment.
	FinalizeResult(ctx context.Context, studentID, enrolledCourseID string) (*EnrolledCourse, error)
}
