package domain

import (
	"context"

	"github.com/campuscore/backend/internal/query"
)

// EnrollmentStatus is the lifecycle state of an enrolled course.
// Valid transitions: PENDING → ONGOING → COMPLETED, with WITHDRAWN reachable
// from any non-terminal state.
type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "PENDING"
	EnrollmentOngoing   EnrollmentStatus = "ONGOING"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentWithdrawn EnrollmentStatus = "WITHDRAWN"
)

// Active reports whether the status blocks a new enrollment for the same
// student. ONGOING and COMPLETED enrollments are exclusive.
func (s EnrollmentStatus) Active() bool {
	return s == EnrollmentOngoing || s == EnrollmentCompleted
}

// EnrolledCourse records one student taking one course in one semester.
type EnrolledCourse struct {
	BaseModel
	StudentID          string            `gorm:"size:36;not null;index" json:"studentId"`
	Student            *Student          `json:"student,omitempty"`
	CourseID           string            `gorm:"size:36;not null" json:"courseId"`
	Course             *Course           `json:"course,omitempty"`
	AcademicSemesterID string            `gorm:"size:36;not null" json:"academicSemesterId"`
	AcademicSemester   *AcademicSemester `json:"academicSemester,omitempty"`
	Status             EnrollmentStatus  `gorm:"size:20;default:PENDING" json:"status"`
	Grade              string            `gorm:"size:5" json:"grade"`
	Point              float64           `gorm:"default:0" json:"point"`
	TotalMarks         int               `gorm:"default:0" json:"totalMarks"`
}

// EnrolledCoursePatch holds optional field updates for an enrollment.
type EnrolledCoursePatch struct {
	Status     *EnrollmentStatus
	Grade      *string
	Point      *float64
	TotalMarks *int
}

// EnrolledCourseRepository defines the data access interface for enrollments.
type EnrolledCourseRepository interface {
	Create(ctx context.Context, ec *EnrolledCourse) error
	GetByID(ctx context.Context, id string) (*EnrolledCourse, error)
	// FindActiveByStudent returns an ONGOING or COMPLETED enrollment for the
	// student, or ErrNotFound when there is none.
	FindActiveByStudent(ctx context.Context, studentID string) (*EnrolledCourse, error)
	List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[EnrolledCourse], error)
	Update(ctx context.Context, ec *EnrolledCourse) error
	Delete(ctx context.Context, id string) (*EnrolledCourse, error)
}

// EnrolledCourseService defines the business logic interface for enrollments.
type EnrolledCourseService interface {
	Create(ctx context.Context, ec *EnrolledCourse) (*EnrolledCourse, error)
	Get(ctx context.Context, id string) (*EnrolledCourse, error)
	List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[EnrolledCourse], error)
	Update(ctx context.Context, id string, patch EnrolledCoursePatch) (*EnrolledCourse, error)
	Delete(ctx context.Context, id string) (*EnrolledCourse, error)
}
