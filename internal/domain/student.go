package domain

import (
	"context"

	"github.com/campuscore/backend/internal/query"
)

// Student represents an enrolled student. StudentID is the human-facing
// registration number, distinct from the UUID primary key.
type Student struct {
	BaseModel
	StudentID          string            `gorm:"size:50;uniqueIndex;not null" json:"studentId"`
	FirstName          string            `gorm:"size:100;not null" json:"firstName"`
	MiddleName         string            `gorm:"size:100" json:"middleName"`
	LastName           string            `gorm:"size:100;not null" json:"lastName"`
	Email              string            `gorm:"size:255;uniqueIndex;not null" json:"email"`
	ContactNo          string            `gorm:"size:50" json:"contactNo"`
	Gender             string            `gorm:"size:20" json:"gender"`
	BloodGroup         string            `gorm:"size:10" json:"bloodGroup"`
	AcademicSemesterID string            `gorm:"size:36;not null" json:"academicSemesterId"`
	AcademicSemester   *AcademicSemester `json:"academicSemester,omitempty"`
}

// StudentPatch holds optional field updates for a student.
type StudentPatch struct {
	FirstName  *string
	MiddleName *string
	LastName   *string
	Email      *string
	ContactNo  *string
	Gender     *string
	BloodGroup *string
}

// StudentRepository defines the data access interface for students.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByID(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[Student], error)
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id string) (*Student, error)
}

// StudentService defines the business logic interface for students.
type StudentService interface {
	Create(ctx context.Context, student *Student) (*Student, error)
	Get(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[Student], error)
	Update(ctx context.Context, id string, patch StudentPatch) (*Student, error)
	Delete(ctx context.Context, id string) (*Student, error)
}
