package domain

import (
	"context"

	"github.com/campuscore/backend/internal/query"
)

// AcademicSemester represents one academic term (e.g. Fall 2025).
// At most one semester is flagged current at a time; the flag is used as the
// implicit default filter for enrollment listings.
type AcademicSemester struct {
	BaseModel
	Title      string `gorm:"size:50;not null" json:"title"`
	Code       string `gorm:"size:10;not null" json:"code"`
	Year       int    `gorm:"not null" json:"year"`
	StartMonth string `gorm:"size:20" json:"startMonth"`
	EndMonth   string `gorm:"size:20" json:"endMonth"`
	IsCurrent  bool   `gorm:"default:false" json:"isCurrent"`
}

// SemesterTitleCodes maps each valid semester title to its code. Creating or
// retitling a semester with a mismatched code is a validation error.
var SemesterTitleCodes = map[string]string{
	"Autumn": "01",
	"Summer": "02",
	"Fall":   "03",
}

// AcademicSemesterPatch holds optional field updates for a semester.
// Nil fields are left unchanged.
type AcademicSemesterPatch struct {
	Title      *string
	Code       *string
	Year       *int
	StartMonth *string
	EndMonth   *string
	IsCurrent  *bool
}

// AcademicSemesterRepository defines the data access interface for semesters.
type AcademicSemesterRepository interface {
	Create(ctx context.Context, semester *AcademicSemester) error
	GetByID(ctx context.Context, id string) (*AcademicSemester, error)
	// FindCurrent returns the semester flagged current, or ErrNotFound when
	// none is flagged. If more than one row is ever flagged, the first by id
	// is returned so callers behave deterministically.
	FindCurrent(ctx context.Context) (*AcademicSemester, error)
	List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[AcademicSemester], error)
	Update(ctx context.Context, semester *AcademicSemester) error
	// Delete removes a semester and returns the deleted row, so callers can
	// publish its final state.
	Delete(ctx context.Context, id string) (*AcademicSemester, error)
}

// AcademicSemesterService defines the business logic interface for semesters.
type AcademicSemesterService interface {
	Create(ctx context.Context, semester *AcademicSemester) (*AcademicSemester, error)
	Get(ctx context.Context, id string) (*AcademicSemester, error)
	List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[AcademicSemester], error)
	Update(ctx context.Context, id string, patch AcademicSemesterPatch) (*AcademicSemester, error)
	Delete(ctx context.Context, id string) (*AcademicSemester, error)
}
