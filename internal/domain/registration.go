package domain

import (
	"context"
	"time"

	"github.com/campuscore/backend/internal/query"
)

// RegistrationStatus is the lifecycle state of a semester registration window.
type RegistrationStatus string

const (
	RegistrationUpcoming RegistrationStatus = "UPCOMING"
	RegistrationOngoing  RegistrationStatus = "ONGOING"
	RegistrationEnded    RegistrationStatus = "ENDED"
)

// SemesterRegistration is the window during which students may register for
// courses in a given academic semester.
type SemesterRegistration struct {
	BaseModel
	StartDate          time.Time          `gorm:"not null" json:"startDate"`
	EndDate            time.Time          `gorm:"not null" json:"endDate"`
	Status             RegistrationStatus `gorm:"size:20;default:UPCOMING" json:"status"`
	MinCredit          int                `gorm:"default:0" json:"minCredit"`
	MaxCredit          int                `gorm:"default:0" json:"maxCredit"`
	AcademicSemesterID string             `gorm:"size:36;not null" json:"academicSemesterId"`
	AcademicSemester   *AcademicSemester  `json:"academicSemester,omitempty"`
}

// SemesterRegistrationPatch holds optional field updates for a registration.
type SemesterRegistrationPatch struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *RegistrationStatus
	MinCredit *int
	MaxCredit *int
}

// SemesterRegistrationRepository defines the data access interface for
// semester registrations.
type SemesterRegistrationRepository interface {
	Create(ctx context.Context, reg *SemesterRegistration) error
	GetByID(ctx context.Context, id string) (*SemesterRegistration, error)
	List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[SemesterRegistration], error)
	Update(ctx context.Context, reg *SemesterRegistration) error
	Delete(ctx context.Context, id string) (*SemesterRegistration, error)
}

// SemesterRegistrationService defines the business logic interface for
// semester registrations.
type SemesterRegistrationService interface {
	Create(ctx context.Context, reg *SemesterRegistration) (*SemesterRegistration, error)
	Get(ctx context.Context, id string) (*SemesterRegistration, error)
	List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[SemesterRegistration], error)
	Update(ctx context.Context, id string, patch SemesterRegistrationPatch) (*SemesterRegistration, error)
	Delete(ctx context.Context, id string) (*SemesterRegistration, error)
}
