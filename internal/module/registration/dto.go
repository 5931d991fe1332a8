package registration

import (
	"time"

	"github.com/campuscore/backend/internal/domain"
)

// CreateRegistrationRequest represents the input for opening a semester
// registration window.
type CreateRegistrationRequest struct {
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
	MinCredit          int       `json:"minCredit" binding:"min=0"`
	MaxCredit          int       `json:"maxCredit" binding:"min=0"`
	AcademicSemesterID string    `json:"academicSemesterId" binding:"required,uuid"`
}

// UpdateRegistrationRequest represents a partial update. Absent fields are
// left unchanged.
type UpdateRegistrationRequest struct {
	StartDate *time.Time                 `json:"startDate" binding:"omitempty"`
	EndDate   *time.Time                 `json:"endDate" binding:"omitempty"`
	Status    *domain.RegistrationStatus `json:"status" binding:"omitempty,oneof=UPCOMING ONGOING ENDED"`
	MinCredit *int                       `json:"minCredit" binding:"omitempty,min=0"`
	MaxCredit *int                       `json:"maxCredit" binding:"omitempty,min=0"`
}
