package registration

import (
	"context"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/query"
)

// registrationService implements domain.SemesterRegistrationService.
type registrationService struct {
	repo     domain.SemesterRegistrationRepository
	defaults query.Defaults
}

// NewService creates a SemesterRegistrationService with the given repository.
func NewService(repo domain.SemesterRegistrationRepository, defaults query.Defaults) domain.SemesterRegistrationService {
	return &registrationService{repo: repo, defaults: defaults}
}

// Create validates the registration window and persists it.
func (s *registrationService) Create(ctx context.Context, reg *domain.SemesterRegistration) (*domain.SemesterRegistration, error) {
	if !reg.EndDate.After(reg.StartDate) {
		return nil, domain.NewAppError(domain.CodeValidation, "endDate must be after startDate", nil)
	}
	if reg.MinCredit < 0 || reg.MaxCredit < 0 || reg.MinCredit > reg.MaxCredit {
		return nil, domain.NewAppError(domain.CodeValidation, "invalid credit range", nil)
	}
	if reg.Status == "" {
		reg.Status = domain.RegistrationUpcoming
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) Get(ctx context.Context, id string) (*domain.SemesterRegistration, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *registrationService) List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[domain.SemesterRegistration], error) {
	cond := query.Compile(filters, searchableFields, relationalFields, nil)
	opts := query.Resolve(params, s.defaults)
	return s.repo.List(ctx, cond, opts)
}

// Update applies the patch. Status may only move forward one step:
// UPCOMING → ONGOING → ENDED.
func (s *registrationService) Update(ctx context.Context, id string, patch domain.SemesterRegistrationPatch) (*domain.SemesterRegistration, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && *patch.Status != reg.Status {
		if !validTransition(reg.Status, *patch.Status) {
			return nil, domain.NewAppError(domain.CodeValidation,
				"registration status can only move from UPCOMING to ONGOING to ENDED", nil)
		}
		reg.Status = *patch.Status
	}
	if patch.StartDate != nil {
		reg.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		reg.EndDate = *patch.EndDate
	}
	if patch.MinCredit != nil {
		reg.MinCredit = *patch.MinCredit
	}
	if patch.MaxCredit != nil {
		reg.MaxCredit = *patch.MaxCredit
	}

	if !reg.EndDate.After(reg.StartDate) {
		return nil, domain.NewAppError(domain.CodeValidation, "endDate must be after startDate", nil)
	}

	if err := s.repo.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Delete removes a registration. Only UPCOMING registrations may be deleted;
// a window students have already used must stay on record.
func (s *registrationService) Delete(ctx context.Context, id string) (*domain.SemesterRegistration, error) {
	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg.Status != domain.RegistrationUpcoming {
		return nil, domain.NewAppError(domain.CodeValidation,
			"only upcoming registrations can be deleted", nil)
	}
	return s.repo.Delete(ctx, id)
}

// validTransition reports whether a status change moves exactly one step
// forward.
func validTransition(from, to domain.RegistrationStatus) bool {
	switch from {
	case domain.RegistrationUpcoming:
		return to == domain.RegistrationOngoing
	case domain.RegistrationOngoing:
		return to == domain.RegistrationEnded
	default:
		return false
	}
}
