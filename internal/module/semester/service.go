package semester

import (
	"context"
	"strings"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/event"
	"github.com/campuscore/backend/internal/query"
)

// Event topics for semester mutations.
const (
	TopicCreated = "academic-semester.created"
	TopicDeleted = "academic-semester.deleted"
)

// semesterService implements domain.AcademicSemesterService.
type semesterService struct {
	repo     domain.AcademicSemesterRepository
	events   event.Publisher
	defaults query.Defaults
}

// NewService creates an AcademicSemesterService with the given repository and
// event publisher.
func NewService(repo domain.AcademicSemesterRepository, events event.Publisher, defaults query.Defaults) domain.AcademicSemesterService {
	return &semesterService{repo: repo, events: events, defaults: defaults}
}

// Create validates the title↔code pairing, persists the semester, and
// publishes the created event once the store confirms the insert.
func (s *semesterService) Create(ctx context.Context, semester *domain.AcademicSemester) (*domain.AcademicSemester, error) {
	if err := validateTitleCode(semester.Title, semester.Code); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, semester); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, TopicCreated, semester)
	return semester, nil
}

func (s *semesterService) Get(ctx context.Context, id string) (*domain.AcademicSemester, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *semesterService) List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[domain.AcademicSemester], error) {
	cond := query.Compile(filters, searchableFields, nil, typedFields)
	opts := query.Resolve(params, s.defaults)
	return s.repo.List(ctx, cond, opts)
}

// Update loads the semester, applies the patch, and re-validates the
// title↔code pairing with the resulting values.
func (s *semesterService) Update(ctx context.Context, id string, patch domain.AcademicSemesterPatch) (*domain.AcademicSemester, error) {
	semester, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		semester.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Code != nil {
		semester.Code = strings.TrimSpace(*patch.Code)
	}
	if patch.Year != nil {
		semester.Year = *patch.Year
	}
	if patch.StartMonth != nil {
		semester.StartMonth = *patch.StartMonth
	}
	if patch.EndMonth != nil {
		semester.EndMonth = *patch.EndMonth
	}
	if patch.IsCurrent != nil {
		semester.IsCurrent = *patch.IsCurrent
	}

	if err := validateTitleCode(semester.Title, semester.Code); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, semester); err != nil {
		return nil, err
	}
	return semester, nil
}

// Delete removes the semester and publishes the deleted event with the
// removed row as payload.
func (s *semesterService) Delete(ctx context.Context, id string) (*domain.AcademicSemester, error) {
	semester, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, TopicDeleted, semester)
	return semester, nil
}

// validateTitleCode checks that the semester code matches its title.
func validateTitleCode(title, code string) error {
	if domain.SemesterTitleCodes[title] != code {
		return domain.NewAppError(domain.CodeValidation, "invalid semester code", nil)
	}
	return nil
}
