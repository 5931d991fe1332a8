package student

import (
	"context"
	"net/mail"
	"strings"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/event"
	"github.com/campuscore/backend/internal/query"
)

// Event topics for student mutations.
const (
	TopicCreated = "student.created"
	TopicDeleted = "student.deleted"
)

// studentService implements domain.StudentService.
type studentService struct {
	repo     domain.StudentRepository
	events   event.Publisher
	defaults query.Defaults
}

// NewService creates a StudentService with the given repository and event
// publisher.
func NewService(repo domain.StudentRepository, events event.Publisher, defaults query.Defaults) domain.StudentService {
	return &studentService{repo: repo, events: events, defaults: defaults}
}

// Create validates the email, persists the student, and publishes the
// created event once the store confirms the insert.
func (s *studentService) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	student.Email = strings.TrimSpace(student.Email)
	if err := validateEmail(student.Email); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, TopicCreated, student)
	return student, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *studentService) List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[domain.Student], error) {
	cond := query.Compile(filters, searchableFields, relationalFields, nil)
	opts := query.Resolve(params, s.defaults)
	return s.repo.List(ctx, cond, opts)
}

func (s *studentService) Update(ctx context.Context, id string, patch domain.StudentPatch) (*domain.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		student.FirstName = *patch.FirstName
	}
	if patch.MiddleName != nil {
		student.MiddleName = *patch.MiddleName
	}
	if patch.LastName != nil {
		student.LastName = *patch.LastName
	}
	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		student.Email = email
	}
	if patch.ContactNo != nil {
		student.ContactNo = *patch.ContactNo
	}
	if patch.Gender != nil {
		student.Gender = *patch.Gender
	}
	if patch.BloodGroup != nil {
		student.BloodGroup = *patch.BloodGroup
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes the student and publishes the deleted event with the
// removed row as payload.
func (s *studentService) Delete(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, TopicDeleted, student)
	return student, nil
}

// validateEmail checks that the email is present and parseable.
func validateEmail(email string) error {
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return nil
}
