package enrollment

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/query"
)

// enrollmentService implements domain.EnrolledCourseService.
type enrollmentService struct {
	repo      domain.EnrolledCourseRepository
	semesters domain.AcademicSemesterRepository
	defaults  query.Defaults
}

// NewService creates an EnrolledCourseService. The semester repository is
// used to resolve the current semester for default list filtering.
func NewService(repo domain.EnrolledCourseRepository, semesters domain.AcademicSemesterRepository, defaults query.Defaults) domain.EnrolledCourseService {
	return &enrollmentService{repo: repo, semesters: semesters, defaults: defaults}
}

// Create enrolls a student in a course. A student with an ONGOING or
// COMPLETED enrollment cannot be enrolled again; the check-then-insert is not
// atomic, so a concurrent pair of creates can still slip through — the
// guard is a fast path, not a uniqueness constraint.
func (s *enrollmentService) Create(ctx context.Context, ec *domain.EnrolledCourse) (*domain.EnrolledCourse, error) {
	existing, err := s.repo.FindActiveByStudent(ctx, ec.StudentID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("there is already an %s enrollment", strings.ToLower(string(existing.Status))), nil)
	}

	if ec.Status == "" {
		ec.Status = domain.EnrollmentPending
	}
	if err := s.repo.Create(ctx, ec); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, ec.ID)
}

func (s *enrollmentService) Get(ctx context.Context, id string) (*domain.EnrolledCourse, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns enrollments scoped to the current semester unless the caller
// filters by academicSemesterId explicitly. When no semester is flagged
// current, the listing is unscoped.
func (s *enrollmentService) List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[domain.EnrolledCourse], error) {
	if _, ok := filters.Fields["academicSemesterId"]; !ok {
		current, err := s.semesters.FindCurrent(ctx)
		if err != nil && !domain.IsNotFound(err) {
			return nil, err
		}
		if current != nil {
			fields := make(map[string]string, len(filters.Fields)+1)
			for k, v := range filters.Fields {
				fields[k] = v
			}
			fields["academicSemesterId"] = current.ID
			filters.Fields = fields
		}
	}

	cond := query.Compile(filters, searchableFields, relationalFields, nil)
	opts := query.Resolve(params, s.defaults)
	return s.repo.List(ctx, cond, opts)
}

func (s *enrollmentService) Update(ctx context.Context, id string, patch domain.EnrolledCoursePatch) (*domain.EnrolledCourse, error) {
	ec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		if !validStatus(*patch.Status) {
			return nil, domain.NewAppError(domain.CodeValidation, "invalid enrollment status", nil)
		}
		ec.Status = *patch.Status
	}
	if patch.Grade != nil {
		ec.Grade = *patch.Grade
	}
	if patch.Point != nil {
		ec.Point = *patch.Point
	}
	if patch.TotalMarks != nil {
		ec.TotalMarks = *patch.TotalMarks
	}

	if err := s.repo.Update(ctx, ec); err != nil {
		return nil, err
	}
	return ec, nil
}

func (s *enrollmentService) Delete(ctx context.Context, id string) (*domain.EnrolledCourse, error) {
	return s.repo.Delete(ctx, id)
}

func validStatus(st domain.EnrollmentStatus) bool {
	switch st {
	case domain.EnrollmentPending, domain.EnrollmentOngoing,
		domain.EnrollmentCompleted, domain.EnrollmentWithdrawn:
		return true
	}
	return false
}
