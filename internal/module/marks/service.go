package marks

import (
	"context"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/query"
)

// markService implements domain.CourseMarkService.
type markService struct {
	repo        domain.CourseMarkRepository
	enrollments domain.EnrolledCourseRepository
	defaults    query.Defaults
}

// NewService creates a CourseMarkService. The enrollment repository is used
// to complete enrollments when a result is finalized.
func NewService(repo domain.CourseMarkRepository, enrollments domain.EnrolledCourseRepository, defaults query.Defaults) domain.CourseMarkService {
	return &markService{repo: repo, enrollments: enrollments, defaults: defaults}
}

func (s *markService) List(ctx context.Context, filters query.Filters, params query.Params) (*query.PagedResult[domain.CourseMark], error) {
	cond := query.Compile(filters, searchableFields, relationalFields, nil)
	opts := query.Resolve(params, s.defaults)
	return s.repo.List(ctx, cond, opts)
}

// UpdateMarks records the marks for one exam of one enrollment, creating the
// mark row on first write. The per-exam grade is recomputed from the new
// marks value.
func (s *markService) UpdateMarks(ctx context.Context, in domain.UpdateMarksInput) (*domain.CourseMark, error) {
	if in.Marks < 0 || in.Marks > 100 {
		return nil, domain.NewAppError(domain.CodeValidation, "marks must be between 0 and 100", nil)
	}
	if in.ExamType != domain.ExamMidterm && in.ExamType != domain.ExamFinal {
		return nil, domain.NewAppError(domain.CodeValidation, "examType must be MIDTERM or FINAL", nil)
	}

	enrollment, err := s.enrollments.GetByID(ctx, in.EnrolledCourseID)
	if err != nil {
		return nil, err
	}
	if enrollment.StudentID != in.StudentID {
		return nil, domain.NewAppError(domain.CodeValidation, "enrollment does not belong to the student", nil)
	}

	grade, _ := GradeFromMarks(in.Marks)

	mark, err := s.repo.FindOne(ctx, in.StudentID, in.EnrolledCourseID, in.ExamType)
	switch {
	case err == nil:
		mark.Marks = in.Marks
		mark.Grade = grade
		if err := s.repo.Update(ctx, mark); err != nil {
			return nil, err
		}
		return mark, nil
	case domain.IsNotFound(err):
		mark = &domain.CourseMark{
			StudentID:          in.StudentID,
			EnrolledCourseID:   in.EnrolledCourseID,
			AcademicSemesterID: enrollment.AcademicSemesterID,
			ExamType:           in.ExamType,
			Marks:              in.Marks,
			Grade:              grade,
		}
		if err := s.repo.Create(ctx, mark); err != nil {
			return nil, err
		}
		return mark, nil
	default:
		return nil, err
	}
}

// FinalizeResult totals the midterm and final marks (40/60 weighting),
// assigns the course grade, and completes the enrollment. Both exam marks
// must exist first.
func (s *markService) FinalizeResult(ctx context.Context, studentID, enrolledCourseID string) (*domain.EnrolledCourse, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrolledCourseID)
	if err != nil {
		return nil, err
	}
	if enrollment.StudentID != studentID {
		return nil, domain.NewAppError(domain.CodeValidation, "enrollment does not belong to the student", nil)
	}

	examMarks, err := s.repo.FindByEnrollment(ctx, studentID, enrolledCourseID)
	if err != nil {
		return nil, err
	}

	var midterm, final *domain.CourseMark
	for i := range examMarks {
		switch examMarks[i].ExamType {
		case domain.ExamMidterm:
			midterm = &examMarks[i]
		case domain.ExamFinal:
			final = &examMarks[i]
		}
	}
	if midterm == nil || final == nil {
		return nil, domain.NewAppError(domain.CodeValidation,
			"both midterm and final marks are required to finalize the result", nil)
	}

	total := totalMarks(midterm.Marks, final.Marks)
	grade, point := GradeFromMarks(total)

	midterm.Grade, _ = GradeFromMarks(midterm.Marks)
	final.Grade, _ = GradeFromMarks(final.Marks)

	enrollment.Status = domain.EnrollmentCompleted
	enrollment.Grade = grade
	enrollment.Point = point
	enrollment.TotalMarks = total

	if err := s.repo.FinalizeResult(ctx, enrollment, []domain.CourseMark{*midterm, *final}); err != nil {
		return nil, err
	}
	return enrollment, nil
}
