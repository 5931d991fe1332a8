package enrollment

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
	"github.com/campuscore/backend/internal/query"
)

// Field sets for enrollment list queries. Enrollments carry no free-text
// columns, so the searchable set is empty and everything goes through
// exact-match filters.
var (
	searchableFields []string
	filterableFields = []string{"academicSemesterId", "studentId", "courseId", "status", "grade"}
	relationalFields = map[string]string{
		"academicSemesterId": "academicSemester",
		"studentId":          "student",
		"courseId":           "course",
	}
	allowedSortFields = []string{"status", "grade", "point", "totalMarks", "createdAt"}
)

// enrollmentRepository implements domain.EnrolledCourseRepository using GORM.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewRepository creates an EnrolledCourseRepository backed by the given GORM
// database.
func NewRepository(db *gorm.DB) domain.EnrolledCourseRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, ec *domain.EnrolledCourse) error {
	if err := r.db.WithContext(ctx).Create(ec).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id string) (*domain.EnrolledCourse, error) {
	var ec domain.EnrolledCourse
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Preload("AcademicSemester").
		First(&ec, "id = ?", id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &ec, nil
}

// FindActiveByStudent returns an ONGOING or COMPLETED enrollment for the
// student, taking the oldest when several exist so the guard is deterministic.
func (r *enrollmentRepository) FindActiveByStudent(ctx context.Context, studentID string) (*domain.EnrolledCourse, error) {
	var ec domain.EnrolledCourse
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND status IN ?", studentID,
			[]domain.EnrollmentStatus{domain.EnrollmentOngoing, domain.EnrollmentCompleted}).
		Order("created_at, id").
		First(&ec).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &ec, nil
}

func (r *enrollmentRepository) List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.EnrolledCourse], error) {
	result, err := query.FindPage[domain.EnrolledCourse](r.db.WithContext(ctx), cond, opts, allowedSortFields,
		"Student", "Course", "AcademicSemester")
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

func (r *enrollmentRepository) Update(ctx context.Context, ec *domain.EnrolledCourse) error {
	if err := r.db.WithContext(ctx).Save(ec).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *enrollmentRepository) Delete(ctx context.Context, id string) (*domain.EnrolledCourse, error) {
	ec, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.EnrolledCourse{}, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return ec, nil
}
