package marks

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
	"github.com/campuscore/backend/internal/query"
)

// Field sets for course mark list queries.
var (
	searchableFields []string
	filterableFields = []string{"studentId", "enrolledCourseId", "academicSemesterId", "examType", "grade"}
	relationalFields = map[string]string{
		"studentId":          "student",
		"enrolledCourseId":   "enrolledCourse",
		"academicSemesterId": "academicSemester",
	}
	allowedSortFields = []string{"examType", "marks", "grade", "createdAt"}
)

// markRepository implements domain.CourseMarkRepository using GORM.
type markRepository struct {
	db *gorm.DB
}

// NewRepository creates a CourseMarkRepository backed by the given GORM
// database.
func NewRepository(db *gorm.DB) domain.CourseMarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) Create(ctx context.Context, mark *domain.CourseMark) error {
	if err := r.db.WithContext(ctx).Create(mark).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *markRepository) FindOne(ctx context.Context, studentID, enrolledCourseID string, exam domain.ExamType) (*domain.CourseMark, error) {
	var mark domain.CourseMark
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND enrolled_course_id = ? AND exam_type = ?", studentID, enrolledCourseID, exam).
		First(&mark).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &mark, nil
}

func (r *markRepository) FindByEnrollment(ctx context.Context, studentID, enrolledCourseID string) ([]domain.CourseMark, error) {
	var result []domain.CourseMark
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND enrolled_course_id = ?", studentID, enrolledCourseID).
		Order("exam_type").
		Find(&result).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

func (r *markRepository) List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.CourseMark], error) {
	result, err := query.FindPage[domain.CourseMark](r.db.WithContext(ctx), cond, opts, allowedSortFields,
		"Student", "AcademicSemester")
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

func (r *markRepository) Update(ctx context.Context, mark *domain.CourseMark) error {
	if err := r.db.WithContext(ctx).Save(mark).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// FinalizeResult saves the per-exam grades and the completed enrollment in a
// single transaction, so a partial write can never leave a graded enrollment
// without its marks.
func (r *markRepository) FinalizeResult(ctx context.Context, enrollment *domain.EnrolledCourse, marks []domain.CourseMark) error {
	err := pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		for i := range marks {
			if err := tx.Save(&marks[i]).Error; err != nil {
				return err
			}
		}
		return tx.Save(enrollment).Error
	})
	if err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}
