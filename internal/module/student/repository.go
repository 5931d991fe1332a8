package student

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
	"github.com/campuscore/backend/internal/query"
)

// Field sets for student list queries.
var (
	searchableFields = []string{"studentId", "email", "contactNo", "firstName", "lastName", "middleName"}
	filterableFields = []string{"studentId", "email", "contactNo", "gender", "bloodGroup", "academicSemesterId"}
	relationalFields = map[string]string{
		"academicSemesterId": "academicSemester",
	}
	allowedSortFields = []string{"studentId", "firstName", "lastName", "email", "createdAt"}
)

// studentRepository implements domain.StudentRepository using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewRepository creates a StudentRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	var student domain.Student
	err := r.db.WithContext(ctx).
		Preload("AcademicSemester").
		First(&student, "id = ?", id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &student, nil
}

func (r *studentRepository) List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.Student], error) {
	result, err := query.FindPage[domain.Student](r.db.WithContext(ctx), cond, opts, allowedSortFields, "AcademicSemester")
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

func (r *studentRepository) Update(ctx context.Context, student *domain.Student) error {
	if err := r.db.WithContext(ctx).Save(student).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id string) (*domain.Student, error) {
	student, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Student{}, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return student, nil
}
