package semester

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
	"github.com/campuscore/backend/internal/query"
)

// Field sets for semester list queries. Filter keys and sort fields use the
// API (camelCase) names; unknown keys are dropped at the HTTP layer.
var (
	searchableFields  = []string{"title", "code", "startMonth", "endMonth"}
	filterableFields  = []string{"title", "code", "year", "isCurrent"}
	allowedSortFields = []string{"title", "code", "year", "createdAt"}
	typedFields       = map[string]query.FieldType{
		"year":      query.FieldInt,
		"isCurrent": query.FieldBool,
	}
)

// semesterRepository implements domain.AcademicSemesterRepository using GORM.
type semesterRepository struct {
	db *gorm.DB
}

// NewRepository creates an AcademicSemesterRepository backed by the given
// GORM database.
func NewRepository(db *gorm.DB) domain.AcademicSemesterRepository {
	return &semesterRepository{db: db}
}

func (r *semesterRepository) Create(ctx context.Context, semester *domain.AcademicSemester) error {
	if err := r.db.WithContext(ctx).Create(semester).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *semesterRepository) GetByID(ctx context.Context, id string) (*domain.AcademicSemester, error) {
	var semester domain.AcademicSemester
	if err := r.db.WithContext(ctx).First(&semester, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &semester, nil
}

// FindCurrent returns the semester flagged current. Ordering by id makes the
// result deterministic even if the single-current invariant is ever violated.
func (r *semesterRepository) FindCurrent(ctx context.Context) (*domain.AcademicSemester, error) {
	var semester domain.AcademicSemester
	err := r.db.WithContext(ctx).
		Where("is_current = ?", true).
		Order("id").
		First(&semester).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &semester, nil
}

func (r *semesterRepository) List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.AcademicSemester], error) {
	result, err := query.FindPage[domain.AcademicSemester](r.db.WithContext(ctx), cond, opts, allowedSortFields)
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

func (r *semesterRepository) Update(ctx context.Context, semester *domain.AcademicSemester) error {
	if err := r.db.WithContext(ctx).Save(semester).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a semester and returns the deleted row for event payloads.
func (r *semesterRepository) Delete(ctx context.Context, id string) (*domain.AcademicSemester, error) {
	semester, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.AcademicSemester{}, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return semester, nil
}
