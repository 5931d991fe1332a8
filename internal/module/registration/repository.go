package registration

import (
	"context"

	"gorm.io/gorm"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/pkg"
	"github.com/campuscore/backend/internal/query"
)

// Field sets for registration list queries. There is no free-text search on
// registrations; the searchable set is empty.
var (
	searchableFields []string
	filterableFields = []string{"status", "academicSemesterId"}
	relationalFields = map[string]string{
		"academicSemesterId": "academicSemester",
	}
	allowedSortFields = []string{"startDate", "endDate", "status", "createdAt"}
)

// registrationRepository implements domain.SemesterRegistrationRepository
// using GORM.
type registrationRepository struct {
	db *gorm.DB
}

// NewRepository creates a SemesterRegistrationRepository backed by the given
// GORM database.
func NewRepository(db *gorm.DB) domain.SemesterRegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.SemesterRegistration) error {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.SemesterRegistration, error) {
	var reg domain.SemesterRegistration
	err := r.db.WithContext(ctx).
		Preload("AcademicSemester").
		First(&reg, "id = ?", id).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &reg, nil
}

func (r *registrationRepository) List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.SemesterRegistration], error) {
	result, err := query.FindPage[domain.SemesterRegistration](r.db.WithContext(ctx), cond, opts, allowedSortFields, "AcademicSemester")
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return result, nil
}

func (r *registrationRepository) Update(ctx context.Context, reg *domain.SemesterRegistration) error {
	if err := r.db.WithContext(ctx).Save(reg).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) (*domain.SemesterRegistration, error) {
	reg, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.SemesterRegistration{}, "id = ?", id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return reg, nil
}
