package implementation

import (
	"context"
	"errors"

	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRepository carries the CRUD plumbing shared by every store. M is the
// gorm model, E the domain entity.
type gormRepository[M any, E any] struct {
	db       *gorm.DB
	toEntity func(*M) *E
	toModel  func(*E) *M
}

func (r *gormRepository[M, E]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// translateError turns unique-key violations into Conflict so callers can
// branch on them without knowing the driver.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Wrap(apperror.KindConflict, "duplicate key", err)
	}
	return err
}

func (r *gormRepository[M, E]) create(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*e = *r.toEntity(m)
	return nil
}

func (r *gormRepository[M, E]) update(ctx context.Context, e *E) error {
	m := r.toModel(e)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err)
	}
	*e = *r.toEntity(m)
	return nil
}

func (r *gormRepository[M, E]) delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error
}

func (r *gormRepository[M, E]) deleteWhere(ctx context.Context, query string, args ...interface{}) error {
	return r.db.WithContext(ctx).Where(query, args...).Delete(new(M)).Error
}

func (r *gormRepository[M, E]) findOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *gormRepository[M, E]) findAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*E, len(models))
	for i, m := range models {
		entities[i] = r.toEntity(m)
	}
	return entities, nil
}

func (r *gormRepository[M, E]) count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
