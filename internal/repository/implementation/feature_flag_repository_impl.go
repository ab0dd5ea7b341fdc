// FILE: internal/repository/implementation/feature_flag_repository_impl.go
// Implementation of FeatureFlagRepository
package implementation

import (
	"context"
	"errors"
	"time"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/mapper"
	"feature-flag-be/internal/model"
	"feature-flag-be/internal/repository/contract"
	"feature-flag-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeatureFlagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureFlagMapper
}

func NewFeatureFlagRepository(db *gorm.DB) contract.FeatureFlagRepository {
	return &FeatureFlagRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureFlagMapper(),
	}
}

func (r *FeatureFlagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert relies on the unique index over (tenant_id, feature_id, env) so two
// concurrent writers to the same triple serialize inside Postgres. On
// conflict every mutable field is replaced; there is no partial field mixing.
func (r *FeatureFlagRepositoryImpl) Upsert(ctx context.Context, flag *entity.FeatureFlag) error {
	m := r.mapper.ToModel(flag)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	m.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "tenant_id"}, {Name: "feature_id"}, {Name: "env"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"enabled", "evaluation_strategy", "evaluation_details_json", "updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(m).Error
	if err != nil {
		return err
	}

	*flag = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureFlagRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FeatureFlag{}, id).Error
}

func (r *FeatureFlagRepositoryImpl) FindByNaturalKey(ctx context.Context, tenantId, featureId uuid.UUID, env string) (*entity.FeatureFlag, error) {
	return r.FindOne(ctx,
		specification.ByTenantID{TenantID: tenantId},
		specification.ByFeatureID{FeatureID: featureId},
		specification.ByEnv{Env: env},
	)
}

func (r *FeatureFlagRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureFlag, error) {
	var m model.FeatureFlag
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Feature"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureFlagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureFlag, error) {
	var models []*model.FeatureFlag
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Feature"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeatureFlagRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FeatureFlag{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
