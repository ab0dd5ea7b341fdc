package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/repository/unitofwork"
	"feature-flag-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.TenantRepository())
	assert.NotNil(t, uow.FeatureFlagRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	log.Println("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Flag Repository", func(t *testing.T) {
		count, err := uow.FeatureFlagRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Feature flag count: %d", count)
	})

	t.Run("Check Transactional Upsert", func(t *testing.T) {
		ctx := context.Background()

		tenant := &entity.Tenant{
			Id:   uuid.New(),
			Name: "integration-tenant-" + uuid.New().String(),
		}
		feature := &entity.Feature{
			Id:   uuid.New(),
			Name: "integration-feature-" + uuid.New().String(),
		}

		err := uow.TenantRepository().Create(ctx, tenant)
		assert.NoError(t, err)
		err = uow.FeatureRepository().Create(ctx, feature)
		assert.NoError(t, err)

		flag := &entity.FeatureFlag{
			Id:        uuid.New(),
			TenantId:  tenant.Id,
			FeatureId: feature.Id,
			Env:       "integration",
			Enabled:   true,
			Strategy:  entity.StrategyBoolean,
		}
		err = uow.FeatureFlagRepository().Upsert(ctx, flag)
		assert.NoError(t, err)

		// Upsert on the same natural key must replace, not duplicate.
		flag.Enabled = false
		err = uow.FeatureFlagRepository().Upsert(ctx, flag)
		assert.NoError(t, err)

		stored, err := uow.FeatureFlagRepository().FindByNaturalKey(ctx, tenant.Id, feature.Id, "integration")
		assert.NoError(t, err)
		if assert.NotNil(t, stored) {
			assert.False(t, stored.Enabled)
		}

		// Cleanup (cascade removes the flag)
		gormDB.Exec("DELETE FROM tenants WHERE id = ?", tenant.Id)
		gormDB.Exec("DELETE FROM features WHERE id = ?", feature.Id)
	})
}
