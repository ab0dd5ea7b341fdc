package service

import (
	"context"
	"testing"

	"feature-flag-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuditFixture() (IAuditService, *fakeAuditRepo) {
	audits := &fakeAuditRepo{}
	uow := &fakeUow{
		tenants:  &fakeTenantRepo{tenants: make(map[uuid.UUID]*entity.Tenant)},
		features: &fakeFeatureRepo{features: make(map[uuid.UUID]*entity.Feature)},
		flags:    &fakeFlagRepo{flags: make(map[string]*entity.FeatureFlag)},
		audits:   audits,
	}
	return NewAuditService(&fakeFactory{uow: uow}, nopLogger{}), audits
}

func TestRecordSnapshots(t *testing.T) {
	svc, audits := newAuditFixture()

	targetId := uuid.New()
	before := &entity.FeatureFlag{Id: targetId, Env: "prod", Enabled: false, Strategy: entity.StrategyBoolean}
	after := &entity.FeatureFlag{Id: targetId, Env: "prod", Enabled: true, Strategy: entity.StrategyBoolean}

	svc.Record(context.Background(), "tester", entity.ActionUpdate, targetId, before, after)

	require.Len(t, audits.entries, 1)
	entry := audits.entries[0]
	assert.Equal(t, "tester", entry.Actor)
	assert.Equal(t, entity.ActionUpdate, entry.Action)
	assert.Equal(t, "FeatureFlag", entry.TargetEntity)
	assert.Equal(t, targetId, entry.TargetId)
	assert.Equal(t, false, entry.DiffBefore["enabled"])
	assert.Equal(t, true, entry.DiffAfter["enabled"])
}

func TestRecordNilSnapshotsBecomeEmptyObjects(t *testing.T) {
	svc, audits := newAuditFixture()

	targetId := uuid.New()
	svc.Record(context.Background(), "tester", entity.ActionCreate, targetId, nil, &entity.FeatureFlag{Id: targetId})

	require.Len(t, audits.entries, 1)
	assert.NotNil(t, audits.entries[0].DiffBefore)
	assert.Empty(t, audits.entries[0].DiffBefore)
	assert.NotEmpty(t, audits.entries[0].DiffAfter)
}

func TestListByTargetPaginatesNewestFirst(t *testing.T) {
	svc, _ := newAuditFixture()

	targetId := uuid.New()
	other := uuid.New()
	for i := 0; i < 5; i++ {
		svc.Record(context.Background(), "tester", entity.ActionUpdate, targetId, nil, &entity.FeatureFlag{Id: targetId})
	}
	svc.Record(context.Background(), "tester", entity.ActionUpdate, other, nil, &entity.FeatureFlag{Id: other})

	page, err := svc.ListByTarget(context.Background(), targetId, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Meta.Total)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Len(t, page.Data, 2)
	for _, e := range page.Data {
		assert.Equal(t, targetId, e.TargetId)
	}
}
