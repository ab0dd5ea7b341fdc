package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"feature-flag-be/internal/dto"
	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/pkg/apperrors"
	"feature-flag-be/internal/repository/contract"
	"feature-flag-be/internal/repository/specification"
	"feature-flag-be/internal/repository/unitofwork"
	"feature-flag-be/pkg/cache"
	"feature-flag-be/pkg/evaluation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeTenantRepo struct {
	tenants map[uuid.UUID]*entity.Tenant
}

func (r *fakeTenantRepo) Create(ctx context.Context, tenant *entity.Tenant) error {
	r.tenants[tenant.Id] = tenant
	return nil
}

func (r *fakeTenantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error) {
	return nil, nil
}

func (r *fakeTenantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tenant, error) {
	out := make([]*entity.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTenantRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	return r.tenants[id], nil
}

func (r *fakeTenantRepo) FindByName(ctx context.Context, name string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

type fakeFeatureRepo struct {
	features map[uuid.UUID]*entity.Feature
}

func (r *fakeFeatureRepo) Create(ctx context.Context, feature *entity.Feature) error {
	r.features[feature.Id] = feature
	return nil
}

func (r *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	return nil, nil
}

func (r *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	out := make([]*entity.Feature, 0, len(r.features))
	for _, f := range r.features {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFeatureRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feature, error) {
	return r.features[id], nil
}

func (r *fakeFeatureRepo) FindByName(ctx context.Context, name string) (*entity.Feature, error) {
	for _, f := range r.features {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, nil
}

func naturalKey(tenantId, featureId uuid.UUID, env string) string {
	return fmt.Sprintf("%s|%s|%s", tenantId, featureId, env)
}

// fakeFlagRepo interprets the query specifications structurally so the
// service's filter wiring is exercised without a database.
type fakeFlagRepo struct {
	flags    map[string]*entity.FeatureFlag
	features map[uuid.UUID]*entity.Feature

	// failAfter triggers an error on the Nth Upsert call (1-based); 0 is
	// never-fail. Used to test batch rollback.
	failAfter  int
	upsertCall int
}

func (r *fakeFlagRepo) Upsert(ctx context.Context, flag *entity.FeatureFlag) error {
	r.upsertCall++
	if r.failAfter > 0 && r.upsertCall >= r.failAfter {
		return errors.New("storage failure")
	}

	key := naturalKey(flag.TenantId, flag.FeatureId, flag.Env)
	stored := *flag
	if existing, ok := r.flags[key]; ok {
		stored.Id = existing.Id
		flag.Id = existing.Id
	}
	stored.UpdatedAt = time.Now()
	stored.Feature = r.features[flag.FeatureId]
	r.flags[key] = &stored
	return nil
}

func (r *fakeFlagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for key, f := range r.flags {
		if f.Id == id {
			delete(r.flags, key)
			return nil
		}
	}
	return nil
}

func (r *fakeFlagRepo) FindByNaturalKey(ctx context.Context, tenantId, featureId uuid.UUID, env string) (*entity.FeatureFlag, error) {
	if f, ok := r.flags[naturalKey(tenantId, featureId, env)]; ok {
		copied := *f
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeFlagRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureFlag, error) {
	matches, _ := r.FindAll(ctx, specs...)
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *fakeFlagRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureFlag, error) {
	matches := r.filter(specs)

	sort.Slice(matches, func(i, j int) bool { return matches[i].UpdatedAt.After(matches[j].UpdatedAt) })

	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(matches) {
				return []*entity.FeatureFlag{}, nil
			}
			end := p.Offset + p.Limit
			if end > len(matches) {
				end = len(matches)
			}
			matches = matches[p.Offset:end]
		}
	}
	return matches, nil
}

func (r *fakeFlagRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeFlagRepo) filter(specs []specification.Specification) []*entity.FeatureFlag {
	matches := make([]*entity.FeatureFlag, 0)
	for _, f := range r.flags {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByTenantID:
				ok = ok && f.TenantId == s.TenantID
			case specification.ByEnv:
				ok = ok && f.Env == s.Env
			case specification.EnabledIs:
				ok = ok && f.Enabled == s.Enabled
			case specification.FeatureNameContains:
				name := ""
				if feat := r.features[f.FeatureId]; feat != nil {
					name = feat.Name
				}
				ok = ok && strings.Contains(strings.ToLower(name), strings.ToLower(s.Name))
			}
		}
		if ok {
			copied := *f
			copied.Feature = r.features[f.FeatureId]
			matches = append(matches, &copied)
		}
	}
	return matches
}

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	log.Timestamp = time.Now()
	r.entries = append(r.entries, log)
	return nil
}

func (r *fakeAuditRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error) {
	matches := r.filter(specs)
	sort.Slice(matches, func(i, j int) bool { return matches[i].Timestamp.After(matches[j].Timestamp) })

	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(matches) {
				return []*entity.AuditLog{}, nil
			}
			end := p.Offset + p.Limit
			if end > len(matches) {
				end = len(matches)
			}
			matches = matches[p.Offset:end]
		}
	}
	return matches, nil
}

func (r *fakeAuditRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeAuditRepo) filter(specs []specification.Specification) []*entity.AuditLog {
	matches := make([]*entity.AuditLog, 0)
	for _, e := range r.entries {
		ok := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByTargetID:
				ok = ok && e.TargetId == s.TargetID
			case specification.ByTargetEntity:
				ok = ok && e.TargetEntity == s.Entity
			}
		}
		if ok {
			matches = append(matches, e)
		}
	}
	return matches
}

// fakeUow snapshots the flag store on Begin so Rollback can restore it,
// mimicking transactional all-or-nothing semantics.
type fakeUow struct {
	tenants  *fakeTenantRepo
	features *fakeFeatureRepo
	flags    *fakeFlagRepo
	audits   *fakeAuditRepo

	snapshot  map[string]*entity.FeatureFlag
	committed bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.snapshot = make(map[string]*entity.FeatureFlag, len(u.flags.flags))
	for k, v := range u.flags.flags {
		copied := *v
		u.snapshot[k] = &copied
	}
	u.committed = false
	return nil
}

func (u *fakeUow) Commit() error {
	u.committed = true
	u.snapshot = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.snapshot != nil && !u.committed {
		u.flags.flags = u.snapshot
		u.snapshot = nil
	}
	return nil
}

func (u *fakeUow) TenantRepository() contract.TenantRepository           { return u.tenants }
func (u *fakeUow) FeatureRepository() contract.FeatureRepository         { return u.features }
func (u *fakeUow) FeatureFlagRepository() contract.FeatureFlagRepository { return u.flags }
func (u *fakeUow) AuditLogRepository() contract.AuditLogRepository       { return u.audits }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{store: make(map[string]string)} }

func (c *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := c.store[key]
	return v, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.store[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// ---- fixture ----

type fixture struct {
	svc       IFeatureFlagService
	audits    *fakeAuditRepo
	flags     *fakeFlagRepo
	cache     *fakeCache
	publisher *fakePublisher

	tenantZebra  *entity.Tenant
	featDash     *entity.Feature
	featCheckout *entity.Feature
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tenants := &fakeTenantRepo{tenants: make(map[uuid.UUID]*entity.Tenant)}
	features := &fakeFeatureRepo{features: make(map[uuid.UUID]*entity.Feature)}
	flags := &fakeFlagRepo{
		flags:    make(map[string]*entity.FeatureFlag),
		features: features.features,
	}
	audits := &fakeAuditRepo{}
	uow := &fakeUow{tenants: tenants, features: features, flags: flags, audits: audits}
	factory := &fakeFactory{uow: uow}
	flagCache := newFakeCache()
	publisher := &fakePublisher{}

	zebra := &entity.Tenant{Id: uuid.New(), Name: "zebra"}
	tenants.tenants[zebra.Id] = zebra

	dash := &entity.Feature{Id: uuid.New(), Name: "new-dashboard"}
	checkout := &entity.Feature{Id: uuid.New(), Name: "beta-checkout"}
	features.features[dash.Id] = dash
	features.features[checkout.Id] = checkout

	auditSvc := NewAuditService(factory, nopLogger{})
	svc := NewFeatureFlagService(
		factory,
		flagCache,
		5*time.Minute,
		evaluation.NewEvaluatorWithRand(func() float64 { return 0 }),
		auditSvc,
		publisher,
		nil,
		nopLogger{},
	)

	return &fixture{
		svc:          svc,
		audits:       audits,
		flags:        flags,
		cache:        flagCache,
		publisher:    publisher,
		tenantZebra:  zebra,
		featDash:     dash,
		featCheckout: checkout,
	}
}

func (f *fixture) upsert(t *testing.T, featureId uuid.UUID, env string, enabled bool, strategy string, details *dto.StrategyDetailsPayload) *dto.FlagResponse {
	t.Helper()
	res, err := f.svc.Upsert(context.Background(), "tester", &dto.UpsertFlagRequest{
		TenantId:  f.tenantZebra.Id,
		FeatureId: featureId,
		Env:       env,
		Enabled:   enabled,
		Strategy:  strategy,
		Details:   details,
	})
	require.NoError(t, err)
	return res
}

// ---- tests ----

func TestUpsertCreateThenUpdate(t *testing.T) {
	f := newFixture(t)

	created := f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)
	assert.Equal(t, "new-dashboard", created.FeatureName)
	assert.True(t, created.Enabled)

	// Same natural key again: the row is replaced, not duplicated.
	updated := f.upsert(t, f.featDash.Id, "prod", false, "BOOLEAN", nil)
	assert.Equal(t, created.Id, updated.Id)
	assert.False(t, updated.Enabled)
	assert.Len(t, f.flags.flags, 1)

	require.Len(t, f.audits.entries, 2)
	assert.Equal(t, entity.ActionCreate, f.audits.entries[0].Action)
	assert.Empty(t, f.audits.entries[0].DiffBefore)
	assert.Equal(t, entity.ActionUpdate, f.audits.entries[1].Action)
	assert.NotEmpty(t, f.audits.entries[1].DiffBefore)
	assert.Equal(t, "tester", f.audits.entries[0].Actor)

	assert.Len(t, f.publisher.payloads, 2)
}

func TestUpsertInvalidatesCache(t *testing.T) {
	f := newFixture(t)

	key := cache.RawFlagKey("zebra", "prod")
	f.cache.store[key] = `[]`

	f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)

	_, hit, _ := f.cache.Get(context.Background(), key)
	assert.False(t, hit, "stale projection must be dropped on write")
}

func TestUpsertUnknownTenant(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Upsert(context.Background(), "tester", &dto.UpsertFlagRequest{
		TenantId:  uuid.New(),
		FeatureId: f.featDash.Id,
		Env:       "prod",
		Strategy:  "BOOLEAN",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidReference, apperrors.KindOf(err))
	assert.Empty(t, f.audits.entries)
}

func TestUpsertPercentageRequiresPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Upsert(context.Background(), "tester", &dto.UpsertFlagRequest{
		TenantId:  f.tenantZebra.Id,
		FeatureId: f.featCheckout.Id,
		Env:       "prod",
		Enabled:   true,
		Strategy:  "PERCENTAGE",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}

func TestDeleteMissingFlag(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Delete(context.Background(), "tester", &dto.DeleteFlagRequest{
		TenantId:  f.tenantZebra.Id,
		FeatureId: f.featDash.Id,
		Env:       "prod",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	// A failed mutation leaves no audit trace.
	assert.Empty(t, f.audits.entries)
}

func TestDeleteRecordsAudit(t *testing.T) {
	f := newFixture(t)

	created := f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)

	deleted, err := f.svc.Delete(context.Background(), "tester", &dto.DeleteFlagRequest{
		TenantId:  f.tenantZebra.Id,
		FeatureId: f.featDash.Id,
		Env:       "prod",
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, deleted.Id)
	assert.Empty(t, f.flags.flags)

	require.Len(t, f.audits.entries, 2)
	last := f.audits.entries[1]
	assert.Equal(t, entity.ActionDelete, last.Action)
	assert.NotEmpty(t, last.DiffBefore)
	assert.Empty(t, last.DiffAfter)
}

func TestPromoteSameEnvRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Promote(context.Background(), "tester", &dto.PromoteRequest{
		TenantId:  f.tenantZebra.Id,
		SourceEnv: "prod",
		TargetEnv: "prod",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidArgument, apperrors.KindOf(err))
}

func TestPromoteEmptySource(t *testing.T) {
	f := newFixture(t)

	report, err := f.svc.Promote(context.Background(), "tester", &dto.PromoteRequest{
		TenantId:  f.tenantZebra.Id,
		SourceEnv: "prod",
		TargetEnv: "staging",
	})
	require.NoError(t, err)
	assert.Zero(t, report.Created)
	assert.Zero(t, report.Updated)
	assert.Empty(t, report.Actions)
	assert.Empty(t, f.audits.entries)
}

func TestPromoteDryRunHasNoSideEffects(t *testing.T) {
	f := newFixture(t)

	fifty := 50.0
	f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)
	f.upsert(t, f.featCheckout.Id, "prod", true, "PERCENTAGE", &dto.StrategyDetailsPayload{Percentage: &fifty})
	// One flag already exists in the target, so the report must show one
	// create and one update.
	f.upsert(t, f.featDash.Id, "staging", false, "BOOLEAN", nil)

	auditsBefore := len(f.audits.entries)
	flagsBefore := len(f.flags.flags)

	dry, err := f.svc.Promote(context.Background(), "tester", &dto.PromoteRequest{
		TenantId:  f.tenantZebra.Id,
		SourceEnv: "prod",
		TargetEnv: "staging",
		DryRun:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, dry.Created)
	assert.Equal(t, 1, dry.Updated)
	assert.Len(t, dry.Actions, 2)

	assert.Len(t, f.flags.flags, flagsBefore, "dry run must not write")
	assert.Len(t, f.audits.entries, auditsBefore, "dry run must not audit")

	// The real run classifies identically.
	real, err := f.svc.Promote(context.Background(), "tester", &dto.PromoteRequest{
		TenantId:  f.tenantZebra.Id,
		SourceEnv: "prod",
		TargetEnv: "staging",
	})
	require.NoError(t, err)
	assert.Equal(t, dry.Created, real.Created)
	assert.Equal(t, dry.Updated, real.Updated)
	assert.Equal(t, dry.Actions, real.Actions)
}

func TestPromoteCopiesFlags(t *testing.T) {
	f := newFixture(t)

	fifty := 50.0
	f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)
	f.upsert(t, f.featCheckout.Id, "prod", true, "PERCENTAGE", &dto.StrategyDetailsPayload{Percentage: &fifty})

	key := cache.RawFlagKey("zebra", "staging")
	f.cache.store[key] = `[]`
	auditsBefore := len(f.audits.entries)

	report, err := f.svc.Promote(context.Background(), "tester", &dto.PromoteRequest{
		TenantId:  f.tenantZebra.Id,
		SourceEnv: "prod",
		TargetEnv: "staging",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Zero(t, report.Updated)

	promoted, err := f.flags.FindByNaturalKey(context.Background(), f.tenantZebra.Id, f.featCheckout.Id, "staging")
	require.NoError(t, err)
	require.NotNil(t, promoted)
	assert.Equal(t, entity.StrategyPercentage, promoted.Strategy)
	require.NotNil(t, promoted.Details.Percentage)
	assert.Equal(t, 50.0, *promoted.Details.Percentage)

	// One audit row per promoted flag, each targeting the new staging row.
	require.Len(t, f.audits.entries, auditsBefore+2)
	for _, entry := range f.audits.entries[auditsBefore:] {
		assert.Equal(t, entity.ActionCreate, entry.Action)
		assert.Equal(t, "staging", entry.DiffAfter["env"])
	}

	_, hit, _ := f.cache.Get(context.Background(), key)
	assert.False(t, hit)
}

func TestPromoteFailureLeavesTargetUntouched(t *testing.T) {
	f := newFixture(t)

	f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)
	f.upsert(t, f.featCheckout.Id, "prod", true, "BOOLEAN", nil)

	auditsBefore := len(f.audits.entries)
	f.flags.failAfter = f.flags.upsertCall + 2 // second promoted flag fails

	_, err := f.svc.Promote(context.Background(), "tester", &dto.PromoteRequest{
		TenantId:  f.tenantZebra.Id,
		SourceEnv: "prod",
		TargetEnv: "staging",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflictOrTransient, apperrors.KindOf(err))

	// All-or-nothing: the partial write was rolled back, no audits recorded.
	for key := range f.flags.flags {
		assert.NotContains(t, key, "|staging")
	}
	assert.Len(t, f.audits.entries, auditsBefore)
}

func TestGetEvaluatedUnknownTenant(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.GetEvaluated(context.Background(), "ghost", "prod", "user-123")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestGetEvaluatedServesFromCache(t *testing.T) {
	f := newFixture(t)
	f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)

	first, err := f.svc.GetEvaluated(context.Background(), "zebra", "prod", "")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, first[0].Enabled)

	// Mutate storage behind the cache's back; the projection still serves
	// the cached state until invalidated.
	for _, flag := range f.flags.flags {
		flag.Enabled = false
	}

	second, err := f.svc.GetEvaluated(context.Background(), "zebra", "prod", "")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.True(t, second[0].Enabled)
}

func TestGetEvaluatedDoesNotCacheEmpty(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetEvaluated(context.Background(), "zebra", "prod", "")
	require.NoError(t, err)

	_, hit, _ := f.cache.Get(context.Background(), cache.RawFlagKey("zebra", "prod"))
	assert.False(t, hit)
}

func TestGetRawFiltersAndPaginates(t *testing.T) {
	f := newFixture(t)

	f.upsert(t, f.featDash.Id, "prod", true, "BOOLEAN", nil)
	f.upsert(t, f.featCheckout.Id, "prod", false, "BOOLEAN", nil)
	f.upsert(t, f.featDash.Id, "staging", true, "BOOLEAN", nil)

	all, err := f.svc.GetRaw(context.Background(), "zebra", "prod", dto.FlagListOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Meta.Total)
	assert.Len(t, all.Data, 2)

	enabled := true
	filtered, err := f.svc.GetRaw(context.Background(), "zebra", "prod", dto.FlagListOptions{Page: 1, Limit: 10, Enabled: &enabled})
	require.NoError(t, err)
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, "new-dashboard", filtered.Data[0].FeatureName)

	byName, err := f.svc.GetRaw(context.Background(), "zebra", "prod", dto.FlagListOptions{Page: 1, Limit: 10, FeatureName: "CHECKOUT"})
	require.NoError(t, err)
	require.Len(t, byName.Data, 1)
	assert.Equal(t, "beta-checkout", byName.Data[0].FeatureName)

	paged, err := f.svc.GetRaw(context.Background(), "zebra", "prod", dto.FlagListOptions{Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, paged.Data, 1)
	assert.Equal(t, 2, paged.Meta.TotalPages)
}

func TestGetRawUnknownTenant(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetRaw(context.Background(), "ghost", "prod", dto.FlagListOptions{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
