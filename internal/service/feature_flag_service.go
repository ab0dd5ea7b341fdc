// FILE: internal/service/feature_flag_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"feature-flag-be/internal/dto"
	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/pkg/apperrors"
	"feature-flag-be/internal/pkg/logger"
	"feature-flag-be/internal/repository/specification"
	"feature-flag-be/internal/repository/unitofwork"
	"feature-flag-be/pkg/cache"
	"feature-flag-be/pkg/evaluation"
	"feature-flag-be/pkg/events"
	"feature-flag-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type IFeatureFlagService interface {
	// GetEvaluated resolves every flag of (tenantName, env) to a boolean for
	// the given requester. An unknown tenant yields an empty list, not an
	// error: evaluation is a read path clients poll blindly.
	GetEvaluated(ctx context.Context, tenantName, env, requesterId string) ([]evaluation.EvaluatedFlag, error)
	GetRaw(ctx context.Context, tenantName, env string, opts dto.FlagListOptions) (*dto.FlagListResponse, error)
	Upsert(ctx context.Context, actor string, request *dto.UpsertFlagRequest) (*dto.FlagResponse, error)
	Delete(ctx context.Context, actor string, request *dto.DeleteFlagRequest) (*dto.FlagResponse, error)
	Promote(ctx context.Context, actor string, request *dto.PromoteRequest) (*dto.PromotionReport, error)
}

type featureFlagService struct {
	uowFactory unitofwork.RepositoryFactory
	flagCache  cache.FlagCache
	cacheTTL   time.Duration
	evaluator  *evaluation.Evaluator
	audit      IAuditService
	publisher  IPublisherService
	natsPub    *nats.Publisher // may be nil when NATS is not configured
	logger     logger.ILogger
}

func NewFeatureFlagService(
	uowFactory unitofwork.RepositoryFactory,
	flagCache cache.FlagCache,
	cacheTTL time.Duration,
	evaluator *evaluation.Evaluator,
	audit IAuditService,
	publisher IPublisherService,
	natsPub *nats.Publisher,
	logger logger.ILogger,
) IFeatureFlagService {
	return &featureFlagService{
		uowFactory: uowFactory,
		flagCache:  flagCache,
		cacheTTL:   cacheTTL,
		evaluator:  evaluator,
		audit:      audit,
		publisher:  publisher,
		natsPub:    natsPub,
		logger:     logger,
	}
}

func (s *featureFlagService) GetEvaluated(ctx context.Context, tenantName, env, requesterId string) ([]evaluation.EvaluatedFlag, error) {
	flags, err := s.loadRawFlags(ctx, tenantName, env)
	if err != nil {
		return nil, err
	}
	return s.evaluator.Evaluate(flags, requesterId), nil
}

// loadRawFlags is the cache-first read shared by the evaluated endpoint.
// Unknown tenants resolve to an empty list.
func (s *featureFlagService) loadRawFlags(ctx context.Context, tenantName, env string) ([]*entity.FeatureFlag, error) {
	key := cache.RawFlagKey(tenantName, env)

	cached, hit, err := s.flagCache.Get(ctx, key)
	if err != nil {
		// A broken cache degrades to a repository read.
		s.logger.Warn("feature-flag", "Cache read failed, falling back to repository", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	if hit {
		var snapshot []*dto.FlagResponse
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return cachedFlagsToEntities(snapshot), nil
		}
		// Corrupt entry: drop it and fall through to the repository.
		_ = s.flagCache.Delete(ctx, key)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindByName(ctx, tenantName)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return []*entity.FeatureFlag{}, nil
	}

	flags, err := uow.FeatureFlagRepository().FindAll(ctx,
		specification.ByTenantID{TenantID: tenant.Id},
		specification.ByEnv{Env: env},
		specification.OrderBy{Field: "feature_flags.updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	// Only populate the cache when there is something to serve; caching an
	// empty list would mask a tenant's first flag until the TTL expires.
	if len(flags) > 0 {
		if raw, err := json.Marshal(flagsToResponses(flags)); err == nil {
			if err := s.flagCache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
				s.logger.Warn("feature-flag", "Cache write failed", map[string]interface{}{
					"key":   key,
					"error": err.Error(),
				})
			}
		}
	}

	return flags, nil
}

func (s *featureFlagService) GetRaw(ctx context.Context, tenantName, env string, opts dto.FlagListOptions) (*dto.FlagListResponse, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindByName(ctx, tenantName)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("tenant '%s' not found", tenantName))
	}

	filterSpecs := []specification.Specification{
		specification.ByTenantID{TenantID: tenant.Id},
		specification.ByEnv{Env: env},
	}
	if opts.FeatureName != "" {
		filterSpecs = append(filterSpecs, specification.FeatureNameContains{Name: opts.FeatureName})
	}
	if opts.Enabled != nil {
		filterSpecs = append(filterSpecs, specification.EnabledIs{Enabled: *opts.Enabled})
	}

	total, err := uow.FeatureFlagRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filterSpecs,
		specification.OrderBy{Field: "feature_flags.updated_at", Desc: true},
		specification.Pagination{Limit: opts.Limit, Offset: (opts.Page - 1) * opts.Limit},
	)
	flags, err := uow.FeatureFlagRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	return &dto.FlagListResponse{
		Data: flagsToResponses(flags),
		Meta: dto.PageMeta{
			Total:      total,
			Page:       opts.Page,
			Limit:      opts.Limit,
			TotalPages: int(math.Ceil(float64(total) / float64(opts.Limit))),
		},
	}, nil
}

func (s *featureFlagService) Upsert(ctx context.Context, actor string, request *dto.UpsertFlagRequest) (*dto.FlagResponse, error) {
	strategy := entity.EvaluationStrategy(request.Strategy)
	details, err := normalizeDetails(strategy, request.Details)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindByID(ctx, request.TenantId)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.InvalidReference("tenant does not exist", nil)
	}

	// The pre-image decides CREATE vs UPDATE and feeds the audit diff.
	before, err := uow.FeatureFlagRepository().FindByNaturalKey(ctx, request.TenantId, request.FeatureId, request.Env)
	if err != nil {
		return nil, err
	}

	flag := &entity.FeatureFlag{
		TenantId:  request.TenantId,
		FeatureId: request.FeatureId,
		Env:       request.Env,
		Enabled:   request.Enabled,
		Strategy:  strategy,
		Details:   details,
	}
	if before != nil {
		flag.Id = before.Id
	} else {
		flag.Id = uuid.New()
	}

	if err := uow.FeatureFlagRepository().Upsert(ctx, flag); err != nil {
		return nil, translateDBError(err)
	}

	// Re-read so the response and audit after-image carry the persisted
	// timestamps and the preloaded feature.
	after, err := uow.FeatureFlagRepository().FindByNaturalKey(ctx, request.TenantId, request.FeatureId, request.Env)
	if err != nil {
		return nil, err
	}
	if after == nil {
		return nil, apperrors.ConflictOrTransient("flag disappeared after upsert", nil)
	}

	action := entity.ActionCreate
	if before != nil {
		action = entity.ActionUpdate
	}

	s.invalidateCache(ctx, tenant.Name, request.Env)
	s.audit.Record(ctx, actor, action, after.Id, before, after)
	s.publishFlagChanged(ctx, events.FlagChangedEvent{
		TenantId:   tenant.Id,
		TenantName: tenant.Name,
		Env:        request.Env,
		Action:     string(action),
		Actor:      actor,
	})

	return flagToResponse(after), nil
}

func (s *featureFlagService) Delete(ctx context.Context, actor string, request *dto.DeleteFlagRequest) (*dto.FlagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindByID(ctx, request.TenantId)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound("tenant not found")
	}

	before, err := uow.FeatureFlagRepository().FindByNaturalKey(ctx, request.TenantId, request.FeatureId, request.Env)
	if err != nil {
		return nil, err
	}
	if before == nil {
		// Nothing happened, so nothing is audited.
		return nil, apperrors.NotFound("feature flag not found")
	}

	if err := uow.FeatureFlagRepository().Delete(ctx, before.Id); err != nil {
		return nil, translateDBError(err)
	}

	s.invalidateCache(ctx, tenant.Name, request.Env)
	s.audit.Record(ctx, actor, entity.ActionDelete, before.Id, before, nil)
	s.publishFlagChanged(ctx, events.FlagChangedEvent{
		TenantId:   tenant.Id,
		TenantName: tenant.Name,
		Env:        request.Env,
		Action:     string(entity.ActionDelete),
		Actor:      actor,
	})

	return flagToResponse(before), nil
}

func (s *featureFlagService) Promote(ctx context.Context, actor string, request *dto.PromoteRequest) (*dto.PromotionReport, error) {
	// Reject the degenerate copy before touching storage.
	if request.SourceEnv == request.TargetEnv {
		return nil, apperrors.InvalidArgument("source and target environments must differ")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenant, err := uow.TenantRepository().FindByID(ctx, request.TenantId)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound("tenant not found")
	}

	sourceFlags, err := uow.FeatureFlagRepository().FindAll(ctx,
		specification.ByTenantID{TenantID: request.TenantId},
		specification.ByEnv{Env: request.SourceEnv},
		specification.OrderBy{Field: "feature_flags.updated_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	if len(sourceFlags) == 0 {
		return &dto.PromotionReport{
			Message: fmt.Sprintf("No flags found in '%s' to promote", request.SourceEnv),
			Actions: []string{},
		}, nil
	}

	// Snapshot the target before any write so the report classification and
	// the audit before-images both describe the pre-batch state.
	targetFlags, err := uow.FeatureFlagRepository().FindAll(ctx,
		specification.ByTenantID{TenantID: request.TenantId},
		specification.ByEnv{Env: request.TargetEnv},
	)
	if err != nil {
		return nil, err
	}
	targetByFeature := make(map[uuid.UUID]*entity.FeatureFlag, len(targetFlags))
	for _, f := range targetFlags {
		targetByFeature[f.FeatureId] = f
	}

	report := &dto.PromotionReport{Actions: make([]string, 0, len(sourceFlags))}
	type pendingAudit struct {
		action entity.ActionType
		before *entity.FeatureFlag
		flag   *entity.FeatureFlag
	}
	audits := make([]pendingAudit, 0, len(sourceFlags))
	promoted := make([]*entity.FeatureFlag, 0, len(sourceFlags))

	for _, src := range sourceFlags {
		featureName := src.FeatureId.String()
		if src.Feature != nil {
			featureName = src.Feature.Name
		}

		existing := targetByFeature[src.FeatureId]
		action := entity.ActionCreate
		if existing != nil {
			action = entity.ActionUpdate
			report.Updated++
		} else {
			report.Created++
		}
		report.Actions = append(report.Actions,
			fmt.Sprintf("%s '%s' in %s", action, featureName, request.TargetEnv))

		clone := &entity.FeatureFlag{
			TenantId:  src.TenantId,
			FeatureId: src.FeatureId,
			Env:       request.TargetEnv,
			Enabled:   src.Enabled,
			Strategy:  src.Strategy,
			Details:   src.Details,
		}
		if existing != nil {
			clone.Id = existing.Id
		} else {
			clone.Id = uuid.New()
		}

		promoted = append(promoted, clone)
		audits = append(audits, pendingAudit{action: action, before: existing, flag: clone})
	}

	if request.DryRun {
		report.Message = fmt.Sprintf("Dry run: %d flags would be promoted from '%s' to '%s'",
			len(sourceFlags), request.SourceEnv, request.TargetEnv)
		return report, nil
	}

	// The batch is all-or-nothing: one transaction, one commit.
	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.ConflictOrTransient("failed to start promotion transaction", err)
	}
	defer func() { _ = uow.Rollback() }()

	for _, clone := range promoted {
		if err := uow.FeatureFlagRepository().Upsert(ctx, clone); err != nil {
			return nil, apperrors.ConflictOrTransient("promotion batch failed, no changes applied", err)
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, apperrors.ConflictOrTransient("promotion commit failed, no changes applied", err)
	}

	// Side effects only after the commit: a rolled-back promotion must leave
	// no audit rows and no stale-cache invalidation behind.
	s.invalidateCache(ctx, tenant.Name, request.TargetEnv)
	for _, a := range audits {
		s.audit.Record(ctx, actor, a.action, a.flag.Id, a.before, a.flag)
	}
	s.publishFlagChanged(ctx, events.FlagChangedEvent{
		TenantId:   tenant.Id,
		TenantName: tenant.Name,
		Env:        request.TargetEnv,
		Action:     "PROMOTE",
		Actor:      actor,
	})

	report.Message = fmt.Sprintf("Promoted %d flags from '%s' to '%s'",
		len(sourceFlags), request.SourceEnv, request.TargetEnv)
	return report, nil
}

func (s *featureFlagService) invalidateCache(ctx context.Context, tenantName, env string) {
	key := cache.RawFlagKey(tenantName, env)
	if err := s.flagCache.Delete(ctx, key); err != nil {
		s.logger.Warn("feature-flag", "Cache invalidation failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// publishFlagChanged fans the change out to the in-process warmer and, when
// configured, the NATS bus. Both are best-effort.
func (s *featureFlagService) publishFlagChanged(ctx context.Context, event events.FlagChangedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("feature-flag", "Failed to marshal flag change event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.logger.Warn("feature-flag", "Failed to publish flag change to warmer", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("feature-flag", "Failed to publish flag change to NATS", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// normalizeDetails validates and canonicalizes the strategy payload so the
// stored details never carry fields foreign to the strategy.
func normalizeDetails(strategy entity.EvaluationStrategy, payload *dto.StrategyDetailsPayload) (entity.StrategyDetails, error) {
	if !strategy.Valid() {
		return entity.StrategyDetails{}, apperrors.InvalidArgument(fmt.Sprintf("unknown evaluation strategy '%s'", strategy))
	}

	switch strategy {
	case entity.StrategyPercentage:
		if payload == nil || payload.Percentage == nil {
			return entity.StrategyDetails{}, apperrors.InvalidArgument("percentage is required for PERCENTAGE strategy")
		}
		if *payload.Percentage < 0 || *payload.Percentage > 100 {
			return entity.StrategyDetails{}, apperrors.InvalidArgument("percentage must be between 0 and 100")
		}
		p := *payload.Percentage
		return entity.StrategyDetails{Percentage: &p}, nil

	case entity.StrategyUser:
		users := []string{}
		if payload != nil && payload.Users != nil {
			users = payload.Users
		}
		return entity.StrategyDetails{Users: users}, nil

	default: // BOOLEAN
		return entity.StrategyDetails{}, nil
	}
}

// translateDBError maps Postgres failure classes onto the error kinds the
// HTTP layer knows how to render.
func translateDBError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return apperrors.InvalidReference("tenant or feature does not exist", err)
		case "23505": // unique_violation, concurrent create on the natural key
			return apperrors.ConflictOrTransient("concurrent write on the same flag", err)
		case "40001": // serialization_failure
			return apperrors.ConflictOrTransient("transient serialization conflict, retry the request", err)
		}
	}
	return err
}

func flagToResponse(flag *entity.FeatureFlag) *dto.FlagResponse {
	resp := &dto.FlagResponse{
		Id:        flag.Id,
		TenantId:  flag.TenantId,
		FeatureId: flag.FeatureId,
		Env:       flag.Env,
		Enabled:   flag.Enabled,
		Strategy:  string(flag.Strategy),
		Details: dto.StrategyDetailsPayload{
			Percentage: flag.Details.Percentage,
			Users:      flag.Details.Users,
		},
		UpdatedAt: flag.UpdatedAt,
	}
	if flag.Feature != nil {
		resp.FeatureName = flag.Feature.Name
	}
	return resp
}

func flagsToResponses(flags []*entity.FeatureFlag) []*dto.FlagResponse {
	responses := make([]*dto.FlagResponse, 0, len(flags))
	for _, f := range flags {
		responses = append(responses, flagToResponse(f))
	}
	return responses
}

// cachedFlagsToEntities rebuilds evaluable flags from the cached projection.
func cachedFlagsToEntities(snapshot []*dto.FlagResponse) []*entity.FeatureFlag {
	flags := make([]*entity.FeatureFlag, 0, len(snapshot))
	for _, r := range snapshot {
		flags = append(flags, &entity.FeatureFlag{
			Id:        r.Id,
			TenantId:  r.TenantId,
			FeatureId: r.FeatureId,
			Env:       r.Env,
			Enabled:   r.Enabled,
			Strategy:  entity.EvaluationStrategy(r.Strategy),
			Details: entity.StrategyDetails{
				Percentage: r.Details.Percentage,
				Users:      r.Details.Users,
			},
			UpdatedAt: r.UpdatedAt,
			Feature:   &entity.Feature{Name: r.FeatureName},
		})
	}
	return flags
}
