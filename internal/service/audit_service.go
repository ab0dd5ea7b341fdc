// FILE: internal/service/audit_service.go
package service

import (
	"context"
	"encoding/json"
	"math"

	"feature-flag-be/internal/dto"
	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/pkg/logger"
	"feature-flag-be/internal/repository/specification"
	"feature-flag-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const auditTargetEntity = "FeatureFlag"

type IAuditService interface {
	// Record appends one immutable before/after snapshot. Failures are
	// logged and swallowed: audit is observability, not correctness, so it
	// must never fail or roll back the triggering mutation.
	Record(ctx context.Context, actor string, action entity.ActionType, targetId uuid.UUID, diffBefore, diffAfter *entity.FeatureFlag)
	ListByTarget(ctx context.Context, targetId uuid.UUID, page, limit int) (*dto.AuditLogListResponse, error)
}

type auditService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuditService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IAuditService {
	return &auditService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *auditService) Record(ctx context.Context, actor string, action entity.ActionType, targetId uuid.UUID, diffBefore, diffAfter *entity.FeatureFlag) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry := &entity.AuditLog{
		Id:           uuid.New(),
		Actor:        actor,
		Action:       action,
		TargetEntity: auditTargetEntity,
		TargetId:     targetId,
		DiffBefore:   flagToDiff(diffBefore),
		DiffAfter:    flagToDiff(diffAfter),
	}

	if err := uow.AuditLogRepository().Create(ctx, entry); err != nil {
		s.logger.Error("audit", "Failed to append audit log", map[string]interface{}{
			"error":     err.Error(),
			"actor":     actor,
			"action":    string(action),
			"target_id": targetId.String(),
		})
		return
	}

	s.logger.Info("audit", "Audit log appended", map[string]interface{}{
		"actor":     actor,
		"action":    string(action),
		"target_id": targetId.String(),
	})
}

func (s *auditService) ListByTarget(ctx context.Context, targetId uuid.UUID, page, limit int) (*dto.AuditLogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	filterSpecs := []specification.Specification{
		specification.ByTargetID{TargetID: targetId},
		specification.ByTargetEntity{Entity: auditTargetEntity},
	}

	total, err := uow.AuditLogRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filterSpecs,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	logs, err := uow.AuditLogRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	data := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		data = append(data, &dto.AuditLogResponse{
			Id:           l.Id,
			Actor:        l.Actor,
			Action:       string(l.Action),
			TargetEntity: l.TargetEntity,
			TargetId:     l.TargetId,
			DiffBefore:   l.DiffBefore,
			DiffAfter:    l.DiffAfter,
			Timestamp:    l.Timestamp,
		})
	}

	return &dto.AuditLogListResponse{
		Data: data,
		Meta: dto.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

// flagToDiff turns a flag snapshot into a JSON object for the audit row.
// A nil snapshot (no prior/new row) becomes an empty object.
func flagToDiff(flag *entity.FeatureFlag) map[string]interface{} {
	if flag == nil {
		return map[string]interface{}{}
	}

	details := map[string]interface{}{}
	if raw, err := json.Marshal(flag.Details); err == nil {
		_ = json.Unmarshal(raw, &details)
	}

	return map[string]interface{}{
		"id":                  flag.Id.String(),
		"tenant_id":           flag.TenantId.String(),
		"feature_id":          flag.FeatureId.String(),
		"env":                 flag.Env,
		"enabled":             flag.Enabled,
		"evaluation_strategy": string(flag.Strategy),
		"evaluation_details":  details,
		"updated_at":          flag.UpdatedAt,
	}
}
