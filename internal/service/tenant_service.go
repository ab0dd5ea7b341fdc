// FILE: internal/service/tenant_service.go
package service

import (
	"context"

	"feature-flag-be/internal/dto"
	"feature-flag-be/internal/repository/specification"
	"feature-flag-be/internal/repository/unitofwork"
)

type ITenantService interface {
	ListTenants(ctx context.Context) ([]*dto.TenantResponse, error)
	ListFeatureDefinitions(ctx context.Context) ([]*dto.FeatureDefinitionResponse, error)
}

type tenantService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTenantService(uowFactory unitofwork.RepositoryFactory) ITenantService {
	return &tenantService{uowFactory: uowFactory}
}

func (s *tenantService) ListTenants(ctx context.Context) ([]*dto.TenantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tenants, err := uow.TenantRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		responses = append(responses, &dto.TenantResponse{
			Id:        t.Id,
			Name:      t.Name,
			CreatedAt: t.CreatedAt,
		})
	}
	return responses, nil
}

func (s *tenantService) ListFeatureDefinitions(ctx context.Context) ([]*dto.FeatureDefinitionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAll(ctx,
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FeatureDefinitionResponse, 0, len(features))
	for _, f := range features {
		responses = append(responses, &dto.FeatureDefinitionResponse{
			Id:          f.Id,
			Name:        f.Name,
			Description: f.Description,
			CreatedAt:   f.CreatedAt,
		})
	}
	return responses, nil
}
