// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"fmt"

	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

const auditEntity = "tenant"

var _ ServiceInterface = (*Service)(nil)

// Service implements tenant administration. Every operation is restricted
// to operators.
type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	audit   AuditInterface
	tx      TxManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	audit AuditInterface,
	tx TxManagerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		audit:   audit,
		tx:      tx,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ListTenants")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, types.RoleOperator); err != nil {
		return nil, err
	}

	return s.storage.ListTenants(ctx)
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.GetTenant")
	defer span.End()

	if _, err := s.authz.RequireRole(ctx, types.RoleOperator); err != nil {
		return nil, err
	}

	return s.storage.GetTenantByID(ctx, id)
}

// CreateTenant provisions a tenant and its first admin user atomically.
// A tenant without an admin would be unreachable, so both rows go in one
// transaction.
func (s *Service) CreateTenant(ctx context.Context, name, adminEmail string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateTenant")
	defer span.End()

	identity, err := s.authz.RequireRole(ctx, types.RoleOperator)
	if err != nil {
		return nil, err
	}

	var created *types.Tenant
	var admin *types.User
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Enabled: true})
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		admin, err = s.storage.CreateUser(ctx, &types.User{
			Email:         adminEmail,
			Role:          types.RoleTenant,
			TenantID:      &created.ID,
			AccountStatus: types.AccountStatusActive,
			IsActive:      true,
		})
		if err != nil {
			return fmt.Errorf("failed to create tenant admin: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordAction(identity, "create", auditEntity, created.ID)
	s.audit.RecordAction(identity, "create", "user", admin.ID)

	return created, nil
}

func (s *Service) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.UpdateTenant")
	defer span.End()

	identity, err := s.authz.RequireRole(ctx, types.RoleOperator)
	if err != nil {
		return nil, err
	}

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	s.audit.RecordAction(identity, "update", auditEntity, tenant.ID)

	return updated, nil
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.DeleteTenant")
	defer span.End()

	identity, err := s.authz.RequireRole(ctx, types.RoleOperator)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	s.audit.RecordAction(identity, "delete", auditEntity, id)

	return nil
}
