// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"
	"fmt"

	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

const auditEntity = "client_profile"

var _ ServiceInterface = (*Service)(nil)

// Service manages client profiles within a tenant. A profile is the
// anchor for task assignment and note targeting; the portal login user
// created alongside it is what lets the client sign in.
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

func (s *Service) ListClients(ctx context.Context, tenantID string) ([]*types.ClientProfile, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.ListClients")
	defer span.End()

	if _, err := s.authz.RequireTenantAccess(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.storage.ListClientProfilesByTenantID(ctx, tenantID)
}

func (s *Service) GetClient(ctx context.Context, id string) (*types.ClientProfile, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.GetClient")
	defer span.End()

	if _, err := s.authz.RequireClientAccess(ctx, id); err != nil {
		return nil, err
	}

	return s.storage.GetClientProfileByID(ctx, id)
}

// CreateClient provisions the profile and its portal login in one
// transaction. The contact email doubles as the login principal, so a
// duplicate email surfaces as a conflict.
func (s *Service) CreateClient(ctx context.Context, tenantID, displayName, contactEmail string) (*types.ClientProfile, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.CreateClient")
	defer span.End()

	identity, err := s.authz.RequireTenantAccess(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var created *types.ClientProfile
	var login *types.User
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateClientProfile(ctx, &types.ClientProfile{
			TenantID:     tenantID,
			DisplayName:  displayName,
			ContactEmail: contactEmail,
		})
		if err != nil {
			return fmt.Errorf("failed to create client profile: %w", err)
		}

		login, err = s.storage.CreateUser(ctx, &types.User{
			Email:         contactEmail,
			Role:          types.RoleClient,
			TenantID:      &created.TenantID,
			ClientID:      &created.ID,
			AccountStatus: types.AccountStatusActive,
			IsActive:      true,
		})
		if err != nil {
			return fmt.Errorf("failed to create client login: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.RecordAction(identity, "create", auditEntity, created.ID)
	s.audit.RecordAction(identity, "create", "user", login.ID)

	return created, nil
}
