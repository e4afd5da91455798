// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"

	"github.com/portaldesk/portal-service/internal/types"
)

type ServiceInterface interface {
	ListClients(ctx context.Context, tenantID string) ([]*types.ClientProfile, error)
	GetClient(ctx context.Context, id string) (*types.ClientProfile, error)
	CreateClient(ctx context.Context, tenantID, displayName, contactEmail string) (*types.ClientProfile, error)
}

type StorageInterface interface {
	CreateClientProfile(ctx context.Context, c *types.ClientProfile) (*types.ClientProfile, error)
	GetClientProfileByID(ctx context.Context, id string) (*types.ClientProfile, error)
	ListClientProfilesByTenantID(ctx context.Context, tenantID string) ([]*types.ClientProfile, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
}

type AuthorizerInterface interface {
	RequireTenantAccess(ctx context.Context, tenantID string) (types.Identity, error)
	RequireClientAccess(ctx context.Context, clientID string) (types.Identity, error)
}

type AuditInterface interface {
	RecordAction(identity types.Identity, action, entity, entityID string)
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
