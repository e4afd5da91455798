// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"

	"github.com/portaldesk/portal-service/internal/types"
)

type ServiceInterface interface {
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	CreateTenant(ctx context.Context, name, adminEmail string) (*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
}

type AuthorizerInterface interface {
	RequireRole(ctx context.Context, roles ...types.Role) (types.Identity, error)
}

type AuditInterface interface {
	RecordAction(identity types.Identity, action, entity, entityID string)
}

// TxManagerInterface runs fn inside a database transaction.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
