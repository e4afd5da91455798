// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/portaldesk/portal-service/internal/types"
)

type AuthorizerInterface interface {
	// ResolveIdentity maps the request's authenticated principal to an
	// active user record. Returns ErrUnauthenticated when there is none.
	ResolveIdentity(ctx context.Context) (types.Identity, error)

	// RequireRole accepts the request only when the resolved identity holds
	// one of the given roles.
	RequireRole(ctx context.Context, roles ...types.Role) (types.Identity, error)

	// RequireTenantAccess is the sole authority for "may this caller act as
	// this tenant". Operators always pass, a tenant passes only for itself.
	RequireTenantAccess(ctx context.Context, tenantID string) (types.Identity, error)

	// RequireClientAccess authorizes acting on a client: operators always,
	// the client itself, or the tenant that owns the client.
	RequireClientAccess(ctx context.Context, clientID string) (types.Identity, error)

	// BelongsToTenant reports whether the client profile is owned by the
	// tenant. Also used by services to validate payload-supplied client
	// references, which is distinct from gating the caller's own access.
	BelongsToTenant(ctx context.Context, clientID, tenantID string) (bool, error)

	// CanAccessResource is the shared visibility predicate over the
	// ownership chain, used by every resource service.
	CanAccessResource(identity types.Identity, resource ScopedResource) bool
}

// ScopedResource is anything that hangs off the Tenant -> Client ownership
// chain. Task and MeetingNote implement it; comments inherit scope through
// their parent task.
type ScopedResource interface {
	OwnerTenant() string
	AssignedClient() (string, bool)
}

// StorageInterface is the subset of the storage layer the gates need.
type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetClientTenantID(ctx context.Context, clientID string) (string, error)
}

// AuditInterface receives every gate denial. Entries are best-effort and
// must never block the request.
type AuditInterface interface {
	RecordDenied(identity *types.Identity, action, entity, entityID string, metadata map[string]string)
}
