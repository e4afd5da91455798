// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
	"github.com/portaldesk/portal-service/pkg/authentication"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	storage StorageInterface
	audit   AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(storage StorageInterface, audit AuditInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.storage = storage
	authorizer.audit = audit
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}

// ResolveIdentity loads the user record behind the authenticated principal.
// "No such user" and "account disabled" collapse into the same
// ErrUnauthenticated result. Read-only, safe to call several times per
// request.
func (a *Authorizer) ResolveIdentity(ctx context.Context) (types.Identity, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ResolveIdentity")
	defer span.End()

	email, ok := authentication.GetPrincipal(ctx)
	if !ok || email == "" {
		return types.Identity{}, ErrUnauthenticated
	}

	user, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.Identity{}, ErrUnauthenticated
		}
		return types.Identity{}, fmt.Errorf("failed to resolve identity: %w", err)
	}

	if !user.IsActive || user.AccountStatus != types.AccountStatusActive {
		return types.Identity{}, ErrUnauthenticated
	}

	switch user.Role {
	case types.RoleOperator:
		return types.OperatorIdentity(user.ID, user.Email), nil
	case types.RoleTenant:
		if user.TenantID == nil {
			// Malformed row, fail closed.
			return types.Identity{}, fmt.Errorf("%w: tenant user has no tenant", ErrForbidden)
		}
		return types.TenantIdentity(user.ID, user.Email, *user.TenantID), nil
	case types.RoleClient:
		if user.ClientID == nil {
			return types.Identity{}, fmt.Errorf("%w: client user has no client profile", ErrForbidden)
		}
		tenantID, err := a.owningTenant(ctx, user)
		if err != nil {
			return types.Identity{}, err
		}
		return types.ClientIdentity(user.ID, user.Email, *user.ClientID, tenantID), nil
	default:
		return types.Identity{}, fmt.Errorf("%w: unknown role %q", ErrForbidden, user.Role)
	}
}

// owningTenant prefers the tenant reference on the user row and falls back
// to the client profile.
func (a *Authorizer) owningTenant(ctx context.Context, user *types.User) (string, error) {
	if user.TenantID != nil {
		return *user.TenantID, nil
	}

	tenantID, err := a.storage.GetClientTenantID(ctx, *user.ClientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: client profile not found", ErrForbidden)
		}
		return "", fmt.Errorf("failed to look up owning tenant: %w", err)
	}

	return tenantID, nil
}

func (a *Authorizer) RequireRole(ctx context.Context, roles ...types.Role) (types.Identity, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireRole")
	defer span.End()

	identity, err := a.ResolveIdentity(ctx)
	if err != nil {
		return types.Identity{}, err
	}

	if !slices.Contains(roles, identity.Role()) {
		a.audit.RecordDenied(&identity, "require_role", "user", identity.UserID(), map[string]string{"required": fmt.Sprint(roles)})
		return types.Identity{}, fmt.Errorf("%w: requires one of roles %v", ErrForbidden, roles)
	}

	return identity, nil
}

func (a *Authorizer) RequireTenantAccess(ctx context.Context, tenantID string) (types.Identity, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireTenantAccess")
	defer span.End()

	identity, err := a.ResolveIdentity(ctx)
	if err != nil {
		return types.Identity{}, err
	}

	if identity.IsOperator() {
		return identity, nil
	}

	if identity.Role() == types.RoleTenant {
		if scope, ok := identity.TenantScope(); ok && scope == tenantID {
			return identity, nil
		}
		a.audit.RecordDenied(&identity, "tenant_access", "tenant", tenantID, nil)
		return types.Identity{}, fmt.Errorf("%w: not a member of this tenant", ErrForbidden)
	}

	a.audit.RecordDenied(&identity, "tenant_access", "tenant", tenantID, nil)
	return types.Identity{}, fmt.Errorf("%w: requires tenant access", ErrForbidden)
}

func (a *Authorizer) RequireClientAccess(ctx context.Context, clientID string) (types.Identity, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireClientAccess")
	defer span.End()

	identity, err := a.ResolveIdentity(ctx)
	if err != nil {
		return types.Identity{}, err
	}

	switch identity.Role() {
	case types.RoleOperator:
		return identity, nil
	case types.RoleClient:
		if scope, ok := identity.ClientScope(); ok && scope == clientID {
			return identity, nil
		}
	case types.RoleTenant:
		// The gate performs the ownership lookup itself rather than trust
		// caller-supplied tenant data.
		tenantID, _ := identity.TenantScope()
		owned, err := a.BelongsToTenant(ctx, clientID, tenantID)
		if err != nil {
			a.logger.Errorf("ownership lookup failed, denying access: %v", err)
			a.audit.RecordDenied(&identity, "client_access", "client_profile", clientID, map[string]string{"reason": "ownership_lookup_failed"})
			return types.Identity{}, fmt.Errorf("%w: client ownership could not be verified", ErrForbidden)
		}
		if owned {
			return identity, nil
		}
	}

	a.audit.RecordDenied(&identity, "client_access", "client_profile", clientID, nil)
	return types.Identity{}, fmt.Errorf("%w: no access to this client", ErrForbidden)
}

// BelongsToTenant reports whether clientID's profile is owned by tenantID.
// A missing profile is not an error, it is simply not owned.
func (a *Authorizer) BelongsToTenant(ctx context.Context, clientID, tenantID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.BelongsToTenant")
	defer span.End()

	if clientID == "" || tenantID == "" {
		return false, nil
	}

	owner, err := a.storage.GetClientTenantID(ctx, clientID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return owner == tenantID, nil
}

// CanAccessResource walks the ownership chain up to the tenant. Operators
// see everything, tenant users see resources in their tenant, client users
// only resources assigned to them.
func (a *Authorizer) CanAccessResource(identity types.Identity, resource ScopedResource) bool {
	if identity.IsOperator() {
		return true
	}

	scope, ok := identity.TenantScope()
	if !ok || scope != resource.OwnerTenant() {
		return false
	}

	if clientID, isClient := identity.ClientScope(); isClient {
		assigned, ok := resource.AssignedClient()
		return ok && assigned == clientID
	}

	return true
}
