// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tasks

import (
	"context"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/types"
)

type ServiceInterface interface {
	// ListTasks returns the caller-scoped view: every task in the tenant
	// for tenant users, only assigned tasks for client users.
	ListTasks(ctx context.Context) ([]*types.Task, error)
	ListTenantTasks(ctx context.Context, tenantID string) ([]*types.Task, error)
	GetTask(ctx context.Context, id string) (*types.Task, error)
	CreateTask(ctx context.Context, task *types.Task) (*types.Task, error)
	UpdateTask(ctx context.Context, id string, update *types.Task, paths []string) (*types.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTaskByID(ctx context.Context, id string) (*types.Task, error)
	ListTasksByTenantID(ctx context.Context, tenantID string) ([]*types.Task, error)
	ListTasksByClientAssignee(ctx context.Context, clientID string) ([]*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task, paths []string) error
	DeleteTask(ctx context.Context, id string) error
	CreateNotification(ctx context.Context, n *types.Notification) error
	DeleteNotificationsByTask(ctx context.Context, taskID string) error
}

type AuthorizerInterface interface {
	ResolveIdentity(ctx context.Context) (types.Identity, error)
	RequireRole(ctx context.Context, roles ...types.Role) (types.Identity, error)
	RequireTenantAccess(ctx context.Context, tenantID string) (types.Identity, error)
	BelongsToTenant(ctx context.Context, clientID, tenantID string) (bool, error)
	CanAccessResource(identity types.Identity, resource authorization.ScopedResource) bool
}

type AuditInterface interface {
	RecordAction(identity types.Identity, action, entity, entityID string)
}
