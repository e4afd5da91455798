// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package comments

import (
	"context"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/types"
)

type ServiceInterface interface {
	ListComments(ctx context.Context, taskID string) ([]*types.TaskComment, error)
	CreateComment(ctx context.Context, taskID, body string) (*types.TaskComment, error)
	UpdateComment(ctx context.Context, id, body string) (*types.TaskComment, error)
	DeleteComment(ctx context.Context, id string) error
}

type StorageInterface interface {
	GetTaskByID(ctx context.Context, id string) (*types.Task, error)
	CreateComment(ctx context.Context, c *types.TaskComment) (*types.TaskComment, error)
	GetCommentByID(ctx context.Context, id string) (*types.TaskComment, error)
	ListCommentsByTaskID(ctx context.Context, taskID string) ([]*types.TaskComment, error)
	UpdateComment(ctx context.Context, c *types.TaskComment) error
	DeleteComment(ctx context.Context, id string) error
}

type AuthorizerInterface interface {
	ResolveIdentity(ctx context.Context) (types.Identity, error)
	CanAccessResource(identity types.Identity, resource authorization.ScopedResource) bool
}

type AuditInterface interface {
	RecordAction(identity types.Identity, action, entity, entityID string)
}
