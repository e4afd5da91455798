// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/portaldesk/portal-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)

	CreateClientProfile(ctx context.Context, c *types.ClientProfile) (*types.ClientProfile, error)
	GetClientProfileByID(ctx context.Context, id string) (*types.ClientProfile, error)
	GetClientTenantID(ctx context.Context, clientID string) (string, error)
	ListClientProfilesByTenantID(ctx context.Context, tenantID string) ([]*types.ClientProfile, error)

	CreateTask(ctx context.Context, t *types.Task) (*types.Task, error)
	GetTaskByID(ctx context.Context, id string) (*types.Task, error)
	ListTasksByTenantID(ctx context.Context, tenantID string) ([]*types.Task, error)
	ListTasksByClientAssignee(ctx context.Context, clientID string) ([]*types.Task, error)
	UpdateTask(ctx context.Context, t *types.Task, paths []string) error
	DeleteTask(ctx context.Context, id string) error

	CreateNote(ctx context.Context, n *types.MeetingNote) (*types.MeetingNote, error)
	GetNoteByID(ctx context.Context, id string) (*types.MeetingNote, error)
	ListNotesByTenantID(ctx context.Context, tenantID string) ([]*types.MeetingNote, error)
	ListNotesByClientID(ctx context.Context, clientID string) ([]*types.MeetingNote, error)
	UpdateNote(ctx context.Context, n *types.MeetingNote, paths []string) error
	DeleteNote(ctx context.Context, id string) error
	CreateNoteAttachment(ctx context.Context, a *types.NoteAttachment) (*types.NoteAttachment, error)
	ListNoteAttachments(ctx context.Context, noteID string) ([]*types.NoteAttachment, error)
	CountNoteAttachments(ctx context.Context, noteID string) (int, error)

	CreateComment(ctx context.Context, c *types.TaskComment) (*types.TaskComment, error)
	GetCommentByID(ctx context.Context, id string) (*types.TaskComment, error)
	ListCommentsByTaskID(ctx context.Context, taskID string) ([]*types.TaskComment, error)
	UpdateComment(ctx context.Context, c *types.TaskComment) error
	DeleteComment(ctx context.Context, id string) error

	CreateAuditEntry(ctx context.Context, e *types.AuditEntry) error

	CreateNotification(ctx context.Context, n *types.Notification) error
	DeleteNotificationsByTask(ctx context.Context, taskID string) error
}
