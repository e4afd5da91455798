// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/types"
)

type ServiceInterface interface {
	ListNotes(ctx context.Context) ([]*types.MeetingNote, error)
	ListTenantNotes(ctx context.Context, tenantID string) ([]*types.MeetingNote, error)
	GetNote(ctx context.Context, id string) (*types.MeetingNote, error)
	CreateNote(ctx context.Context, note *types.MeetingNote) (*types.MeetingNote, error)
	UpdateNote(ctx context.Context, id string, update *types.MeetingNote, paths []string) (*types.MeetingNote, error)
	DeleteNote(ctx context.Context, id string) error

	AddAttachment(ctx context.Context, noteID string, attachment *types.NoteAttachment) (*types.NoteAttachment, error)
	ListAttachments(ctx context.Context, noteID string) ([]*types.NoteAttachment, error)
}

type StorageInterface interface {
	CreateNote(ctx context.Context, n *types.MeetingNote) (*types.MeetingNote, error)
	GetNoteByID(ctx context.Context, id string) (*types.MeetingNote, error)
	ListNotesByTenantID(ctx context.Context, tenantID string) ([]*types.MeetingNote, error)
	ListNotesByClientID(ctx context.Context, clientID string) ([]*types.MeetingNote, error)
	UpdateNote(ctx context.Context, n *types.MeetingNote, paths []string) error
	DeleteNote(ctx context.Context, id string) error
	CreateNoteAttachment(ctx context.Context, a *types.NoteAttachment) (*types.NoteAttachment, error)
	ListNoteAttachments(ctx context.Context, noteID string) ([]*types.NoteAttachment, error)
	CountNoteAttachments(ctx context.Context, noteID string) (int, error)
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
