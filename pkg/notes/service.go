// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

const (
	auditEntity = "meeting_note"

	maxAttachmentsPerNote = 10
	maxAttachmentSize     = 5 << 20 // bytes
)

var (
	// ErrAttachmentLimit is returned when a note already carries the
	// maximum number of attachments.
	ErrAttachmentLimit = errors.New("attachment limit reached for this note")

	// ErrAttachmentTooLarge is returned for attachments over the per-file
	// size cap.
	ErrAttachmentTooLarge = errors.New("attachment exceeds the size limit")
)

var _ ServiceInterface = (*Service)(nil)

// Service manages meeting notes. Notes are tenant-scoped; a note may
// additionally target a single client, which makes it visible to that
// client's portal users. Edits and deletes are reserved for the author.
type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	audit   AuditInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	audit AuditInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		audit:   audit,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListNotes(ctx context.Context) ([]*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.ListNotes")
	defer span.End()

	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if clientID, ok := identity.ClientScope(); ok {
		return s.storage.ListNotesByClientID(ctx, clientID)
	}

	if tenantID, ok := identity.TenantScope(); ok {
		return s.storage.ListNotesByTenantID(ctx, tenantID)
	}

	return nil, fmt.Errorf("%w: no note scope for this caller, list by tenant instead", authorization.ErrForbidden)
}

func (s *Service) ListTenantNotes(ctx context.Context, tenantID string) ([]*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.ListTenantNotes")
	defer span.End()

	if _, err := s.authz.RequireTenantAccess(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.storage.ListNotesByTenantID(ctx, tenantID)
}

func (s *Service) GetNote(ctx context.Context, id string) (*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.GetNote")
	defer span.End()

	_, note, err := s.loadAccessible(ctx, id)
	return note, err
}

func (s *Service) CreateNote(ctx context.Context, note *types.MeetingNote) (*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.CreateNote")
	defer span.End()

	identity, err := s.authz.RequireRole(ctx, types.RoleOperator, types.RoleTenant, types.RoleClient)
	if err != nil {
		return nil, err
	}

	if tenantID, ok := identity.TenantScope(); ok {
		note.TenantID = tenantID
	}

	if clientID, ok := identity.ClientScope(); ok {
		// Client authors target themselves, never another client.
		if note.ClientID != nil && *note.ClientID != clientID {
			return nil, fmt.Errorf("%w: clients can only author notes about themselves", authorization.ErrForbidden)
		}
		target := clientID
		note.ClientID = &target
	} else if note.ClientID != nil {
		owned, err := s.authz.BelongsToTenant(ctx, *note.ClientID, note.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify note target: %w", err)
		}
		if !owned {
			return nil, fmt.Errorf("%w: target client does not exist in this tenant", storage.ErrNotFound)
		}
	}

	note.CreatedBy = identity.UserID()

	created, err := s.storage.CreateNote(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	s.audit.RecordAction(identity, "create", auditEntity, created.ID)

	return created, nil
}

// UpdateNote is author-only. Other users in scope can read the note but
// get forbidden here; users out of scope cannot tell the note exists.
func (s *Service) UpdateNote(ctx context.Context, id string, update *types.MeetingNote, paths []string) (*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.UpdateNote")
	defer span.End()

	identity, existing, err := s.loadAccessible(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy != identity.UserID() {
		return nil, fmt.Errorf("%w: only the author can edit a note", authorization.ErrForbidden)
	}

	update.ID = id
	if err := s.storage.UpdateNote(ctx, update, paths); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	updated, err := s.storage.GetNoteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated note: %w", err)
	}

	s.audit.RecordAction(identity, "update", auditEntity, id)

	return updated, nil
}

func (s *Service) DeleteNote(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "notes.Service.DeleteNote")
	defer span.End()

	identity, existing, err := s.loadAccessible(ctx, id)
	if err != nil {
		return err
	}
	if existing.CreatedBy != identity.UserID() {
		return fmt.Errorf("%w: only the author can delete a note", authorization.ErrForbidden)
	}

	if err := s.storage.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.audit.RecordAction(identity, "delete", auditEntity, id)

	return nil
}

// AddAttachment follows the note's edit rules: only the author may attach.
func (s *Service) AddAttachment(ctx context.Context, noteID string, attachment *types.NoteAttachment) (*types.NoteAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.AddAttachment")
	defer span.End()

	identity, note, err := s.loadAccessible(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.CreatedBy != identity.UserID() {
		return nil, fmt.Errorf("%w: only the author can attach files", authorization.ErrForbidden)
	}

	if attachment.SizeBytes > maxAttachmentSize {
		return nil, ErrAttachmentTooLarge
	}

	count, err := s.storage.CountNoteAttachments(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attachments: %w", err)
	}
	if count >= maxAttachmentsPerNote {
		return nil, ErrAttachmentLimit
	}

	attachment.NoteID = noteID
	attachment.CreatedBy = identity.UserID()

	created, err := s.storage.CreateNoteAttachment(ctx, attachment)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment: %w", err)
	}

	s.audit.RecordAction(identity, "attach", auditEntity, noteID)

	return created, nil
}

func (s *Service) ListAttachments(ctx context.Context, noteID string) ([]*types.NoteAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "notes.Service.ListAttachments")
	defer span.End()

	if _, _, err := s.loadAccessible(ctx, noteID); err != nil {
		return nil, err
	}

	return s.storage.ListNoteAttachments(ctx, noteID)
}

// loadAccessible resolves the caller and loads the note, collapsing
// out-of-scope notes into not-found.
func (s *Service) loadAccessible(ctx context.Context, id string) (types.Identity, *types.MeetingNote, error) {
	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return types.Identity{}, nil, err
	}

	note, err := s.storage.GetNoteByID(ctx, id)
	if err != nil {
		return types.Identity{}, nil, err
	}

	if !s.authz.CanAccessResource(identity, note) {
		return types.Identity{}, nil, storage.ErrNotFound
	}

	return identity, note, nil
}
