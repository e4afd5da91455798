// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/portaldesk/portal-service/internal/types"
)

const noteColumns = "id, tenant_id, client_id, title, body, created_by, created_at, updated_at"

func scanNote(row sq.RowScanner) (*types.MeetingNote, error) {
	var n types.MeetingNote
	err := row.Scan(&n.ID, &n.TenantID, &n.ClientID, &n.Title, &n.Body, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Storage) CreateNote(ctx context.Context, n *types.MeetingNote) (*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNote")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	note, err := scanNote(s.db.Statement(ctx).
		Insert("meeting_notes").
		Columns("id", "tenant_id", "client_id", "title", "body", "created_by").
		Values(id, n.TenantID, n.ClientID, n.Title, n.Body, n.CreatedBy).
		Suffix("RETURNING " + noteColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	return note, nil
}

func (s *Storage) GetNoteByID(ctx context.Context, id string) (*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetNoteByID")
	defer span.End()

	note, err := scanNote(s.db.Statement(ctx).
		Select(noteColumns).
		From("meeting_notes").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

func (s *Storage) ListNotesByTenantID(ctx context.Context, tenantID string) ([]*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotesByTenantID")
	defer span.End()

	return s.listNotes(ctx, sq.Eq{"tenant_id": tenantID})
}

func (s *Storage) ListNotesByClientID(ctx context.Context, clientID string) ([]*types.MeetingNote, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNotesByClientID")
	defer span.End()

	return s.listNotes(ctx, sq.Eq{"client_id": clientID})
}

func (s *Storage) listNotes(ctx context.Context, where sq.Eq) ([]*types.MeetingNote, error) {
	rows, err := s.db.Statement(ctx).
		Select(noteColumns).
		From("meeting_notes").
		Where(where).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*types.MeetingNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}

func (s *Storage) UpdateNote(ctx context.Context, n *types.MeetingNote, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateNote")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = n.Title
		case "body":
			updateMap["body"] = n.Body
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("meeting_notes").
		SetMap(updateMap).
		Where(sq.Eq{"id": n.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNote")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("meeting_notes").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (s *Storage) CreateNoteAttachment(ctx context.Context, a *types.NoteAttachment) (*types.NoteAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNoteAttachment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var att types.NoteAttachment
	err = s.db.Statement(ctx).
		Insert("note_attachments").
		Columns("id", "note_id", "file_name", "size_bytes", "content_type", "created_by").
		Values(id, a.NoteID, a.FileName, a.SizeBytes, a.ContentType, a.CreatedBy).
		Suffix("RETURNING id, note_id, file_name, size_bytes, content_type, created_by, created_at").
		QueryRowContext(ctx).
		Scan(&att.ID, &att.NoteID, &att.FileName, &att.SizeBytes, &att.ContentType, &att.CreatedBy, &att.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert attachment: %w", err)
	}

	return &att, nil
}

func (s *Storage) ListNoteAttachments(ctx context.Context, noteID string) ([]*types.NoteAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListNoteAttachments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "note_id", "file_name", "size_bytes", "content_type", "created_by", "created_at").
		From("note_attachments").
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []*types.NoteAttachment
	for rows.Next() {
		var a types.NoteAttachment
		if err := rows.Scan(&a.ID, &a.NoteID, &a.FileName, &a.SizeBytes, &a.ContentType, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}

	return attachments, nil
}

func (s *Storage) CountNoteAttachments(ctx context.Context, noteID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountNoteAttachments")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("note_attachments").
		Where(sq.Eq{"note_id": noteID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attachments: %w", err)
	}

	return count, nil
}
