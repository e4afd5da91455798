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

func (s *Storage) CreateComment(ctx context.Context, c *types.TaskComment) (*types.TaskComment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateComment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var comment types.TaskComment
	err = s.db.Statement(ctx).
		Insert("task_comments").
		Columns("id", "task_id", "body", "created_by").
		Values(id, c.TaskID, c.Body, c.CreatedBy).
		Suffix("RETURNING id, task_id, body, created_by, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&comment.ID, &comment.TaskID, &comment.Body, &comment.CreatedBy, &comment.CreatedAt, &comment.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return &comment, nil
}

func (s *Storage) GetCommentByID(ctx context.Context, id string) (*types.TaskComment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCommentByID")
	defer span.End()

	var c types.TaskComment
	err := s.db.Statement(ctx).
		Select("id", "task_id", "body", "created_by", "created_at", "updated_at").
		From("task_comments").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.TaskID, &c.Body, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCommentsByTaskID(ctx context.Context, taskID string) ([]*types.TaskComment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCommentsByTaskID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "task_id", "body", "created_by", "created_at", "updated_at").
		From("task_comments").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*types.TaskComment
	for rows.Next() {
		var c types.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Body, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func (s *Storage) UpdateComment(ctx context.Context, c *types.TaskComment) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateComment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("task_comments").
		Set("body", c.Body).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteComment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteComment")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("task_comments").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
