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

const taskColumns = "id, tenant_id, client_id, assignee_type, assignee_id, status, title, description, created_by, created_at, updated_at"

func scanTask(row sq.RowScanner) (*types.Task, error) {
	var t types.Task
	err := row.Scan(&t.ID, &t.TenantID, &t.ClientID, &t.AssigneeType, &t.AssigneeID,
		&t.Status, &t.Title, &t.Description, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) CreateTask(ctx context.Context, t *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTask")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	task, err := scanTask(s.db.Statement(ctx).
		Insert("tasks").
		Columns("id", "tenant_id", "client_id", "assignee_type", "assignee_id", "status", "title", "description", "created_by").
		Values(id, t.TenantID, t.ClientID, t.AssigneeType, t.AssigneeID, t.Status, t.Title, t.Description, t.CreatedBy).
		Suffix("RETURNING " + taskColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return task, nil
}

func (s *Storage) GetTaskByID(ctx context.Context, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTaskByID")
	defer span.End()

	task, err := scanTask(s.db.Statement(ctx).
		Select(taskColumns).
		From("tasks").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (s *Storage) ListTasksByTenantID(ctx context.Context, tenantID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasksByTenantID")
	defer span.End()

	return s.listTasks(ctx, sq.Eq{"tenant_id": tenantID})
}

func (s *Storage) ListTasksByClientAssignee(ctx context.Context, clientID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTasksByClientAssignee")
	defer span.End()

	return s.listTasks(ctx, sq.Eq{"assignee_type": types.AssigneeClient, "assignee_id": clientID})
}

func (s *Storage) listTasks(ctx context.Context, where sq.Eq) ([]*types.Task, error) {
	rows, err := s.db.Statement(ctx).
		Select(taskColumns).
		From("tasks").
		Where(where).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*types.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// UpdateTask follows PATCH semantics, only the fields named in paths are
// written. updated_at is always bumped.
func (s *Storage) UpdateTask(ctx context.Context, t *types.Task, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTask")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = t.Title
		case "description":
			updateMap["description"] = t.Description
		case "status":
			updateMap["status"] = t.Status
		case "client_id":
			updateMap["client_id"] = t.ClientID
		case "assignee_type":
			updateMap["assignee_type"] = t.AssigneeType
		case "assignee_id":
			updateMap["assignee_id"] = t.AssigneeID
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("tasks").
		SetMap(updateMap).
		Where(sq.Eq{"id": t.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteTask(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTask")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("tasks").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
