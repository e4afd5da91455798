// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/portaldesk/portal-service/internal/types"
)

func (s *Storage) CreateNotification(ctx context.Context, n *types.Notification) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateNotification")
	defer span.End()

	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert("notifications").
		Columns("id", "assignee_type", "assignee_id", "task_id", "kind").
		Values(id, n.AssigneeType, n.AssigneeID, n.TaskID, n.Kind).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (s *Storage) DeleteNotificationsByTask(ctx context.Context, taskID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteNotificationsByTask")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("notifications").
		Where(sq.Eq{"task_id": taskID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}
