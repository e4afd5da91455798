// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package comments

import (
	"context"
	"fmt"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

const auditEntity = "task_comment"

var _ ServiceInterface = (*Service)(nil)

// Service manages comments on tasks. A comment has no scope of its own:
// whoever can see the parent task can read and write comments on it, and
// only the author can change or remove a comment afterwards.
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

func (s *Service) ListComments(ctx context.Context, taskID string) ([]*types.TaskComment, error) {
	ctx, span := s.tracer.Start(ctx, "comments.Service.ListComments")
	defer span.End()

	if _, _, err := s.loadAccessibleTask(ctx, taskID); err != nil {
		return nil, err
	}

	return s.storage.ListCommentsByTaskID(ctx, taskID)
}

func (s *Service) CreateComment(ctx context.Context, taskID, body string) (*types.TaskComment, error) {
	ctx, span := s.tracer.Start(ctx, "comments.Service.CreateComment")
	defer span.End()

	identity, _, err := s.loadAccessibleTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	created, err := s.storage.CreateComment(ctx, &types.TaskComment{
		TaskID:    taskID,
		Body:      body,
		CreatedBy: identity.UserID(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.audit.RecordAction(identity, "create", auditEntity, created.ID)

	return created, nil
}

func (s *Service) UpdateComment(ctx context.Context, id, body string) (*types.TaskComment, error) {
	ctx, span := s.tracer.Start(ctx, "comments.Service.UpdateComment")
	defer span.End()

	identity, comment, err := s.loadAccessibleComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.CreatedBy != identity.UserID() {
		return nil, fmt.Errorf("%w: only the author can edit a comment", authorization.ErrForbidden)
	}

	comment.Body = body
	if err := s.storage.UpdateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	s.audit.RecordAction(identity, "update", auditEntity, id)

	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "comments.Service.DeleteComment")
	defer span.End()

	identity, comment, err := s.loadAccessibleComment(ctx, id)
	if err != nil {
		return err
	}
	if comment.CreatedBy != identity.UserID() {
		return fmt.Errorf("%w: only the author can delete a comment", authorization.ErrForbidden)
	}

	if err := s.storage.DeleteComment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.audit.RecordAction(identity, "delete", auditEntity, id)

	return nil
}

// loadAccessibleTask gates on the parent task's scope. Out-of-scope tasks
// read as not-found so comment routes leak nothing either.
func (s *Service) loadAccessibleTask(ctx context.Context, taskID string) (types.Identity, *types.Task, error) {
	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return types.Identity{}, nil, err
	}

	task, err := s.storage.GetTaskByID(ctx, taskID)
	if err != nil {
		return types.Identity{}, nil, err
	}

	if !s.authz.CanAccessResource(identity, task) {
		return types.Identity{}, nil, storage.ErrNotFound
	}

	return identity, task, nil
}

func (s *Service) loadAccessibleComment(ctx context.Context, id string) (types.Identity, *types.TaskComment, error) {
	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return types.Identity{}, nil, err
	}

	comment, err := s.storage.GetCommentByID(ctx, id)
	if err != nil {
		return types.Identity{}, nil, err
	}

	task, err := s.storage.GetTaskByID(ctx, comment.TaskID)
	if err != nil {
		return types.Identity{}, nil, err
	}

	if !s.authz.CanAccessResource(identity, task) {
		return types.Identity{}, nil, storage.ErrNotFound
	}

	return identity, comment, nil
}
