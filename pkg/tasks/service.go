// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tasks

import (
	"context"
	"fmt"
	"slices"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

const (
	auditEntity      = "task"
	notificationKind = "task_pending"
)

var _ ServiceInterface = (*Service)(nil)

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

// ListTasks is deliberately asymmetric: tenant users see every task in
// their tenant, including ones assigned to clients, while client users see
// only tasks assigned to them.
func (s *Service) ListTasks(ctx context.Context) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Service.ListTasks")
	defer span.End()

	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if clientID, ok := identity.ClientScope(); ok {
		return s.storage.ListTasksByClientAssignee(ctx, clientID)
	}

	if tenantID, ok := identity.TenantScope(); ok {
		return s.storage.ListTasksByTenantID(ctx, tenantID)
	}

	// Operators have no implicit scope, they list per tenant.
	return nil, fmt.Errorf("%w: no task scope for this caller, list by tenant instead", authorization.ErrForbidden)
}

func (s *Service) ListTenantTasks(ctx context.Context, tenantID string) ([]*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Service.ListTenantTasks")
	defer span.End()

	if _, err := s.authz.RequireTenantAccess(ctx, tenantID); err != nil {
		return nil, err
	}

	return s.storage.ListTasksByTenantID(ctx, tenantID)
}

// GetTask returns not-found for tasks outside the caller's scope, so a
// caller cannot probe which IDs exist in other tenants.
func (s *Service) GetTask(ctx context.Context, id string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Service.GetTask")
	defer span.End()

	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.storage.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.authz.CanAccessResource(identity, task) {
		return nil, storage.ErrNotFound
	}

	return task, nil
}

func (s *Service) CreateTask(ctx context.Context, task *types.Task) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Service.CreateTask")
	defer span.End()

	identity, err := s.authz.RequireRole(ctx, types.RoleOperator, types.RoleTenant)
	if err != nil {
		return nil, err
	}

	// Tenant users always create in their own tenant, whatever the payload
	// says. Operators must name a real one.
	if tenantID, ok := identity.TenantScope(); ok {
		task.TenantID = tenantID
	} else if _, err := s.storage.GetTenantByID(ctx, task.TenantID); err != nil {
		return nil, err
	}

	if err := s.resolveAssignee(ctx, task); err != nil {
		return nil, err
	}

	if task.Status == "" {
		task.Status = types.TaskStatusTodo
	}
	task.CreatedBy = identity.UserID()

	created, err := s.storage.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.syncNotifications(ctx, created)
	s.audit.RecordAction(identity, "create", auditEntity, created.ID)

	return created, nil
}

func (s *Service) UpdateTask(ctx context.Context, id string, update *types.Task, paths []string) (*types.Task, error) {
	ctx, span := s.tracer.Start(ctx, "tasks.Service.UpdateTask")
	defer span.End()

	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanAccessResource(identity, existing) {
		return nil, storage.ErrNotFound
	}

	if slices.Contains(paths, "assignee_type") || slices.Contains(paths, "assignee_id") {
		if identity.Role() == types.RoleClient {
			return nil, fmt.Errorf("%w: clients cannot reassign tasks", authorization.ErrForbidden)
		}

		// A partial patch inherits the stored assignee fields so the
		// ownership check runs against the effective assignment, and all
		// three assignee columns are written together so they cannot
		// drift apart.
		if !slices.Contains(paths, "assignee_type") {
			update.AssigneeType = existing.AssigneeType
		}
		if !slices.Contains(paths, "assignee_id") {
			update.AssigneeID = existing.AssigneeID
		}

		update.TenantID = existing.TenantID
		if err := s.resolveAssignee(ctx, update); err != nil {
			return nil, err
		}
		for _, path := range []string{"assignee_type", "assignee_id", "client_id"} {
			if !slices.Contains(paths, path) {
				paths = append(paths, path)
			}
		}
	}

	update.ID = id
	if err := s.storage.UpdateTask(ctx, update, paths); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	updated, err := s.storage.GetTaskByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated task: %w", err)
	}

	if updated.Status != existing.Status {
		s.syncNotifications(ctx, updated)
	}
	s.audit.RecordAction(identity, "update", auditEntity, id)

	return updated, nil
}

// DeleteTask follows the get access path: whoever can read a task can
// delete it, clients included for tasks assigned to them.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tasks.Service.DeleteTask")
	defer span.End()

	identity, err := s.authz.ResolveIdentity(ctx)
	if err != nil {
		return err
	}

	existing, err := s.storage.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.authz.CanAccessResource(identity, existing) {
		return storage.ErrNotFound
	}

	if err := s.storage.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if err := s.storage.DeleteNotificationsByTask(ctx, id); err != nil {
		s.logger.Warnf("failed to clear notifications for deleted task %s: %v", id, err)
	}
	s.audit.RecordAction(identity, "delete", auditEntity, id)

	return nil
}

// resolveAssignee validates the assignee against the task's tenant and
// keeps the denormalized client reference in sync. A client assignee that
// does not belong to the tenant reads as not-found.
func (s *Service) resolveAssignee(ctx context.Context, task *types.Task) error {
	if task.AssigneeType != types.AssigneeClient {
		task.AssigneeType = types.AssigneeTenant
		task.ClientID = nil
		return nil
	}

	owned, err := s.authz.BelongsToTenant(ctx, task.AssigneeID, task.TenantID)
	if err != nil {
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	if !owned {
		return fmt.Errorf("%w: assigned client does not exist in this tenant", storage.ErrNotFound)
	}

	clientID := task.AssigneeID
	task.ClientID = &clientID

	return nil
}

// syncNotifications keeps the assignee's pending-work signal aligned with
// the task status. Best effort: a notification failure never fails the
// task mutation.
func (s *Service) syncNotifications(ctx context.Context, task *types.Task) {
	var err error
	if task.Status == types.TaskStatusCompleted {
		err = s.storage.DeleteNotificationsByTask(ctx, task.ID)
	} else {
		err = s.storage.CreateNotification(ctx, &types.Notification{
			AssigneeType: task.AssigneeType,
			AssigneeID:   task.AssigneeID,
			TaskID:       task.ID,
			Kind:         notificationKind,
		})
	}

	if err != nil {
		s.logger.Warnf("failed to sync notifications for task %s: %v", task.ID, err)
	}
}
