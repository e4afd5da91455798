// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tasks

import (
	"context"
	"errors"
	"slices"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tasks -destination ./mock_tasks.go -source=./interfaces.go

var (
	operator   = types.OperatorIdentity("op-1", "op@portaldesk.test")
	tenantUser = types.TenantIdentity("staff-1", "staff@acme.test", "tenant-1")
	clientUser = types.ClientIdentity("portal-1", "client@corp.test", "client-1", "tenant-1")
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockAudit, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, mockStorage, mockAuthz, mockAudit
}

func TestService_ListTasks(t *testing.T) {
	tenantTasks := []*types.Task{
		{ID: "task-1", TenantID: "tenant-1", AssigneeType: types.AssigneeTenant},
		{ID: "task-2", TenantID: "tenant-1", AssigneeType: types.AssigneeClient, AssigneeID: "client-1"},
	}
	clientTasks := tenantTasks[1:]

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name: "tenant user sees every task in the tenant",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().ListTasksByTenantID(gomock.Any(), "tenant-1").Return(tenantTasks, nil)
			},
			expectedLen: 2,
		},
		{
			name: "client user sees only assigned tasks",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().ListTasksByClientAssignee(gomock.Any(), "client-1").Return(clientTasks, nil)
			},
			expectedLen: 1,
		},
		{
			name: "operator has no implicit scope",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(operator, nil)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name: "unauthenticated",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(types.Identity{}, authorization.ErrUnauthenticated)
			},
			expectedErr: authorization.ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz)

			tasks, err := s.ListTasks(context.Background())

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tasks) != tc.expectedLen {
				t.Errorf("expected %d tasks, got %d", tc.expectedLen, len(tasks))
			}
		})
	}
}

func TestService_GetTask(t *testing.T) {
	task := &types.Task{ID: "task-1", TenantID: "tenant-1", AssigneeType: types.AssigneeTenant}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(task, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, task).Return(true)
			},
		},
		{
			name: "out-of-scope task reads as not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(task, nil)
				mockAuthz.EXPECT().CanAccessResource(clientUser, task).Return(false)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "missing task",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz)

			got, err := s.GetTask(context.Background(), "task-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != task.ID {
				t.Errorf("expected task %v, got %v", task, got)
			}
		})
	}
}

func TestService_CreateTask(t *testing.T) {
	testCases := []struct {
		name        string
		task        *types.Task
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name: "tenant user creates in own tenant regardless of payload",
			task: &types.Task{TenantID: "tenant-999", Title: "Prepare filing"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant).Return(tenantUser, nil)
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *types.Task) (*types.Task, error) {
						if task.TenantID != "tenant-1" {
							return nil, errors.New("payload tenant must be overridden")
						}
						if task.Status != types.TaskStatusTodo {
							return nil, errors.New("default status must be todo")
						}
						if task.CreatedBy != tenantUser.UserID() {
							return nil, errors.New("created_by must be the caller")
						}
						created := *task
						created.ID = "task-1"
						return &created, nil
					})
				mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
				mockAudit.EXPECT().RecordAction(tenantUser, "create", "task", "task-1")
			},
		},
		{
			name: "client assignee outside tenant reads as not found",
			task: &types.Task{Title: "Upload documents", AssigneeType: types.AssigneeClient, AssigneeID: "client-999"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant).Return(tenantUser, nil)
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-999", "tenant-1").Return(false, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "operator must name an existing tenant",
			task: &types.Task{TenantID: "tenant-404", Title: "Audit books"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant).Return(operator, nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-404").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "client role cannot create tasks",
			task: &types.Task{Title: "Anything"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant).Return(types.Identity{}, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name: "notification failure does not fail the create",
			task: &types.Task{Title: "Send reminder", AssigneeType: types.AssigneeClient, AssigneeID: "client-1"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant).Return(tenantUser, nil)
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-1", "tenant-1").Return(true, nil)
				mockStorage.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *types.Task) (*types.Task, error) {
						created := *task
						created.ID = "task-2"
						return &created, nil
					})
				mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				mockAudit.EXPECT().RecordAction(tenantUser, "create", "task", "task-2")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			created, err := s.CreateTask(context.Background(), tc.task)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created == nil || created.ID == "" {
				t.Errorf("expected created task, got %v", created)
			}
		})
	}
}

func TestService_UpdateTask(t *testing.T) {
	existing := &types.Task{ID: "task-1", TenantID: "tenant-1", AssigneeType: types.AssigneeClient, AssigneeID: "client-1", Status: types.TaskStatusInProgress}

	testCases := []struct {
		name        string
		update      *types.Task
		paths       []string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name:   "completing a task clears its notifications",
			update: &types.Task{Status: types.TaskStatusCompleted},
			paths:  []string{"status"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				completed := *existing
				completed.Status = types.TaskStatusCompleted

				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(clientUser, existing).Return(true)
				mockStorage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), []string{"status"}).Return(nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(&completed, nil)
				mockStorage.EXPECT().DeleteNotificationsByTask(gomock.Any(), "task-1").Return(nil)
				mockAudit.EXPECT().RecordAction(clientUser, "update", "task", "task-1")
			},
		},
		{
			name:   "reopening a task notifies the assignee again",
			update: &types.Task{Status: types.TaskStatusTodo},
			paths:  []string{"status"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				reopened := *existing
				reopened.Status = types.TaskStatusTodo

				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, existing).Return(true)
				mockStorage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), []string{"status"}).Return(nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(&reopened, nil)
				mockStorage.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
				mockAudit.EXPECT().RecordAction(tenantUser, "update", "task", "task-1")
			},
		},
		{
			name:   "clients cannot reassign",
			update: &types.Task{AssigneeType: types.AssigneeTenant, AssigneeID: "staff-1"},
			paths:  []string{"assignee_type", "assignee_id"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(clientUser, existing).Return(true)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name:   "reassignment revalidates the new client assignee",
			update: &types.Task{AssigneeType: types.AssigneeClient, AssigneeID: "client-404"},
			paths:  []string{"assignee_type", "assignee_id"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, existing).Return(true)
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-404", "tenant-1").Return(false, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:   "patching only the assignee id still revalidates ownership",
			update: &types.Task{AssigneeID: "client-of-other-tenant"},
			paths:  []string{"assignee_id"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, existing).Return(true)
				// The stored assignee type is client, so the partial patch
				// must still be checked against the tenant's clients.
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-of-other-tenant", "tenant-1").Return(false, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:   "partial reassignment writes every assignee column",
			update: &types.Task{AssigneeID: "client-2"},
			paths:  []string{"assignee_id"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				reassigned := *existing
				reassigned.AssigneeID = "client-2"

				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, existing).Return(true)
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-2", "tenant-1").Return(true, nil)
				mockStorage.EXPECT().UpdateTask(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, task *types.Task, paths []string) error {
						for _, path := range []string{"assignee_type", "assignee_id", "client_id"} {
							if !slices.Contains(paths, path) {
								return errors.New("expected path " + path + " to be written")
							}
						}
						if task.AssigneeType != types.AssigneeClient {
							return errors.New("assignee type must be inherited from the stored task")
						}
						if task.ClientID == nil || *task.ClientID != "client-2" {
							return errors.New("client reference must follow the new assignee")
						}
						return nil
					})
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(&reassigned, nil)
				mockAudit.EXPECT().RecordAction(tenantUser, "update", "task", "task-1")
			},
		},
		{
			name:   "cross-tenant update reads as not found",
			update: &types.Task{Status: types.TaskStatusCompleted},
			paths:  []string{"status"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, existing).Return(false)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			updated, err := s.UpdateTask(context.Background(), "task-1", tc.update, tc.paths)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated == nil {
				t.Error("expected updated task, got nil")
			}
		})
	}
}

func TestService_DeleteTask(t *testing.T) {
	existing := &types.Task{ID: "task-1", TenantID: "tenant-1", AssigneeType: types.AssigneeClient, AssigneeID: "client-1"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name: "success clears notifications",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, existing).Return(true)
				mockStorage.EXPECT().DeleteTask(gomock.Any(), "task-1").Return(nil)
				mockStorage.EXPECT().DeleteNotificationsByTask(gomock.Any(), "task-1").Return(nil)
				mockAudit.EXPECT().RecordAction(tenantUser, "delete", "task", "task-1")
			},
		},
		{
			name: "client deletes a task assigned to them",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(clientUser, existing).Return(true)
				mockStorage.EXPECT().DeleteTask(gomock.Any(), "task-1").Return(nil)
				mockStorage.EXPECT().DeleteNotificationsByTask(gomock.Any(), "task-1").Return(nil)
				mockAudit.EXPECT().RecordAction(clientUser, "delete", "task", "task-1")
			},
		},
		{
			name: "cross-tenant delete reads as not found",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().GetTaskByID(gomock.Any(), "task-1").Return(existing, nil)
				mockAuthz.EXPECT().CanAccessResource(clientUser, existing).Return(false)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			err := s.DeleteTask(context.Background(), "task-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
