// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_tenants.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface, *MockTxManagerInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)
	mockTx := NewMockTxManagerInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockAudit, mockTx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, mockStorage, mockAuthz, mockAudit, mockTx
}

func TestService_ListTenants(t *testing.T) {
	operator := types.OperatorIdentity("op-1", "op@portaldesk.test")
	expected := []*types.Tenant{
		{ID: "tenant-1", Name: "Acme"},
		{ID: "tenant-2", Name: "Globex"},
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(operator, nil)
				mockStorage.EXPECT().ListTenants(gomock.Any()).Return(expected, nil)
			},
			expectedLen: 2,
		},
		{
			name: "forbidden for non-operators",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(types.Identity{}, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz)

			tenants, err := s.ListTenants(context.Background())

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tenants) != tc.expectedLen {
				t.Errorf("expected %d tenants, got %d", tc.expectedLen, len(tenants))
			}
		})
	}
}

func TestService_CreateTenant(t *testing.T) {
	operator := types.OperatorIdentity("op-1", "op@portaldesk.test")
	created := &types.Tenant{ID: "tenant-1", Name: "Acme", Enabled: true}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface, *MockTxManagerInterface)
		expectedErr bool
	}{
		{
			name: "success - tenant and admin created in one transaction",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface, mockTx *MockTxManagerInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(operator, nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						if tenant.Name != "Acme" || !tenant.Enabled {
							return nil, errors.New("unexpected tenant payload")
						}
						return created, nil
					})
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.Role != types.RoleTenant {
							return nil, errors.New("admin must have tenant role")
						}
						if u.TenantID == nil || *u.TenantID != created.ID {
							return nil, errors.New("admin not bound to new tenant")
						}
						admin := *u
						admin.ID = "user-1"
						return &admin, nil
					})
				mockAudit.EXPECT().RecordAction(operator, "create", "tenant", created.ID)
				mockAudit.EXPECT().RecordAction(operator, "create", "user", "user-1")
			},
		},
		{
			name: "forbidden",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface, mockTx *MockTxManagerInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(types.Identity{}, authorization.ErrForbidden)
			},
			expectedErr: true,
		},
		{
			name: "admin creation failure rolls back the tenant",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface, mockTx *MockTxManagerInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(operator, nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(created, nil)
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit, mockTx := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit, mockTx)

			tenant, err := s.CreateTenant(context.Background(), "Acme", "admin@acme.test")

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant == nil || tenant.ID != created.ID {
				t.Errorf("expected tenant %v, got %v", created, tenant)
			}
		})
	}
}

func TestService_UpdateTenant(t *testing.T) {
	operator := types.OperatorIdentity("op-1", "op@portaldesk.test")
	update := &types.Tenant{ID: "tenant-1", Name: "Renamed"}
	paths := []string{"name"}
	updated := &types.Tenant{ID: "tenant-1", Name: "Renamed", Enabled: true}

	s, mockStorage, mockAuthz, mockAudit, _ := newTestService(t)

	mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(operator, nil)
	mockStorage.EXPECT().UpdateTenant(gomock.Any(), update, paths).Return(nil)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), update.ID).Return(updated, nil)
	mockAudit.EXPECT().RecordAction(operator, "update", "tenant", update.ID)

	result, err := s.UpdateTenant(context.Background(), update, paths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "Renamed" {
		t.Errorf("expected updated tenant, got %v", result)
	}
}

func TestService_DeleteTenant(t *testing.T) {
	operator := types.OperatorIdentity("op-1", "op@portaldesk.test")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(operator, nil)
				mockStorage.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(nil)
				mockAudit.EXPECT().RecordAction(operator, "delete", "tenant", "tenant-1")
			},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator).Return(operator, nil)
				mockStorage.EXPECT().DeleteTenant(gomock.Any(), "tenant-1").Return(errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			err := s.DeleteTenant(context.Background(), "tenant-1")

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
