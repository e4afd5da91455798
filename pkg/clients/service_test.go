// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/portaldesk/portal-service/internal/authorization"
	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/storage"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_clients.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface, *MockTxManagerInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)
	mockTx := NewMockTxManagerInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockAudit, mockTx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, mockStorage, mockAuthz, mockAudit, mockTx
}

func TestService_ListClients(t *testing.T) {
	tenantUser := types.TenantIdentity("user-1", "staff@acme.test", "tenant-1")
	profiles := []*types.ClientProfile{
		{ID: "client-1", TenantID: "tenant-1", DisplayName: "First"},
		{ID: "client-2", TenantID: "tenant-1", DisplayName: "Second"},
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
				mockAuthz.EXPECT().RequireTenantAccess(gomock.Any(), "tenant-1").Return(tenantUser, nil)
				mockStorage.EXPECT().ListClientProfilesByTenantID(gomock.Any(), "tenant-1").Return(profiles, nil)
			},
			expectedLen: 2,
		},
		{
			name: "foreign tenant denied",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().RequireTenantAccess(gomock.Any(), "tenant-1").Return(types.Identity{}, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz)

			clients, err := s.ListClients(context.Background(), "tenant-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(clients) != tc.expectedLen {
				t.Errorf("expected %d clients, got %d", tc.expectedLen, len(clients))
			}
		})
	}
}

func TestService_GetClient(t *testing.T) {
	clientUser := types.ClientIdentity("user-9", "client@corp.test", "client-1", "tenant-1")
	profile := &types.ClientProfile{ID: "client-1", TenantID: "tenant-1", DisplayName: "First"}

	s, mockStorage, mockAuthz, _, _ := newTestService(t)

	mockAuthz.EXPECT().RequireClientAccess(gomock.Any(), "client-1").Return(clientUser, nil)
	mockStorage.EXPECT().GetClientProfileByID(gomock.Any(), "client-1").Return(profile, nil)

	got, err := s.GetClient(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != profile.ID {
		t.Errorf("expected profile %v, got %v", profile, got)
	}
}

func TestService_CreateClient(t *testing.T) {
	tenantUser := types.TenantIdentity("user-1", "staff@acme.test", "tenant-1")
	created := &types.ClientProfile{ID: "client-1", TenantID: "tenant-1", DisplayName: "New Client", ContactEmail: "contact@corp.test"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface, *MockTxManagerInterface)
		expectedErr error
	}{
		{
			name: "success - profile and login created together",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface, mockTx *MockTxManagerInterface) {
				mockAuthz.EXPECT().RequireTenantAccess(gomock.Any(), "tenant-1").Return(tenantUser, nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateClientProfile(gomock.Any(), gomock.Any()).Return(created, nil)
				mockStorage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.Role != types.RoleClient {
							return nil, errors.New("login must have client role")
						}
						if u.ClientID == nil || *u.ClientID != created.ID {
							return nil, errors.New("login not bound to profile")
						}
						login := *u
						login.ID = "user-9"
						return &login, nil
					})
				mockAudit.EXPECT().RecordAction(tenantUser, "create", "client_profile", created.ID)
				mockAudit.EXPECT().RecordAction(tenantUser, "create", "user", "user-9")
			},
		},
		{
			name: "duplicate contact email surfaces as conflict",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface, mockTx *MockTxManagerInterface) {
				mockAuthz.EXPECT().RequireTenantAccess(gomock.Any(), "tenant-1").Return(tenantUser, nil)
				mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().CreateClientProfile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name: "forbidden",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface, mockTx *MockTxManagerInterface) {
				mockAuthz.EXPECT().RequireTenantAccess(gomock.Any(), "tenant-1").Return(types.Identity{}, authorization.ErrForbidden)
			},
			expectedErr: authorization.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit, mockTx := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit, mockTx)

			profile, err := s.CreateClient(context.Background(), "tenant-1", "New Client", "contact@corp.test")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if profile == nil || profile.ID != created.ID {
				t.Errorf("expected profile %v, got %v", created, profile)
			}
		})
	}
}
