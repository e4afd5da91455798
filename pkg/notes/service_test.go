// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notes

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

//go:generate mockgen -build_flags=--mod=mod -package notes -destination ./mock_notes.go -source=./interfaces.go

var (
	tenantUser    = types.TenantIdentity("staff-1", "staff@acme.test", "tenant-1")
	otherStaff    = types.TenantIdentity("staff-2", "other@acme.test", "tenant-1")
	clientUser    = types.ClientIdentity("portal-1", "client@corp.test", "client-1", "tenant-1")
	sampleNote    = &types.MeetingNote{ID: "note-1", TenantID: "tenant-1", Title: "Kickoff", CreatedBy: "staff-1"}
	clientID      = "client-1"
	otherClientID = "client-2"
	clientNote    = &types.MeetingNote{ID: "note-2", TenantID: "tenant-1", ClientID: &clientID, Title: "Review", CreatedBy: "staff-1"}
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockAudit := NewMockAuditInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockAudit, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return s, mockStorage, mockAuthz, mockAudit
}

func TestService_ListNotes(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name: "tenant user sees all tenant notes",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().ListNotesByTenantID(gomock.Any(), "tenant-1").Return([]*types.MeetingNote{sampleNote, clientNote}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "client user sees only notes targeted at them",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().ListNotesByClientID(gomock.Any(), "client-1").Return([]*types.MeetingNote{clientNote}, nil)
			},
			expectedLen: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _ := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz)

			notes, err := s.ListNotes(context.Background())

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(notes) != tc.expectedLen {
				t.Errorf("expected %d notes, got %d", tc.expectedLen, len(notes))
			}
		})
	}
}

func TestService_CreateNote(t *testing.T) {
	testCases := []struct {
		name        string
		note        *types.MeetingNote
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name: "untargeted note",
			note: &types.MeetingNote{Title: "Kickoff"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant, types.RoleClient).Return(tenantUser, nil)
				mockStorage.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *types.MeetingNote) (*types.MeetingNote, error) {
						if n.TenantID != "tenant-1" {
							return nil, errors.New("note must land in the caller's tenant")
						}
						if n.CreatedBy != "staff-1" {
							return nil, errors.New("created_by must be the caller")
						}
						created := *n
						created.ID = "note-1"
						return &created, nil
					})
				mockAudit.EXPECT().RecordAction(tenantUser, "create", "meeting_note", "note-1")
			},
		},
		{
			name: "client-targeted note validates the target",
			note: &types.MeetingNote{Title: "Review", ClientID: &clientID},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant, types.RoleClient).Return(tenantUser, nil)
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-1", "tenant-1").Return(true, nil)
				mockStorage.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *types.MeetingNote) (*types.MeetingNote, error) {
						created := *n
						created.ID = "note-2"
						return &created, nil
					})
				mockAudit.EXPECT().RecordAction(tenantUser, "create", "meeting_note", "note-2")
			},
		},
		{
			name: "foreign target client reads as not found",
			note: &types.MeetingNote{Title: "Review", ClientID: &clientID},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant, types.RoleClient).Return(tenantUser, nil)
				mockAuthz.EXPECT().BelongsToTenant(gomock.Any(), "client-1", "tenant-1").Return(false, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "client notes are always targeted at the author",
			note: &types.MeetingNote{Title: "Questions before filing"},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant, types.RoleClient).Return(clientUser, nil)
				mockStorage.EXPECT().CreateNote(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n *types.MeetingNote) (*types.MeetingNote, error) {
						if n.TenantID != "tenant-1" {
							return nil, errors.New("note must land in the owning tenant")
						}
						if n.ClientID == nil || *n.ClientID != "client-1" {
							return nil, errors.New("note must target the authoring client")
						}
						if n.CreatedBy != "portal-1" {
							return nil, errors.New("created_by must be the caller")
						}
						created := *n
						created.ID = "note-3"
						return &created, nil
					})
				mockAudit.EXPECT().RecordAction(clientUser, "create", "meeting_note", "note-3")
			},
		},
		{
			name: "client naming another client is forbidden",
			note: &types.MeetingNote{Title: "Review", ClientID: &otherClientID},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().RequireRole(gomock.Any(), types.RoleOperator, types.RoleTenant, types.RoleClient).Return(clientUser, nil)
			},
			expectedErr: authorization.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			created, err := s.CreateNote(context.Background(), tc.note)

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
				t.Errorf("expected created note, got %v", created)
			}
		})
	}
}

func TestService_UpdateNote(t *testing.T) {
	testCases := []struct {
		name        string
		identity    types.Identity
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name:     "author can edit",
			identity: tenantUser,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, sampleNote).Return(true)
				mockStorage.EXPECT().UpdateNote(gomock.Any(), gomock.Any(), []string{"body"}).Return(nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAudit.EXPECT().RecordAction(tenantUser, "update", "meeting_note", "note-1")
			},
		},
		{
			name:     "non-author in the same tenant is forbidden",
			identity: otherStaff,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(otherStaff, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(otherStaff, sampleNote).Return(true)
			},
			expectedErr: authorization.ErrForbidden,
		},
		{
			name:     "out-of-scope note reads as not found",
			identity: clientUser,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(clientUser, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(clientUser, sampleNote).Return(false)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			body := "updated"
			_, err := s.UpdateNote(context.Background(), "note-1", &types.MeetingNote{Body: body}, []string{"body"})

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

func TestService_AddAttachment(t *testing.T) {
	testCases := []struct {
		name        string
		attachment  *types.NoteAttachment
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockAuditInterface)
		expectedErr error
	}{
		{
			name:       "success",
			attachment: &types.NoteAttachment{FileName: "minutes.pdf", SizeBytes: 1024},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, sampleNote).Return(true)
				mockStorage.EXPECT().CountNoteAttachments(gomock.Any(), "note-1").Return(3, nil)
				mockStorage.EXPECT().CreateNoteAttachment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, att *types.NoteAttachment) (*types.NoteAttachment, error) {
						if att.NoteID != "note-1" {
							return nil, errors.New("attachment not bound to note")
						}
						created := *att
						created.ID = "att-1"
						return &created, nil
					})
				mockAudit.EXPECT().RecordAction(tenantUser, "attach", "meeting_note", "note-1")
			},
		},
		{
			name:       "size cap",
			attachment: &types.NoteAttachment{FileName: "dump.bin", SizeBytes: 6 << 20},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, sampleNote).Return(true)
			},
			expectedErr: ErrAttachmentTooLarge,
		},
		{
			name:       "count cap",
			attachment: &types.NoteAttachment{FileName: "one-too-many.pdf", SizeBytes: 1024},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(tenantUser, sampleNote).Return(true)
				mockStorage.EXPECT().CountNoteAttachments(gomock.Any(), "note-1").Return(10, nil)
			},
			expectedErr: ErrAttachmentLimit,
		},
		{
			name:       "only the author may attach",
			attachment: &types.NoteAttachment{FileName: "minutes.pdf", SizeBytes: 1024},
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockAudit *MockAuditInterface) {
				mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(otherStaff, nil)
				mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
				mockAuthz.EXPECT().CanAccessResource(otherStaff, sampleNote).Return(true)
			},
			expectedErr: authorization.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, mockAudit := newTestService(t)
			tc.setupMocks(mockStorage, mockAuthz, mockAudit)

			created, err := s.AddAttachment(context.Background(), "note-1", tc.attachment)

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
				t.Errorf("expected created attachment, got %v", created)
			}
		})
	}
}

func TestService_DeleteNote(t *testing.T) {
	s, mockStorage, mockAuthz, mockAudit := newTestService(t)

	mockAuthz.EXPECT().ResolveIdentity(gomock.Any()).Return(tenantUser, nil)
	mockStorage.EXPECT().GetNoteByID(gomock.Any(), "note-1").Return(sampleNote, nil)
	mockAuthz.EXPECT().CanAccessResource(tenantUser, sampleNote).Return(true)
	mockStorage.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil)
	mockAudit.EXPECT().RecordAction(tenantUser, "delete", "meeting_note", "note-1")

	if err := s.DeleteNote(context.Background(), "note-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
