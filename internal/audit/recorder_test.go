// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package audit -destination ./mock_audit.go -source=./interfaces.go

func newRecorder(t *testing.T, bufferSize int) (*Recorder, *MockStorageInterface) {
	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)

	r := NewRecorder(mockStorage, bufferSize, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	return r, mockStorage
}

func TestRecorder_RecordAction(t *testing.T) {
	r, mockStorage := newRecorder(t, 8)

	identity := types.TenantIdentity("user-1", "staff@acme.test", "tenant-1")

	written := make(chan *types.AuditEntry, 1)
	mockStorage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *types.AuditEntry) error {
			written <- e
			return nil
		})

	r.RecordAction(identity, "create", "task", "task-1")
	r.Close()

	e := <-written
	if e.Entity != "task" || e.EntityID != "task-1" || e.Action != "create" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.ActorUserID == nil || *e.ActorUserID != "user-1" {
		t.Error("expected the actor to be recorded")
	}
	if e.TenantID == nil || *e.TenantID != "tenant-1" {
		t.Error("expected the tenant scope to be recorded")
	}
}

func TestRecorder_RecordDenied(t *testing.T) {
	testCases := []struct {
		name           string
		identity       *types.Identity
		expectedActor  *string
		expectedAction string
	}{
		{
			name: "known caller",
			identity: func() *types.Identity {
				i := types.ClientIdentity("user-3", "client@corp.test", "client-1", "tenant-1")
				return &i
			}(),
			expectedActor:  func() *string { s := "user-3"; return &s }(),
			expectedAction: "denied:delete",
		},
		{
			name:           "anonymous caller",
			identity:       nil,
			expectedActor:  nil,
			expectedAction: "denied:delete",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, mockStorage := newRecorder(t, 8)

			written := make(chan *types.AuditEntry, 1)
			mockStorage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e *types.AuditEntry) error {
					written <- e
					return nil
				})

			r.RecordDenied(tc.identity, "delete", "task", "task-1", map[string]string{"reason": "cross_tenant"})
			r.Close()

			e := <-written
			if e.Action != tc.expectedAction {
				t.Errorf("expected action %q, got %q", tc.expectedAction, e.Action)
			}
			if tc.expectedActor == nil {
				if e.ActorUserID != nil {
					t.Error("expected no actor on an anonymous denial")
				}
			} else if e.ActorUserID == nil || *e.ActorUserID != *tc.expectedActor {
				t.Errorf("expected actor %q, got %v", *tc.expectedActor, e.ActorUserID)
			}
			if e.Metadata["reason"] != "cross_tenant" {
				t.Error("expected the denial metadata to be kept")
			}
		})
	}
}

func TestRecorder_DropsWhenQueueIsFull(t *testing.T) {
	r, mockStorage := newRecorder(t, 1)

	// Hold the drain goroutine on the first write so the queue stays full.
	release := make(chan struct{})
	first := make(chan struct{})
	mockStorage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *types.AuditEntry) error {
			close(first)
			<-release
			return nil
		})
	mockStorage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(nil)

	r.Record(&types.AuditEntry{Entity: "task", Action: "create"})
	<-first
	r.Record(&types.AuditEntry{Entity: "task", Action: "update"})
	r.Record(&types.AuditEntry{Entity: "task", Action: "delete"})

	if r.Dropped() == 0 {
		t.Error("expected at least one dropped entry")
	}

	close(release)
	r.Close()
}

func TestRecorder_RecordAfterCloseDropsWithoutPanic(t *testing.T) {
	r, _ := newRecorder(t, 8)

	r.Close()

	r.Record(&types.AuditEntry{Entity: "task", Action: "create"})

	if r.Dropped() != 1 {
		t.Errorf("expected 1 dropped entry, got %d", r.Dropped())
	}

	// Closing again is a no-op.
	r.Close()
}

func TestRecorder_WriteFailureDoesNotStopTheQueue(t *testing.T) {
	r, mockStorage := newRecorder(t, 8)

	written := make(chan struct{}, 1)
	mockStorage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	mockStorage.EXPECT().CreateAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *types.AuditEntry) error {
			written <- struct{}{}
			return nil
		})

	r.Record(&types.AuditEntry{Entity: "task", Action: "create"})
	r.Record(&types.AuditEntry{Entity: "task", Action: "update"})
	r.Close()

	select {
	case <-written:
	default:
		t.Error("expected the queue to keep draining after a failed write")
	}
}
