// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"github.com/portaldesk/portal-service/internal/types"
)

var _ RecorderInterface = (*NoopRecorder)(nil)

type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder {
	return new(NoopRecorder)
}

func (r *NoopRecorder) Record(*types.AuditEntry) {}

func (r *NoopRecorder) RecordAction(types.Identity, string, string, string) {}

func (r *NoopRecorder) RecordDenied(*types.Identity, string, string, string, map[string]string) {}
