// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"

	"github.com/portaldesk/portal-service/internal/types"
)

type RecorderInterface interface {
	// Record enqueues an audit entry. It never blocks and never reports
	// failure to the caller; a full queue drops the entry.
	Record(e *types.AuditEntry)

	// RecordAction captures a successful mutation by a resolved identity.
	RecordAction(identity types.Identity, action, entity, entityID string)

	// RecordDenied captures a denied access attempt. identity is nil when
	// the request never resolved to one.
	RecordDenied(identity *types.Identity, action, entity, entityID string, metadata map[string]string)
}

// StorageInterface is the subset of the storage layer the recorder needs.
type StorageInterface interface {
	CreateAuditEntry(ctx context.Context, e *types.AuditEntry) error
}
