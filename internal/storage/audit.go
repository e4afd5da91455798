// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portaldesk/portal-service/internal/types"
)

// CreateAuditEntry appends to the audit log. The table is append-only, there
// are no update or delete operations on it.
func (s *Storage) CreateAuditEntry(ctx context.Context, e *types.AuditEntry) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAuditEntry")
	defer span.End()

	var metadata []byte
	if e.Metadata != nil {
		var err error
		metadata, err = json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
	}

	_, err := s.db.Statement(ctx).
		Insert("audit_log").
		Columns("entity", "entity_id", "action", "actor_user_id", "tenant_id", "metadata").
		Values(e.Entity, e.EntityID, e.Action, e.ActorUserID, e.TenantID, metadata).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}
