// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/portaldesk/portal-service/internal/types"
)

func (s *Storage) CreateClientProfile(ctx context.Context, c *types.ClientProfile) (*types.ClientProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClientProfile")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var profile types.ClientProfile
	err = s.db.Statement(ctx).
		Insert("client_profiles").
		Columns("id", "tenant_id", "display_name", "contact_email").
		Values(id, c.TenantID, c.DisplayName, c.ContactEmail).
		Suffix("RETURNING id, tenant_id, display_name, contact_email, created_at").
		QueryRowContext(ctx).
		Scan(&profile.ID, &profile.TenantID, &profile.DisplayName, &profile.ContactEmail, &profile.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert client profile: %w", err)
	}

	return &profile, nil
}

func (s *Storage) GetClientProfileByID(ctx context.Context, id string) (*types.ClientProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientProfileByID")
	defer span.End()

	var c types.ClientProfile
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "display_name", "contact_email", "created_at").
		From("client_profiles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.TenantID, &c.DisplayName, &c.ContactEmail, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client profile: %w", err)
	}

	return &c, nil
}

// GetClientTenantID projects only the owning tenant of a client profile.
// This is the single lookup behind the ownership verifier.
func (s *Storage) GetClientTenantID(ctx context.Context, clientID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientTenantID")
	defer span.End()

	var tenantID string
	err := s.db.Statement(ctx).
		Select("tenant_id").
		From("client_profiles").
		Where(sq.Eq{"id": clientID}).
		QueryRowContext(ctx).
		Scan(&tenantID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get client tenant: %w", err)
	}

	return tenantID, nil
}

func (s *Storage) ListClientProfilesByTenantID(ctx context.Context, tenantID string) ([]*types.ClientProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientProfilesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "display_name", "contact_email", "created_at").
		From("client_profiles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list client profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*types.ClientProfile
	for rows.Next() {
		var c types.ClientProfile
		if err := rows.Scan(&c.ID, &c.TenantID, &c.DisplayName, &c.ContactEmail, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan client profile: %w", err)
		}
		profiles = append(profiles, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client profile rows: %w", err)
	}

	return profiles, nil
}
