// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleOperator Role = "operator"
	RoleTenant   Role = "tenant"
	RoleClient   Role = "client"
)

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
)

type User struct {
	ID            string        `db:"id"`
	Email         string        `db:"email"`
	Role          Role          `db:"role"`
	TenantID      *string       `db:"tenant_id"`
	ClientID      *string       `db:"client_id"`
	AccountStatus AccountStatus `db:"account_status"`
	IsActive      bool          `db:"is_active"`
	CreatedAt     time.Time     `db:"created_at"`
}

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	Enabled   bool      `db:"enabled"`
}

type ClientProfile struct {
	ID           string    `db:"id"`
	TenantID     string    `db:"tenant_id"`
	DisplayName  string    `db:"display_name"`
	ContactEmail string    `db:"contact_email"`
	CreatedAt    time.Time `db:"created_at"`
}

type AssigneeType string

const (
	AssigneeTenant AssigneeType = "tenant"
	AssigneeClient AssigneeType = "client"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type Task struct {
	ID           string       `db:"id"`
	TenantID     string       `db:"tenant_id"`
	ClientID     *string      `db:"client_id"`
	AssigneeType AssigneeType `db:"assignee_type"`
	AssigneeID   string       `db:"assignee_id"`
	Status       TaskStatus   `db:"status"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	CreatedBy    string       `db:"created_by"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// OwnerTenant implements the resource scoping contract used by the
// authorization package.
func (t *Task) OwnerTenant() string {
	return t.TenantID
}

// AssignedClient returns the client the task is directed at, when there is one.
func (t *Task) AssignedClient() (string, bool) {
	if t.AssigneeType == AssigneeClient {
		return t.AssigneeID, true
	}
	return "", false
}

type MeetingNote struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	ClientID  *string   `db:"client_id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (n *MeetingNote) OwnerTenant() string {
	return n.TenantID
}

func (n *MeetingNote) AssignedClient() (string, bool) {
	if n.ClientID != nil {
		return *n.ClientID, true
	}
	return "", false
}

type NoteAttachment struct {
	ID          string    `db:"id"`
	NoteID      string    `db:"note_id"`
	FileName    string    `db:"file_name"`
	SizeBytes   int64     `db:"size_bytes"`
	ContentType string    `db:"content_type"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

type TaskComment struct {
	ID        string    `db:"id"`
	TaskID    string    `db:"task_id"`
	Body      string    `db:"body"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type AuditEntry struct {
	ID          int64             `db:"id"`
	Entity      string            `db:"entity"`
	EntityID    string            `db:"entity_id"`
	Action      string            `db:"action"`
	ActorUserID *string           `db:"actor_user_id"`
	TenantID    *string           `db:"tenant_id"`
	Metadata    map[string]string `db:"metadata"`
	CreatedAt   time.Time         `db:"created_at"`
}

type Notification struct {
	ID           string       `db:"id"`
	AssigneeType AssigneeType `db:"assignee_type"`
	AssigneeID   string       `db:"assignee_id"`
	TaskID       string       `db:"task_id"`
	Kind         string       `db:"kind"`
	CreatedAt    time.Time    `db:"created_at"`
}
