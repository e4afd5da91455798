// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Identity is the resolved caller of a request. It is a closed value type:
// the only way to build one is through the per-role constructors, so a
// client identity always carries both its client and owning tenant and an
// operator identity carries neither. Scoping bugs from half-populated user
// rows cannot reach the gates.
type Identity struct {
	userID   string
	email    string
	role     Role
	tenantID string
	clientID string
}

func OperatorIdentity(userID, email string) Identity {
	return Identity{userID: userID, email: email, role: RoleOperator}
}

func TenantIdentity(userID, email, tenantID string) Identity {
	return Identity{userID: userID, email: email, role: RoleTenant, tenantID: tenantID}
}

func ClientIdentity(userID, email, clientID, tenantID string) Identity {
	return Identity{userID: userID, email: email, role: RoleClient, clientID: clientID, tenantID: tenantID}
}

func (i Identity) UserID() string { return i.userID }

func (i Identity) Email() string { return i.email }

func (i Identity) Role() Role { return i.role }

func (i Identity) IsOperator() bool { return i.role == RoleOperator }

// TenantScope returns the tenant the identity is scoped to. For a client
// this is the owning tenant. Operators have no tenant scope.
func (i Identity) TenantScope() (string, bool) {
	if i.role == RoleOperator || i.tenantID == "" {
		return "", false
	}
	return i.tenantID, true
}

// ClientScope returns the client profile the identity represents, set only
// for client identities.
func (i Identity) ClientScope() (string, bool) {
	if i.role != RoleClient {
		return "", false
	}
	return i.clientID, true
}
