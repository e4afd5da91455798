// Copyright 2025 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
)

var (
	// ErrUnauthenticated means no active identity could be resolved for the
	// request. Deliberately indistinguishable between "no such user" and
	// "account disabled" so callers cannot enumerate accounts.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the identity resolved but a role or ownership
	// check failed. Messages name the failed requirement, never whether the
	// target resource exists.
	ErrForbidden = errors.New("forbidden")
)
