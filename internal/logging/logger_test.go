// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurityChannel(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthzFailure("user-1", "task_get")
	l.Security().AuditWriteFailure("task", "create", nil)
}
