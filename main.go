// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/portaldesk/portal-service/cmd"

func main() {
	cmd.Execute()
}
