// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Command aclcheck performs static conflict analysis of network ACLs.
package main

import "os"

func main() {
	os.Exit(run())
}
