//go:build tools
// +build tools

// This file pins the code generators used by `go generate` (mockgen)
// so they are tracked in go.mod and resolve on a fresh checkout.
package timebank

import (
	_ "go.uber.org/mock/mockgen"
)
