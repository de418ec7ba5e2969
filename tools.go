//go:build tools
// +build tools

package timerun

// Build-time tool dependencies, pinned through the module graph so that go:generate and
// lint invocations are reproducible.
import (
	_ "golang.org/x/lint/golint"
	_ "golang.org/x/tools/cmd/stringer"
)
