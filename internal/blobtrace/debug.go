//go:build debug

package blobtrace

import "fmt"

// DebugLog prints a hot-path trace line. Only compiled in when built
// with `-tags debug`, so a normal build pays nothing for it, the same
// technique photons4d/internal/photons4d/debug.go uses to keep verbose
// per-bounce tracing out of the production binary.
func DebugLog(format string, args ...any) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}
