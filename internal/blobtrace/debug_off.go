//go:build !debug

package blobtrace

// DebugLog is a no-op in a normal build; see debug.go.
func DebugLog(format string, args ...any) {}
