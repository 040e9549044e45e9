package blobtrace

import "go.uber.org/zap"

// NewLogger builds a zap logger: development (human-readable, debug
// level) when debug is true, production (JSON, info level) otherwise.
// Mirrors the split FlowyCore/main.go makes between zap.NewDevelopment()
// and zap.NewProduction() driven by a -debug flag.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
