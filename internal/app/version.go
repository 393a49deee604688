package app

import "fmt"

// Build metadata, stamped with ldflags:
//
//	go build -ldflags "-X github.com/ofirgaash1/engsub/internal/app.Version=0.3.0"
//
// Defaults cover plain `go run ./cmd/server` during development.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string shown in the startup log and the
// /health payload, so a player bug report can name the exact build.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
