package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/govsetup/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/govsetup/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/govsetup/internal/version.Date={{.Date}}
)

// String returns the version line printed by `govsetup version`.
func String() string {
	return "govsetup " + Version + " (commit " + Commit + ", built " + Date + ")"
}
