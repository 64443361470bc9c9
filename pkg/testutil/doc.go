// Package testutil provides utilities for testing govsetup components.
//
// Key components:
//   - TestEnvironment: a package root and a target directory on either an
//     in-memory or a temp-dir filesystem
//   - WritePackage: fills a package root with content for every catalog entry
//   - WriteFiles / ReadTree: declarative tree setup and snapshotting
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when real paths or permissions matter
//   - All test data should be defined inline, not in external files
package testutil
