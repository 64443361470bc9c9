// Package paths locates the packaged governance content and resolves the
// directories the installer works with.
package paths
