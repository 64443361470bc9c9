// Package types defines the core types and interfaces used throughout govsetup.
// This includes the FS interface, the static catalog descriptors (Bundle,
// Adapter, PathMapping) and the per-operation results produced by the copy
// primitives and the installer.
package types
