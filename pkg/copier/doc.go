// Package copier implements the additive-only copy primitives used by the
// installer.
//
// MergeDir adds files missing from an existing destination tree, CopyTree
// populates a destination that does not exist yet, and CopyFile installs a
// single file. None of them ever writes over a file that is already present
// at the destination: re-running an installation only fills gaps, so content
// a user has customized survives upgrades of the packaged templates.
package copier
