// Package adapters detects which catalog adapters are already present in a
// target directory.
package adapters

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/types"
)

// IsInstalled reports whether adapter looks installed under targetDir. It is
// an existence heuristic only: the adapter counts as installed when (it has no
// files, or any one of its destination files exists) and (it has no dirs, or
// any one of its destination dirs exists). Contents are never inspected.
func IsInstalled(fsys types.FS, targetDir string, adapter types.Adapter) (bool, error) {
	hasFiles, err := anyExists(fsys, targetDir, adapter.Files)
	if err != nil {
		return false, err
	}
	hasDirs, err := anyExists(fsys, targetDir, adapter.Dirs)
	if err != nil {
		return false, err
	}
	return hasFiles && hasDirs, nil
}

// anyExists is true for an empty mapping list.
func anyExists(fsys types.FS, targetDir string, mappings []types.PathMapping) (bool, error) {
	if len(mappings) == 0 {
		return true, nil
	}
	for _, m := range mappings {
		path := filepath.Join(targetDir, filepath.FromSlash(m.Dest))
		_, err := fsys.Stat(path)
		if err == nil {
			return true, nil
		}
		if !os.IsNotExist(err) {
			return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).WithDetail("path", path)
		}
	}
	return false, nil
}

// Detect returns the installed state of every adapter in catalog order.
func Detect(fsys types.FS, targetDir string, catalog *types.Catalog) ([]types.AdapterStatus, error) {
	statuses := make([]types.AdapterStatus, 0, len(catalog.Adapters))
	for _, a := range catalog.Adapters {
		installed, err := IsInstalled(fsys, targetDir, a)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, types.AdapterStatus{
			ID:        a.ID,
			Name:      a.Name,
			Short:     a.Short,
			Installed: installed,
			Paths:     a.DestPaths(),
		})
	}
	return statuses, nil
}

// InstalledIDs returns the ids of installed adapters in catalog order.
func InstalledIDs(statuses []types.AdapterStatus) []string {
	var ids []string
	for _, s := range statuses {
		if s.Installed {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Resolve validates ids against the catalog and returns them in catalog
// order without duplicates.
func Resolve(catalog *types.Catalog, ids []string) ([]string, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := catalog.Adapter(id); !ok {
			return nil, errors.Newf(errors.ErrAdapterUnknown, "unknown adapter %q", id).
				WithDetail("known", catalog.AdapterIDs())
		}
		wanted[id] = true
	}

	var ordered []string
	for _, id := range catalog.AdapterIDs() {
		if wanted[id] {
			ordered = append(ordered, id)
		}
	}
	return ordered, nil
}

// NotSelected returns the catalog ids absent from selected, in catalog order.
func NotSelected(catalog *types.Catalog, selected []string) []string {
	chosen := make(map[string]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}
	var rest []string
	for _, id := range catalog.AdapterIDs() {
		if !chosen[id] {
			rest = append(rest, id)
		}
	}
	return rest
}
