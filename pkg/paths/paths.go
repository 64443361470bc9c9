package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/types"
)

// EnvPackageRoot overrides package root discovery.
const EnvPackageRoot = "GOVSETUP_PACKAGE_ROOT"

// PackageRootCandidates returns the directories searched for packaged content
// relative to the executable, most specific first.
func PackageRootCandidates(exePath string) []string {
	exeDir := filepath.Dir(exePath)
	return []string{
		exeDir,
		filepath.Join(exeDir, ".."),
		filepath.Join(exeDir, "..", "share", "govsetup"),
		filepath.Join(exeDir, "share", "govsetup"),
	}
}

// IsPackageRoot reports whether dir holds the core bundle's directory.
func IsPackageRoot(fsys types.FS, dir string, core types.Bundle) bool {
	info, err := fsys.Stat(filepath.Join(dir, filepath.FromSlash(core.Dir.Src)))
	return err == nil && info.IsDir()
}

// FindPackageRoot returns the directory holding the packaged content. An
// explicit root is used as given, after checking it contains the core
// directory; otherwise the candidates next to the executable are searched.
func FindPackageRoot(fsys types.FS, explicit string, core types.Bundle) (string, error) {
	if explicit != "" {
		root, err := filepath.Abs(explicit)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrPackageRoot, "cannot resolve %s", explicit)
		}
		if !IsPackageRoot(fsys, root, core) {
			return "", errors.Newf(errors.ErrPackageRoot, "%s does not contain %s/", root, core.Dir.Src).
				WithDetail("path", root)
		}
		return root, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPackageRoot, "cannot locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	candidates := PackageRootCandidates(exe)
	for _, dir := range candidates {
		if IsPackageRoot(fsys, dir, core) {
			return filepath.Clean(dir), nil
		}
	}

	return "", errors.Newf(errors.ErrPackageRoot,
		"packaged content not found next to %s; pass --package-root or set %s", exe, EnvPackageRoot).
		WithDetail("searched", candidates)
}

// ResolveTarget turns user input into an absolute, clean directory path.
// Relative input is resolved against cwd.
func ResolveTarget(input, cwd string) string {
	if filepath.IsAbs(input) {
		return filepath.Clean(input)
	}
	return filepath.Join(cwd, input)
}

// Join maps a slash-separated catalog path under root.
func Join(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Display renders a path with forward slashes on every platform.
func Display(p string) string {
	return filepath.ToSlash(p)
}
