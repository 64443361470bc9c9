// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with a package root and a target

package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/govsetup/pkg/config"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a package root, a target and the filesystem
// holding both.
type TestEnvironment struct {
	PackageRoot string
	Target      string
	Catalog     *types.Catalog
	FS          types.FS
	Type        EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. The package root is
// empty and the target does not exist yet.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:       t,
		Type:    envType,
		Catalog: config.MustCatalog(),
	}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.PackageRoot = "/virtual/package"
		env.Target = "/virtual/project"
	case EnvIsolated:
		tempDir := t.TempDir()
		env.FS = filesystem.NewOS()
		env.PackageRoot = filepath.Join(tempDir, "package")
		env.Target = filepath.Join(tempDir, "project")
	}

	require.NoError(t, env.FS.MkdirAll(env.PackageRoot, 0755))
	return env
}

// CoreFiles is the content WritePackage puts in the core directory.
var CoreFiles = map[string]string{
	"INDEX.md":                    "# AI Governance\n",
	"policies/001-code-review.md": "Every change is reviewed.\n",
	"policies/002-secrets.md":     "Never commit secrets.\n",
	"templates/adr.md":            "# ADR\n",
	"router/router.md":            "Route by intent.\n",
	"router/self-alignment.md":    "Check yourself.\n",
	"kpis/targets.md":             "Defect escape rate < 5%\n",
}

// CoreFileContent is the packaged content of the core top-level file.
const CoreFileContent = "| Tool | Support |\n"

// WritePackage creates packaged content for the core bundle and every
// adapter: one file per file mapping and two files per directory mapping.
func (env *TestEnvironment) WritePackage() {
	env.t.Helper()

	core := env.Catalog.Core
	prefixed := make(map[string]string, len(CoreFiles)+1)
	for rel, content := range CoreFiles {
		prefixed[core.Dir.Src+"/"+rel] = content
	}
	prefixed[core.File.Src] = CoreFileContent
	WriteFiles(env.t, env.FS, env.PackageRoot, prefixed)

	for _, a := range env.Catalog.Adapters {
		files := map[string]string{}
		for _, f := range a.Files {
			files[f.Src] = a.ID + " rules\n"
		}
		for _, d := range a.Dirs {
			files[d.Src+"/rules/governance.md"] = a.ID + " governance\n"
			files[d.Src+"/workflows/review.md"] = a.ID + " review\n"
		}
		WriteFiles(env.t, env.FS, env.PackageRoot, files)
	}
}

// TargetPath maps a slash-separated relative path into the target.
func (env *TestEnvironment) TargetPath(rel string) string {
	return filepath.Join(env.Target, filepath.FromSlash(rel))
}

// WriteFiles creates files (slash-separated relative path -> content) under root.
func WriteFiles(t *testing.T, fs types.FS, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
}

// ReadTree returns every file under root keyed by slash-separated relative
// path. A missing root yields an empty map.
func ReadTree(t *testing.T, fs types.FS, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	if _, err := fs.Stat(root); err != nil {
		return out
	}

	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := fs.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			path := filepath.Join(dir, e.Name())
			relPath := e.Name()
			if rel != "" {
				relPath = rel + "/" + e.Name()
			}
			if e.IsDir() {
				walk(path, relPath)
				continue
			}
			data, err := fs.ReadFile(path)
			require.NoError(t, err)
			out[relPath] = string(data)
		}
	}
	walk(root, "")
	return out
}

// SortedKeys returns the keys of a tree snapshot in order.
func SortedKeys(tree map[string]string) []string {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
