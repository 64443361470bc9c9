package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/govsetup/pkg/config"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPackageRootExplicit(t *testing.T) {
	core := config.MustCatalog().Core
	fs := filesystem.NewOS()

	t.Run("valid_root", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "ai-governance"), 0755))

		got, err := FindPackageRoot(fs, root, core)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("root_without_core", func(t *testing.T) {
		_, err := FindPackageRoot(fs, t.TempDir(), core)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPackageRoot))
	})

	t.Run("core_is_a_file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "ai-governance"), []byte("x"), 0644))
		_, err := FindPackageRoot(fs, root, core)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPackageRoot))
	})
}

func TestPackageRootCandidates(t *testing.T) {
	exe := filepath.Join("/opt", "govsetup", "bin", "govsetup")
	candidates := PackageRootCandidates(exe)

	assert.Equal(t, filepath.Join("/opt", "govsetup", "bin"), candidates[0])
	assert.Equal(t, filepath.Join("/opt", "govsetup"), filepath.Clean(candidates[1]))
	assert.Equal(t, filepath.Join("/opt", "govsetup", "share", "govsetup"), filepath.Clean(candidates[2]))
}

func TestResolveTarget(t *testing.T) {
	cwd := filepath.Join("/home", "dev", "project")

	tests := []struct {
		input string
		want  string
	}{
		{".", cwd},
		{"sub/dir", filepath.Join(cwd, "sub", "dir")},
		{"../other", filepath.Join("/home", "dev", "other")},
		{"/abs/path/", filepath.Join("/abs", "path")},
		{cwd, cwd},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTarget(tt.input, cwd))
		})
	}
}

func TestJoinAndDisplay(t *testing.T) {
	p := Join("/target", ".github/copilot-instructions.md")
	assert.Equal(t, filepath.Join("/target", ".github", "copilot-instructions.md"), p)
	assert.Equal(t, "/target/.github/copilot-instructions.md", Display(p))
}
