package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	assert.Empty(t, cfg.PackageRoot)
	assert.Empty(t, cfg.Merge.Exclude)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Contains(t, GetDefaultsContent(), "package_root")
}

func TestLoadConfigurationFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "govsetup.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
package_root = "/opt/governance"

[merge]
exclude = ["**/.DS_Store", "*.bak"]

[output]
color = "never"
`), 0644))

	cfg, err := LoadConfiguration(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/opt/governance", cfg.PackageRoot)
	assert.Equal(t, []string{"**/.DS_Store", "*.bak"}, cfg.Merge.Exclude)
	assert.Equal(t, ColorNever, cfg.Output.Color)
}

func TestLoadConfigurationEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "govsetup.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`package_root = "/from/file"`), 0644))

	t.Setenv("GOVSETUP_PACKAGE_ROOT", "/from/env")
	t.Setenv("GOVSETUP_MERGE__EXCLUDE", "*.tmp,Thumbs.db")
	t.Setenv("GOVSETUP_OUTPUT__COLOR", "always")

	cfg, err := LoadConfiguration(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.PackageRoot)
	assert.Equal(t, []string{"*.tmp", "Thumbs.db"}, cfg.Merge.Exclude)
	assert.Equal(t, ColorAlways, cfg.Output.Color)
}

func TestLoadConfigurationErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("bad_color", func(t *testing.T) {
		t.Setenv("GOVSETUP_OUTPUT__COLOR", "rainbow")
		_, err := LoadConfiguration("")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("bad_pattern", func(t *testing.T) {
		t.Setenv("GOVSETUP_MERGE__EXCLUDE", "[unclosed")
		_, err := LoadConfiguration("")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "package_root", envKey("GOVSETUP_PACKAGE_ROOT"))
	assert.Equal(t, "merge.exclude", envKey("GOVSETUP_MERGE__EXCLUDE"))
}
