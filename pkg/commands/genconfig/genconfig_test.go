package genconfig

import (
	"testing"

	"github.com/arthur-debert/govsetup/pkg/config"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfigStdout(t *testing.T) {
	fs := filesystem.NewMemory()

	result, err := GenConfig(GenConfigOptions{Dir: "/project", FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultsContent(), result.ConfigContent)
	assert.Contains(t, result.ConfigContent, `color = "auto"`)
	assert.Empty(t, result.FilesWritten)

	_, err = fs.Stat("/project/govsetup.toml")
	assert.Error(t, err)
}

func TestGenConfigWrite(t *testing.T) {
	fs := filesystem.NewMemory()

	result, err := GenConfig(GenConfigOptions{Dir: "/project", Write: true, FileSystem: fs})
	require.NoError(t, err)
	assert.Equal(t, []string{"/project/govsetup.toml"}, result.FilesWritten)

	data, err := fs.ReadFile("/project/govsetup.toml")
	require.NoError(t, err)
	assert.Equal(t, config.GetDefaultsContent(), string(data))
}

func TestGenConfigKeepsExistingFile(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/project", 0755))
	require.NoError(t, fs.WriteFile("/project/govsetup.toml", []byte("mine"), 0644))

	result, err := GenConfig(GenConfigOptions{Dir: "/project", Write: true, FileSystem: fs})
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)

	data, err := fs.ReadFile("/project/govsetup.toml")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestGeneratedConfigLoads(t *testing.T) {
	dir := t.TempDir()
	result, err := GenConfig(GenConfigOptions{Dir: dir, Write: true})
	require.NoError(t, err)
	require.Len(t, result.FilesWritten, 1)

	cfg, err := config.LoadConfiguration(result.FilesWritten[0])
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
}
