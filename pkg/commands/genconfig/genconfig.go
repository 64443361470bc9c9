// Package genconfig prints or writes the default options file.
package genconfig

import (
	"os"

	"github.com/arthur-debert/govsetup/pkg/config"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/types"
)

// FileName is the options file written by GenConfig.
const FileName = "govsetup.toml"

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Dir is where the file is written in write mode.
	Dir string
	// Write writes the file instead of only returning its content.
	Write bool
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// GenConfig outputs or writes the default configuration. An existing file is
// never overwritten.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GetDefaultsContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	targetPath := paths.Join(opts.Dir, FileName)
	if _, err := fs.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", targetPath)
	}

	if err := fs.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", opts.Dir)
	}
	if err := fs.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
