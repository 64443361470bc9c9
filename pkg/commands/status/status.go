// Package status reports what govsetup has installed in a target directory.
package status

import (
	"github.com/arthur-debert/govsetup/pkg/adapters"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/types"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Catalog is the fixed installation content.
	Catalog *types.Catalog
	// Target is the absolute directory to inspect.
	Target string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Status inspects the target with the same presence heuristic the installer
// uses to pre-check adapters. Nothing is written.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Status").Str("target", opts.Target).Msg("Executing command")

	if opts.Catalog == nil {
		return nil, errors.New(errors.ErrInternal, "status needs a catalog")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	info, err := fs.Stat(opts.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot inspect %s", paths.Display(opts.Target)).
			WithDetail("path", opts.Target)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", paths.Display(opts.Target))
	}

	core := opts.Catalog.Core
	result := &types.StatusResult{Target: opts.Target}

	if info, err := fs.Stat(paths.Join(opts.Target, core.Dir.Dest)); err == nil && info.IsDir() {
		result.CoreInstalled = true
	}
	if info, err := fs.Stat(paths.Join(opts.Target, core.File.Dest)); err == nil && !info.IsDir() {
		result.CoreFile = true
	}

	result.Adapters, err = adapters.Detect(fs, opts.Target, opts.Catalog)
	if err != nil {
		return nil, err
	}

	log.Info().
		Bool("core", result.CoreInstalled).
		Strs("adapters", adapters.InstalledIDs(result.Adapters)).
		Msg("Status collected")
	return result, nil
}
