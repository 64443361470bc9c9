// Package install runs the interactive installation: it asks for the target
// and the adapters, installs them and prints the transcript.
package install

import (
	"io"
	"os"

	"github.com/arthur-debert/govsetup/pkg/adapters"
	"github.com/arthur-debert/govsetup/pkg/copier"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/installer"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/prompt"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/arthur-debert/govsetup/pkg/ui/render"
)

// InstallOptions defines the options for the Install command.
type InstallOptions struct {
	// Catalog is the fixed installation content.
	Catalog *types.Catalog
	// PackageRoot is the directory holding the packaged content.
	PackageRoot string
	// WorkDir is the directory relative targets resolve against and the
	// default answer to the target question.
	WorkDir string
	// Exclude lists doublestar globs skipped inside copied directories.
	Exclude []string
	// Prompter asks the questions.
	Prompter prompt.Prompter
	// Output receives the transcript (optional, defaults to stdout)
	Output io.Writer
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Install asks where and what to install, installs the core bundle and the
// selected adapters, and prints the summary. A user interrupt is returned as
// an errors.ErrCancelled error.
func Install(opts InstallOptions) (*types.InstallResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Install").Str("workDir", opts.WorkDir).Msg("Executing command")

	if opts.Catalog == nil || opts.Prompter == nil {
		return nil, errors.New(errors.ErrInternal, "install needs a catalog and a prompter")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	printer := render.NewPrinter(out, opts.Catalog)

	printer.Banner()

	rerun, err := copier.New(fs).Exists(paths.Join(opts.WorkDir, opts.Catalog.Core.Dir.Dest))
	if err != nil {
		return nil, err
	}
	if rerun {
		log.Info().Msg("Existing installation detected in working directory")
		printer.RerunNotice()
	}

	answer, err := opts.Prompter.TargetDir(opts.WorkDir)
	if err != nil {
		return nil, err
	}
	target := paths.ResolveTarget(answer, opts.WorkDir)
	log.Debug().Str("target", target).Msg("Target resolved")

	inst, err := installer.New(installer.Options{
		Catalog:     opts.Catalog,
		PackageRoot: opts.PackageRoot,
		Target:      target,
		Exclude:     opts.Exclude,
		FileSystem:  fs,
		Reporter:    printer,
	})
	if err != nil {
		return nil, err
	}

	created, err := inst.EnsureTarget()
	if err != nil {
		return nil, err
	}

	statuses, err := adapters.Detect(fs, target, opts.Catalog)
	if err != nil {
		return nil, err
	}
	log.Debug().Strs("installed", adapters.InstalledIDs(statuses)).Msg("Adapters detected")

	printer.Newline()
	selected, err := opts.Prompter.SelectAdapters(prompt.BuildChoices(statuses))
	if err != nil {
		return nil, err
	}

	result, err := inst.Run(selected)
	if err != nil {
		return nil, err
	}
	result.CreatedTarget = result.CreatedTarget || created

	printer.Summary(result)
	return result, nil
}
