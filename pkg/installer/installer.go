package installer

import (
	"time"

	"github.com/arthur-debert/govsetup/pkg/adapters"
	"github.com/arthur-debert/govsetup/pkg/copier"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/types"
)

// CoreID identifies the core bundle in results.
const CoreID = "core"

// Reporter receives progress while an installation runs. Every method is
// called synchronously from the installing goroutine.
type Reporter interface {
	TargetCreated(target string)
	SectionStarted(title string)
	ItemInstalled(item types.ItemResult)
}

// Options defines the options for an Installer.
type Options struct {
	// Catalog is the fixed installation content.
	Catalog *types.Catalog
	// PackageRoot is the directory holding the packaged content.
	PackageRoot string
	// Target is the absolute directory to install into.
	Target string
	// Exclude lists doublestar globs skipped inside copied directories.
	Exclude []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// Reporter receives progress (optional).
	Reporter Reporter
}

// Installer installs the core bundle and adapters into one target directory.
type Installer struct {
	catalog     *types.Catalog
	packageRoot string
	target      string
	fs          types.FS
	copier      *copier.Copier
	reporter    Reporter
}

// New creates an Installer.
func New(opts Options) (*Installer, error) {
	if opts.Catalog == nil {
		return nil, errors.New(errors.ErrInternal, "installer needs a catalog")
	}
	if opts.PackageRoot == "" || opts.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput, "installer needs a package root and a target")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	return &Installer{
		catalog:     opts.Catalog,
		packageRoot: opts.PackageRoot,
		target:      opts.Target,
		fs:          fs,
		copier:      copier.New(fs, copier.WithExclude(opts.Exclude...)),
		reporter:    reporter,
	}, nil
}

// Run performs a full installation of the core bundle followed by the
// selected adapters. selected must hold catalog ids.
func (i *Installer) Run(selected []string) (*types.InstallResult, error) {
	log := logging.GetLogger("installer")
	done := logging.LogOperationStart(log, "install")
	defer done()

	ordered, err := adapters.Resolve(i.catalog, selected)
	if err != nil {
		return nil, err
	}

	result := &types.InstallResult{
		Target:       i.target,
		NotInstalled: adapters.NotSelected(i.catalog, ordered),
		Timestamp:    time.Now(),
	}

	created, err := i.EnsureTarget()
	if err != nil {
		return nil, err
	}
	result.CreatedTarget = created

	i.reporter.SectionStarted("Installing Core Governance...")
	core, err := i.InstallCore()
	if err != nil {
		return nil, err
	}
	result.Core = core

	if len(ordered) > 0 {
		i.reporter.SectionStarted("Installing Adapters...")
	}
	for _, id := range ordered {
		bundle, err := i.InstallAdapter(id)
		if err != nil {
			return nil, err
		}
		result.Adapters = append(result.Adapters, bundle)
		if bundle.State == types.BundleApplied {
			result.NewlyInstalled = append(result.NewlyInstalled, id)
		} else {
			result.AlreadyPresent = append(result.AlreadyPresent, id)
		}
	}

	log.Info().
		Str("target", i.target).
		Str("core", string(result.Core.State)).
		Strs("newlyInstalled", result.NewlyInstalled).
		Strs("alreadyPresent", result.AlreadyPresent).
		Msg("Installation finished")

	return result, nil
}

// EnsureTarget creates the target directory when it does not exist yet.
func (i *Installer) EnsureTarget() (bool, error) {
	exists, err := i.copier.Exists(i.target)
	if err != nil {
		return false, err
	}
	if exists {
		info, err := i.fs.Stat(i.target)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", i.target)
		}
		if !info.IsDir() {
			return false, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", i.target).
				WithDetail("path", i.target)
		}
		return false, nil
	}

	if err := i.fs.MkdirAll(i.target, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", i.target).
			WithDetail("path", i.target)
	}
	i.reporter.TargetCreated(i.target)
	return true, nil
}

// InstallCore installs the core directory tree and the core top-level file.
func (i *Installer) InstallCore() (types.BundleResult, error) {
	core := i.catalog.Core
	result := types.BundleResult{ID: CoreID, Name: "Core Governance"}

	dirItem, err := i.installDir(core.Dir)
	if err != nil {
		return result, err
	}
	result.Items = append(result.Items, dirItem)

	fileItem, err := i.installFile(core.File)
	if err != nil {
		return result, err
	}
	result.Items = append(result.Items, fileItem)

	result.State = bundleState(result.Items)
	return result, nil
}

// InstallAdapter installs every file and directory of one adapter.
func (i *Installer) InstallAdapter(id string) (types.BundleResult, error) {
	adapter, ok := i.catalog.Adapter(id)
	if !ok {
		return types.BundleResult{}, errors.Newf(errors.ErrAdapterUnknown, "unknown adapter %q", id)
	}

	result := types.BundleResult{ID: adapter.ID, Name: adapter.Name}

	for _, f := range adapter.Files {
		item, err := i.installFile(f)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, item)
	}

	for _, d := range adapter.Dirs {
		item, err := i.installDir(d)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, item)
	}

	result.State = bundleState(result.Items)
	log := logging.GetLogger("installer")
	log.Debug().
		Str("adapter", id).
		Str("state", string(result.State)).
		Msg("Adapter processed")
	return result, nil
}

func (i *Installer) installFile(m types.PathMapping) (types.ItemResult, error) {
	outcome, err := i.copier.CopyFile(paths.Join(i.packageRoot, m.Src), paths.Join(i.target, m.Dest))
	if err != nil {
		return types.ItemResult{}, err
	}

	item := types.ItemResult{Kind: types.ItemFile, Dest: m.Dest, Outcome: outcome}
	i.reporter.ItemInstalled(item)
	return item, nil
}

// installDir merges into an existing destination or copies the whole tree
// into a new one.
func (i *Installer) installDir(m types.PathMapping) (types.ItemResult, error) {
	src := paths.Join(i.packageRoot, m.Src)
	dest := paths.Join(i.target, m.Dest)
	item := types.ItemResult{Kind: types.ItemDir, Dest: m.Dest}

	srcExists, err := i.copier.Exists(src)
	if err != nil {
		return item, err
	}
	destExists, err := i.copier.Exists(dest)
	if err != nil {
		return item, err
	}

	switch {
	case !srcExists:
		item.Mode = types.DirSourceMissing
		log := logging.GetLogger("installer")
		log.Warn().Str("src", src).Msg("Packaged directory missing")
	case destExists:
		item.Mode = types.DirMerged
		item.Stats, err = i.copier.MergeDir(src, dest)
	default:
		item.Mode = types.DirCreated
		item.Stats, err = i.copier.CopyTree(src, dest)
	}
	if err != nil {
		return item, err
	}

	i.reporter.ItemInstalled(item)
	return item, nil
}

func bundleState(items []types.ItemResult) types.BundleState {
	for _, item := range items {
		if item.AddedSomething() {
			return types.BundleApplied
		}
	}
	return types.BundleSkipped
}

type nopReporter struct{}

func (nopReporter) TargetCreated(string)           {}
func (nopReporter) SectionStarted(string)          {}
func (nopReporter) ItemInstalled(types.ItemResult) {}
