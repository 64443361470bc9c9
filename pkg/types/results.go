package types

import "time"

// ItemKind tells whether an installed item is a single file or a directory.
type ItemKind string

const (
	ItemFile ItemKind = "file"
	ItemDir  ItemKind = "dir"
)

// DirMode tells how a directory mapping was applied.
type DirMode string

const (
	// DirMerged means the destination existed and was merge-copied into.
	DirMerged DirMode = "merged"
	// DirCreated means the destination was absent and the full tree was copied.
	DirCreated DirMode = "created"
	// DirSourceMissing means the packaged directory does not exist.
	DirSourceMissing DirMode = "source-missing"
)

// ItemResult is the outcome of applying one path mapping.
type ItemResult struct {
	Kind    ItemKind    `json:"kind" yaml:"kind"`
	Dest    string      `json:"dest" yaml:"dest"`
	Outcome CopyOutcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Mode    DirMode     `json:"mode,omitempty" yaml:"mode,omitempty"`
	Stats   MergeStats  `json:"stats" yaml:"stats"`
}

// AddedSomething reports whether this item wrote net-new content.
func (r ItemResult) AddedSomething() bool {
	if r.Kind == ItemFile {
		return r.Outcome.Wrote()
	}
	return r.Mode == DirCreated || r.Stats.Added > 0
}

// BundleState is the per-bundle result of an installation step.
type BundleState string

const (
	// BundleApplied means at least one file was added.
	BundleApplied BundleState = "applied"
	// BundleSkipped means nothing was missing.
	BundleSkipped BundleState = "skipped"
)

// BundleResult collects the item results for the core bundle or one adapter.
type BundleResult struct {
	ID    string       `json:"id" yaml:"id"`
	Name  string       `json:"name" yaml:"name"`
	State BundleState  `json:"state" yaml:"state"`
	Items []ItemResult `json:"items" yaml:"items"`
}

// InstallResult is the full result of an installation run.
type InstallResult struct {
	Target         string         `json:"target" yaml:"target"`
	CreatedTarget  bool           `json:"createdTarget" yaml:"createdTarget"`
	Core           BundleResult   `json:"core" yaml:"core"`
	Adapters       []BundleResult `json:"adapters" yaml:"adapters"`
	NotInstalled   []string       `json:"notInstalled" yaml:"notInstalled"`
	NewlyInstalled []string       `json:"newlyInstalled" yaml:"newlyInstalled"`
	AlreadyPresent []string       `json:"alreadyPresent" yaml:"alreadyPresent"`
	Timestamp      time.Time      `json:"timestamp" yaml:"timestamp"`
}

// AdapterStatus is the detection result for a single adapter.
type AdapterStatus struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Short     string   `json:"short" yaml:"short"`
	Installed bool     `json:"installed" yaml:"installed"`
	Paths     []string `json:"paths" yaml:"paths"`
}

// StatusResult reports what is present in a target directory.
type StatusResult struct {
	Target        string          `json:"target" yaml:"target"`
	CoreInstalled bool            `json:"coreInstalled" yaml:"coreInstalled"`
	CoreFile      bool            `json:"coreFile" yaml:"coreFile"`
	Adapters      []AdapterStatus `json:"adapters" yaml:"adapters"`
}

// GenConfigResult holds the default options file and where it was written.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent" yaml:"configContent"`
	FilesWritten  []string `json:"filesWritten" yaml:"filesWritten"`
}
