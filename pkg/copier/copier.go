package copier

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/filesystem"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Copier copies packaged content into a target tree without ever replacing
// existing files.
type Copier struct {
	fs      types.FS
	exclude []string
}

// Option configures a Copier.
type Option func(*Copier)

// WithExclude skips source files whose path relative to the copied directory
// matches one of the doublestar patterns.
func WithExclude(patterns ...string) Option {
	return func(c *Copier) {
		c.exclude = append(c.exclude, patterns...)
	}
}

// New creates a Copier. A nil fs uses the OS filesystem.
func New(fsys types.FS, opts ...Option) *Copier {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	c := &Copier{fs: fsys}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Exists reports whether anything is present at path.
func (c *Copier) Exists(path string) (bool, error) {
	_, err := c.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).WithDetail("path", path)
}

// MergeDir copies every file under src that is missing under dest, creating
// dest and intermediate directories as needed. Files already at dest are
// counted as skipped and never touched, whatever their content. A missing src
// is a no-op returning zero stats; dest is not created in that case.
func (c *Copier) MergeDir(src, dest string) (types.MergeStats, error) {
	log := logging.GetLogger("copier")

	srcExists, err := c.Exists(src)
	if err != nil {
		return types.MergeStats{}, err
	}
	if !srcExists {
		log.Debug().Str("src", src).Msg("Merge source missing, nothing to do")
		return types.MergeStats{}, nil
	}

	stats, err := c.mergeDir(src, dest, "")
	if err != nil {
		return stats, err
	}

	log.Debug().
		Str("src", src).
		Str("dest", dest).
		Int("added", stats.Added).
		Int("skipped", stats.Skipped).
		Msg("Merged directory")
	return stats, nil
}

func (c *Copier) mergeDir(src, dest, rel string) (types.MergeStats, error) {
	var stats types.MergeStats

	if err := c.fs.MkdirAll(dest, dirPerm); err != nil {
		return stats, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dest).WithDetail("path", dest)
	}

	entries, err := c.fs.ReadDir(src)
	if err != nil {
		return stats, errors.Wrapf(err, errors.ErrDirRead, "cannot read %s", src).WithDetail("path", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		relPath := joinRel(rel, entry.Name())

		isDir, err := c.isDir(srcPath, entry)
		if err != nil {
			return stats, err
		}

		if isDir {
			sub, err := c.mergeDir(srcPath, destPath, relPath)
			stats.Add(sub)
			if err != nil {
				return stats, err
			}
			continue
		}

		if c.excluded(relPath) {
			continue
		}

		exists, err := c.Exists(destPath)
		if err != nil {
			return stats, err
		}
		if exists {
			stats.Skipped++
			continue
		}

		if err := c.copyBytes(srcPath, destPath); err != nil {
			return stats, err
		}
		stats.Added++
	}

	return stats, nil
}

// CopyTree copies the whole src tree to dest, for use when dest does not exist
// yet. Should dest have appeared in the meantime, files already there are
// still kept, so CopyTree never overwrites. It reports the number of files
// written; a missing src writes nothing.
func (c *Copier) CopyTree(src, dest string) (types.MergeStats, error) {
	return c.MergeDir(src, dest)
}

// CopyFile installs a single file. It never writes when dest already exists:
// identical bytes report OutcomeUnchanged, different bytes OutcomeKeptExisting.
// A missing src reports OutcomeSourceMissing and leaves dest as it was.
func (c *Copier) CopyFile(src, dest string) (types.CopyOutcome, error) {
	log := logging.GetLogger("copier")

	srcExists, err := c.Exists(src)
	if err != nil {
		return "", err
	}
	if !srcExists {
		log.Warn().Str("src", src).Msg("Packaged file missing")
		return types.OutcomeSourceMissing, nil
	}

	parent := filepath.Dir(dest)
	if err := c.fs.MkdirAll(parent, dirPerm); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", parent).WithDetail("path", parent)
	}

	destExists, err := c.Exists(dest)
	if err != nil {
		return "", err
	}

	outcome := types.OutcomeCopied
	if destExists {
		same, err := c.sameContent(src, dest)
		if err != nil {
			return "", err
		}
		outcome = types.OutcomeKeptExisting
		if same {
			outcome = types.OutcomeUnchanged
		}
	} else if err := c.copyBytes(src, dest); err != nil {
		return "", err
	}

	log.Debug().Str("src", src).Str("dest", dest).Str("outcome", string(outcome)).Msg("Copied file")
	return outcome, nil
}

// CountFiles returns the number of files under dir that a merge would examine.
func (c *Copier) CountFiles(dir string) (int, error) {
	exists, err := c.Exists(dir)
	if err != nil || !exists {
		return 0, err
	}
	return c.countFiles(dir, "")
}

func (c *Copier) countFiles(dir, rel string) (int, error) {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirRead, "cannot read %s", dir).WithDetail("path", dir)
	}
	total := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		relPath := joinRel(rel, entry.Name())
		isDir, err := c.isDir(path, entry)
		if err != nil {
			return total, err
		}
		if isDir {
			n, err := c.countFiles(path, relPath)
			total += n
			if err != nil {
				return total, err
			}
			continue
		}
		if !c.excluded(relPath) {
			total++
		}
	}
	return total, nil
}

// isDir follows symlinks so a linked directory in the package is descended
// into rather than copied as a file.
func (c *Copier) isDir(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := c.fs.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).WithDetail("path", path)
	}
	return info.IsDir(), nil
}

func (c *Copier) excluded(relPath string) bool {
	for _, pattern := range c.exclude {
		if ok, _ := doublestar.Match(pattern, relPath); ok {
			return true
		}
	}
	return false
}

func (c *Copier) sameContent(src, dest string) (bool, error) {
	srcData, err := c.fs.ReadFile(src)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", src).WithDetail("path", src)
	}
	destData, err := c.fs.ReadFile(dest)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", dest).WithDetail("path", dest)
	}
	return bytes.Equal(srcData, destData), nil
}

func (c *Copier) copyBytes(src, dest string) error {
	data, err := c.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", src).WithDetail("path", src)
	}

	perm := filePerm
	if info, err := c.fs.Stat(src); err == nil {
		perm = info.Mode().Perm()
	}

	if err := c.fs.WriteFile(dest, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dest).WithDetail("path", dest)
	}
	return nil
}

// joinRel builds slash-separated relative paths for exclude matching.
func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
