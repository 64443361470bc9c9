package config

import (
	"path"
	"strings"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
)

// LoadCatalog parses the embedded catalog.
func LoadCatalog() (*types.Catalog, error) {
	return parseCatalog(catalogConfig)
}

// MustCatalog returns the embedded catalog and panics if it is invalid. The
// catalog is compiled in, so a failure here is a build defect.
func MustCatalog() *types.Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func parseCatalog(data []byte) (*types.Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse catalog")
	}

	var catalog types.Catalog
	if err := k.UnmarshalWithConf("", &catalog, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode catalog")
	}

	if err := ValidateCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// ValidateCatalog checks ids and paths of a catalog.
func ValidateCatalog(c *types.Catalog) error {
	if err := validateMapping("core.dir", c.Core.Dir); err != nil {
		return err
	}
	if err := validateMapping("core.file", c.Core.File); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Adapters))
	for _, a := range c.Adapters {
		if a.ID == "" || a.Name == "" {
			return errors.New(errors.ErrConfigValid, "adapter needs an id and a name").
				WithDetail("adapter", a.ID)
		}
		if seen[a.ID] {
			return errors.Newf(errors.ErrConfigValid, "duplicate adapter id %q", a.ID)
		}
		seen[a.ID] = true

		if len(a.Files) == 0 && len(a.Dirs) == 0 {
			return errors.Newf(errors.ErrConfigValid, "adapter %q installs nothing", a.ID)
		}
		for _, m := range append(append([]types.PathMapping{}, a.Files...), a.Dirs...) {
			if err := validateMapping("adapters."+a.ID, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateMapping(where string, m types.PathMapping) error {
	for _, p := range []string{m.Src, m.Dest} {
		if !isRelativeClean(p) {
			return errors.Newf(errors.ErrConfigValid, "%s: path %q must be relative and stay inside its root", where, p)
		}
	}
	return nil
}

func isRelativeClean(p string) bool {
	if p == "" || strings.Contains(p, `\`) || path.IsAbs(p) {
		return false
	}
	clean := path.Clean(p)
	return clean == p && clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}
