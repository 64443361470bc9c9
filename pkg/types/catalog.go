package types

// PathMapping pairs a path inside the package root with the path it is
// installed to, relative to the target directory. Both use forward slashes.
type PathMapping struct {
	Src  string `koanf:"src" json:"src" yaml:"src"`
	Dest string `koanf:"dest" json:"dest" yaml:"dest"`
}

// PathDescription is a line of the post-install summary describing what a
// core path contains.
type PathDescription struct {
	Path        string `koanf:"path" json:"path" yaml:"path"`
	Description string `koanf:"description" json:"description" yaml:"description"`
}

// Bundle is the always-installed baseline content: one directory tree and one
// top-level file.
type Bundle struct {
	Dir      PathMapping       `koanf:"dir" json:"dir" yaml:"dir"`
	File     PathMapping       `koanf:"file" json:"file" yaml:"file"`
	Contents []PathDescription `koanf:"contents" json:"contents" yaml:"contents"`
	// Index is the documentation entry point inside Dir, relative to the target.
	Index string `koanf:"index" json:"index" yaml:"index"`
}

// Adapter describes an optional, tool-specific set of files and directories.
type Adapter struct {
	ID    string        `koanf:"id" json:"id" yaml:"id"`
	Name  string        `koanf:"name" json:"name" yaml:"name"`
	Short string        `koanf:"short" json:"short" yaml:"short"`
	Files []PathMapping `koanf:"files" json:"files" yaml:"files"`
	Dirs  []PathMapping `koanf:"dirs" json:"dirs" yaml:"dirs"`
}

// DestPaths returns the destination paths of the adapter, files first and
// directories suffixed with a slash.
func (a Adapter) DestPaths() []string {
	paths := make([]string, 0, len(a.Files)+len(a.Dirs))
	for _, f := range a.Files {
		paths = append(paths, f.Dest)
	}
	for _, d := range a.Dirs {
		paths = append(paths, d.Dest+"/")
	}
	return paths
}

// Catalog is the fixed installation content: the core bundle and the adapters
// in display order. It is built once at startup and never mutated.
type Catalog struct {
	Core     Bundle    `koanf:"core" json:"core" yaml:"core"`
	Adapters []Adapter `koanf:"adapters" json:"adapters" yaml:"adapters"`
}

// Adapter looks up an adapter by id.
func (c *Catalog) Adapter(id string) (Adapter, bool) {
	for _, a := range c.Adapters {
		if a.ID == id {
			return a, true
		}
	}
	return Adapter{}, false
}

// AdapterIDs returns every adapter id in display order.
func (c *Catalog) AdapterIDs() []string {
	ids := make([]string, len(c.Adapters))
	for i, a := range c.Adapters {
		ids[i] = a.ID
	}
	return ids
}
