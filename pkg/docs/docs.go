// Package docs renders the installed framework documentation in the terminal.
package docs

import (
	"os"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/charmbracelet/glamour"
)

// Renderer renders markdown with glamour.
type Renderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Terminal width (0 = glamour default)
}

// NewRenderer creates a renderer. Without color the "notty" style is used.
func NewRenderer(color bool) *Renderer {
	if !color {
		return &Renderer{Style: "notty"}
	}
	return &Renderer{Style: "auto"}
}

// Render converts markdown to terminal output. On renderer failure the
// markdown is returned as is.
func (r *Renderer) Render(markdown string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii", "dracula", "pink":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		log := logging.GetLogger("docs")
		log.Debug().Err(err).Msg("glamour unavailable, showing plain markdown")
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		log := logging.GetLogger("docs")
		log.Debug().Err(err).Msg("glamour render failed, showing plain markdown")
		return markdown
	}
	return rendered
}

// Load reads the documentation index installed under target.
func Load(fsys types.FS, target, index string) (string, error) {
	path := paths.Join(target, index)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrNotFound, "%s not found; run govsetup to install the framework", paths.Display(path)).
				WithDetail("path", path)
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).WithDetail("path", path)
	}
	return string(data), nil
}
