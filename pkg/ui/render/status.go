package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// RenderStatus writes a status result in the requested format.
func RenderStatus(w io.Writer, format Format, status *types.StatusResult) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode status: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(status); err != nil {
			return fmt.Errorf("failed to encode status: %w", err)
		}
		return enc.Close()
	default:
		return renderStatusText(w, status)
	}
}

func renderStatusText(w io.Writer, status *types.StatusResult) error {
	var b strings.Builder

	b.WriteString(styles.Render("Info", "  Target: ") + paths.Display(status.Target) + "\n\n")

	coreState := styles.Render("Muted", "not installed")
	if status.CoreInstalled {
		coreState = styles.Render("Success", "installed")
	}
	b.WriteString("    Core: " + coreState + "\n")
	if status.CoreInstalled && !status.CoreFile {
		b.WriteString(styles.Render("Warning", "      matrix file missing, re-run to restore it") + "\n")
	}

	b.WriteString("\n    Adapters:\n")
	for _, a := range status.Adapters {
		mark := "[ ]"
		if a.Installed {
			mark = styles.Render("Badge", "[x]")
		}
		b.WriteString(fmt.Sprintf("    %s %s  %s\n", mark, a.Name, styles.Render("Muted", "- "+a.Short)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
