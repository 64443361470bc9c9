package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/govsetup/pkg/paths"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
)

// CommandName is the name users re-run to add adapters.
const CommandName = "govsetup"

// CommitMessage is the suggested commit message in the next steps.
const CommitMessage = "chore: add AI governance framework"

const (
	symbolAdded   = "+"
	symbolSame    = "="
	symbolKept    = "~"
	symbolMissing = "!"
)

// Printer writes the install transcript to w.
type Printer struct {
	w       io.Writer
	catalog *types.Catalog
}

// NewPrinter creates a Printer for the given catalog.
func NewPrinter(w io.Writer, catalog *types.Catalog) *Printer {
	return &Printer{w: w, catalog: catalog}
}

func (p *Printer) println(a ...interface{}) {
	_, _ = fmt.Fprintln(p.w, a...)
}

func (p *Printer) box(title string) {
	border := "  +---------------------------------------------------+"
	p.println(styles.Render("Header", border))
	p.println(styles.Render("Header", fmt.Sprintf("  |%s|", center(title, len(border)-4))))
	p.println(styles.Render("Header", border))
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Banner prints the wizard headline.
func (p *Printer) Banner() {
	p.println()
	p.box("AI Governance Framework  -  Setup Wizard")
	p.println()
	p.println(styles.Render("Muted", "  17 enforceable policies | 7 templates | Auto-router"))
	p.println(styles.Render("Muted", "  Self-alignment | KPI dashboard | Red-team tested"))
	p.println()
}

// RerunNotice tells the user an existing installation was found.
func (p *Printer) RerunNotice() {
	p.println(styles.Render("Info", "  i") + "  Existing governance installation detected.")
	p.println(styles.Render("Muted", "    Only missing files will be added. Your customizations are safe."))
	p.println()
}

// Newline prints an empty line.
func (p *Printer) Newline() {
	p.println()
}

// TargetCreated implements installer.Reporter.
func (p *Printer) TargetCreated(target string) {
	p.line(symbolAdded, "Created "+paths.Display(target), "")
}

// SectionStarted implements installer.Reporter.
func (p *Printer) SectionStarted(title string) {
	p.println()
	p.println(styles.Render("Bold", "  "+title))
	p.println()
}

// ItemInstalled implements installer.Reporter.
func (p *Printer) ItemInstalled(item types.ItemResult) {
	symbol, label, note := p.describe(item)
	p.line(symbol, label, note)
}

func (p *Printer) line(symbol, label, note string) {
	style := "Success"
	switch symbol {
	case symbolKept:
		style = "Warning"
	case symbolMissing:
		style = "Error"
	}

	text := styles.Render(style, "  "+symbol) + "  " + label
	if note != "" {
		text += " " + styles.Render("Muted", note)
	}
	p.println(text)
}

// describe maps an item result to its transcript symbol, label and note.
func (p *Printer) describe(item types.ItemResult) (symbol, label, note string) {
	label = paths.Display(item.Dest)

	if item.Kind == types.ItemFile {
		switch item.Outcome {
		case types.OutcomeCopied:
			return symbolAdded, label, ""
		case types.OutcomeUnchanged:
			return symbolSame, label, "(up to date)"
		case types.OutcomeKeptExisting:
			return symbolKept, label, "(customized, kept yours)"
		default:
			return symbolMissing, label, "(missing from package, skipped)"
		}
	}

	label += "/"
	core := p.catalog != nil && item.Dest == p.catalog.Core.Dir.Dest
	switch item.Mode {
	case types.DirCreated:
		return symbolAdded, label, ""
	case types.DirSourceMissing:
		return symbolMissing, label, "(missing from package, skipped)"
	}

	if item.Stats.Added > 0 {
		if core {
			return symbolAdded, label, fmt.Sprintf("(%d new files added, %d unchanged)", item.Stats.Added, item.Stats.Skipped)
		}
		return symbolAdded, label, fmt.Sprintf("(%d new, %d unchanged)", item.Stats.Added, item.Stats.Skipped)
	}
	if core {
		return symbolSame, label, "(already up to date)"
	}
	return symbolSame, label, "(up to date)"
}

// Summary prints the closing report and next steps for an installation.
func (p *Printer) Summary(result *types.InstallResult) {
	p.println()
	p.box("Installation Complete!")
	p.println()
	p.println(styles.Render("Info", "  Installed to: ") + paths.Display(result.Target))
	p.println()

	p.println("    Core:")
	width := 0
	for _, c := range p.catalog.Core.Contents {
		if len(c.Path) > width {
			width = len(c.Path)
		}
	}
	for _, c := range p.catalog.Core.Contents {
		p.println(fmt.Sprintf("    - %-*s   %s", width, c.Path, c.Description))
	}

	alreadyPresent := make(map[string]bool, len(result.AlreadyPresent))
	for _, id := range result.AlreadyPresent {
		alreadyPresent[id] = true
	}

	var selected []types.Adapter
	for _, b := range result.Adapters {
		if a, ok := p.catalog.Adapter(b.ID); ok {
			selected = append(selected, a)
		}
	}

	if len(selected) > 0 {
		p.println()
		p.println("    Adapters:")
		for _, a := range selected {
			mark := ""
			if alreadyPresent[a.ID] {
				mark = styles.Render("Muted", " (was already installed)")
			}
			p.println(fmt.Sprintf("    - %s: %s%s", a.Name, a.Short, mark))
		}
	}

	if len(result.NotInstalled) > 0 {
		p.println()
		p.println(styles.Render("Muted", fmt.Sprintf("    Not installed (run %s again to add):", CommandName)))
		for _, id := range result.NotInstalled {
			if a, ok := p.catalog.Adapter(id); ok {
				p.println(styles.Render("Muted", "    - "+a.Name))
			}
		}
	}

	p.nextSteps(selected, len(result.NotInstalled) > 0)
}

func (p *Printer) nextSteps(selected []types.Adapter, more bool) {
	core := p.catalog.Core

	p.println()
	p.println(styles.Render("Bold", "  Next steps:"))
	p.println()
	p.println(fmt.Sprintf("    1. %s -- governance auto-loads in your IDE!", styles.Render("Bold", "Start coding")))
	p.println("       The auto-router detects intent from your prompts and")
	p.println("       triggers the right governance workflow automatically.")
	p.println()
	p.println(fmt.Sprintf("    2. %s policies in %s/policies/ %s",
		styles.Render("Bold", "Customize"), core.Dir.Dest, styles.Render("Muted", "(optional)")))
	p.println()
	p.println(fmt.Sprintf("    3. %s the governance files:", styles.Render("Bold", "Commit")))
	p.println(styles.Render("Command", fmt.Sprintf("       git add %s/ %s", core.Dir.Dest, core.File.Dest)))
	for _, a := range selected {
		p.println(styles.Render("Command", "       git add "+strings.Join(a.DestPaths(), " ")))
	}
	p.println(styles.Render("Command", fmt.Sprintf("       git commit -m %q", CommitMessage)))

	if more {
		p.println()
		p.println(styles.Render("Muted", "    Need more adapters later? Just run: "+CommandName))
	}

	p.println()
	p.println(styles.Render("Muted", "  Docs: "+core.Index))
	p.println()
}

// Cancelled prints the notice shown when the user interrupts a prompt.
func Cancelled(w io.Writer) {
	_, _ = fmt.Fprint(w, "\n  Cancelled.\n\n")
}
