package prompt

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/types"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
)

const (
	// TargetMessage is the question asked for the installation directory.
	TargetMessage = "Install to directory:"
	// AdaptersMessage is the question asked for the adapter selection.
	AdaptersMessage = "Which AI coding tools do you use?"
	// AdaptersHint is shown next to AdaptersMessage.
	AdaptersHint = "(space = toggle, enter = confirm)"
	// EmptyTargetMessage is shown when the target input is blank.
	EmptyTargetMessage = "Please enter a path"
)

// Choice is one entry of the adapter multi-select.
type Choice struct {
	ID      string
	Label   string
	Checked bool
}

// Prompter asks the installer questions.
type Prompter interface {
	// TargetDir asks for the installation directory. def is offered as the
	// default answer. The returned string is never blank.
	TargetDir(def string) (string, error)
	// SelectAdapters asks which adapters to install and returns the chosen
	// ids in the order of choices.
	SelectAdapters(choices []Choice) ([]string, error)
}

// BuildChoices turns detection results into multi-select entries. Installed
// adapters are pre-checked and marked.
func BuildChoices(statuses []types.AdapterStatus) []Choice {
	choices := make([]Choice, 0, len(statuses))
	for _, s := range statuses {
		label := fmt.Sprintf("%s  %s", s.Name, styles.Render("Muted", "- "+s.Short))
		if s.Installed {
			label += "  " + styles.Render("Badge", "[installed]")
		}
		choices = append(choices, Choice{ID: s.ID, Label: label, Checked: s.Installed})
	}
	return choices
}

// ValidateTarget checks a target directory answer.
func ValidateTarget(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New(errors.ErrInvalidInput, EmptyTargetMessage)
	}
	return nil
}

// Cancelled returns the error reported when the user interrupts a prompt.
func Cancelled() error {
	return errors.New(errors.ErrCancelled, "cancelled by user")
}
