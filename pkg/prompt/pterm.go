package prompt

import (
	"atomicgo.dev/keyboard/keys"
	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	"github.com/pterm/pterm"
)

// PTerm asks questions on the terminal.
type PTerm struct {
	// MaxHeight limits the visible rows of the multi-select.
	MaxHeight int
}

// NewPTerm creates a terminal prompter.
func NewPTerm() *PTerm {
	return &PTerm{MaxHeight: 10}
}

// TargetDir implements Prompter. Blank answers are rejected and asked again.
func (p *PTerm) TargetDir(def string) (string, error) {
	log := logging.GetLogger("prompt")

	for {
		interrupted := false
		answer, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(def).
			WithOnInterruptFunc(func() { interrupted = true }).
			Show(TargetMessage)
		if interrupted {
			return "", Cancelled()
		}
		if err != nil {
			return "", errors.Wrap(err, errors.ErrPrompt, "target directory prompt failed")
		}

		if verr := ValidateTarget(answer); verr != nil {
			log.Debug().Msg("Empty target answer, asking again")
			pterm.Println(styles.Render("Error", "  "+EmptyTargetMessage))
			continue
		}
		return answer, nil
	}
}

// SelectAdapters implements Prompter.
func (p *PTerm) SelectAdapters(choices []Choice) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	labels := make([]string, len(choices))
	var checked []string
	idByLabel := make(map[string]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
		idByLabel[c.Label] = c.ID
		if c.Checked {
			checked = append(checked, c.Label)
		}
	}

	height := p.MaxHeight
	if height <= 0 || height > len(labels) {
		height = len(labels)
	}

	interrupted := false
	picked, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(labels).
		WithDefaultOptions(checked).
		WithFilter(false).
		WithKeySelect(keys.Space).
		WithKeyConfirm(keys.Enter).
		WithMaxHeight(height).
		WithOnInterruptFunc(func() { interrupted = true }).
		Show(AdaptersMessage + " " + styles.Render("Muted", AdaptersHint))
	if interrupted {
		return nil, Cancelled()
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPrompt, "adapter prompt failed")
	}

	chosen := make(map[string]bool, len(picked))
	for _, label := range picked {
		chosen[idByLabel[label]] = true
	}
	var ids []string
	for _, c := range choices {
		if chosen[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}
