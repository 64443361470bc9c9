package prompt

// Scripted answers prompts from fixed values. A nil Adapters keeps the
// pre-checked choices; otherwise Adapters is returned as given and left to
// the installer to validate.
type Scripted struct {
	Target   string
	Adapters []string
	// Cancel makes every question report a user interrupt.
	Cancel bool

	// Asked records the defaults and choices each question was asked with.
	AskedTargetDefault string
	AskedChoices       []Choice
}

// TargetDir implements Prompter. An empty Target accepts the default.
func (s *Scripted) TargetDir(def string) (string, error) {
	s.AskedTargetDefault = def
	if s.Cancel {
		return "", Cancelled()
	}
	if err := ValidateTarget(s.Target); err != nil {
		if verr := ValidateTarget(def); verr != nil {
			return "", verr
		}
		return def, nil
	}
	return s.Target, nil
}

// SelectAdapters implements Prompter.
func (s *Scripted) SelectAdapters(choices []Choice) ([]string, error) {
	s.AskedChoices = choices
	if s.Cancel {
		return nil, Cancelled()
	}

	if s.Adapters == nil {
		var ids []string
		for _, c := range choices {
			if c.Checked {
				ids = append(ids, c.ID)
			}
		}
		return ids, nil
	}

	return append([]string{}, s.Adapters...), nil
}
