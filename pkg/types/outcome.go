package types

// CopyOutcome classifies a single-file copy attempt.
type CopyOutcome string

const (
	// OutcomeCopied means the destination was absent and the source was written.
	OutcomeCopied CopyOutcome = "copied"
	// OutcomeUnchanged means the destination already holds identical bytes.
	OutcomeUnchanged CopyOutcome = "unchanged"
	// OutcomeKeptExisting means the destination differs and was left alone.
	OutcomeKeptExisting CopyOutcome = "kept-existing"
	// OutcomeSourceMissing means the packaged source does not exist.
	OutcomeSourceMissing CopyOutcome = "source-missing"
)

// Wrote reports whether the outcome wrote new content.
func (o CopyOutcome) Wrote() bool {
	return o == OutcomeCopied
}

// MergeStats counts the files a merge-copy added and skipped.
type MergeStats struct {
	Added   int `json:"added" yaml:"added"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Add accumulates the counts of a sub-merge.
func (s *MergeStats) Add(other MergeStats) {
	s.Added += other.Added
	s.Skipped += other.Skipped
}

// Total returns the number of files examined.
func (s MergeStats) Total() int {
	return s.Added + s.Skipped
}
