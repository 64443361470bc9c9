// Package prompt asks the two installer questions: the target directory and
// which adapters to install.
//
// The Prompter interface hides the terminal. PTerm talks to a real terminal
// through pterm; Scripted answers from fixed values and is used by --yes runs
// and by tests. Both report a user interrupt as an errors.ErrCancelled error.
package prompt
