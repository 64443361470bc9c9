package govsetup

import (
	"fmt"
	"io"

	"github.com/arthur-debert/govsetup/pkg/errors"
	"github.com/arthur-debert/govsetup/pkg/logging"
	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	"github.com/arthur-debert/govsetup/pkg/ui/render"
)

// ExitCode reports the outcome of a command run and returns the process exit
// code: 0 on success or user cancellation, 1 on any other error.
func ExitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	log := logging.GetLogger("main")
	if errors.IsCancelled(err) {
		log.Info().Msg("Cancelled by user")
		render.Cancelled(stdout)
		return 0
	}

	log.Debug().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")

	// Print the error in red
	errorStyle := styles.GetStyle("Error")
	_, _ = fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	return 1
}
