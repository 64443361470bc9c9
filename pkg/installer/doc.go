// Package installer sequences an installation run: make sure the target
// exists, install the core bundle, then install each selected adapter.
//
// The installer is a straight-line procedure with no state kept between runs.
// Each bundle ends up either applied (something was added) or skipped (nothing
// was missing). Existing destination files are never modified, so running the
// installer again is always safe and is the recovery path after a failure.
// Missing packaged sources are reported on the affected item and do not stop
// the run; any other I/O error aborts it.
package installer
