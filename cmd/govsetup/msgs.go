package govsetup

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "AI Governance Framework setup wizard"
	MsgStatusShort     = "Show what is installed in a directory"
	MsgDocsShort       = "Render the installed framework documentation"
	MsgGenConfigShort  = "Print or write the default options file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "%s already exists, left unchanged\n"

	// Error messages
	MsgErrWorkDir      = "failed to determine working directory: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrInstall      = "installation failed: %w"
	MsgErrStatus       = "failed to get status: %w"
	MsgErrDocs         = "failed to show docs: %w"
	MsgErrFormat       = "invalid --format: %w"
	MsgErrGenConfig    = "failed to generate config: %w"
	MsgErrTargetNeeded = "--target and --adapters need --yes"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Read options from this TOML file"
	MsgFlagColor       = "Color output: auto, always or never"
	MsgFlagPackageRoot = "Directory holding the packaged framework content"
	MsgFlagYes         = "Do not prompt; use --target and --adapters"
	MsgFlagTarget      = "Directory to install to (with --yes, default: current directory)"
	MsgFlagAdapters    = "Comma-separated adapter ids to install (with --yes, default: those already installed)"
	MsgFlagFormat      = "Output format: text, json or yaml"
	MsgFlagWrite       = "Write govsetup.toml to the current directory instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/docs-long.txt
	msgDocsLongRaw string
	MsgDocsLong    = strings.TrimSpace(msgDocsLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
