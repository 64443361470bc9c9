// Package render produces govsetup's terminal output.
//
// Printer writes the install transcript: the banner, one line per installed
// item while the installer runs, and the closing summary with next steps.
// It satisfies installer.Reporter. Status results are rendered as plain text,
// JSON or YAML through RenderStatus.
package render
