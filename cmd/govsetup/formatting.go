package govsetup

import (
	"strings"
	"text/template"

	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold when color is enabled
func formatBold(s string) string {
	return styles.Render("Bold", s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return styles.Render("Bold", strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
