package styles_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/govsetup/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expectedStyles := []string{
		"Bold", "Header", "Success", "Info", "Warning", "Error", "Command", "Muted", "Badge",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := styles.StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(styles.LoadDefaultStyles)

	err := styles.LoadStylesFromData([]byte(`
colors:
  accent: {light: "#000000", dark: "#FFFFFF"}
styles:
  Accent:
    foreground: accent
    bold: true
`))
	require.NoError(t, err)

	style := styles.GetStyle("Accent")
	assert.True(t, style.GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}, style.GetForeground())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}

func TestGetStyleUnknownIsPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "text", styles.Render("DoesNotExist", "text"))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, styles.ColorEnabled("always", &buf))
	assert.False(t, styles.ColorEnabled("never", &buf))
	assert.False(t, styles.ColorEnabled("auto", &buf), "non-file writers are not terminals")

	t.Setenv("TERM", "dumb")
	assert.False(t, styles.ColorEnabled("auto", &buf))
}

func TestConfigureColorNeverStripsStyles(t *testing.T) {
	styles.ConfigureColor("never", &bytes.Buffer{})
	assert.Equal(t, "+", styles.Render("Success", "+"))
}
