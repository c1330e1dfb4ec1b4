package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockwrap/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Oversize.Render(text), "No-color Oversize should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should behave like auto")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should behave like auto")
}

func TestStyles_AllFieldsInitialized(t *testing.T) {
	styles := pretty.NewStyles(true)

	for name, style := range map[string]interface{ Render(...string) string }{
		"Error":        styles.Error,
		"Warning":      styles.Warning,
		"Info":         styles.Info,
		"Success":      styles.Success,
		"Failure":      styles.Failure,
		"BlockBorder":  styles.BlockBorder,
		"BlockHeader":  styles.BlockHeader,
		"BlockLine":    styles.BlockLine,
		"Oversize":     styles.Oversize,
		"SummaryTitle": styles.SummaryTitle,
		"SummaryValue": styles.SummaryValue,
		"FilePath":     styles.FilePath,
		"Dim":          styles.Dim,
		"Bold":         styles.Bold,
	} {
		assert.NotEmpty(t, style.Render("x"), name)
	}
}
