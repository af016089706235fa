package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tintlab/dyeseq/pkg/dye"
	"github.com/tintlab/dyeseq/pkg/search"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// dyeColors are the display colors for dye tokens in sequences.
var dyeColors = map[dye.Dye]lipgloss.Color{
	dye.Red:   lipgloss.Color("#ff4d4d"),
	dye.Green: lipgloss.Color("#4dff4d"),
	dye.Blue:  lipgloss.Color("#4da6ff"),
	dye.Black: lipgloss.Color("245"),
}

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	swatchBlock = "██"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// =============================================================================
// Color & Sequence Output
// =============================================================================

// swatch renders a small filled block in the given color.
func swatch(c dye.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(swatchBlock)
}

// printColor prints a labeled color with its swatch.
func printColor(key string, c dye.Color) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(c.String()) + " " + swatch(c))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// renderSequence renders a run-length-encoded sequence with each run
// tinted in its dye's display color.
func renderSequence(steps []dye.Dye) string {
	runs := search.Runs(steps)
	if len(runs) == 0 {
		return StyleDim.Render(search.NoDyesApplied)
	}
	parts := make([]string, len(runs))
	for i, r := range runs {
		style := lipgloss.NewStyle().Foreground(dyeColors[r.Dye])
		parts[i] = style.Render(fmt.Sprintf("%dx %s", r.Count, r.Dye))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

// printSequence prints a labeled dye sequence.
func printSequence(key string, steps []dye.Dye) {
	fmt.Println(styleKey.Render(key) + " " + renderSequence(steps))
}
