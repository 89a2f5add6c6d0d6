package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: directories, package names, addresses.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for created files and directories.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and skipped entries.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (directories, package names, addresses).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles emphasized words (key presses, variant names).
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleItalic styles file and directory names in tree previews.
	StyleItalic = lipgloss.NewStyle().Italic(true)

	// StyleDim styles structural chrome (tree connectors, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleWarning styles cancellations and skip notices.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Noun renders text in the noun style.
func Noun(text string) string {
	return StyleNoun.Render(text)
}

// Bold renders text in the bold style.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Warning renders text in the warning style.
func Warning(text string) string {
	return StyleWarning.Render(text)
}

// Checkmark renders a green checkmark with a message for stdout output.
func Checkmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
