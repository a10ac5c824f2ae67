package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Name    string // Display name (e.g., "Ada Example")
	Title   string // Professional title
	Version string // Version string for CLI output
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders the branded header: name, title, divider.
// No ASCII art, just clean typography.
func RenderHeader(info HeaderInfo) string {
	nameStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorMuted)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorHairline)

	var output strings.Builder

	name := info.Name
	if name == "" {
		name = "folio"
	}
	output.WriteString(nameStyle.Render(name))
	if info.Version != "" {
		output.WriteString(" ")
		output.WriteString(versionStyle.Render(info.Version))
	}
	output.WriteString("\n")

	if info.Title != "" {
		output.WriteString(titleStyle.Render(info.Title))
		output.WriteString("\n")
	}

	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}

// PrintHeader prints the styled header to stdout.
func PrintHeader(info HeaderInfo) {
	fmt.Print(RenderHeader(info))
}
