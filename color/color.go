// Package color names the terminal colors the CLI renders with.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI code or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

var Gray = New("#808080")

// ForType returns the color a field type is printed in.
func ForType(name string) lipgloss.Color {
	switch name {
	case "int", "intlist":
		return Cyan
	case "list":
		return Purple
	case "bool":
		return Yellow
	default:
		return Green
	}
}
