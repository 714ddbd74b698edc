package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for output formatting.
// When Enabled is false every paint call returns its input unchanged.
type Styles struct {
	Enabled   bool
	Filename  lipgloss.Style
	LineNum   lipgloss.Style
	Separator lipgloss.Style
	Match     lipgloss.Style
	Context   lipgloss.Style
}

// NewStyles creates the default color styles rendered by r. The renderer's
// color profile decides which escape sequences are emitted.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Enabled:   true,
		Filename:  base.Foreground(lipgloss.Color("5")),           // magenta
		LineNum:   base.Foreground(lipgloss.Color("2")),           // green
		Separator: base.Foreground(lipgloss.Color("6")),           // cyan
		Match:     base.Foreground(lipgloss.Color("1")).Bold(true), // bold red
		Context:   base,
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Filename:  lipgloss.NewStyle(),
		LineNum:   lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle(),
		Match:     lipgloss.NewStyle(),
		Context:   lipgloss.NewStyle(),
	}
}

// paint renders text with st, or returns it untouched when styling is off.
func (s Styles) paint(st lipgloss.Style, text string) string {
	if !s.Enabled || text == "" {
		return text
	}
	return st.Render(text)
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
