package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// DisableColor forces plain ASCII rendering for every lipgloss style.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// TermWidth returns the terminal width of stdout, or fallback when stdout
// is not a terminal or the size cannot be read.
func TermWidth(fallback int) int {
	if !IsStdoutTTY() {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
