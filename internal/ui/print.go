package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetOutput redirects stdout and stderr printing, returning a func that
// restores the previous writers. Used by tests.
func SetOutput(stdout, stderr io.Writer) (restore func()) {
	prevOut, prevErr := out, errOut
	out, errOut = stdout, stderr
	return func() { out, errOut = prevOut, prevErr }
}

// Stdout returns the writer used for regular output.
func Stdout() io.Writer { return out }

// Stderr returns the writer used for errors and diagnostics.
func Stderr() io.Writer { return errOut }

// Puts prints a styled line to stdout.
func Puts(s string) {
	fmt.Fprintln(out, s)
}

// Putsf prints a formatted styled line to stdout.
func Putsf(format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}

// Warn prints a warning message.
func Warn(msg string) {
	fmt.Fprintln(out, Warning.Render("  "+IconWarn+msg))
}

// Err prints an error message.
func Err(msg string) {
	styled := Error.Copy().Bold(true).Render("  " + IconError + msg)
	fmt.Fprintln(errOut, styled)
}

// Ok prints a success message.
func Ok(msg string) {
	fmt.Fprintln(out, Success.Render("  "+IconOk+msg))
}

// Inf prints an info message.
func Inf(msg string) {
	fmt.Fprintln(out, Info.Render("  "+msg))
}

// Rule prints a full-width horizontal line.
func Rule(width int) {
	fmt.Fprintln(out, Muted.Render(strings.Repeat("─", width)))
}

// Section prints a heading framed by rules.
func Section(title string, width int) {
	fmt.Fprintln(out)
	Rule(width)
	fmt.Fprintln(out, Title.Render("  "+title))
	Rule(width)
	fmt.Fprintln(out)
}

// Tip prints a helpful tip.
func Tip(msg string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, Muted.Render("  tip: "+msg))
}

// Kv prints a key-value pair, padded.
func Kv(key string, value string) {
	k := KeyStyle.Render(fmt.Sprintf("  %-12s", key))
	v := ValueStyle.Render(value)
	fmt.Fprintf(out, "%s %s\n", k, v)
}
