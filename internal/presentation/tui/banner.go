package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner followed by the tagline, coloured
// when w is a colour terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{" _ __ ___   ___  _ __ ___  ___ ", "#818cf8"},
		{"| '_ ` _ \\ / _ \\| '__/ __|/ _ \\", "#a78bfa"},
		{"| | | | | | (_) | |  \\__ \\  __/", "#c084fc"},
		{"|_| |_| |_|\\___/|_|  |___/\\___|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	tagline := out.String("--- ---   --- --- ---   . --- .   . . .   .").Foreground(out.Color("#f472b6")).Faint()
	fmt.Fprintf(w, "%s  v%s\n\n", tagline, version)
}

// Highlight returns a ContentRenderer-compatible function that colours
// output lines for w. Plain writers get the text unchanged.
func Highlight(w io.Writer) func(string) (string, error) {
	out := termenv.NewOutput(w)
	return func(s string) (string, error) {
		return out.String(s).Foreground(out.Color("#a78bfa")).Bold().String(), nil
	}
}
