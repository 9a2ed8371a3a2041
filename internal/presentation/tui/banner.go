package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the pitchflow ASCII banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"         _ _       _      __ _               ", "#818cf8"},
		{"   _ __ (_) |_ ___| |__  / _| | _____      __", "#a78bfa"},
		{"  | '_ \\| | __/ __| '_ \\| |_| |/ _ \\ \\ /\\ / /", "#c084fc"},
		{"  | |_) | | || (__| | | |  _| | (_) \\ V  V / ", "#e879f9"},
		{"  | .__/|_|\\__\\___|_| |_|_| |_|\\___/ \\_/\\_/  ", "#f472b6"},
		{"  |_|                                        ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, termenv.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
