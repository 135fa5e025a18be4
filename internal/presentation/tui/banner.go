package tui

import (
	"fmt"
	"io"
)

// PrintBanner outputs the ASCII art banner for labyrinth.
func PrintBanner(w io.Writer) {
	out := newOutput(w)
	// Earthy gradient, top to bottom
	lines := []struct{ text, color string }{
		{" _       _                _       _   _     ", "#fbbf24"},
		{"| | __ _| |__  _   _ _ __(_)_ __ | |_| |__  ", "#f59e0b"},
		{"| |/ _` | '_ \\| | | | '__| | '_ \\| __| '_ \\ ", "#d97706"},
		{"| | (_| | |_) | |_| | |  | | | | | |_| | | |", "#b45309"},
		{"|_|\\__,_|_.__/ \\__, |_|  |_|_| |_|\\__|_| |_|", "#92400e"},
		{"               |___/                        ", "#78350f"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
