// Command starfield-term draws the star-field background in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okachamie/portfolio/internal/term"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for star placement")
	fps := flag.Int("fps", 30, "frames per second (1-120)")
	status := flag.Bool("status", true, "show a status line")
	flag.Parse()

	if *fps < 1 {
		*fps = 1
	} else if *fps > 120 {
		*fps = 120
	}

	m := term.New(term.Options{
		Seed:       *seed,
		Interval:   time.Second / time.Duration(*fps),
		ShowStatus: *status,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
