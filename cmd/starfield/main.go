// Command starfield opens a resizable window showing the portfolio's
// star-field background.
package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okachamie/portfolio/internal/desktop"
)

func main() {
	width := flag.Int("width", 1000, "initial window width")
	height := flag.Int("height", 600, "initial window height")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for star placement")
	stats := flag.Bool("stats", false, "show star count and frame rate")
	flag.Parse()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Starfield")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	host := desktop.New(desktop.Options{Seed: *seed, ShowStats: *stats})
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
