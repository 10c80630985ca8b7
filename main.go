package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/particle"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("particle-field: ")

	var (
		configPath = flag.String("config", "", "path to a gcfg file overriding the defaults")
		seed       = flag.Int64("seed", 0, "seed for particle placement (0 = time based)")
		count      = flag.Int("count", -1, "number of particles (overrides the config)")
		debug      = flag.Bool("debug", false, "start with the stats overlay shown")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *count >= 0 {
		cfg.Field.Count = *count
		if err := cfg.CheckInit(); err != nil {
			fatal(err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("starting with %d particles, seed %d", cfg.Field.Count, *seed)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(game.Options{
		Params:      cfg.Params(),
		Bounds:      particle.Bounds{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Background:  cfg.Window.BackgroundColor(),
		HistorySize: config.HistorySize,
		Debug:       *debug,
		Rand:        rand.New(rand.NewSource(*seed)),
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
	log.Print("bye")
}

// fatal reports a startup or loop failure once, in the log and in a dialog,
// then exits.
func fatal(err error) {
	log.Print(err)
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("error dialog: %v", dlgErr)
	}
	os.Exit(1)
}
