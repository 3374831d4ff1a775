package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Chip-Trail/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.StringVar(&cfg.Level, "level", cfg.Level, "level to load")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "UI language (BCP 47)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "hint RNG seed (0 = time based)")
	flag.IntVar(&cfg.Goal, "goal", cfg.Goal, "chips per sequence")
	flag.DurationVar(&cfg.HintDelay, "hint-delay", cfg.HintDelay, "idle time before a hint")
	flag.StringVar(&cfg.CTAURL, "cta-url", "", "store page opened by the call to action")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play feedback sounds")
	flag.BoolVar(&cfg.Debug, "debug", false, "show the session log overlay")
	flag.Parse()

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Chip Trail")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
