package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/shatter/internal/shatter"
)

func main() {
	cfg := shatter.DefaultConfig()
	var seed int64

	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Fragments per side of the shattered button")
	flag.Float64Var(&cfg.ExplosionForce, "force", cfg.ExplosionForce, "Travel distance multiplier")
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Animation duration")
	flag.StringVar(&cfg.AccentColor, "accent", cfg.AccentColor, "Fragment color as #RRGGBB")
	flag.Int64Var(&seed, "seed", 0, "Random seed for a reproducible field (0 picks one from the clock)")
	flag.Parse()

	// The TUI owns the terminal, so logs only go to a file when asked for.
	if os.Getenv("SHATTER_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "shatter")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var src shatter.Source
	if seed != 0 {
		src = shatter.NewSource(seed)
	}
	b, err := shatter.NewBuilder(cfg, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("config: grid=%d force=%g duration=%v accent=%s", cfg.GridSize, cfg.ExplosionForce, cfg.Duration, cfg.AccentColor)

	program := tea.NewProgram(newAppModel(b), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
