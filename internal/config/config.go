package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/diegok/duopong/internal/game"
)

// Default values for configuration
const (
	DefaultTickRate = 60
	MaxTickRate     = 1000
)

// Frontends
const (
	FrontendTerminal = "term"
	FrontendWindow   = "window"
)

// Config holds the application configuration
type Config struct {
	Frontend   string
	ConfigPath string
	Watch      bool
	TickRate   int
	Mute       bool
	Debug      bool
	Game       game.Settings
}

// ParseArgs parses command line arguments and returns a Config. Settings
// come from the defaults, then the config file, then explicit flags.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("duopong", flag.ContinueOnError)

	frontend := fs.String("frontend", FrontendTerminal, "frontend to run (term or window)")
	path := fs.String("config", "", "TOML or YAML settings file")
	watch := fs.Bool("watch", false, "reload speeds when the config file changes")
	tickRate := fs.Int("tick-rate", DefaultTickRate, "simulation ticks per second")
	seed := fs.Int64("seed", 0, "seed for ball serves (0 = random)")
	fixBounce := fs.Bool("fix-right-bounce", false, "place right bounces at the paddle edge")
	mute := fs.Bool("mute", false, "disable sound")
	debug := fs.Bool("debug", false, "write a debug log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *frontend != FrontendTerminal && *frontend != FrontendWindow {
		return nil, fmt.Errorf("frontend must be %q or %q, got %q", FrontendTerminal, FrontendWindow, *frontend)
	}

	if *watch && *path == "" {
		return nil, errors.New("--watch requires --config")
	}

	if *tickRate < 1 || *tickRate > MaxTickRate {
		return nil, fmt.Errorf("tick rate must be between 1 and %d, got %d", MaxTickRate, *tickRate)
	}

	settings := game.DefaultSettings()
	if *path != "" {
		var err error
		settings, err = LoadSettings(*path)
		if err != nil {
			return nil, err
		}
	}

	// Flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			settings.Seed = *seed
		case "fix-right-bounce":
			settings.FixRightBounce = *fixBounce
		}
	})

	cfg := &Config{
		Frontend:   *frontend,
		ConfigPath: *path,
		Watch:      *watch,
		TickRate:   *tickRate,
		Mute:       *mute,
		Debug:      *debug,
		Game:       settings,
	}

	return cfg, nil
}
