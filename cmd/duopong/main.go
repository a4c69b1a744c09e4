package main

import (
	"fmt"
	"log"
	"os"

	"github.com/diegok/duopong/internal/app"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/window"
)

func main() {
	os.Exit(execute(os.Args[1:], run))
}

// execute returns the process exit code. It returns instead of exiting so
// the log file is closed after the last line is written.
func execute(args []string, run func(*config.Config) error) int {
	cfg, err := config.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting %s frontend at %d ticks/s with %+v", cfg.Frontend, cfg.TickRate, cfg.Game)

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	if cfg.Frontend == config.FrontendTerminal {
		return app.NewApp(cfg).Run()
	}

	var reloads <-chan string
	if cfg.Watch {
		w, err := config.NewWatcher(cfg.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", cfg.ConfigPath, err)
		}
		defer w.Close()
		reloads = w.Events
	}
	return window.Run(cfg, reloads)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  duopong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --frontend <term|window>  Where to play (default: term)")
	fmt.Fprintln(os.Stderr, "  --config <file>           TOML or YAML settings file")
	fmt.Fprintln(os.Stderr, "  --watch                   Reload speeds when the config file changes")
	fmt.Fprintln(os.Stderr, "  --tick-rate <n>           Simulation ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --seed <n>                Seed for ball serves (default: random)")
	fmt.Fprintln(os.Stderr, "  --fix-right-bounce        Place right bounces at the paddle edge")
	fmt.Fprintln(os.Stderr, "  --mute                    Disable sound")
	fmt.Fprintln(os.Stderr, "  --debug                   Write logs/duopong.log")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S        left paddle")
	fmt.Fprintln(os.Stderr, "  Up/Down    right paddle")
	fmt.Fprintln(os.Stderr, "  q, Esc     quit")
}
