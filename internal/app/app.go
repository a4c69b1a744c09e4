package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/audio"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/ui"
)

// App runs a match in the terminal
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	match    *game.Match
	hold     *ui.HoldTracker
	watcher  *config.Watcher
	prev     game.Snapshot

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		match: game.NewMatch(cfg.Game),
		hold:  ui.NewHoldTracker(ui.HoldTicks),
		quit:  make(chan struct{}),
	}
}

// Run initializes the screen, sets up signal handling, and plays until the
// user quits.
func (a *App) Run() error {
	if !a.cfg.Mute {
		// The game works without sound
		if err := audio.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	if a.cfg.Watch {
		a.watcher, err = config.NewWatcher(a.cfg.ConfigPath)
		if err != nil {
			err = fmt.Errorf("failed to watch %s: %w", a.cfg.ConfigPath, err)
			a.showFatal(err)
			a.cleanup()
			return err
		}
	}

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()
	a.cleanup()
	return runErr
}

// mainLoop owns the match: input, ticks and reloads all arrive here.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	a.prev = a.match.Snapshot()
	a.renderer.RenderGame(a.prev)

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				a.stop()
				return nil
			}

		case path := <-a.watchEvents():
			a.reload(path)

		case err := <-a.watchErrors():
			log.Printf("config watcher: %v", err)

		case <-ticker.C:
			a.tick()
		}
	}
}

// tick advances the match one step and redraws
func (a *App) tick() {
	a.hold.Tick(a.match)
	scored := a.match.Update()

	cur := a.match.Snapshot()
	audio.Play(game.DetectEvents(a.prev, cur, scored))
	if scored {
		log.Printf("tick %d: score %s", cur.Tick, cur.Score)
	}
	a.prev = cur

	a.renderer.RenderGame(cur)
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.RenderGame(a.match.Snapshot())
	}

	return false
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if ui.IsQuitKey(key, r) {
		return true
	}
	if b, ok := ui.KeyToBinding(key, r); ok {
		a.hold.Press(b, a.match)
	}
	return false
}

// showFatal keeps err on screen until a key is pressed
func (a *App) showFatal(err error) {
	a.renderer.RenderError(err.Error())
	for {
		switch a.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		}
	}
}

// stop ends the main loop; safe to call from the signal goroutine too
func (a *App) stop() {
	a.stopOnce.Do(func() {
		close(a.quit)
	})
}

// reload applies new speeds from the config file, keeping the current ones
// if the file does not load
func (a *App) reload(path string) {
	settings, err := config.LoadSettings(path)
	if err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	a.match.Retune(settings)
	log.Printf("reloaded %s: paddle speed %g, ball speed %g", path, settings.PaddleSpeed, settings.BallSpeed)
}

// A nil channel never fires, so the select ignores reloads without a watcher
func (a *App) watchEvents() <-chan string {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Events
}

func (a *App) watchErrors() <-chan error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Errors
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.watcher != nil {
		a.watcher.Close()
	}

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
