// Package window runs a match in a desktop window. Unlike a terminal, the
// window reports key releases, so paddles stop exactly when a key is let go.
package window

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/duopong/internal/audio"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/geom"
)

const scoreTop = 10

// Binding ties a keyboard key to the paddle input it produces
type Binding struct {
	Key    ebiten.Key
	Player game.Player
	Dir    game.PaddleDirection
}

// Bindings are the movement keys: W/S for player one, arrows for player two
var Bindings = []Binding{
	{ebiten.KeyW, game.PlayerOne, game.Up},
	{ebiten.KeyS, game.PlayerOne, game.Down},
	{ebiten.KeyArrowUp, game.PlayerTwo, game.Up},
	{ebiten.KeyArrowDown, game.PlayerTwo, game.Down},
}

// KeyState reports key edges for the current frame
type KeyState interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Game implements ebiten.Game around a match
type Game struct {
	match   *game.Match
	keys    KeyState
	reloads <-chan string
	face    text.Face
	prev    game.Snapshot
}

// NewGame creates the window game. reloads may be nil.
func NewGame(m *game.Match, reloads <-chan string) *Game {
	return &Game{
		match:   m,
		keys:    ebitenKeys{},
		reloads: reloads,
		face:    text.NewGoXFace(basicfont.Face7x13),
		prev:    m.Snapshot(),
	}
}

// Update feeds key edges to the match and runs one tick
func (g *Game) Update() error {
	if g.keys.JustPressed(ebiten.KeyEscape) || g.keys.JustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	select {
	case path := <-g.reloads:
		g.reload(path)
	default:
	}

	for _, b := range Bindings {
		if g.keys.JustPressed(b.Key) {
			g.match.KeyDown(b.Player, b.Dir)
		}
		if g.keys.JustReleased(b.Key) {
			g.match.KeyUp(b.Player, b.Dir)
		}
	}

	scored := g.match.Update()
	cur := g.match.Snapshot()
	audio.Play(game.DetectEvents(g.prev, cur, scored))
	if scored {
		log.Printf("tick %d: score %s", cur.Tick, cur.Score)
	}
	g.prev = cur
	return nil
}

func (g *Game) reload(path string) {
	settings, err := config.LoadSettings(path)
	if err != nil {
		log.Printf("reload %s: %v", path, err)
		return
	}
	g.match.Retune(settings)
	log.Printf("reloaded %s: paddle speed %g, ball speed %g", path, settings.PaddleSpeed, settings.BallSpeed)
}

func fillRect(dst *ebiten.Image, r geom.Rect) {
	vector.DrawFilledRect(dst, float32(r.Pos.X), float32(r.Pos.Y), float32(r.Size.X), float32(r.Size.Y), color.White, false)
}

// Draw renders the paddles, the ball and the score text
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	snap := g.prev
	fillRect(screen, snap.PaddleOne)
	fillRect(screen, snap.PaddleTwo)
	fillRect(screen, snap.Ball)

	score := snap.Score.String()
	op := &text.DrawOptions{}
	op.GeoM.Translate(snap.Width/2-text.Advance(score, g.face)/2, scoreTop)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, score, g.face, op)
}

// Layout keeps the logical screen at the playfield size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.match.Settings.ScreenWidth), int(g.match.Settings.ScreenHeight)
}

// startAudio turns sound on unless muted. The returned func releases it.
func startAudio(mute bool) func() {
	if mute {
		return func() {}
	}
	// The game works without sound
	if err := audio.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return audio.Close
}

// Run opens the window and blocks until it is closed
func Run(cfg *config.Config, reloads <-chan string) error {
	m := game.NewMatch(cfg.Game)
	defer startAudio(cfg.Mute)()

	ebiten.SetWindowSize(int(cfg.Game.ScreenWidth), int(cfg.Game.ScreenHeight))
	ebiten.SetWindowTitle("duopong")
	ebiten.SetTPS(cfg.TickRate)

	// A Termination from Update ends RunGame with a nil error
	if err := ebiten.RunGame(NewGame(m, reloads)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
