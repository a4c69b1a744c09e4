package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/geom"
)

const (
	BlockChar = '\u2588' // █
	NetChar   = '|'
)

const helpText = " W/S: left paddle | Up/Down: right paddle | q: quit"

// Renderer draws match snapshots onto a terminal
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// courtArea maps playfield units onto the rows between the score line and
// the status bar
type courtArea struct {
	top    int
	width  int
	height int
	scaleX float64
	scaleY float64
}

func newCourtArea(screenW, screenH int, snap game.Snapshot) courtArea {
	height := screenH - 2
	if height < 1 {
		height = 1
	}
	return courtArea{
		top:    1,
		width:  screenW,
		height: height,
		scaleX: float64(screenW) / snap.Width,
		scaleY: float64(height) / snap.Height,
	}
}

// cells returns the cell span covered by r, clipped to the court. Anything
// visible is at least one cell wide and tall.
func (c courtArea) cells(r geom.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0 = int(math.Floor(r.Pos.X * c.scaleX))
	x1 = int(math.Ceil(r.Right() * c.scaleX))
	y0 = int(math.Floor(r.Pos.Y * c.scaleY))
	y1 = int(math.Ceil(r.Bottom() * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, c.width)
	y0, y1 = max(y0, 0), min(y1, c.height)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, y0 + c.top, x1, y1 + c.top, true
}

func (r *Renderer) fill(c courtArea, rect geom.Rect, style tcell.Style) {
	x0, y0, x1, y1, ok := c.cells(rect)
	if !ok {
		return
	}
	r.screen.FillRect(x0, y0, x1-x0, y1-y0, style, BlockChar)
}

// RenderGame displays the court, both paddles, the ball and the score
func (r *Renderer) RenderGame(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	court := newCourtArea(screenW, screenH, snap)

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, court.top, screenW, court.height, courtStyle, ' ')

	// Dashed net
	netStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	for y := court.top; y < court.top+court.height; y += 2 {
		r.screen.SetCell(screenW/2, y, netStyle, NetChar)
	}

	pieceStyle := courtStyle.Foreground(tcell.ColorWhite)
	r.fill(court, snap.PaddleOne, pieceStyle)
	r.fill(court, snap.PaddleTwo, pieceStyle)
	r.fill(court, snap.Ball, pieceStyle)

	// Score centred on the top line
	score := snap.Score.String()
	scoreStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len(score))/2, 0, score, scoreStyle)

	// Status bar
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(0, statusY, helpText, statusStyle)

	r.screen.Show()
}

// RenderError shows a message until the next frame
func (r *Renderer) RenderError(msg string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawText((screenW-len(msg))/2, screenH/2, msg, style)

	hint := "Press any key to exit"
	r.screen.DrawText((screenW-len(hint))/2, screenH/2+2, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
