package fpt

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/fpt/internal/config"
	"github.com/vovakirdan/fpt/internal/core"
	"github.com/vovakirdan/fpt/internal/tetris"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	WallChar  = '▓'
	EmptyChar = '·'
)

const hudHeight = 1

// viewOffset turns a field offset into a screen offset for the rotating
// view. The field is turned by rotation*90 - 180 degrees, which keeps the
// piece's forward direction pointing up on screen.
func viewOffset(dx, dy, rotation int) (int, int) {
	quarters := ((rotation+2)%tetris.RotationCount + tetris.RotationCount) % tetris.RotationCount
	for range quarters {
		dx, dy = -dy, dx
	}
	return dx, dy
}

// Render draws the field, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.board == nil {
		return
	}
	dst.Clear()

	if g.view == config.ViewFixed {
		g.renderFixed(dst)
	} else {
		g.renderRotating(dst)
	}
	g.renderHUD(dst)

	switch {
	case g.board.IsGameOver():
		g.renderOverlay(dst, "GAME OVER", "R restart   Q quit")
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "P resume")
	}
}

// renderRotating draws every field cell around the piece's render reference,
// which sits at the middle of the play area.
func (g *Game) renderRotating(dst *core.Screen) {
	cw := g.cfg.View.CellWidth
	cx := (dst.Width() - cw) / 2
	cy := hudHeight + (dst.Height()-hudHeight)/2
	refX, refY := g.board.X(), g.board.Y()
	rotation := g.board.Rotation()

	for y := range g.board.Height() {
		for x := range g.board.Width() {
			sx, sy := viewOffset(x-refX, y-refY, rotation)
			g.drawCell(dst, cx+sx*cw, cy+sy, g.board.Cell(x, y))
		}
	}
}

// renderFixed draws the field upright and centered.
func (g *Game) renderFixed(dst *core.Screen) {
	cw := g.cfg.View.CellWidth
	ox := (dst.Width() - g.board.Width()*cw) / 2
	oy := hudHeight + max(0, (dst.Height()-hudHeight-g.board.Height())/2)

	for y := range g.board.Height() {
		for x := range g.board.Width() {
			g.drawCell(dst, ox+x*cw, oy+y, g.board.Cell(x, y))
		}
	}
}

// drawCell draws one field cell as cell_width screen columns starting at (sx, sy).
func (g *Game) drawCell(dst *core.Screen, sx, sy int, c tetris.Cell) {
	cw := g.cfg.View.CellWidth
	color := g.palette.CellColor(c)
	for i := range cw {
		r := ' '
		switch {
		case c == tetris.Wall:
			r = WallChar
		case c.IsBlock():
			r = BlockChar
		case i == cw-1:
			r = EmptyChar
			color = core.ColorGray
		}
		dst.SetColored(sx+i, sy, r, color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	status := g.board.State().String()
	if p, ok := g.board.Piece(); ok {
		status = fmt.Sprintf("%s rot %d  x %d y %d", p.Shape, p.Rotation, g.board.X(), g.board.Y())
	}
	hud := fmt.Sprintf(" %s | %s", g.Title(), status)
	dst.DrawTextColored(0, 0, hud+strings.Repeat(" ", max(0, dst.Width()-len(hud))), core.ColorBrightWhite)
}

func (g *Game) renderOverlay(dst *core.Screen, title, hint string) {
	mid := hudHeight + (dst.Height()-hudHeight)/2
	for _, line := range []struct {
		y    int
		text string
	}{
		{mid - 1, title},
		{mid + 1, hint},
	} {
		text := "  " + line.text + "  "
		x := (dst.Width() - len([]rune(text))) / 2
		dst.DrawTextColored(x, line.y, text, core.ColorBrightYellow)
	}
}
