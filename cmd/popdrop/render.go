package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/popdrop/puyo"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	screenWidth  = 600
	screenHeight = 700
	cellSize     = 40
	boardLeft    = 50
	boardTop     = (screenHeight - puyo.Height*cellSize) / 2
	panelLeft    = boardLeft + puyo.Width*cellSize + 40

	wobbleAmount = 3.0
)

var (
	backgroundColor = colornames.Whitesmoke
	boardColor      = color.RGBA{R: 30, G: 34, B: 44, A: 255}
	gridColor       = color.RGBA{R: 60, G: 66, B: 80, A: 255}
	ghostAlpha      = uint8(70)
)

var unitColors = [puyo.NumColors]color.RGBA{
	puyo.Red:    colornames.Crimson,
	puyo.Blue:   colornames.Royalblue,
	puyo.Yellow: colornames.Gold,
	puyo.Green:  colornames.Limegreen,
	puyo.Purple: colornames.Mediumpurple,
}

type fonts struct {
	face *text.GoXFace
}

func newFonts() *fonts {
	return &fonts{face: text.NewGoXFace(basicfont.Face7x13)}
}

// drawText draws s centred on (cx, cy), scaled up from the 7x13 bitmap font.
func (f *fonts) drawText(dst *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	w, h := text.Measure(s, f.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, f.face, op)
}

func cellOrigin(p puyo.Point) (float32, float32) {
	return float32(boardLeft + p.X*cellSize), float32(boardTop + p.Y*cellSize)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := float64(a) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: a,
	}
}

func drawUnit(dst *ebiten.Image, p puyo.Point, c puyo.Color, dx, dy, scale float32, alpha uint8) {
	if !p.InBounds() {
		return
	}
	x, y := cellOrigin(p)
	r := (cellSize/2 - 2) * scale
	clr := withAlpha(unitColors[c], alpha)
	vector.DrawFilledCircle(dst, x+cellSize/2+dx, y+cellSize/2+dy, r, clr, true)
	vector.StrokeCircle(dst, x+cellSize/2+dx, y+cellSize/2+dy, r, 1.5, withAlpha(color.RGBA{A: 255}, alpha/2), true)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.fonts.drawText(screen, "POPDROP", screenWidth/2, screenHeight/3, 6, colornames.Darkorange)

	for i := range unitColors {
		x := float32(screenWidth/2 - 2*cellSize + i*cellSize)
		vector.DrawFilledCircle(screen, x, screenHeight/2, cellSize/2-4, unitColors[i], true)
	}

	g.fonts.drawText(screen, "Press SPACE to start", screenWidth/2, screenHeight*2/3, 2, colornames.Black)
	g.fonts.drawText(screen, "arrows move / up,x,z rotate / down soft drop / space hard drop", screenWidth/2, screenHeight*2/3+40, 1, colornames.Dimgray)
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := g.session
	board := s.Board()

	vector.DrawFilledRect(screen, boardLeft, boardTop, puyo.Width*cellSize, puyo.Height*cellSize, boardColor, false)
	for x := 1; x < puyo.Width; x++ {
		fx := float32(boardLeft + x*cellSize)
		vector.StrokeLine(screen, fx, boardTop, fx, boardTop+puyo.Height*cellSize, 1, gridColor, false)
	}

	for y := 0; y < puyo.Height; y++ {
		for x := 0; x < puyo.Width; x++ {
			p := puyo.Point{X: x, Y: y}
			cell := board.At(p)
			if !cell.Visible() {
				continue
			}
			var dx, dy float32
			if progress, ok := s.Wobble(cell.Unit); ok {
				phase := progress * 4 * math.Pi
				dx = float32(math.Sin(phase) * wobbleAmount * (1 - progress))
				dy = float32(math.Cos(phase) * wobbleAmount * (1 - progress))
			}
			drawUnit(screen, p, cell.Color, dx, dy, 1, 255)
		}
	}

	if ghost, ok := s.Ghost(); ok {
		for _, u := range ghost.Units() {
			drawUnit(screen, u.Pos, u.Color, 0, 0, 0.8, ghostAlpha)
		}
	}
	if cur, ok := s.Current(); ok {
		for _, u := range cur.Units() {
			drawUnit(screen, u.Pos, u.Color, 0, 0, 1, 255)
		}
	}

	for _, pop := range s.Pops() {
		drawUnit(screen, pop.Origin, pop.Color, 0, 0, float32(pop.Scale()), pop.Alpha())
	}

	vector.StrokeRect(screen, boardLeft, boardTop, puyo.Width*cellSize, puyo.Height*cellSize, 3, colornames.Dimgray, false)

	g.drawSidePanel(screen)

	if chain, ok := s.ChainBanner(); ok {
		cx := float64(boardLeft + puyo.Width*cellSize/2)
		g.fonts.drawText(screen, fmt.Sprintf("%d CHAIN!", chain), cx, screenHeight/2, 4, colornames.Orange)
		g.fonts.drawText(screen, fmt.Sprintf("+%d", s.Stats().ChainBonus), cx, screenHeight/2+40, 2, colornames.White)
	}
}

func (g *Game) drawSidePanel(screen *ebiten.Image) {
	s := g.session
	stats := s.Stats()

	ebitenutil.DebugPrintAt(screen, "NEXT", panelLeft, boardTop)
	next := s.Next()
	for i, u := range next.Units() {
		x := float32(panelLeft + cellSize/2)
		y := float32(boardTop + 30 + i*cellSize + cellSize/2)
		vector.DrawFilledCircle(screen, x, y, cellSize/2-2, unitColors[u.Color], true)
	}

	lines := []string{
		fmt.Sprintf("SCORE  %d", stats.Score),
		fmt.Sprintf("LEVEL  %d", stats.Level),
		fmt.Sprintf("CHAIN  %d (max %d)", stats.Chain, stats.MaxChain),
		fmt.Sprintf("CLEAR  %d", stats.TotalCleared),
		fmt.Sprintf("TIME   %s", formatClock(stats.PlayTime.Seconds())),
		fmt.Sprintf("SPEED  %.2fs", stats.FallInterval.Seconds()),
	}
	for i, line := range lines {
		g.fonts.drawText(screen, line, panelLeft+80, float64(boardTop+150+i*30), 1.5, colornames.Black)
	}
}

func (g *Game) drawContinue(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{A: 140}, false)

	v := g.session.Prompt()
	now := g.session.Now().Seconds()

	wobbleX := math.Sin(now*1000/500*2) * 10
	y := -40 + (screenHeight/3+40)*v.DropProgress
	g.fonts.drawText(screen, "GAME OVER", screenWidth/2+wobbleX, y, 5, colornames.Orange)

	if !v.Ready {
		return
	}

	options := []struct {
		label  string
		choice puyo.Choice
	}{
		{"CONTINUE", puyo.ChoiceRestart},
		{"QUIT", puyo.ChoiceQuit},
	}
	for i, opt := range options {
		clr := color.Color(colornames.Lightgray)
		label := opt.label
		if v.Choice == opt.choice {
			clr = colornames.White
			label = "> " + label + " <"
		}
		g.fonts.drawText(screen, label, screenWidth/2, float64(screenHeight/2+i*40), 2.5, clr)
	}

	frac := v.Remaining.Seconds() - math.Floor(v.Remaining.Seconds())
	pulse := 1.0 + 0.2*math.Sin(frac*2*math.Pi)
	g.fonts.drawText(screen, fmt.Sprintf("%d", v.Countdown), screenWidth/2, screenHeight*3/4, 5*pulse, colornames.Orange)
}

func (g *Game) drawFade(screen *ebiten.Image) {
	alpha := uint8(255 * g.session.FadeProgress())
	vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{A: alpha}, false)
}

func formatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
