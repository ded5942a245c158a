package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/popdrop/puyo"
)

const (
	leftMargin = 2
	topMargin  = 1
	// Each board cell is two terminal columns wide so it looks square.
	cellWidth = 2
)

var defStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

var unitColors = [puyo.NumColors]tcell.Color{
	puyo.Red:    tcell.ColorRed,
	puyo.Blue:   tcell.ColorRoyalBlue,
	puyo.Yellow: tcell.ColorYellow,
	puyo.Green:  tcell.ColorGreen,
	puyo.Purple: tcell.ColorPurple,
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawUnit(s tcell.Screen, p puyo.Point, c puyo.Color, r rune) {
	if !p.InBounds() {
		return
	}
	style := defStyle.Foreground(unitColors[c]).Bold(true)
	x := leftMargin + 1 + p.X*cellWidth
	y := topMargin + 1 + p.Y
	s.SetContent(x, y, r, nil, style)
	s.SetContent(x+1, y, r, nil, style)
}

func draw(s tcell.Screen, session *puyo.Session) {
	s.Clear()
	switch session.State() {
	case puyo.Title:
		drawTitle(s)
	case puyo.Playing:
		drawBoard(s, session)
	case puyo.ContinuePrompt:
		drawBoard(s, session)
		drawPrompt(s, session.Prompt())
	case puyo.FadeOut:
		drawText(s, leftMargin, topMargin, defStyle.Dim(true), "...")
	}
	s.Show()
}

func drawTitle(s tcell.Screen) {
	drawText(s, leftMargin, topMargin, defStyle.Foreground(tcell.ColorOrange).Bold(true), "P O P D R O P")
	drawText(s, leftMargin, topMargin+2, defStyle, "space: start    esc: quit")
	drawText(s, leftMargin, topMargin+4, defStyle.Dim(true), "arrows/hl move  up/x/z rotate  down/j soft drop  space hard drop")
}

func drawBoard(s tcell.Screen, session *puyo.Session) {
	border := defStyle.Foreground(tcell.ColorGray)
	right := leftMargin + 1 + puyo.Width*cellWidth
	bottom := topMargin + 1 + puyo.Height
	for y := topMargin; y <= bottom; y++ {
		s.SetContent(leftMargin, y, '│', nil, border)
		s.SetContent(right, y, '│', nil, border)
	}
	for x := leftMargin; x <= right; x++ {
		s.SetContent(x, bottom, '─', nil, border)
	}

	board := session.Board()
	for y := 0; y < puyo.Height; y++ {
		for x := 0; x < puyo.Width; x++ {
			p := puyo.Point{X: x, Y: y}
			if cell := board.At(p); cell.Visible() {
				drawUnit(s, p, cell.Color, '█')
			}
		}
	}
	if ghost, ok := session.Ghost(); ok {
		for _, u := range ghost.Units() {
			drawUnit(s, u.Pos, u.Color, '░')
		}
	}
	if cur, ok := session.Current(); ok {
		for _, u := range cur.Units() {
			drawUnit(s, u.Pos, u.Color, '█')
		}
	}
	for _, pop := range session.Pops() {
		if pop.Progress() < 0.5 {
			drawUnit(s, pop.Origin, pop.Color, '*')
		}
	}

	panel := right + 3
	drawText(s, panel, topMargin, defStyle.Bold(true), "NEXT")
	for i, u := range session.Next().Units() {
		style := defStyle.Foreground(unitColors[u.Color])
		drawText(s, panel, topMargin+1+i, style, "██")
	}

	stats := session.Stats()
	lines := []string{
		fmt.Sprintf("score  %d", stats.Score),
		fmt.Sprintf("level  %d", stats.Level),
		fmt.Sprintf("chain  %d (max %d)", stats.Chain, stats.MaxChain),
		fmt.Sprintf("clear  %d", stats.TotalCleared),
		fmt.Sprintf("time   %s", stats.PlayTime.Truncate(time.Second)),
	}
	for i, line := range lines {
		drawText(s, panel, topMargin+4+i, defStyle, line)
	}

	if chain, ok := session.ChainBanner(); ok {
		banner := fmt.Sprintf("%d CHAIN! +%d", chain, stats.ChainBonus)
		drawText(s, panel, topMargin+11, defStyle.Foreground(tcell.ColorOrange).Bold(true), banner)
	}
}

func drawPrompt(s tcell.Screen, v puyo.PromptView) {
	x := leftMargin + 2
	y := topMargin + 3 + int(float64(puyo.Height/3)*v.DropProgress)
	drawText(s, x, y, defStyle.Foreground(tcell.ColorOrange).Bold(true), "GAME OVER")
	if !v.Ready {
		return
	}

	for i, c := range []puyo.Choice{puyo.ChoiceRestart, puyo.ChoiceQuit} {
		label := "  " + c.String()
		style := defStyle
		if c == v.Choice {
			label = "> " + c.String()
			style = style.Reverse(true)
		}
		drawText(s, x, y+2+i, style, label)
	}
	drawText(s, x, y+5, defStyle.Bold(true), fmt.Sprintf("%d", v.Countdown))
}
