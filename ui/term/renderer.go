// Package term is the terminal frontend. It draws snapshots with tcell and
// maps terminal key events onto the shared command bindings.
package term

import (
	"fmt"
	"strings"
	"sync"

	"spelling-snake/game"
	"spelling-snake/game/manager"
	"spelling-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is two columns wide so letters keep a square look
const (
	cellWidth = 2
	originX   = 1
	originY   = 1
	panelGap  = 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	targetStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	decoyStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	lifeStyle   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
)

const (
	headRune  = '@'
	bodyRune  = 'o'
	lifeRune  = '+'
	solidRune = '#'
	wrapRune  = '.'
)

// Renderer draws the latest snapshot onto a tcell screen. Present may be
// called from any goroutine; Draw must run on the loop that owns the screen.
type Renderer struct {
	screen tcell.Screen
	stats  *manager.StatsManager

	mu   sync.Mutex
	snap game.Snapshot

	soundOn func() bool
}

func NewRenderer(screen tcell.Screen, stats *manager.StatsManager, soundOn func() bool) *Renderer {
	return &Renderer{screen: screen, stats: stats, soundOn: soundOn}
}

func (r *Renderer) Present(snap game.Snapshot) {
	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()
}

// CellAt returns the screen column and row of a board cell's first column
func CellAt(c types.Cell) (int, int) {
	return originX + c.X*cellWidth, originY + c.Y
}

func (r *Renderer) Draw() {
	r.mu.Lock()
	snap := r.snap
	r.mu.Unlock()

	r.screen.Clear()
	if snap.Grid.Width > 0 && snap.Grid.Height > 0 {
		r.drawBorder(snap)
		r.drawLetters(snap)
		r.drawSnake(snap)
		r.drawPanel(snap)
		r.drawOverlay(snap)
	}
	r.screen.Show()
}

func (r *Renderer) drawBorder(snap game.Snapshot) {
	ch := solidRune
	if snap.Wrap == types.Wrap {
		ch = wrapRune
	}
	right := originX + snap.Grid.Width*cellWidth
	bottom := originY + snap.Grid.Height
	for x := originX - 1; x <= right; x++ {
		r.screen.SetContent(x, originY-1, ch, nil, borderStyle)
		r.screen.SetContent(x, bottom, ch, nil, borderStyle)
	}
	for y := originY; y < bottom; y++ {
		r.screen.SetContent(originX-1, y, ch, nil, borderStyle)
		r.screen.SetContent(right, y, ch, nil, borderStyle)
	}
}

func (r *Renderer) drawLetters(snap game.Snapshot) {
	for _, l := range snap.Letters {
		x, y := CellAt(l.Cell)
		style, ch := decoyStyle, rune(l.Char)
		switch l.Kind {
		case types.Target:
			style = targetStyle
		case types.LifeToken:
			style, ch = lifeStyle, lifeRune
		}
		r.screen.SetContent(x, y, ch, nil, style)
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	style := snakeStyle
	if snap.Phase == game.Terminating {
		style = deadStyle
	}
	// Tail first so the head wins if cells overlap after a self collision
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := CellAt(snap.Snake[i])
		ch := bodyRune
		if i == 0 {
			ch = headRune
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) drawPanel(snap game.Snapshot) {
	x := originX + snap.Grid.Width*cellWidth + panelGap
	y := originY

	r.text(x, y, " SPELLING SNAKE ", titleStyle)
	y += 2
	r.text(x, y, fmt.Sprintf("Score   %d", snap.Score), textStyle)
	y++
	r.text(x, y, fmt.Sprintf("Level   %d", snap.Level), textStyle)
	y++
	r.text(x, y, "Lives   "+snap.Hearts("♥", "·"), lifeStyle)
	y++
	r.text(x, y, fmt.Sprintf("Animals %d", snap.Animals), textStyle)
	y += 2

	if mask := snap.Mask(); mask != "" {
		r.text(x, y, "Spell", dimStyle)
		y++
		r.text(x, y, strings.Join(strings.Split(mask, ""), " "), targetStyle)
		y += 2
	}

	if r.stats != nil && r.stats.Games() > 0 {
		r.text(x, y, fmt.Sprintf("Games %d  Best %d", r.stats.Games(), r.stats.Best()), dimStyle)
		y++
		r.text(x, y, fmt.Sprintf("Avg %.1f  Median %.1f", r.stats.Average(), r.stats.Median()), dimStyle)
		y += 2
	}

	walls := "solid"
	if snap.Wrap == types.Wrap {
		walls = "wrap"
	}
	r.text(x, y, "Walls "+walls+" [t]", dimStyle)
	y++
	sound := "off"
	if r.soundOn != nil && r.soundOn() {
		sound = "on"
	}
	r.text(x, y, "Sound "+sound+" [n]", dimStyle)
}

func (r *Renderer) drawOverlay(snap game.Snapshot) {
	var title, hint string
	switch {
	case snap.Phase == game.Idle:
		title, hint = "Press ENTER to play", "arrows/wasd steer, q quits"
	case snap.Phase == game.Terminating:
		title = "GAME OVER"
		if snap.Cause == game.ConfigurationError {
			title = "NO WORD AVAILABLE"
		}
		hint = fmt.Sprintf("score %d, r restart, m menu", snap.Score)
	case snap.Round == game.Celebrating:
		title = "You spelled " + snap.Word.Text + "!"
	case snap.Round == game.Finding:
		title = "Finding next animal..."
	default:
		return
	}

	boardCols := snap.Grid.Width * cellWidth
	cy := originY + snap.Grid.Height/2 - 1
	r.text(originX+(boardCols-len(title))/2, cy, title, titleStyle)
	if hint != "" {
		r.text(originX+(boardCols-len(hint))/2, cy+2, hint, textStyle)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
