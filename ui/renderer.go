package ui

import (
	"fmt"
	"strings"
	"sync"

	"spelling-snake/game"
	"spelling-snake/game/manager"
	"spelling-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	panelWidth    = 260
)

var (
	boardColor  = rl.Color{R: 24, G: 28, B: 36, A: 255}
	snakeColor  = rl.Color{R: 76, G: 175, B: 80, A: 255}
	targetColor = rl.Color{R: 255, G: 193, B: 7, A: 255}
	decoyColor  = rl.Color{R: 96, G: 125, B: 139, A: 255}
	lifeColor   = rl.Color{R: 233, G: 30, B: 99, A: 255}
)

// WindowSize returns the window dimensions that fit a grid at cellSize
func WindowSize(grid types.Grid, cellSize int) (int32, int32) {
	w := int32(grid.Width*cellSize + panelWidth + borderPadding*3)
	h := int32(grid.Height*cellSize + borderPadding*2)
	return w, max(h, 480)
}

// Renderer draws the latest snapshot into the raylib window. It is a
// game.Sink; Present only stores the snapshot and Draw does the work.
type Renderer struct {
	mu    sync.Mutex
	snap  game.Snapshot
	stats *manager.StatsManager

	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	offsetX      int32
	offsetY      int32

	soundOn func() bool
}

func NewRenderer(stats *manager.StatsManager, soundOn func() bool) *Renderer {
	r := &Renderer{
		stats:   stats,
		soundOn: soundOn,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Present(snap game.Snapshot) {
	r.mu.Lock()
	r.snap = snap
	r.mu.Unlock()
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.gameWidth = r.screenWidth - panelWidth
}

func (r *Renderer) Draw() {
	r.mu.Lock()
	snap := r.snap
	r.mu.Unlock()

	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	grid := snap.Grid
	if grid.Width > 0 && grid.Height > 0 {
		availableWidth := r.gameWidth - borderPadding*2
		availableHeight := r.screenHeight - borderPadding*2
		r.cellSize = min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height))
		r.offsetX = borderPadding
		r.offsetY = (r.screenHeight - r.cellSize*int32(grid.Height)) / 2

		r.drawBoard(snap)
		r.drawLetters(snap)
		r.drawSnake(snap)
	}

	r.drawPanel(snap)
	r.drawOverlay(snap)
	rl.EndDrawing()
}

func (r *Renderer) cellRect(c types.Cell) (int32, int32) {
	return r.offsetX + int32(c.X)*r.cellSize, r.offsetY + int32(c.Y)*r.cellSize
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	w := r.cellSize * int32(snap.Grid.Width)
	h := r.cellSize * int32(snap.Grid.Height)

	border := rl.DarkGray
	if snap.Wrap == types.Solid {
		border = rl.LightGray
	}
	rl.DrawRectangle(r.offsetX-2, r.offsetY-2, w+4, h+4, border)
	rl.DrawRectangle(r.offsetX, r.offsetY, w, h, boardColor)

	for x := 0; x <= snap.Grid.Width; x++ {
		px := r.offsetX + int32(x)*r.cellSize
		rl.DrawLine(px, r.offsetY, px, r.offsetY+h, rl.Color{R: 40, G: 44, B: 52, A: 255})
	}
	for y := 0; y <= snap.Grid.Height; y++ {
		py := r.offsetY + int32(y)*r.cellSize
		rl.DrawLine(r.offsetX, py, r.offsetX+w, py, rl.Color{R: 40, G: 44, B: 52, A: 255})
	}
}

func (r *Renderer) drawLetters(snap game.Snapshot) {
	fontSize := r.cellSize * 3 / 4
	for _, l := range snap.Letters {
		x, y := r.cellRect(l.Cell)
		color, label := decoyColor, string(l.Char)
		switch l.Kind {
		case types.Target:
			color = targetColor
		case types.LifeToken:
			color, label = lifeColor, "+"
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
		tw := rl.MeasureText(label, fontSize)
		rl.DrawText(label, x+(r.cellSize-tw)/2, y+(r.cellSize-fontSize)/2, fontSize, rl.Black)
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		x, y := r.cellRect(snap.Snake[i])
		color := snakeColor
		if snap.Phase == game.Terminating {
			color = rl.Maroon
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
		if i == 0 {
			r.drawHeading(x, y, snap.Direction)
		}
	}
}

// drawHeading marks the head with a triangle pointing where it moves
func (r *Renderer) drawHeading(headX, headY int32, dir types.Direction) {
	half := r.cellSize / 2
	v := func(x, y int32) rl.Vector2 { return rl.Vector2{X: float32(x), Y: float32(y)} }

	switch dir {
	case types.Right:
		rl.DrawTriangle(v(headX+r.cellSize, headY+half), v(headX+half, headY), v(headX+half, headY+r.cellSize), rl.Yellow)
	case types.Left:
		rl.DrawTriangle(v(headX, headY+half), v(headX+half, headY+r.cellSize), v(headX+half, headY), rl.Yellow)
	case types.Down:
		rl.DrawTriangle(v(headX+half, headY+r.cellSize), v(headX+r.cellSize, headY+half), v(headX, headY+half), rl.Yellow)
	default:
		rl.DrawTriangle(v(headX+half, headY), v(headX, headY+half), v(headX+r.cellSize, headY+half), rl.Yellow)
	}
}

func (r *Renderer) drawPanel(snap game.Snapshot) {
	x := r.gameWidth + borderPadding
	y := int32(borderPadding * 2)
	fontSize := int32(20)
	line := fontSize + 8

	rl.DrawRectangle(r.gameWidth, 0, panelWidth, r.screenHeight, rl.DarkGray)

	rl.DrawText("SPELLING SNAKE", x, y, fontSize+4, rl.White)
	y += line * 2

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), x, y, fontSize, rl.White)
	y += line
	rl.DrawText(fmt.Sprintf("Level: %d", snap.Level), x, y, fontSize, rl.White)
	y += line
	rl.DrawText("Lives: "+snap.Hearts("<3 ", "-- "), x, y, fontSize, lifeColor)
	y += line
	rl.DrawText(fmt.Sprintf("Animals: %d", snap.Animals), x, y, fontSize, rl.White)
	y += line * 2

	if mask := snap.Mask(); mask != "" {
		rl.DrawText("Spell:", x, y, fontSize, rl.LightGray)
		y += line
		rl.DrawText(spaced(mask), x, y, fontSize+8, targetColor)
		y += line + 8
	}
	y += line

	if r.stats != nil && r.stats.Games() > 0 {
		rl.DrawText(fmt.Sprintf("Games: %d", r.stats.Games()), x, y, fontSize-4, rl.LightGray)
		y += line - 4
		rl.DrawText(fmt.Sprintf("Best: %d", r.stats.Best()), x, y, fontSize-4, rl.LightGray)
		y += line - 4
		rl.DrawText(fmt.Sprintf("Average: %.1f", r.stats.Average()), x, y, fontSize-4, rl.LightGray)
		y += line - 4
		rl.DrawText(fmt.Sprintf("Median: %.1f", r.stats.Median()), x, y, fontSize-4, rl.LightGray)
		y += line
	}

	mode := "Walls: solid"
	if snap.Wrap == types.Wrap {
		mode = "Walls: wrap"
	}
	rl.DrawText(mode+"  [T]", x, r.screenHeight-line*2, fontSize-4, rl.LightGray)
	sound := "Sound: off  [N]"
	if r.soundOn != nil && r.soundOn() {
		sound = "Sound: on  [N]"
	}
	rl.DrawText(sound, x, r.screenHeight-line, fontSize-4, rl.LightGray)
}

func (r *Renderer) drawOverlay(snap game.Snapshot) {
	var title, hint string
	switch {
	case snap.Phase == game.Idle:
		title, hint = "Press ENTER to play", "Arrows/WASD steer, Q quits"
	case snap.Phase == game.Terminating:
		title = "Game Over"
		if snap.Cause == game.ConfigurationError {
			title = "No word available"
		}
		hint = fmt.Sprintf("Score %d, %d animals. R restart, M menu", snap.Score, snap.Animals)
	case snap.Round == game.Celebrating:
		title = fmt.Sprintf("You spelled %s!", snap.Word.Text)
	case snap.Round == game.Finding:
		title = "Finding next animal..."
	default:
		return
	}

	centerX := r.offsetX + r.cellSize*int32(snap.Grid.Width)/2
	centerY := r.offsetY + r.cellSize*int32(snap.Grid.Height)/2
	fontSize := int32(32)

	tw := rl.MeasureText(title, fontSize)
	rl.DrawRectangle(centerX-tw/2-16, centerY-fontSize-16, tw+32, fontSize*3, rl.Fade(rl.Black, 0.7))
	rl.DrawText(title, centerX-tw/2, centerY-fontSize, fontSize, rl.White)
	if hint != "" {
		hw := rl.MeasureText(hint, fontSize/2)
		rl.DrawText(hint, centerX-hw/2, centerY+8, fontSize/2, rl.LightGray)
	}
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
