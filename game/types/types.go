package types

import "fmt"

// Cell is a grid coordinate, 0-indexed from the top-left corner
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by d's unit vector
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is one of the four cardinal headings
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit vector for the heading. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnLeft rotates 90° counter-clockwise
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// TurnRight rotates 90° clockwise
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d <= Left
}

// LetterKind tells a board pickup apart
type LetterKind uint8

const (
	Target LetterKind = iota
	Decoy
	LifeToken
)

func (k LetterKind) String() string {
	switch k {
	case Target:
		return "target"
	case Decoy:
		return "decoy"
	case LifeToken:
		return "life"
	default:
		return "unknown"
	}
}

// Letter is a pickup on the board. Char is zero for life tokens.
type Letter struct {
	Cell Cell
	Char byte
	Kind LetterKind
}

// Word is a round's spelling target with its display glyph
type Word struct {
	Text  string
	Glyph string
}

// Len returns the number of letters to collect
func (w Word) Len() int {
	return len(w.Text)
}

// Word length bounds accepted from the dataset
const (
	MinWordLength = 3
	MaxWordLength = 9
)

// ValidWord reports whether s is uppercase A-Z within the length bounds
func ValidWord(s string) bool {
	if len(s) < MinWordLength || len(s) > MaxWordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
