package ai

import (
	"spelling-snake/game"
	"spelling-snake/game/types"
)

// lookahead is how far a ray scans for obstacles
const lookahead = 6

// wary is the distance inside which an obstacle ahead lowers a heading's score
const wary = 2

// Sensors reads a snapshot from the head's point of view
type Sensors struct {
	snap  game.Snapshot
	body  map[types.Cell]struct{}
	decoy map[types.Cell]struct{}
}

func NewSensors(snap game.Snapshot) *Sensors {
	s := &Sensors{
		snap:  snap,
		body:  make(map[types.Cell]struct{}, len(snap.Snake)),
		decoy: make(map[types.Cell]struct{}),
	}
	// the tail moves away this tick
	for _, c := range snap.Snake[:len(snap.Snake)-1] {
		s.body[c] = struct{}{}
	}
	for _, l := range snap.Letters {
		if l.Kind == types.Decoy {
			s.decoy[l.Cell] = struct{}{}
		}
	}
	return s
}

// Distance is the Manhattan distance between cells, folded across edges in wrap mode
func (s *Sensors) Distance(a, b types.Cell) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if s.snap.Wrap == types.Wrap {
		dx = min(dx, s.snap.Grid.Width-dx)
		dy = min(dy, s.snap.Grid.Height-dy)
	}
	return dx + dy
}

// Danger returns how many steps along d until the head would die, 0 when
// the very next cell is fatal, or -1 when the ray is clear
func (s *Sensors) Danger(d types.Direction) int {
	pos := s.snap.Snake[0]
	for step := 0; step < lookahead; step++ {
		next, ok := s.snap.Grid.ResolveMove(pos, d, s.snap.Wrap)
		if !ok {
			return step
		}
		if _, hit := s.body[next]; hit {
			return step
		}
		pos = next
	}
	return -1
}

// Evaluate scores moving one cell in d, from -1 (fatal) to 1 (target)
func (s *Sensors) Evaluate(d types.Direction) float64 {
	head := s.snap.Snake[0]
	next, ok := s.snap.Grid.ResolveMove(head, d, s.snap.Wrap)
	if !ok {
		return -1
	}

	danger := 0.0
	if dist := s.Danger(d); dist == 0 {
		return -1
	} else if dist > 0 && dist <= wary {
		danger = -1 / float64(dist+1)
	}
	if _, bad := s.decoy[next]; bad {
		danger = min(danger, -0.8)
	}

	target, ok := s.snap.Target()
	if !ok {
		return danger
	}
	if next == target.Cell {
		return 1
	}

	switch cur, after := s.Distance(head, target.Cell), s.Distance(next, target.Cell); {
	case after < cur:
		if danger == 0 {
			return 0.5
		}
		return min(danger, 0.5)
	case after > cur:
		return min(danger, -0.3)
	}
	return danger
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
