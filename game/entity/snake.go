package entity

import (
	"spelling-snake/game/types"
)

// Snake is an ordered segment list, head at index 0 and tail last
type Snake struct {
	Body      []types.Cell
	Direction types.Direction
}

// NewSnake lays out length segments behind head, opposite to the heading
func NewSnake(head types.Cell, length int, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite()
	body := make([]types.Cell, 0, length+1)
	pos := head
	for i := 0; i < length; i++ {
		body = append(body, pos)
		pos = pos.Add(back)
	}
	return &Snake{
		Body:      body,
		Direction: dir,
	}
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Cell {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// PeekNextHead is the unwrapped cell one step ahead; callers resolve bounds through types.Grid
func (s *Snake) PeekNextHead(dir types.Direction) types.Cell {
	return s.GetHead().Add(dir)
}

// Contains reports whether any segment occupies c
func (s *Snake) Contains(c types.Cell) bool {
	for _, p := range s.Body {
		if p == c {
			return true
		}
	}
	return false
}

// CollidesWithSelf tests candidate against the current body before any
// mutation. The tail cell only counts when it stays put this tick (grow).
func (s *Snake) CollidesWithSelf(candidate types.Cell, grow bool) bool {
	body := s.Body
	if !grow {
		body = body[:len(body)-1]
	}
	for _, p := range body {
		if p == candidate {
			return true
		}
	}
	return false
}

// Advance prepends newHead and pops the tail unless grow is set
func (s *Snake) Advance(newHead types.Cell, grow bool) {
	s.Body = append(s.Body, types.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !grow {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Cells returns a copy of the body safe to hand to other goroutines
func (s *Snake) Cells() []types.Cell {
	out := make([]types.Cell, len(s.Body))
	copy(out, s.Body)
	return out
}
