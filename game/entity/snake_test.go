package entity

import (
	"testing"

	"spelling-snake/game/types"
)

func TestNewSnakeLaysBodyBehindHead(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 8}, 3, types.Right)

	want := []types.Cell{{X: 5, Y: 8}, {X: 4, Y: 8}, {X: 3, Y: 8}}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, c := range want {
		if s.Body[i] != c {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], c)
		}
	}
	if s.GetHead() != want[0] || s.GetTail() != want[2] {
		t.Errorf("head/tail = %v/%v", s.GetHead(), s.GetTail())
	}
}

func TestAdvancePopsTail(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 8}, 3, types.Right)
	s.Advance(types.Cell{X: 6, Y: 8}, false)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d after plain move, want 3", s.Len())
	}
	if s.GetHead() != (types.Cell{X: 6, Y: 8}) {
		t.Errorf("head = %v, want (6,8)", s.GetHead())
	}
	if s.GetTail() != (types.Cell{X: 4, Y: 8}) {
		t.Errorf("tail = %v, want (4,8)", s.GetTail())
	}
}

func TestAdvanceGrowKeepsTail(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 8}, 3, types.Right)
	s.Advance(types.Cell{X: 6, Y: 8}, true)

	if s.Len() != 4 {
		t.Fatalf("Len() = %d after growth, want 4", s.Len())
	}
	if s.GetTail() != (types.Cell{X: 3, Y: 8}) {
		t.Errorf("tail = %v, want (3,8)", s.GetTail())
	}
}

func TestCollidesWithSelf(t *testing.T) {
	// Square-ish body: head (2,1) neck (1,1) then (1,2), (2,2) tail
	s := &Snake{
		Body:      []types.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}},
		Direction: types.Right,
	}

	if !s.CollidesWithSelf(types.Cell{X: 1, Y: 1}, false) {
		t.Error("moving into the neck must collide")
	}
	// Tail is vacated on a plain move, so chasing it is legal
	if s.CollidesWithSelf(types.Cell{X: 2, Y: 2}, false) {
		t.Error("moving into the vacating tail must not collide")
	}
	if !s.CollidesWithSelf(types.Cell{X: 2, Y: 2}, true) {
		t.Error("moving into the tail while growing must collide")
	}
	if s.CollidesWithSelf(types.Cell{X: 3, Y: 1}, false) {
		t.Error("free cell reported as collision")
	}
}

func TestCellsIsACopy(t *testing.T) {
	s := NewSnake(types.Cell{X: 5, Y: 8}, 3, types.Right)
	cells := s.Cells()
	cells[0] = types.Cell{X: 0, Y: 0}
	if s.GetHead() != (types.Cell{X: 5, Y: 8}) {
		t.Error("mutating Cells() result changed the snake")
	}
}
