package manager

import (
	"testing"

	"spelling-snake/game/types"
)

func TestPushReversalIsNoop(t *testing.T) {
	for _, d := range types.Directions {
		b := NewInputBuffer(d)
		if b.Push(d.Opposite()) {
			t.Errorf("reversal %v -> %v accepted", d, d.Opposite())
		}
		if b.Len() != 0 {
			t.Errorf("buffer holds %d entries after rejected reversal", b.Len())
		}
	}
}

func TestPushChecksAgainstLastQueued(t *testing.T) {
	b := NewInputBuffer(types.Right)

	if !b.Push(types.Up) {
		t.Fatal("Up from Right rejected")
	}
	// Down reverses the queued Up, not the current Right
	if b.Push(types.Down) {
		t.Fatal("Down after queued Up accepted")
	}
	// Left is legal after Up even though it reverses Right
	if !b.Push(types.Left) {
		t.Fatal("Left after queued Up rejected")
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestPushDropsWhenFull(t *testing.T) {
	b := NewInputBuffer(types.Right)
	b.Push(types.Up)
	b.Push(types.Left)
	if b.Push(types.Down) {
		t.Error("third push accepted")
	}
	if b.Len() != InputCapacity {
		t.Errorf("Len = %d", b.Len())
	}
}

func TestPopOrder(t *testing.T) {
	b := NewInputBuffer(types.Right)
	b.Push(types.Down)
	b.Push(types.Left)

	d, ok := b.Pop()
	if !ok || d != types.Down {
		t.Fatalf("first pop = %v,%v", d, ok)
	}
	d, ok = b.Pop()
	if !ok || d != types.Left {
		t.Fatalf("second pop = %v,%v", d, ok)
	}
	d, ok = b.Pop()
	if ok || d != types.Left {
		t.Fatalf("empty pop = %v,%v, want current Left,false", d, ok)
	}
	if b.Current() != types.Left {
		t.Errorf("Current = %v", b.Current())
	}
}

func TestResetEmptiesQueue(t *testing.T) {
	b := NewInputBuffer(types.Right)
	b.Push(types.Up)
	b.Reset(types.Left)
	if b.Len() != 0 || b.Current() != types.Left {
		t.Errorf("after reset: len %d current %v", b.Len(), b.Current())
	}
	if b.Push(types.Right) {
		t.Error("reversal of reset heading accepted")
	}
}
