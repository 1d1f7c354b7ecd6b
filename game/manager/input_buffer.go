package manager

import "spelling-snake/game/types"

// InputCapacity is the number of direction changes that may wait for ticks
const InputCapacity = 2

// InputBuffer queues pending direction changes between ticks.
// A push is checked against the direction the snake will be facing when the
// push is consumed: the last queued entry, or the current heading.
type InputBuffer struct {
	queue   [InputCapacity]types.Direction
	n       int
	current types.Direction
}

func NewInputBuffer(current types.Direction) *InputBuffer {
	return &InputBuffer{current: current}
}

// Reset empties the queue and sets the heading
func (b *InputBuffer) Reset(current types.Direction) {
	b.n = 0
	b.current = current
}

// Push queues d, dropping it when full, redundant, or a direct reversal
func (b *InputBuffer) Push(d types.Direction) bool {
	if !d.Valid() || b.n >= InputCapacity {
		return false
	}
	next := b.Next()
	if d == next || d == next.Opposite() {
		return false
	}
	b.queue[b.n] = d
	b.n++
	return true
}

// Pop consumes the oldest queued direction and makes it current
func (b *InputBuffer) Pop() (types.Direction, bool) {
	if b.n == 0 {
		return b.current, false
	}
	d := b.queue[0]
	copy(b.queue[:], b.queue[1:b.n])
	b.n--
	b.current = d
	return d, true
}

// Next is the heading the snake will have after all queued entries apply
func (b *InputBuffer) Next() types.Direction {
	if b.n > 0 {
		return b.queue[b.n-1]
	}
	return b.current
}

func (b *InputBuffer) Current() types.Direction {
	return b.current
}

func (b *InputBuffer) Len() int {
	return b.n
}
