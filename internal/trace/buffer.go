// Package trace provides the bounded trajectory history shared by the
// continuous systems. Rendering layers read snapshots; they never touch
// the backing storage.
package trace

import (
	"fmt"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// Buffer is a fixed-capacity FIFO of recent states backed by a ring.
// Append and Reset are O(1); once full, each append evicts the oldest
// entry so the length stays at capacity.
type Buffer struct {
	states []dynamo.State
	head   int
	length int
}

func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", dynamo.ErrBufferCapacity, capacity)
	}
	return &Buffer{states: make([]dynamo.State, capacity)}, nil
}

// Append stores a copy of the state at the tail, evicting the head when
// the buffer is full.
func (b *Buffer) Append(s dynamo.State) {
	idx := (b.head + b.length) % len(b.states)
	b.states[idx] = s.Clone()
	if b.length < len(b.states) {
		b.length++
	} else {
		b.head = (b.head + 1) % len(b.states)
	}
}

// Reset clears the buffer. Entries are dropped, capacity is kept.
func (b *Buffer) Reset() {
	b.head = 0
	b.length = 0
	for i := range b.states {
		b.states[i] = nil
	}
}

func (b *Buffer) Len() int { return b.length }
func (b *Buffer) Cap() int { return len(b.states) }

// Snapshot returns the buffered states oldest-first. The returned slice
// and its states are copies; mutating them cannot reach the buffer.
func (b *Buffer) Snapshot() []dynamo.State {
	out := make([]dynamo.State, b.length)
	for i := 0; i < b.length; i++ {
		out[i] = b.states[(b.head+i)%len(b.states)].Clone()
	}
	return out
}

// Last returns the most recent state, or nil when empty.
func (b *Buffer) Last() dynamo.State {
	if b.length == 0 {
		return nil
	}
	return b.states[(b.head+b.length-1)%len(b.states)].Clone()
}

// Component returns the history of one state component oldest-first,
// ready for plotting.
func (b *Buffer) Component(i int) []float64 {
	out := make([]float64, 0, b.length)
	for j := 0; j < b.length; j++ {
		s := b.states[(b.head+j)%len(b.states)]
		if i < len(s) {
			out = append(out, s[i])
		}
	}
	return out
}
