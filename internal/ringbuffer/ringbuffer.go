// Package ringbuffer provides a generic growable ring buffer, adapted from
// quic-go's ackhandler-facing ring buffer to additionally support indexed
// and front-peek access, which the congestion controller's ping queue needs
// for its O(n) ETA walk (spec.md §4.5) without popping entries.
package ringbuffer

type RingBuffer[T any] struct {
	ring             []T
	headPos, tailPos int
	full             bool
}

func (r *RingBuffer[T]) Init(size int) {
	r.ring = make([]T, size)
}

func (r *RingBuffer[T]) Len() int {
	if r.full {
		return len(r.ring)
	}
	if r.tailPos >= r.headPos {
		return r.tailPos - r.headPos
	}
	return r.tailPos - r.headPos + len(r.ring)
}

func (r *RingBuffer[T]) Empty() bool {
	return !r.full && r.headPos == r.tailPos
}

func (r *RingBuffer[T]) PushBack(t T) {
	if r.full || len(r.ring) == 0 {
		r.grow()
	}
	r.ring[r.tailPos] = t
	r.tailPos++
	if r.tailPos == len(r.ring) {
		r.tailPos = 0
	}
	if r.tailPos == r.headPos {
		r.full = true
	}
}

func (r *RingBuffer[T]) PopFront() T {
	if r.Empty() {
		panic("github.com/netcongest/vegas/internal/ringbuffer: pop from an empty queue")
	}
	r.full = false
	t := r.ring[r.headPos]
	r.ring[r.headPos] = *new(T)
	r.headPos++
	if r.headPos == len(r.ring) {
		r.headPos = 0
	}
	return t
}

// Front returns the oldest element without removing it. Panics if empty.
func (r *RingBuffer[T]) Front() T {
	if r.Empty() {
		panic("github.com/netcongest/vegas/internal/ringbuffer: front of an empty queue")
	}
	return r.ring[r.headPos]
}

// At returns the i-th oldest element (0 is the front) without removing it.
func (r *RingBuffer[T]) At(i int) T {
	if i < 0 || i >= r.Len() {
		panic("github.com/netcongest/vegas/internal/ringbuffer: index out of range")
	}
	pos := r.headPos + i
	if pos >= len(r.ring) {
		pos -= len(r.ring)
	}
	return r.ring[pos]
}

// Grow the maximum size of the queue.
// This method assumes the queue is full.
func (r *RingBuffer[T]) grow() {
	oldRing := r.ring
	newSize := len(oldRing) * 2
	if newSize == 0 {
		newSize = 1
	}
	r.ring = make([]T, newSize)
	headLen := copy(r.ring, oldRing[r.headPos:])
	copy(r.ring[headLen:], oldRing[:r.headPos])
	r.headPos, r.tailPos, r.full = 0, len(oldRing), false
}

func (r *RingBuffer[T]) Clear() {
	var zeroValue T
	for i := range r.ring {
		r.ring[i] = zeroValue
	}
	r.headPos, r.tailPos, r.full = 0, 0, false
}
