// Package bufpool provides pooled growable byte buffers for reading line streams.
package bufpool

import (
	"slices"
	"sync"
)

// New returns an empty buffer from the pool.
func New() *Buffer {
	return pool.Get().(*Buffer)
}

// ---

// Buffer is a byte slice that is filled at its tail and drained at its head.
type Buffer []byte

func (b *Buffer) Len() int {
	return len(*b)
}

func (b *Buffer) Cap() int {
	return cap(*b)
}

// Tail returns the unused capacity of the buffer, growing it first if it is full.
func (b *Buffer) Tail() []byte {
	if len(*b) == cap(*b) {
		*b = slices.Grow(*b, max(cap(*b), minGrowth))
	}

	return (*b)[len(*b):cap(*b)]
}

// Extend marks n bytes of the tail returned by [Buffer.Tail] as filled.
func (b *Buffer) Extend(n int) {
	*b = (*b)[:len(*b)+n]
}

// Consume drops the first n bytes and moves the remaining ones to the front.
func (b *Buffer) Consume(n int) {
	m := copy(*b, (*b)[n:])
	*b = (*b)[:m]
}

// Free returns the buffer to the pool.
// Buffers that have grown too large are left to the garbage collector.
func (b *Buffer) Free() {
	if cap(*b) <= maxPooledSize {
		*b = (*b)[:0]
		pool.Put(b)
	}
}

// ---

var pool = sync.Pool{
	New: func() any {
		buf := Buffer(make([]byte, 0, bufSize))

		return &buf
	},
}

const (
	bufSize       = 64 << 10
	minGrowth     = 4 << 10
	maxPooledSize = 1 << 20
)
