package queues

import "math/bits"

// SlidingQueue is a bounded FIFO backed by a circular array (ring buffer).
// Once it holds limit elements, every Push evicts the oldest element, so the
// queue always contains the most recent limit values in arrival order.
//
// The backing array starts small and doubles as elements arrive, so memory
// follows the number of retained elements rather than limit.
//
// A limit of zero is valid: the queue stays empty and every pushed value is
// evicted immediately.
type SlidingQueue[T any] struct {
	buf   []T // backing array, length is a power of two
	head  int // index of the oldest element
	size  int // number of elements in the queue
	limit int // maximum number of retained elements
	mask  int // len(buf) - 1, used for fast modulo: idx & mask
}

const initialSlidingCapacity = 8

// NewSlidingQueue creates a SlidingQueue that retains at most limit elements.
// A negative limit is treated as zero.
func NewSlidingQueue[T any](limit int) *SlidingQueue[T] {
	if limit < 0 {
		limit = 0
	}

	capacity := 1
	if initial := min(limit, initialSlidingCapacity); initial > 1 {
		capacity = 1 << uint(bits.Len(uint(initial-1)))
	}

	return &SlidingQueue[T]{
		buf:   make([]T, capacity),
		limit: limit,
		mask:  capacity - 1,
	}
}

// grow doubles the backing array and unwraps the elements to index 0.
func (sq *SlidingQueue[T]) grow() {
	newBuf := make([]T, len(sq.buf)*2)
	n := copy(newBuf, sq.buf[sq.head:])
	copy(newBuf[n:], sq.buf[:sq.head])

	clear(sq.buf)
	sq.buf = newBuf
	sq.head = 0
	sq.mask = len(newBuf) - 1
}

// Push appends value at the tail. If the queue is already full, the oldest
// element is removed and returned with ok == true.
func (sq *SlidingQueue[T]) Push(value T) (evicted T, ok bool) {
	if sq.limit == 0 {
		return value, true
	}
	if sq.size == sq.limit {
		evicted = sq.buf[sq.head]
		var zero T
		sq.buf[sq.head] = zero // clear reference
		sq.head = (sq.head + 1) & sq.mask
		sq.size--
		ok = true
	} else if sq.size == len(sq.buf) {
		sq.grow()
	}
	sq.buf[(sq.head+sq.size)&sq.mask] = value
	sq.size++
	return evicted, ok
}

// AppendTo appends the queued elements to dst, oldest first, and returns the
// extended slice. The queue is not modified.
func (sq *SlidingQueue[T]) AppendTo(dst []T) []T {
	if sq.size == 0 {
		return dst
	}
	if sq.head+sq.size <= len(sq.buf) {
		return append(dst, sq.buf[sq.head:sq.head+sq.size]...)
	}
	// wrapped around
	dst = append(dst, sq.buf[sq.head:]...)
	tailPos := (sq.head + sq.size) & sq.mask
	return append(dst, sq.buf[:tailPos]...)
}

// Peek returns the oldest element without removing it.
func (sq *SlidingQueue[T]) Peek() (value T, ok bool) {
	if sq.size == 0 {
		return value, false
	}
	return sq.buf[sq.head], true
}

// Size returns the number of retained elements.
func (sq *SlidingQueue[T]) Size() int {
	return sq.size
}

// Limit returns the maximum number of retained elements.
func (sq *SlidingQueue[T]) Limit() int {
	return sq.limit
}

// IsFull reports whether the next Push will evict.
func (sq *SlidingQueue[T]) IsFull() bool {
	return sq.size == sq.limit
}

// IsEmpty reports whether the queue holds no elements.
func (sq *SlidingQueue[T]) IsEmpty() bool {
	return sq.size == 0
}

// Clear removes all elements and drops the references held by the buffer.
func (sq *SlidingQueue[T]) Clear() {
	clear(sq.buf)
	sq.head = 0
	sq.size = 0
}
