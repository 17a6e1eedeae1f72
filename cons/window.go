package cons

import (
	"eachcons/queues"
	"iter"

	go_iterators "github.com/lezhnev74/go-iterators"
)

type state uint8

const (
	stateActive state = iota
	stateExhausted
)

// Cons produces overlapping windows of size consecutive elements from a source,
// advancing one element per window.
//
// The adapter keeps the last size-1 elements in a pending buffer. Each element
// is boxed once when it is read, and the pending buffer and every window that
// covers the element share that pointer.
type Cons[T any] struct {
	size     int
	next     SourceFunc[T]
	stop     func() // releases the source, nil once released or for SourceFunc sources
	pending  *queues.SlidingQueue[*T]
	state    state
	produced int
	monitor  Monitor
}

// New creates a windowing adapter over seq. The first size-1 elements are
// pulled eagerly. If seq ends before that, the adapter is exhausted from the
// start and Next never returns a window.
//
// The source is pulled with iter.Pull. Call Stop if the adapter is abandoned
// before Next reports exhaustion.
func New[T any](size int, seq iter.Seq[T], opts ...Option) (*Cons[T], error) {
	if err := validateSize("cons.New", size); err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, ErrNilSource
	}
	next, stop := iter.Pull(seq)
	return newCons(size, next, stop, newConfig(opts)), nil
}

// NewFunc is like New but reads from a pull function. The adapter never calls
// next again after it returns false.
func NewFunc[T any](size int, next SourceFunc[T], opts ...Option) (*Cons[T], error) {
	if err := validateSize("cons.NewFunc", size); err != nil {
		return nil, err
	}
	if next == nil {
		return nil, ErrNilSource
	}
	return newCons(size, next, nil, newConfig(opts)), nil
}

func newCons[T any](size int, next SourceFunc[T], stop func(), cfg *config) *Cons[T] {
	c := &Cons[T]{
		size:    size,
		next:    next,
		stop:    stop,
		pending: queues.NewSlidingQueue[*T](size - 1),
		state:   stateActive,
		monitor: cfg.monitor,
	}
	for !c.pending.IsFull() {
		v, ok := c.next()
		if !ok {
			c.exhaust(ReasonUnderfilled)
			break
		}
		c.pending.Push(&v)
	}
	return c
}

// Next returns the next window, or false once the source is exhausted.
// After the first false every call returns false without touching the source.
func (c *Cons[T]) Next() ([]*T, bool) {
	if c.state == stateExhausted {
		return nil, false
	}
	v, ok := c.next()
	if !ok {
		c.exhaust(ReasonSourceDone)
		return nil, false
	}
	elem := &v

	window := make([]*T, 0, c.size)
	window = c.pending.AppendTo(window)
	window = append(window, elem)
	c.pending.Push(elem)

	c.produced++
	c.monitor.OnWindow(c.produced)
	return window, true
}

// Stop releases the source and moves the adapter to its terminal state.
// It is safe to call Stop more than once and after exhaustion.
func (c *Cons[T]) Stop() {
	if c.state == stateExhausted {
		c.release()
		return
	}
	c.exhaust(ReasonStopped)
}

// Produced reports how many windows have been returned so far.
func (c *Cons[T]) Produced() int {
	return c.produced
}

// Size returns the window size.
func (c *Cons[T]) Size() int {
	return c.size
}

// Exhausted reports whether the adapter has reached its terminal state.
func (c *Cons[T]) Exhausted() bool {
	return c.state == stateExhausted
}

// All returns a sequence that drains the adapter. The adapter is stopped when
// the loop ends, including on break.
func (c *Cons[T]) All() iter.Seq[[]*T] {
	return func(yield func([]*T) bool) {
		defer c.Stop()
		for {
			w, ok := c.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

// Iterator exposes the adapter as a go-iterators Iterator. Next returns
// go_iterators.EmptyIterator on exhaustion and Close stops the adapter.
func (c *Cons[T]) Iterator() go_iterators.Iterator[[]*T] {
	return go_iterators.NewCallbackIterator(
		func() ([]*T, error) {
			w, ok := c.Next()
			if !ok {
				return nil, go_iterators.EmptyIterator
			}
			return w, nil
		},
		func() error {
			c.Stop()
			return nil
		},
	)
}

func (c *Cons[T]) exhaust(reason string) {
	c.state = stateExhausted
	c.pending.Clear()
	c.release()
	c.monitor.OnExhausted(reason, c.produced)
}

func (c *Cons[T]) release() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

// EachCons returns a sequence of overlapping windows of size consecutive
// elements of seq. Nothing is read from seq until the sequence is ranged over.
//
// EachCons panics with an error wrapping ErrInvalidSize if size < 1.
// Use New to get the error as a value.
func EachCons[T any](seq iter.Seq[T], size int) iter.Seq[[]*T] {
	if err := validateSize("cons.EachCons", size); err != nil {
		panic(err)
	}
	return func(yield func([]*T) bool) {
		pending := queues.NewSlidingQueue[*T](size - 1)
		for v := range seq {
			elem := &v
			if !pending.IsFull() {
				pending.Push(elem)
				continue
			}
			window := make([]*T, 0, size)
			window = pending.AppendTo(window)
			window = append(window, elem)
			pending.Push(elem)
			if !yield(window) {
				return
			}
		}
	}
}

// EachConsValues is like EachCons but yields windows of copied values.
func EachConsValues[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	windows := EachCons(seq, size)
	return func(yield func([]T) bool) {
		for w := range windows {
			if !yield(Values(w)) {
				return
			}
		}
	}
}

// Values dereferences a window into a new slice of values.
func Values[T any](window []*T) []T {
	res := make([]T, len(window))
	for i, p := range window {
		res[i] = *p
	}
	return res
}
