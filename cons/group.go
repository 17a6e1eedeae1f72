package cons

import (
	"iter"

	go_iterators "github.com/lezhnev74/go-iterators"
)

// Group splits a slice into maximal runs of consecutive equal elements.
// Runs are sub-slices of the input with capacity capped at their length, so
// they alias the caller's backing array and must not outlive changes to it.
type Group[T any] struct {
	remaining []T
	eq        func(a, b T) bool
}

// NewGroup creates a run-grouping adapter over s using ==.
//
// Values that are not equal to themselves, such as floating-point NaN, always
// form runs of length 1.
func NewGroup[T comparable](s []T) *Group[T] {
	return &Group[T]{remaining: s, eq: equal[T]}
}

// NewGroupFunc is like NewGroup but uses eq to compare elements. eq is called
// with the candidate element first and the first element of the run second.
func NewGroupFunc[T any](s []T, eq func(a, b T) bool) *Group[T] {
	if eq == nil {
		panic("cons.NewGroupFunc: eq cannot be nil")
	}
	return &Group[T]{remaining: s, eq: eq}
}

func equal[T comparable](a, b T) bool {
	return a == b
}

// Next returns the next run, or false when no elements remain.
func (g *Group[T]) Next() ([]T, bool) {
	n := len(g.remaining)
	if n == 0 {
		return nil, false
	}
	anchor := g.remaining[0]
	i := 1
	// scan up to and including the last element
	for i < n && g.eq(g.remaining[i], anchor) {
		i++
	}
	run := g.remaining[:i:i]
	if i == n {
		g.remaining = nil
	} else {
		g.remaining = g.remaining[i:]
	}
	return run, true
}

// Remaining reports how many elements have not been grouped yet.
func (g *Group[T]) Remaining() int {
	return len(g.remaining)
}

// All returns a sequence of the remaining runs.
func (g *Group[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			run, ok := g.Next()
			if !ok || !yield(run) {
				return
			}
		}
	}
}

// Iterator exposes the adapter as a go-iterators Iterator that returns
// go_iterators.EmptyIterator when no runs remain.
func (g *Group[T]) Iterator() go_iterators.Iterator[[]T] {
	return go_iterators.NewCallbackIterator(
		func() ([]T, error) {
			run, ok := g.Next()
			if !ok {
				return nil, go_iterators.EmptyIterator
			}
			return run, nil
		},
		func() error {
			g.remaining = nil
			return nil
		},
	)
}

// ConsGroup returns a sequence of the maximal runs of equal elements in s.
func ConsGroup[T comparable](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for run := range NewGroup(s).All() {
			if !yield(run) {
				return
			}
		}
	}
}

// ConsGroupFunc is like ConsGroup but compares elements with eq.
func ConsGroupFunc[T any](s []T, eq func(a, b T) bool) iter.Seq[[]T] {
	if eq == nil {
		panic("cons.ConsGroupFunc: eq cannot be nil")
	}
	return func(yield func([]T) bool) {
		for run := range NewGroupFunc(s, eq).All() {
			if !yield(run) {
				return
			}
		}
	}
}
