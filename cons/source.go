package cons

import (
	"iter"

	go_iterators "github.com/lezhnev74/go-iterators"
	"github.com/pkg/errors"
)

// SourceFunc pulls the next element of a source, returning false when the
// source is exhausted.
type SourceFunc[T any] func() (T, bool)

// IteratorSource adapts a go-iterators Iterator into a source for the
// windowing adapter. go_iterators.EmptyIterator ends the source. Any other
// error ends it too and is kept for Err.
type IteratorSource[T any] struct {
	it     go_iterators.Iterator[T]
	err    error
	done   bool
	closed bool
}

// FromIterator wraps it. The iterator is closed once it reports exhaustion or
// an error, or when Close is called.
func FromIterator[T any](it go_iterators.Iterator[T]) *IteratorSource[T] {
	return &IteratorSource[T]{it: it}
}

// Next implements SourceFunc.
func (s *IteratorSource[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	v, err := s.it.Next()
	if err != nil {
		s.done = true
		if !errors.Is(err, go_iterators.EmptyIterator) {
			s.err = errors.Wrap(err, "cons: source iterator")
		}
		s.close()
		return zero, false
	}
	return v, true
}

// Seq returns the source as a single-use sequence. Breaking out of the loop
// closes the underlying iterator.
func (s *IteratorSource[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.Close()
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Err returns the first error reported by the iterator, other than
// go_iterators.EmptyIterator, or by its Close.
func (s *IteratorSource[T]) Err() error {
	return s.err
}

// Close closes the underlying iterator if it is still open and returns Err.
func (s *IteratorSource[T]) Close() error {
	s.done = true
	s.close()
	return s.err
}

func (s *IteratorSource[T]) close() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.it.Close(); err != nil && s.err == nil {
		s.err = errors.Wrap(err, "cons: close source iterator")
	}
}
