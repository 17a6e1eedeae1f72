package cons

import (
	"iter"
	"slices"
)

// Seq gives any iter.Seq the windowing operations as methods.
//
//	cons.Seq[int](maps.Values(m)).Windows(3)
type Seq[T any] iter.Seq[T]

// EachCons is New(size, iter.Seq[T](s)).
func (s Seq[T]) EachCons(size int, opts ...Option) (*Cons[T], error) {
	return New(size, iter.Seq[T](s), opts...)
}

// Windows is EachCons(iter.Seq[T](s), size).
func (s Seq[T]) Windows(size int) iter.Seq[[]*T] {
	return EachCons(iter.Seq[T](s), size)
}

// Slice gives any slice of comparable elements the grouping and windowing
// operations as methods.
type Slice[T comparable] []T

// ConsGroup is NewGroup(s).
func (s Slice[T]) ConsGroup() *Group[T] {
	return NewGroup([]T(s))
}

// Runs is ConsGroup([]T(s)).
func (s Slice[T]) Runs() iter.Seq[[]T] {
	return ConsGroup([]T(s))
}

// EachCons creates a windowing adapter over the elements of s.
func (s Slice[T]) EachCons(size int, opts ...Option) (*Cons[T], error) {
	return New(size, slices.Values([]T(s)), opts...)
}
