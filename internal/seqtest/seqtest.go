// Package seqtest provides slice-backed sequences and call counters for tests.
package seqtest

import (
	"context"
	"sync/atomic"

	"github.com/charmingruby/lazyseq/lazy"
)

// Source is a slice-backed sequence that counts how many of its nodes have
// been forced.
type Source[T any] struct {
	values []T
	err    error
	forced atomic.Int64
}

// FromSlice wraps values. The slice is not copied.
func FromSlice[T any](values []T) *Source[T] {
	return &Source[T]{values: values}
}

// Failing behaves like FromSlice but the node after the last value fails
// with err instead of ending the sequence.
func Failing[T any](values []T, err error) *Source[T] {
	return &Source[T]{values: values, err: err}
}

// Of is shorthand for FromSlice(values).Seq().
func Of[T any](values ...T) lazy.Seq[T] {
	return FromSlice(values).Seq()
}

// Seq returns the sequence starting at the first value.
func (s *Source[T]) Seq() lazy.Seq[T] {
	return s.at(0)
}

// Forced returns the number of nodes forced so far, end-of-stream included.
func (s *Source[T]) Forced() int {
	return int(s.forced.Load())
}

func (s *Source[T]) at(i int) lazy.Seq[T] {
	return lazy.NewNode(func(context.Context) (lazy.Forced[T], error) {
		s.forced.Add(1)
		if i >= len(s.values) {
			return lazy.Exhausted[T](), s.err
		}
		return lazy.Ready(s.values[i], s.at(i+1)), nil
	})
}

// Counter counts invocations from any goroutine.
type Counter struct {
	n atomic.Int64
}

// Inc records one call.
func (c *Counter) Inc() {
	c.n.Add(1)
}

// Load returns the number of recorded calls.
func (c *Counter) Load() int {
	return int(c.n.Load())
}
