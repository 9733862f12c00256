// Package lazy implements self-memoizing, possibly infinite sequences.
//
// Example:
//
//	evens := lazy.Iterate(0, func(n int) int { return n + 2 })
//	first, err := lazy.Take(ctx, evens, 3) // [0 2 4]
//
// A sequence is a chain of nodes. Each node runs its deferred computation at
// most once, on the first call to IsEmpty, Head or Tail, and caches the
// outcome: a head value with a tail node, end-of-stream, or the error the
// computation failed with. The context passed to those calls is handed
// unchanged to the computation; this package never inspects it.
package lazy

import (
	"context"
	"errors"
)

var (
	// ErrEmptySequence is returned by Head and Tail on an exhausted sequence.
	ErrEmptySequence = errors.New("lazy: empty sequence")
	// ErrForcePanicked marks a node whose computation panicked. The panic is
	// re-raised to the caller that triggered it; later callers get this error.
	ErrForcePanicked = errors.New("lazy: force panicked")
)

//go:generate mockgen -destination=../mocks/mock_seq.go -package=mocks github.com/charmingruby/lazyseq/lazy Seq

// Seq is the contract shared by every sequence kind.
//
// Implementations must be idempotent: once any method has returned without
// error, all later calls observe the same emptiness, head and tail.
type Seq[T any] interface {
	// IsEmpty reports whether the sequence is at end-of-stream.
	IsEmpty(ctx context.Context) (bool, error)
	// Head returns the first element, or ErrEmptySequence.
	Head(ctx context.Context) (T, error)
	// Tail returns the sequence after the first element, or ErrEmptySequence.
	Tail(ctx context.Context) (Seq[T], error)
}
