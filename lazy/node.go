package lazy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc/panics"
)

// Forced is the materialized state of a node: either a head with its tail or
// end-of-stream.
type Forced[T any] struct {
	head T
	tail Seq[T]
	ok   bool
}

// Ready describes a non-empty node. A nil tail is treated as Empty.
func Ready[T any](head T, tail Seq[T]) Forced[T] {
	return Forced[T]{head: head, tail: tail, ok: true}
}

// Exhausted describes an end-of-stream node.
func Exhausted[T any]() Forced[T] {
	return Forced[T]{}
}

// Thunk is the deferred computation of a node.
type Thunk[T any] func(ctx context.Context) (Forced[T], error)

type state[T any] struct {
	Forced[T]
	err error
}

// Node is a Seq whose content is produced by a Thunk run at most once.
//
// The thunk is released as soon as forcing starts, so whatever it captured
// (source sequences, closures) becomes collectable once the node is forced.
// Readers see either no state or the complete final state; a head without
// its tail is never observable. Node is safe for concurrent use.
//
// A thunk that fails poisons the node: every later call returns the same
// error and the thunk is not run again.
type Node[T any] struct {
	mu      sync.Mutex
	state   atomic.Pointer[state[T]]
	pending Thunk[T]
}

var _ Seq[int] = (*Node[int])(nil)

// NewNode returns a pending node that will run thunk on first access. A nil
// thunk yields an exhausted node.
func NewNode[T any](thunk Thunk[T]) *Node[T] {
	return &Node[T]{pending: thunk}
}

func newForced[T any](f Forced[T]) *Node[T] {
	if f.ok && f.tail == nil {
		f.tail = Empty[T]()
	}
	n := &Node[T]{}
	n.state.Store(&state[T]{Forced: f})
	return n
}

// Forced reports whether the node's computation has already run.
func (n *Node[T]) Forced() bool {
	return n.state.Load() != nil
}

// IsEmpty implements Seq.
func (n *Node[T]) IsEmpty(ctx context.Context) (bool, error) {
	s := n.force(ctx)
	if s.err != nil {
		return false, s.err
	}
	return !s.ok, nil
}

// Head implements Seq.
func (n *Node[T]) Head(ctx context.Context) (T, error) {
	s := n.force(ctx)
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	if !s.ok {
		var zero T
		return zero, ErrEmptySequence
	}
	return s.head, nil
}

// Tail implements Seq.
func (n *Node[T]) Tail(ctx context.Context) (Seq[T], error) {
	s := n.force(ctx)
	if s.err != nil {
		return nil, s.err
	}
	if !s.ok {
		return nil, ErrEmptySequence
	}
	return s.tail, nil
}

func (n *Node[T]) force(ctx context.Context) *state[T] {
	if s := n.state.Load(); s != nil {
		return s
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if s := n.state.Load(); s != nil {
		return s
	}

	thunk := n.pending
	n.pending = nil
	if thunk == nil {
		s := &state[T]{}
		n.state.Store(s)
		return s
	}

	var (
		pc  panics.Catcher
		out Forced[T]
		err error
	)
	pc.Try(func() { out, err = thunk(ctx) })
	if r := pc.Recovered(); r != nil {
		n.state.Store(&state[T]{err: errors.Join(ErrForcePanicked, r.AsError())})
		pc.Repanic()
	}

	s := &state[T]{err: err}
	if err == nil {
		s.Forced = out
		if s.ok && s.tail == nil {
			s.tail = Empty[T]()
		}
	}
	n.state.Store(s)
	return s
}
