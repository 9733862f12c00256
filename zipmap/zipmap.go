// Package zipmap zips two lazy sequences through a binary closure.
//
// Example:
//
//	sums := zipmap.New(xs, ys, zipmap.Func(func(_ context.Context, x, y int) (int, error) {
//		return x + y, nil
//	}))
//
// The result is [f(x0,y0), f(x1,y1), ...] and ends with the shorter input.
// The closure can end the output early with control.Stop (or by returning
// control.ErrBreak through Func) and drop a single output with control.Skip
// (control.ErrContinue). A skip still consumes one element of each input.
package zipmap

import (
	"context"
	"fmt"

	"github.com/charmingruby/lazyseq/control"
	"github.com/charmingruby/lazyseq/lazy"
)

// Closure is the binary transformation applied to each pair. ctx is the
// context the consumer passed to IsEmpty, Head or Tail.
type Closure[A, B, R any] func(ctx context.Context, x A, y B) (control.Outcome[R], error)

// Func adapts a closure that signals break and continue by returning
// control.ErrBreak or control.ErrContinue.
func Func[A, B, R any](fn func(ctx context.Context, x A, y B) (R, error)) Closure[A, B, R] {
	if fn == nil {
		return nil
	}
	return func(ctx context.Context, x A, y B) (control.Outcome[R], error) {
		v, err := fn(ctx, x, y)
		return control.FromError(v, err)
	}
}

// New returns the lazy zip of left and right through fn. Nothing is evaluated
// until the result is first observed. A nil left, right or fn gives an empty
// sequence.
func New[A, B, R any](left lazy.Seq[A], right lazy.Seq[B], fn Closure[A, B, R], opts ...Option) lazy.Seq[R] {
	return newNode(left, right, fn, newOptions(opts))
}

type pending[A, B, R any] struct {
	left  lazy.Seq[A]
	right lazy.Seq[B]
	fn    Closure[A, B, R]
	opts  *options
}

func newNode[A, B, R any](left lazy.Seq[A], right lazy.Seq[B], fn Closure[A, B, R], opts *options) *lazy.Node[R] {
	p := &pending[A, B, R]{left: left, right: right, fn: fn, opts: opts}
	return lazy.NewNode(p.force)
}

// force runs inside lazy.Node. p is emptied before the loop: input nodes
// consumed by a skip run must not stay reachable through it.
func (p *pending[A, B, R]) force(ctx context.Context) (lazy.Forced[R], error) {
	left, right, fn, opts := p.left, p.right, p.fn, p.opts
	p.left, p.right, p.fn = nil, nil, nil
	if left == nil || right == nil || fn == nil {
		opts.exhausted(0)
		return lazy.Exhausted[R](), nil
	}

	defer func() {
		if r := recover(); r != nil {
			opts.failed(fmt.Errorf("%w: %v", lazy.ErrForcePanicked, r))
			panic(r)
		}
	}()

	skipped := 0
	for {
		done, err := eitherEmpty(ctx, left, right)
		if err != nil {
			return fail[R](opts, err)
		}
		if done {
			opts.exhausted(skipped)
			return lazy.Exhausted[R](), nil
		}

		x, err := left.Head(ctx)
		if err != nil {
			return fail[R](opts, err)
		}
		y, err := right.Head(ctx)
		if err != nil {
			return fail[R](opts, err)
		}
		nextLeft, err := left.Tail(ctx)
		if err != nil {
			return fail[R](opts, err)
		}
		nextRight, err := right.Tail(ctx)
		if err != nil {
			return fail[R](opts, err)
		}

		out, err := fn(ctx, x, y)
		if err != nil {
			return fail[R](opts, err)
		}

		switch out.Kind() {
		case control.KindProduced:
			v, _ := out.Get()
			opts.produced(skipped)
			return lazy.Ready[R](v, newNode(nextLeft, nextRight, fn, opts)), nil
		case control.KindSkip:
			skipped++
			left, right = nextLeft, nextRight
		default:
			opts.stopped(skipped)
			return lazy.Exhausted[R](), nil
		}
	}
}

func fail[R any](opts *options, err error) (lazy.Forced[R], error) {
	opts.failed(err)
	return lazy.Exhausted[R](), err
}

func eitherEmpty[A, B any](ctx context.Context, left lazy.Seq[A], right lazy.Seq[B]) (bool, error) {
	if empty, err := left.IsEmpty(ctx); err != nil || empty {
		return empty, err
	}
	return right.IsEmpty(ctx)
}
