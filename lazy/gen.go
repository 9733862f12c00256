package lazy

import "context"

// Empty returns an exhausted sequence.
func Empty[T any]() Seq[T] {
	return newForced(Exhausted[T]())
}

// Cons returns an already forced sequence with the given head and tail.
//
// Example:
//
//	s := lazy.Cons(1, lazy.Cons(2, lazy.Empty[int]()))
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return newForced(Ready(head, tail))
}

// Delay defers building a sequence until it is first observed. The node
// takes the head and tail of whatever fn returns; a nil result is empty.
//
// Delay is how self-referential sequences are written:
//
//	var fib lazy.Seq[int]
//	fib = lazy.Cons(0, lazy.Cons(1, lazy.Delay(func(ctx context.Context) (lazy.Seq[int], error) {
//		next, err := fib.Tail(ctx)
//		if err != nil {
//			return nil, err
//		}
//		return zipmap.New(fib, next, add), nil
//	})))
func Delay[T any](fn func(ctx context.Context) (Seq[T], error)) Seq[T] {
	if fn == nil {
		return Empty[T]()
	}
	return NewNode(func(ctx context.Context) (Forced[T], error) {
		s, err := fn(ctx)
		if err != nil || s == nil {
			return Exhausted[T](), err
		}
		return Materialize(ctx, s)
	})
}

// Materialize forces s and returns its state.
func Materialize[T any](ctx context.Context, s Seq[T]) (Forced[T], error) {
	empty, err := s.IsEmpty(ctx)
	if err != nil || empty {
		return Exhausted[T](), err
	}
	head, err := s.Head(ctx)
	if err != nil {
		return Exhausted[T](), err
	}
	tail, err := s.Tail(ctx)
	if err != nil {
		return Exhausted[T](), err
	}
	return Ready(head, tail), nil
}

// Range returns the integers from `from` towards `to` (exclusive) by step.
// A zero step repeats `from` forever. Ranges ending near math.MaxInt or
// math.MinInt stop at the last value instead of wrapping around.
//
// Example:
//
//	lazy.Range(0, 10, 3)  // 0 3 6 9
//	lazy.Range(3, 0, -1)  // 3 2 1
func Range(from, to, step int) Seq[int] {
	return NewNode(func(context.Context) (Forced[int], error) {
		if (step > 0 && from >= to) || (step < 0 && from <= to) {
			return Exhausted[int](), nil
		}
		if lastInRange(from, to, step) {
			return Ready(from, Empty[int]()), nil
		}
		return Ready(from, Range(from+step, to, step)), nil
	})
}

// lastInRange reports whether from+step would reach or pass to. The distance
// is taken in uint so that neither it nor from+step can overflow.
func lastInRange(from, to, step int) bool {
	switch {
	case step > 0:
		return uint(to)-uint(from) <= uint(step)
	case step < 0:
		return uint(from)-uint(to) <= -uint(step)
	default:
		return false
	}
}

// Iterate returns the infinite sequence seed, fn(seed), fn(fn(seed)), ...
// Each application of fn happens when the corresponding node is forced.
func Iterate[T any](seed T, fn func(T) T) Seq[T] {
	return newForced(Ready(seed, iterateNext(seed, fn)))
}

func iterateNext[T any](prev T, fn func(T) T) Seq[T] {
	return NewNode(func(context.Context) (Forced[T], error) {
		next := fn(prev)
		return Ready(next, iterateNext(next, fn)), nil
	})
}
