package lazy

import (
	"context"
	"iter"
)

// All walks s front to back, forcing one node per element. A failure is
// yielded once as (zero, err) and ends the walk. Breaking out of the loop
// leaves the remaining nodes unforced.
//
// Example:
//
//	for v, err := range lazy.All(ctx, s) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(v)
//	}
func All[T any](ctx context.Context, s Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for cur := s; cur != nil; {
			empty, err := cur.IsEmpty(ctx)
			if err != nil {
				yield(zero, err)
				return
			}
			if empty {
				return
			}
			head, err := cur.Head(ctx)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(head, nil) {
				return
			}
			if cur, err = cur.Tail(ctx); err != nil {
				yield(zero, err)
				return
			}
		}
	}
}

// Collect forces the whole of s and returns its elements. It does not
// terminate on infinite sequences.
func Collect[T any](ctx context.Context, s Seq[T]) ([]T, error) {
	result := []T{}
	for v, err := range All(ctx, s) {
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// Take returns at most the first n elements of s, forcing no node past the
// n-th.
func Take[T any](ctx context.Context, s Seq[T], n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}
	result := make([]T, 0, n)
	for v, err := range All(ctx, s) {
		if err != nil {
			return nil, err
		}
		result = append(result, v)
		if len(result) == n {
			break
		}
	}
	return result, nil
}
