// Package control models the result of invoking a sequence transformation:
// either a produced value or one of two loop-control signals.
//
// Example:
//
//	out := control.Produced(42)
//	if v, ok := out.Get(); ok {
//		fmt.Println(v)
//	}
//
// Stop ends the sequence being built (a break); Skip drops the current
// element and moves on (a continue). Signals travel beside the value, never
// inside it, so any T, including nil-able types, is a legal produced value.
package control

import (
	"errors"
	"fmt"
)

var (
	// ErrBreak is returned by a transformation to end the output sequence.
	ErrBreak = errors.New("control: break")
	// ErrContinue is returned by a transformation to skip the current element.
	ErrContinue = errors.New("control: continue")
)

// Kind enumerates the variants of an Outcome.
type Kind uint8

const (
	// KindStop is the zero Kind, so the zero Outcome ends a sequence.
	KindStop Kind = iota
	KindProduced
	KindSkip
)

func (k Kind) String() string {
	switch k {
	case KindStop:
		return "stop"
	case KindProduced:
		return "produced"
	case KindSkip:
		return "skip"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Outcome is the tagged result of a transformation call. The zero value is
// Stop.
//
// Example:
//
//	func halve(x int) control.Outcome[int] {
//		if x%2 != 0 {
//			return control.Skip[int]()
//		}
//		return control.Produced(x / 2)
//	}
type Outcome[T any] struct {
	value T
	kind  Kind
}

// Produced wraps a legitimate output value.
func Produced[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, kind: KindProduced}
}

// Stop signals that no further elements should be produced.
func Stop[T any]() Outcome[T] {
	return Outcome[T]{kind: KindStop}
}

// Skip signals that the current element yields no output but processing
// continues with the next one.
func Skip[T any]() Outcome[T] {
	return Outcome[T]{kind: KindSkip}
}

// Kind reports which variant o holds.
func (o Outcome[T]) Kind() Kind {
	return o.kind
}

// IsProduced reports whether o carries a value.
func (o Outcome[T]) IsProduced() bool {
	return o.kind == KindProduced
}

// IsStop reports whether o is a break signal.
func (o Outcome[T]) IsStop() bool {
	return o.kind == KindStop
}

// IsSkip reports whether o is a continue signal.
func (o Outcome[T]) IsSkip() bool {
	return o.kind == KindSkip
}

// Get returns the produced value and true, or the zero value and false for
// either signal.
func (o Outcome[T]) Get() (T, bool) {
	if o.kind != KindProduced {
		var zero T
		return zero, false
	}
	return o.value, true
}

// String implements fmt.Stringer for debugging.
func (o Outcome[T]) String() string {
	if o.kind == KindProduced {
		return fmt.Sprintf("Produced(%v)", o.value)
	}
	return o.kind.String()
}

// Map transforms a produced value with fn. Signals pass through unchanged.
func Map[T any, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if o.kind == KindProduced {
		return Produced(fn(o.value))
	}
	return Outcome[U]{kind: o.kind}
}

// Fold collapses o into a single value by selecting the handler for its
// variant.
func Fold[T any, U any](o Outcome[T], onProduced func(T) U, onStop func() U, onSkip func() U) U {
	switch o.kind {
	case KindProduced:
		return onProduced(o.value)
	case KindSkip:
		return onSkip()
	default:
		return onStop()
	}
}

// FromError classifies a conventional (value, error) return. ErrBreak and
// ErrContinue, also when wrapped, become Stop and Skip; any other error is
// returned as is.
//
// Example:
//
//	out, err := control.FromError(strconv.Atoi(s))
func FromError[T any](value T, err error) (Outcome[T], error) {
	switch {
	case err == nil:
		return Produced(value), nil
	case errors.Is(err, ErrBreak):
		return Stop[T](), nil
	case errors.Is(err, ErrContinue):
		return Skip[T](), nil
	default:
		return Outcome[T]{}, err
	}
}
