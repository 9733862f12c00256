package control_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/control"
)

func outcomeOf(kind uint8, value int) control.Outcome[int] {
	switch kind % 3 {
	case 0:
		return control.Produced(value)
	case 1:
		return control.Skip[int]()
	default:
		return control.Stop[int]()
	}
}

func equalOutcome[T comparable](a, b control.Outcome[T]) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	av, _ := a.Get()
	bv, _ := b.Get()
	return av == bv
}

func TestOutcomeFunctorLaws(t *testing.T) {
	identity := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	check := func(kind uint8, value int) bool {
		out := outcomeOf(kind, value)
		idMapped := control.Map(out, identity)
		chained := control.Map(control.Map(out, inc), double)
		composed := control.Map(out, func(x int) int { return double(inc(x)) })
		return equalOutcome(out, idMapped) && equalOutcome(chained, composed)
	}

	require.NoError(t, quick.Check(check, nil))
}

func TestFoldSelectsExactlyOneHandler(t *testing.T) {
	check := func(kind uint8, value int) bool {
		out := outcomeOf(kind, value)
		calls := 0
		got := control.Fold(out,
			func(v int) string { calls++; return "produced" },
			func() string { calls++; return "stop" },
			func() string { calls++; return "skip" },
		)
		return calls == 1 && got == out.Kind().String()
	}

	require.NoError(t, quick.Check(check, nil))
}
