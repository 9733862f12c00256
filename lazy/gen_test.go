package lazy_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lazyseq/internal/seqtest"
	"github.com/charmingruby/lazyseq/lazy"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name           string
		from, to, step int
		want           []int
	}{
		{name: "ascending", from: 0, to: 4, step: 1, want: []int{0, 1, 2, 3}},
		{name: "stride", from: 0, to: 10, step: 3, want: []int{0, 3, 6, 9}},
		{name: "descending", from: 3, to: 0, step: -1, want: []int{3, 2, 1}},
		{name: "empty", from: 1, to: 1, step: 1, want: []int{}},
		{name: "wrong direction", from: 5, to: 1, step: 1, want: []int{}},
		{name: "step past max int", from: math.MaxInt - 1, to: math.MaxInt, step: 5, want: []int{math.MaxInt - 1}},
		{name: "ends below max int", from: math.MaxInt - 7, to: math.MaxInt, step: 3, want: []int{math.MaxInt - 7, math.MaxInt - 4, math.MaxInt - 1}},
		{name: "step past min int", from: math.MinInt + 1, to: math.MinInt, step: -5, want: []int{math.MinInt + 1}},
		{name: "ends above min int", from: math.MinInt + 6, to: math.MinInt, step: -3, want: []int{math.MinInt + 6, math.MinInt + 3}},
		{name: "full width", from: math.MinInt, to: math.MaxInt, step: math.MaxInt, want: []int{math.MinInt, -1, math.MaxInt - 1}},
		{name: "min int step", from: math.MaxInt, to: math.MinInt, step: math.MinInt, want: []int{math.MaxInt, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lazy.Collect(t.Context(), lazy.Range(tt.from, tt.to, tt.step))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeZeroStepRepeats(t *testing.T) {
	got, err := lazy.Take(t.Context(), lazy.Range(7, 0, 0), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, got)
}

func TestIterateAppliesFnOnDemand(t *testing.T) {
	var calls seqtest.Counter
	powers := lazy.Iterate(1, func(n int) int {
		calls.Inc()
		return n * 2
	})

	got, err := lazy.Take(t.Context(), powers, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, got)
	assert.Equal(t, 4, calls.Load())
}

func TestConsAndEmpty(t *testing.T) {
	s := lazy.Cons("a", lazy.Cons("b", lazy.Empty[string]()))
	got, err := lazy.Collect(t.Context(), s)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	got, err = lazy.Collect(t.Context(), lazy.Cons[string]("only", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got)
}

func TestDelay(t *testing.T) {
	t.Run("defers until observed", func(t *testing.T) {
		var calls seqtest.Counter
		s := lazy.Delay(func(context.Context) (lazy.Seq[int], error) {
			calls.Inc()
			return seqtest.Of(1, 2), nil
		})
		assert.Zero(t, calls.Load())

		got, err := lazy.Collect(t.Context(), s)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got)

		_, err = s.Head(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 1, calls.Load())
	})

	t.Run("nil result is empty", func(t *testing.T) {
		s := lazy.Delay(func(context.Context) (lazy.Seq[int], error) { return nil, nil })
		empty, err := s.IsEmpty(t.Context())
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("nil fn is empty", func(t *testing.T) {
		empty, err := lazy.Delay[int](nil).IsEmpty(t.Context())
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		s := lazy.Delay(func(context.Context) (lazy.Seq[int], error) { return nil, boom })
		_, err := s.Head(t.Context())
		require.ErrorIs(t, err, boom)
	})
}

func TestMaterializeSurfacesSourceFailure(t *testing.T) {
	boom := errors.New("source failed")
	_, err := lazy.Materialize(t.Context(), seqtest.Failing[int](nil, boom).Seq())
	require.ErrorIs(t, err, boom)
}
