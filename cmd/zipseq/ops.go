package main

import (
	"context"
	"slices"

	"github.com/charmingruby/lazyseq/control"
	"github.com/charmingruby/lazyseq/zipmap"
)

var operators = map[string]func(x, y int) int{
	"add": func(x, y int) int { return x + y },
	"sub": func(x, y int) int { return x - y },
	"mul": func(x, y int) int { return x * y },
	"max": func(x, y int) int { return max(x, y) },
	"min": func(x, y int) int { return min(x, y) },
}

// closure applies the configured operator, breaking when the left value is
// in BreakAt and continuing when it is in Skip. Break wins over skip.
func closure(cfg *Config) zipmap.Closure[int, int, int] {
	op := operators[cfg.Op]
	return zipmap.Func(func(_ context.Context, x, y int) (int, error) {
		switch {
		case slices.Contains(cfg.BreakAt, x):
			return 0, control.ErrBreak
		case slices.Contains(cfg.Skip, x):
			return 0, control.ErrContinue
		}
		return op(x, y), nil
	})
}
