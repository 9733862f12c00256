package main

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/charmingruby/lazyseq/internal/logging"
)

var errInvalidConfig = errors.New("invalid configuration")

// Config describes one zip-map evaluation.
type Config struct {
	LeftFrom  int           `mapstructure:"left-from"`
	LeftTo    int           `mapstructure:"left-to"`
	RightFrom int           `mapstructure:"right-from"`
	RightTo   int           `mapstructure:"right-to"`
	Infinite  bool          `mapstructure:"infinite"`
	Op        string        `mapstructure:"op" validate:"oneof=add sub mul max min"`
	BreakAt   []int         `mapstructure:"break-at"`
	Skip      []int         `mapstructure:"skip"`
	Limit     int           `mapstructure:"limit" validate:"gte=0,required_if=Infinite true"`
	Format    string        `mapstructure:"format" validate:"oneof=text json yaml"`
	Metrics   bool          `mapstructure:"metrics"`
	Verbosity logging.Level `mapstructure:"verbosity"`
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Join(errInvalidConfig, err)
	}
	return nil
}
