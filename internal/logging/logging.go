// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"encoding"
	"errors"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownLevel is returned when parsing a level name that is not listed.
var ErrUnknownLevel = errors.New("unknown log level (known: debug, info, warn, error)")

// Level is a log verbosity that can be set from flags and config files.
type Level int

// The following are necessary for Cobra and Viper, respectively, to unmarshal
// log level CLI/config parameters properly.
var (
	_ pflag.Value              = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// Supported levels, from most to least verbose.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

const timeFormat = "15:04:05.000 02/01/2006 -07:00"

// String returns the lowercase level name. It panics on an unknown level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		// Should not happen.
		panic(ErrUnknownLevel)
	}
}

// Set parses a level name in lower or upper case. It implements pflag.Value.
func (l *Level) Set(s string) error {
	switch s {
	case "DEBUG", "debug":
		*l = DEBUG
	case "INFO", "info":
		*l = INFO
	case "WARN", "warn":
		*l = WARN
	case "ERROR", "error":
		*l = ERROR
	default:
		return ErrUnknownLevel
	}
	return nil
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "Level"
}

// MarshalYAML writes the level as its name.
func (l Level) MarshalYAML() (any, error) {
	return l.String(), nil
}

// UnmarshalText lets viper decode the level from config files.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

// New returns a console logger writing to stderr at the given level.
func New(level Level) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level.String())
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Sampling = nil
	config.Encoding = "console"
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Local().Format(timeFormat))
	}
	return config.Build()
}
