package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/charmingruby/lazyseq/internal/logging"
	"github.com/charmingruby/lazyseq/lazy"
	"github.com/charmingruby/lazyseq/metrics"
	"github.com/charmingruby/lazyseq/zipmap"
)

const (
	configF    = "config"
	leftFromF  = "left-from"
	leftToF    = "left-to"
	rightFromF = "right-from"
	rightToF   = "right-to"
	infiniteF  = "infinite"
	opF        = "op"
	breakAtF   = "break-at"
	skipF      = "skip"
	limitF     = "limit"
	formatF    = "format"
	metricsF   = "metrics"
	verbosityF = "verbosity"

	defaultConfig    = ""
	defaultLeftFrom  = 1
	defaultLeftTo    = 4
	defaultRightFrom = 10
	defaultRightTo   = 13
	defaultInfinite  = false
	defaultOp        = "add"
	defaultLimit     = 0
	defaultFormat    = "text"
	defaultMetrics   = false
	defaultVerbosity = logging.INFO

	configUsage    = "The yaml configuration file."
	leftFromUsage  = "First value of the left range."
	leftToUsage    = "End of the left range (exclusive)."
	rightFromUsage = "First value of the right range."
	rightToUsage   = "End of the right range (exclusive)."
	infiniteUsage  = "Ignore the range ends and count up forever. Requires --limit."
	opUsage        = "Operator applied to each pair: add, sub, mul, max or min."
	breakAtUsage   = "Left values that end the output."
	skipUsage      = "Left values whose pair is dropped from the output."
	limitUsage     = "Maximum number of values to print; 0 prints all."
	formatUsage    = "Output format: text, json or yaml."
	metricsUsage   = "Count zip-map forces and log the counters on exit."
	verbosityUsage = "Verbosity of the logs: debug, info, warn or error."
)

// NewCmd returns the zipseq root command.
func NewCmd() *cobra.Command {
	var cfgFile string
	verbosity := defaultVerbosity

	cmd := &cobra.Command{
		Use:   "zipseq [flags]",
		Short: "Zip two integer ranges lazily through an operator.",
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configUsage)
	cmd.Flags().Int(leftFromF, defaultLeftFrom, leftFromUsage)
	cmd.Flags().Int(leftToF, defaultLeftTo, leftToUsage)
	cmd.Flags().Int(rightFromF, defaultRightFrom, rightFromUsage)
	cmd.Flags().Int(rightToF, defaultRightTo, rightToUsage)
	cmd.Flags().Bool(infiniteF, defaultInfinite, infiniteUsage)
	cmd.Flags().String(opF, defaultOp, opUsage)
	cmd.Flags().IntSlice(breakAtF, nil, breakAtUsage)
	cmd.Flags().IntSlice(skipF, nil, skipUsage)
	cmd.Flags().Int(limitF, defaultLimit, limitUsage)
	cmd.Flags().String(formatF, defaultFormat, formatUsage)
	cmd.Flags().Bool(metricsF, defaultMetrics, metricsUsage)
	cmd.Flags().Var(&verbosity, verbosityF, verbosityUsage)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(Config)
		if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		))); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		return run(cmd.Context(), cfg, cmd.OutOrStdout())
	}

	return cmd
}

func run(ctx context.Context, cfg *Config, out io.Writer) error {
	logger, err := logging.New(cfg.Verbosity)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := []zipmap.Option{zipmap.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		opts = append(opts, zipmap.WithObserver(collector))
	}

	left, right := sources(cfg)
	seq := zipmap.New(left, right, closure(cfg), opts...)

	var values []int
	if cfg.Limit > 0 {
		values, err = lazy.Take(ctx, seq, cfg.Limit)
	} else {
		values, err = lazy.Collect(ctx, seq)
	}
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	logger.Info("zip-map evaluated", zap.String("op", cfg.Op), zap.Int("values", len(values)))

	if err := write(out, cfg.Format, values); err != nil {
		return err
	}
	if reg != nil {
		return logCounters(logger, reg)
	}
	return nil
}

func sources(cfg *Config) (lazy.Seq[int], lazy.Seq[int]) {
	if cfg.Infinite {
		inc := func(n int) int { return n + 1 }
		return lazy.Iterate(cfg.LeftFrom, inc), lazy.Iterate(cfg.RightFrom, inc)
	}
	return lazy.Range(cfg.LeftFrom, cfg.LeftTo, 1), lazy.Range(cfg.RightFrom, cfg.RightTo, 1)
}

func write(out io.Writer, format string, values []int) error {
	switch format {
	case "json":
		return json.NewEncoder(out).Encode(values)
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(values); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func logCounters(logger *zap.Logger, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("name", mf.GetName()), zap.Float64("value", m.GetCounter().GetValue())}
			for _, label := range m.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			logger.Info("metric", fields...)
		}
	}
	return nil
}
