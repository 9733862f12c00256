package zipmap

import "go.uber.org/zap"

// Observer is notified once per forced zip-map node with how the force
// ended. skipped counts the pairs dropped by Skip during that force. Failed
// also receives panics, wrapped in lazy.ErrForcePanicked, before they are
// re-raised.
type Observer interface {
	Produced(skipped int)
	Stopped(skipped int)
	Exhausted(skipped int)
	Failed(err error)
}

// Option configures a zip-map sequence. Options are shared by every node of
// the sequence.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	observer Observer
}

// WithLogger sets the logger used for per-node Debug events. A nil logger is
// ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an Observer for force outcomes.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) produced(skipped int) {
	if skipped > 0 {
		o.logger.Debug("zip-map skipped pairs before producing", zap.Int("skipped", skipped))
	}
	if o.observer != nil {
		o.observer.Produced(skipped)
	}
}

func (o *options) stopped(skipped int) {
	o.logger.Debug("zip-map stopped by break", zap.Int("skipped", skipped))
	if o.observer != nil {
		o.observer.Stopped(skipped)
	}
}

func (o *options) exhausted(skipped int) {
	o.logger.Debug("zip-map source exhausted", zap.Int("skipped", skipped))
	if o.observer != nil {
		o.observer.Exhausted(skipped)
	}
}

func (o *options) failed(err error) {
	o.logger.Debug("zip-map force failed", zap.Error(err))
	if o.observer != nil {
		o.observer.Failed(err)
	}
}
