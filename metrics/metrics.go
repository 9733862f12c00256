// Package metrics exports zip-map force outcomes as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/charmingruby/lazyseq/zipmap"
)

// Values of the outcome label on lazyseq_zipmap_forces.
const (
	OutcomeProduced  = "produced"
	OutcomeStopped   = "stopped"
	OutcomeExhausted = "exhausted"
	OutcomeFailed    = "failed"
)

// Collector counts forced zip-map nodes by outcome and the pairs dropped by
// continue signals.
type Collector struct {
	forces  *prometheus.CounterVec
	skipped prometheus.Counter
}

var _ zipmap.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		forces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lazyseq",
			Subsystem: "zipmap",
			Name:      "forces",
			Help:      "Forced zip-map nodes by outcome.",
		}, []string{"outcome"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lazyseq",
			Subsystem: "zipmap",
			Name:      "skipped_pairs",
			Help:      "Input pairs dropped by a continue signal.",
		}),
	}
	for _, col := range []prometheus.Collector{c.forces, c.skipped} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Produced counts a force that emitted a value after skipping skipped pairs.
func (c *Collector) Produced(skipped int) {
	c.record(OutcomeProduced, skipped)
}

// Stopped counts a force ended by a break signal.
func (c *Collector) Stopped(skipped int) {
	c.record(OutcomeStopped, skipped)
}

// Exhausted counts a force that ran out of input.
func (c *Collector) Exhausted(skipped int) {
	c.record(OutcomeExhausted, skipped)
}

// Failed counts a force that returned an error or panicked.
func (c *Collector) Failed(error) {
	c.record(OutcomeFailed, 0)
}

func (c *Collector) record(outcome string, skipped int) {
	c.forces.WithLabelValues(outcome).Inc()
	if skipped > 0 {
		c.skipped.Add(float64(skipped))
	}
}
