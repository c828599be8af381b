// Package promhook exports registry hook events as Prometheus metrics.
//
// Metrics:
//   - storagecache_handles_created_total{kind}
//   - storagecache_loads_total{kind, result="hit"|"miss"}
//   - storagecache_self_heals_total{reason}
//   - storagecache_provider_set_rejected_total{kind}
//   - storagecache_provider_errors_total{op, kind}
package promhook

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/storagecache"
)

type Hooks struct {
	handlesCreated *prometheus.CounterVec
	loads          *prometheus.CounterVec
	selfHeals      *prometheus.CounterVec
	setRejected    *prometheus.CounterVec
	providerErrors *prometheus.CounterVec
}

var _ storagecache.Hooks = (*Hooks)(nil)

// New creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) (*Hooks, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	h := &Hooks{
		handlesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storagecache_handles_created_total",
				Help: "Total number of dataset and list handles created",
			},
			[]string{"kind"},
		),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storagecache_loads_total",
				Help: "Total number of cache loads by result",
			},
			[]string{"kind", "result"},
		),
		selfHeals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storagecache_self_heals_total",
				Help: "Total number of unreadable entries deleted on read",
			},
			[]string{"reason"},
		),
		setRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storagecache_provider_set_rejected_total",
				Help: "Total number of writes refused by the provider",
			},
			[]string{"kind"},
		),
		providerErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storagecache_provider_errors_total",
				Help: "Total number of provider operation errors",
			},
			[]string{"op", "kind"},
		),
	}
	for _, c := range []prometheus.Collector{h.handlesCreated, h.loads, h.selfHeals, h.setRejected, h.providerErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hooks) HandleCreated(kind storagecache.ResourceKind, _ string) {
	h.handlesCreated.WithLabelValues(kind.String()).Inc()
}

func (h *Hooks) Loaded(kind storagecache.ResourceKind, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	h.loads.WithLabelValues(kind.String(), result).Inc()
}

func (h *Hooks) SelfHeal(_, reason string) {
	h.selfHeals.WithLabelValues(reason).Inc()
}

func (h *Hooks) ProviderSetRejected(_ string, kind storagecache.ResourceKind) {
	h.setRejected.WithLabelValues(kind.String()).Inc()
}

func (h *Hooks) ProviderError(op string, kind storagecache.ResourceKind, _ error) {
	h.providerErrors.WithLabelValues(op, kind.String()).Inc()
}
