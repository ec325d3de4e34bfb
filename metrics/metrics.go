package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LookupHit   = "hit"
	LookupMiss  = "miss"
	LookupStale = "stale"

	FetchOK    = "ok"
	FetchError = "error"
)

type Metrics struct {
	Registry *prometheus.Registry

	RateLookupsTotal *prometheus.CounterVec
	RateFetchesTotal *prometheus.CounterVec
	ConversionsTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,

		RateLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curr_rate_lookups_total",
				Help: "Total number of cached rate lookups by result",
			},
			[]string{"result"},
		),

		RateFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "curr_rate_fetches_total",
				Help: "Total number of spot rate fetches by result",
			},
			[]string{"result"},
		),

		ConversionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "curr_conversions_total",
				Help: "Total number of converted amounts",
			},
		),
	}
}

// The recorders below accept a nil receiver so callers can run without metrics.

func (m *Metrics) Lookup(result string) {
	if m == nil {
		return
	}

	m.RateLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) Fetch(result string) {
	if m == nil {
		return
	}

	m.RateFetchesTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) Conversion() {
	if m == nil {
		return
	}

	m.ConversionsTotal.Inc()
}

// WriteToTextfile dumps the counters in the node exporter textfile format.
func (m *Metrics) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.Registry)
}
