package monkey

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelSource = "source"
	labelResult = "result"

	resultOK    = "ok"
	resultError = "error"
)

// Metrics is optional; a nil *Metrics records nothing.
type Metrics struct {
	Loads        *prometheus.CounterVec
	LoadDuration *prometheus.HistogramVec
	Picks        prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monkey_catalog_loads_total",
				Help: "Catalog load attempts by outcome",
			},
			[]string{labelSource, labelResult},
		),
		LoadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "monkey_catalog_load_duration_seconds",
				Help: "Catalog load latency",
			},
			[]string{labelSource},
		),
		Picks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "monkey_random_picks_total",
				Help: "Successful random picks",
			},
		),
	}

	reg.MustRegister(m.Loads, m.LoadDuration, m.Picks)
	return m
}

func (m *Metrics) observeLoad(source string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.Loads.WithLabelValues(source, result).Inc()
	m.LoadDuration.WithLabelValues(source).Observe(d.Seconds())
}

func (m *Metrics) observePick() {
	if m == nil {
		return
	}
	m.Picks.Inc()
}
