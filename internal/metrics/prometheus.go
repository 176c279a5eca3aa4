package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "clustering"

// Prometheus holds the prometheus collectors of the sample generation.
type Prometheus struct {
	Samples  *prometheus.CounterVec
	Datasets *prometheus.CounterVec
}

// NewPrometheusMetrics creates the prometheus collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Samples: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "samples_total",
				Help:      "Number of points drawn per cluster block.",
			}, []string{"layout", "cluster"}),
		Datasets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "datasets_total",
				Help:      "Number of generated datasets.",
			}, []string{"layout"}),
	}
}

// Collectors returns all collectors for registration.
func (p Prometheus) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Samples, p.Datasets}
}
