package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is the process wide metrics recorder.
var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Collectors()...)
}

// Metrics records generation events.
type Metrics struct {
	prometheus Prometheus
}

// Samples adds the number of points drawn for the given cluster of a layout.
func (m *Metrics) Samples(layout string, cluster int, count int) {
	m.prometheus.Samples.WithLabelValues(layout, strconv.Itoa(cluster)).Add(float64(count))
}

// Dataset counts a generated dataset for the given layout.
func (m *Metrics) Dataset(layout string) {
	m.prometheus.Datasets.WithLabelValues(layout).Inc()
}
