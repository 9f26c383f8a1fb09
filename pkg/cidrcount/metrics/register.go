package metrics

// contains all run metric definitions and registration

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricNamespace = "cidr_counter"

	RowsAccepted = "accepted"
	RowsSkipped  = "skipped"
)

var metricRows = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: metricNamespace,
	Name:      "rows_total",
	Help:      "The number of CSV data rows read, by result",
}, []string{"result"})

var metricAreas = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: metricNamespace,
	Name:      "areas",
	Help:      "The number of distinct non-empty areas",
})

var metricAreaAddresses = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: metricNamespace,
	Name:      "area_addresses",
	Help:      "The number of addresses read for an area",
}, []string{"area"})

// a run is a maximal sequence of consecutive addresses in input order
var metricAreaRuns = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: metricNamespace,
	Name:      "area_runs",
	Help:      "The number of contiguous address runs found for an area",
}, []string{"area"})

var metricAreaBlocks = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: metricNamespace,
	Name:      "area_blocks",
	Help:      "The number of CIDR blocks an area was summarized into",
}, []string{"area"})

var registry = prometheus.NewRegistry()

var registerMetrics sync.Once

func Register() {
	registerMetrics.Do(func() {
		registry.MustRegister(metricRows)
		registry.MustRegister(metricAreas)
		registry.MustRegister(metricAreaAddresses)
		registry.MustRegister(metricAreaRuns)
		registry.MustRegister(metricAreaBlocks)
	})
}
