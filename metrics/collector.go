// Package metrics exposes a congestion Controller's read-only state as
// Prometheus gauges, following the registration pattern used by the
// teacher's own metrics.NewTracerWithRegisterer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/netcongest/vegas"
)

const namespace = "vegas"

// Collector samples a Controller's accessors into Prometheus gauges. It
// never writes back into the Controller: metrics are observational only.
type Collector struct {
	congWindow  prometheus.Gauge
	baseRTT     prometheus.Gauge
	extraBuffer prometheus.Gauge
	inFlight    prometheus.Gauge
}

// NewCollector registers a Collector's gauges against the default
// Prometheus registerer.
func NewCollector() *Collector {
	return NewCollectorWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCollectorWithRegisterer registers a Collector's gauges against a
// given registerer, for callers that don't want to pollute the default
// global registry (tests, multiple controllers in one process).
func NewCollectorWithRegisterer(registerer prometheus.Registerer) *Collector {
	c := &Collector{
		congWindow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "congestion_window_bytes",
			Help:      "Current congestion window.",
		}),
		baseRTT: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "base_rtt_milliseconds",
			Help:      "Smallest RTT observed since the last idle reset.",
		}),
		extraBuffer: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "extra_buffer_bytes",
			Help:      "Estimated bytes sitting in transport buffers beyond steady-state capacity.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight_bytes",
			Help:      "Estimated bytes sent but not yet acknowledged.",
		}),
	}
	for _, g := range []prometheus.Collector{c.congWindow, c.baseRTT, c.extraBuffer, c.inFlight} {
		registerer.MustRegister(g)
	}
	return c
}

// Observe samples the controller's current state into the gauges. Callers
// typically do this after each GotPong/UpdatePosition call.
func (c *Collector) Observe(ctrl *vegas.Controller) {
	c.congWindow.Set(float64(ctrl.GetCongestionWindow()))
	c.baseRTT.Set(float64(ctrl.GetBaseRTT()))
	c.extraBuffer.Set(float64(ctrl.GetExtraBuffer()))
	c.inFlight.Set(float64(ctrl.GetInFlight()))
}
