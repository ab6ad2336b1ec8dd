package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/netcongest/vegas"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestCollectorObservesController(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollectorWithRegisterer(registry)

	ctrl := vegas.NewController(fixedClock(time.Now()))
	ctrl.UpdatePosition(0)

	collector.Observe(ctrl)

	if got := gaugeValue(t, collector.congWindow); got != float64(vegas.InitialWindow) {
		t.Fatalf("congWindow gauge = %v, want %v", got, vegas.InitialWindow)
	}
}
