// Command ccdemo drives a vegas.Controller over a simulated bandwidth- and
// latency-bounded link, the way example/custom_congestion in the teacher
// repo drives a real congestion sender over an actual QUIC connection. It
// exists to exercise the core end to end; it is not part of the core.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/netcongest/vegas/internal/utils"
)

func main() {
	var (
		bandwidth   = flag.Uint64("bandwidth", 2*1024*1024, "simulated link bandwidth in bytes/sec")
		latency     = flag.Duration("latency", 40*time.Millisecond, "simulated one-way propagation latency")
		jitter      = flag.Duration("jitter", 5*time.Millisecond, "simulated latency jitter")
		pingEvery   = flag.Duration("ping-interval", 50*time.Millisecond, "interval between probes")
		duration    = flag.Duration("duration", 30*time.Second, "how long to run the demo")
		metricsAddr = flag.String("metrics-addr", "127.0.0.1:9101", "address to serve Prometheus metrics on")
		logLevel    = flag.Uint("log-level", uint(utils.LogLevelInfo), "debug instrumentation level (0-3)")
	)
	flag.Parse()

	utils.SetLogLevel(utils.LogLevel(*logLevel))

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
			log.Println("metrics server:", err)
		}
	}()

	runDemo(demoConfig{
		bandwidth: float64(*bandwidth),
		latency:   *latency,
		jitter:    *jitter,
		pingEvery: *pingEvery,
		duration:  *duration,
	})
}
