package main

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/netcongest/vegas"
	"github.com/netcongest/vegas/cmd/ccdemo/framer"
	"github.com/netcongest/vegas/cmd/ccdemo/link"
	"github.com/netcongest/vegas/metrics"
)

type demoConfig struct {
	bandwidth float64
	latency   time.Duration
	jitter    time.Duration
	pingEvery time.Duration
	duration  time.Duration
}

// runDemo wires a sender and receiver together over a simulated link,
// driving a vegas.Controller the way a real flusher and socket layer
// would: write data while uncongested, issue periodic pings, and feed
// pong arrivals back into the controller.
func runDemo(cfg demoConfig) {
	senderSide, receiverSide := link.New(
		link.Config{BandwidthBytesPerSecond: cfg.bandwidth, Latency: cfg.latency, Jitter: cfg.jitter},
		link.Config{BandwidthBytesPerSecond: cfg.bandwidth, Latency: cfg.latency, Jitter: cfg.jitter},
	)
	defer senderSide.Close()
	defer receiverSide.Close()

	collector := metrics.NewCollector()
	ctrl := vegas.NewController(vegas.DefaultClock())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.duration)
	defer cancel()

	go echoReceiver(receiverSide)
	go pongReader(senderSide, ctrl, collector)

	sendLoop(ctx, senderSide, ctrl, collector, cfg.pingEvery)
}

// sendLoop is the sender half: it writes a data frame whenever the
// controller says it may, falls back to sleeping for the controller's
// uncongested ETA otherwise, and issues a ping on a fixed interval.
func sendLoop(ctx context.Context, w io.Writer, ctrl *vegas.Controller, collector *metrics.Collector, pingEvery time.Duration) {
	var position uint32
	chunk := make([]byte, 4096)
	nextPing := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !ctrl.IsCongested() {
			position += uint32(len(chunk))
			if err := framer.WriteFrame(w, framer.Frame{Kind: framer.KindData, Position: position, Payload: chunk}); err != nil {
				log.Println("ccdemo: write data frame:", err)
				return
			}
			ctrl.UpdatePosition(position)
		} else if eta := ctrl.GetUncongestedETA(); eta > 0 {
			time.Sleep(time.Duration(eta) * time.Millisecond)
		}

		if !time.Now().Before(nextPing) {
			if err := framer.WriteFrame(w, framer.Frame{Kind: framer.KindPing}); err != nil {
				log.Println("ccdemo: write ping frame:", err)
				return
			}
			ctrl.SentPing()
			nextPing = time.Now().Add(pingEvery)
		}

		collector.Observe(ctrl)
	}
}

// echoReceiver plays the role of the RFB peer: it reads whatever the
// sender writes, discards data frames, and answers pings with a pong on
// the same (reverse) link direction.
func echoReceiver(rw io.ReadWriter) {
	for {
		f, err := framer.ReadFrame(rw)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Println("ccdemo: receiver read:", err)
			}
			return
		}
		if f.Kind == framer.KindPing {
			if err := framer.WriteFrame(rw, framer.Frame{Kind: framer.KindPong}); err != nil {
				log.Println("ccdemo: receiver write pong:", err)
				return
			}
		}
	}
}

// pongReader is the other half of the sender: it reads whatever comes
// back over the link and feeds matched pongs into the controller.
func pongReader(r io.Reader, ctrl *vegas.Controller, collector *metrics.Collector) {
	for {
		f, err := framer.ReadFrame(r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Println("ccdemo: pong reader:", err)
			}
			return
		}
		if f.Kind == framer.KindPong {
			ctrl.GotPong()
			collector.Observe(ctrl)
		}
	}
}
