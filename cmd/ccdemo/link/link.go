// Package link simulates a lossless, bandwidth- and latency-bounded byte
// pipe: the "buffer bloat" source the vegas Controller is meant to
// counteract, standing in for the kernel socket buffer and NIC queue that
// spec.md places out of scope. It is grounded on the scheduled-delivery
// queue in the teacher's testutils/simnet.SimulatedLink, simplified from
// per-packet routing to a single ordered byte stream.
package link

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config describes one direction of a simulated link.
type Config struct {
	// BandwidthBytesPerSecond caps sustained throughput.
	BandwidthBytesPerSecond float64
	// Latency is the fixed one-way propagation delay.
	Latency time.Duration
	// Jitter adds up to this much additional random delay per write.
	Jitter time.Duration
}

// Endpoint is one side of a simulated full-duplex link. It implements
// io.ReadWriteCloser.
type Endpoint struct {
	cfg     Config
	limiter *rate.Limiter
	out     chan []byte
	in      <-chan []byte
	closed  chan struct{}
	once    sync.Once
	rand    *rand.Rand
	randMu  sync.Mutex
}

// New creates two connected endpoints, a and b, such that a.Write is
// delivered to b.Read (after the configured bandwidth cap and latency) and
// vice versa.
func New(cfgAtoB, cfgBtoA Config) (a, b *Endpoint) {
	ab := make(chan []byte, 4096)
	ba := make(chan []byte, 4096)
	closed := make(chan struct{})

	burst := int(cfgAtoB.BandwidthBytesPerSecond)
	if burst < 1 {
		burst = 1
	}
	a = &Endpoint{
		cfg:     cfgAtoB,
		limiter: rate.NewLimiter(rate.Limit(cfgAtoB.BandwidthBytesPerSecond), burst),
		out:     ab,
		in:      ba,
		closed:  closed,
		rand:    rand.New(rand.NewSource(1)),
	}
	burst = int(cfgBtoA.BandwidthBytesPerSecond)
	if burst < 1 {
		burst = 1
	}
	b = &Endpoint{
		cfg:     cfgBtoA,
		limiter: rate.NewLimiter(rate.Limit(cfgBtoA.BandwidthBytesPerSecond), burst),
		out:     ba,
		in:      ab,
		closed:  closed,
		rand:    rand.New(rand.NewSource(2)),
	}
	return a, b
}

// Write blocks until the simulated bandwidth budget admits len(p) bytes,
// then schedules delivery after the configured latency and jitter.
func (e *Endpoint) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)

	if err := e.limiter.WaitN(context.Background(), len(buf)); err != nil {
		return 0, err
	}

	delay := e.cfg.Latency + e.jitterDelay()
	time.AfterFunc(delay, func() {
		select {
		case e.out <- buf:
		case <-e.closed:
		}
	})
	return len(buf), nil
}

func (e *Endpoint) jitterDelay() time.Duration {
	if e.cfg.Jitter <= 0 {
		return 0
	}
	e.randMu.Lock()
	defer e.randMu.Unlock()
	return time.Duration(e.rand.Int63n(int64(e.cfg.Jitter)))
}

// Read returns the next delivered chunk, blocking until one arrives or the
// link is closed.
func (e *Endpoint) Read(p []byte) (int, error) {
	select {
	case buf, ok := <-e.in:
		if !ok {
			return 0, io.EOF
		}
		return copy(p, buf), nil
	case <-e.closed:
		return 0, io.EOF
	}
}

// Close tears down both directions of the link.
func (e *Endpoint) Close() error {
	e.once.Do(func() {
		select {
		case <-e.closed:
			// The peer endpoint already closed the shared channel.
		default:
			close(e.closed)
		}
	})
	return nil
}
