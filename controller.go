// Package vegas implements a delay-based congestion controller for a
// reliable byte-stream sender, in the style of TCP Vegas, adapted to run
// above an already-reliable transport (no loss to react to) and extended
// with an "extra buffer" model that separates propagation delay from
// self-induced queueing delay.
//
// The Controller is a passive advisor: it does no I/O and owns no timers.
// It is fed two event streams — UpdatePosition for cumulative byte
// counters and SentPing/GotPong for RTT samples — and answers three
// questions for the sender: IsCongested, GetInFlight, and
// GetUncongestedETA.
package vegas

import (
	"time"

	"github.com/netcongest/vegas/internal/ringbuffer"
)

const (
	// InitialWindow is the congestion window a fresh or just-reset
	// Controller starts with.
	InitialWindow uint32 = 16384
	// MinimumWindow is the floor congWindow is always clamped to.
	MinimumWindow uint32 = 4096
	// MaximumWindow is the ceiling congWindow is always clamped to.
	MaximumWindow uint32 = 4194304

	// minSamplesPerAdjustment is the number of pongs that must land in a
	// measurement batch before updateCongestion runs.
	minSamplesPerAdjustment uint32 = 3

	// idleMinThreshold is the idle threshold used while baseRTT is
	// unknown, and the floor of max(2*baseRTT, idleMinThreshold)
	// afterwards.
	idleMinThreshold = 100 * time.Millisecond

	// unknownRTT is the sentinel GetBaseRTT returns while no RTT sample
	// has been taken since construction or the last idle reset.
	unknownRTT uint32 = 1<<32 - 1

	// UnknownETA is returned by GetUncongestedETA when baseRTT hasn't
	// been learned yet.
	UnknownETA int32 = -1
)

// PingSample is a single outstanding ping's recorded metadata, captured at
// the moment the ping was sent.
type PingSample struct {
	tv        time.Time
	pos       uint32
	extra     uint32
	congested bool
}

// Controller is a single-threaded-cooperative TCP-Vegas-style congestion
// controller. All methods must be called from the same serialized context
// as the owning transport; none of them block or perform I/O.
type Controller struct {
	clock Clock

	lastPosition uint32
	extraBuffer  uint32

	baseRTT uint32 // 0 means unset; every real RTT sample is >= 1ms.

	congWindow   uint32
	measurements uint32

	minRTT          uint32 // 0 means unset
	minCongestedRTT uint32 // 0 means unset

	lastUpdate      time.Time
	lastSent        time.Time
	lastAdjustment  time.Time
	lastPongArrival time.Time

	lastPong PingSample
	pings    ringbuffer.RingBuffer[PingSample]
}

// NewController returns a Controller in its initial state: congWindow at
// InitialWindow, baseRTT unset, no outstanding pings.
func NewController(clock Clock) *Controller {
	now := clock.Now()
	return &Controller{
		clock:          clock,
		congWindow:     InitialWindow,
		lastUpdate:     now,
		lastSent:       now,
		lastAdjustment: now,
	}
}

func (c *Controller) hasBaseRTT() bool { return c.baseRTT != 0 }

// GetCongestionWindow returns the current congestion window in bytes. It
// is always within [MinimumWindow, MaximumWindow].
func (c *Controller) GetCongestionWindow() uint32 {
	return c.congWindow
}

// GetBaseRTT returns the smallest RTT observed since construction or the
// last idle reset, in milliseconds, or a sentinel (all bits set) if no
// sample has been taken yet.
func (c *Controller) GetBaseRTT() uint32 {
	if !c.hasBaseRTT() {
		return unknownRTT
	}
	return c.baseRTT
}

func msOf(d time.Duration) int64 {
	ms := d.Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// clampWindow enforces invariant 1: MinimumWindow <= congWindow <=
// MaximumWindow.
func clampWindow(w int64) uint32 {
	if w < int64(MinimumWindow) {
		return MinimumWindow
	}
	if w > int64(MaximumWindow) {
		return MaximumWindow
	}
	return uint32(w)
}

// bufferDelayMS returns extra*baseRTT/congWindow, the RTT inflation
// attributable to extra bytes of self-induced buffering, per spec.md
// §4.2 step 6 and §4.5 step 2. congWindow is always >= MinimumWindow, so
// this never divides by zero.
func (c *Controller) bufferDelayMS(extra uint32) int64 {
	return int64(extra) * int64(c.baseRTT) / int64(c.congWindow)
}
