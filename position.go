package vegas

import (
	"time"

	"github.com/netcongest/vegas/internal/utils"
)

// UpdatePosition is called by the sender after any write, or to announce
// "no progress". pos is the new cumulative byte counter; deltas are taken
// modulo 2^32, so wraparound within a single epoch is handled for free by
// uint32 subtraction.
func (c *Controller) UpdatePosition(pos uint32) {
	now := c.clock.Now()
	delta := pos - c.lastPosition

	if delta > 0 || c.extraBuffer > 0 {
		c.lastSent = now
	}

	if now.Sub(c.lastSent) > c.idleThreshold() {
		c.resetForIdle(now)
	}

	if c.hasBaseRTT() {
		c.extraBuffer += delta
		consumed := msOf(now.Sub(c.lastUpdate)) * int64(c.congWindow) / int64(c.baseRTT)
		c.extraBuffer = clampExtraBuffer(int64(c.extraBuffer) - consumed)
	}

	c.lastPosition = pos
	c.lastUpdate = now
}

// idleThreshold is max(2*baseRTT, idleMinThreshold), or idleMinThreshold
// while baseRTT is unset.
func (c *Controller) idleThreshold() time.Duration {
	if !c.hasBaseRTT() {
		return idleMinThreshold
	}
	twiceBase := 2 * time.Duration(c.baseRTT) * time.Millisecond
	if twiceBase > idleMinThreshold {
		return twiceBase
	}
	return idleMinThreshold
}

// resetForIdle invalidates queue-depth estimates after a long idle period:
// a stale extraBuffer or baseRTT from before the idle gap no longer
// reflects the path, so the connection must re-probe from scratch.
func (c *Controller) resetForIdle(now time.Time) {
	if c.congWindow > InitialWindow {
		utils.Debugf("vegas: idle reset, reverting %d byte window to initial window", c.congWindow)
	}
	c.congWindow = utils.MinUint32(InitialWindow, c.congWindow)
	c.baseRTT = 0
	c.measurements = 0
	c.minRTT = 0
	c.minCongestedRTT = 0
	c.lastAdjustment = now
}

func clampExtraBuffer(v int64) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
