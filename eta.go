package vegas

// GetExtraBuffer returns the estimated bytes currently sitting in
// transport buffers beyond steady-state pipe capacity, after decaying the
// stored value by how much the window could have drained since
// lastUpdate. Returns 0 while baseRTT is unknown — there is no steady-
// state drain rate to reason about yet.
func (c *Controller) GetExtraBuffer() uint32 {
	if !c.hasBaseRTT() {
		return 0
	}
	now := c.clock.Now()
	consumed := msOf(now.Sub(c.lastUpdate)) * int64(c.congWindow) / int64(c.baseRTT)
	return clampExtraBuffer(int64(c.extraBuffer) - consumed)
}

// GetInFlight returns lastPosition - acked, where acked is estimated per
// spec.md §4.4: exact when the most recent pong already accounts for all
// bytes sent, coarse while baseRTT is still unknown, interpolated between
// the last pong and the oldest outstanding ping otherwise, and modeled as
// a steady drain from extraBuffer when no ping is outstanding at all.
func (c *Controller) GetInFlight() uint32 {
	if c.lastPosition == c.lastPong.pos {
		return 0
	}

	if !c.hasBaseRTT() {
		// No RTT sample at all yet: fall back to the coarsest estimate
		// available, the oldest outstanding ping if there is one, else
		// everything sent since the last matched pong.
		if !c.pings.Empty() {
			return c.lastPosition - c.pings.Front().pos
		}
		return c.lastPosition - c.lastPong.pos
	}

	if !c.pings.Empty() {
		front := c.pings.Front()
		now := c.clock.Now()

		etaNext := c.spacingMS(c.lastPong, front)
		elapsed := msOf(now.Sub(c.lastPongArrival))

		var acked uint32
		if elapsed >= etaNext {
			acked = front.pos
		} else {
			acked = interpolatePosition(c.lastPong.pos, front.pos, elapsed, etaNext)
		}
		return c.lastPosition - acked
	}

	now := c.clock.Now()
	elapsed := msOf(now.Sub(c.lastUpdate))
	var drained int64
	if elapsed > int64(c.baseRTT) {
		drained = (elapsed - int64(c.baseRTT)) * int64(c.congWindow) / int64(c.baseRTT)
	}
	if drained > int64(c.extraBuffer) {
		drained = int64(c.extraBuffer)
	}
	acked := c.lastPosition - c.extraBuffer + uint32(drained)
	return c.lastPosition - acked
}

// IsCongested reports whether the sender currently has at least a full
// window of bytes in flight.
func (c *Controller) IsCongested() bool {
	return c.GetInFlight() >= c.congWindow
}

// spacingMS computes the buffering-compensated nominal time between two
// successive pings' pongs, per spec.md §4.5 steps 1-2: prev arrived later
// than its send time because of its own queueing delay, and cur arrives
// later still because of its own — so cur's delay is added and prev's is
// subtracted back out.
func (c *Controller) spacingMS(prev, cur PingSample) int64 {
	spacing := msOf(cur.tv.Sub(prev.tv))
	spacing += c.bufferDelayMS(cur.extra)
	spacing -= c.bufferDelayMS(prev.extra)
	if spacing < 0 {
		spacing = 0
	}
	return spacing
}

// interpolatePosition linearly interpolates between fromPos and toPos in
// proportion to elapsed/total, guarding against a zero-length interval.
func interpolatePosition(fromPos, toPos uint32, elapsed, total int64) uint32 {
	if total <= 0 {
		return fromPos
	}
	delta := int64(toPos - fromPos)
	return fromPos + uint32(delta*elapsed/total)
}

// GetUncongestedETA returns milliseconds until GetInFlight would drop
// below congWindow, assuming no further writes. It returns 0 if already
// uncongested, and UnknownETA if baseRTT hasn't been learned yet.
func (c *Controller) GetUncongestedETA() int32 {
	if !c.IsCongested() {
		return 0
	}
	if !c.hasBaseRTT() {
		return UnknownETA
	}

	targetAcked := c.lastPosition - c.congWindow
	if c.lastPong.pos > targetAcked {
		return 0
	}

	now := c.clock.Now()
	var eta int64
	prev := c.lastPong

	n := c.pings.Len()
	for i := 0; i < n; i++ {
		cur := c.pings.At(i)
		etaNext := c.spacingMS(prev, cur)
		if cur.pos > targetAcked {
			eta += fractionOf(etaNext, cur.pos-targetAcked, cur.pos-prev.pos)
			return clampNonNegativeMS(eta - msOf(now.Sub(c.lastPongArrival)))
		}
		eta += etaNext
		prev = cur
	}

	// No queued ping crosses the target: extrapolate one synthetic
	// interval to a hypothetical ping sent just after lastUpdate, using
	// the current position and extra buffer as its would-be sample.
	synthetic := PingSample{tv: c.lastUpdate, pos: c.lastPosition, extra: c.extraBuffer}
	etaNext := c.spacingMS(prev, synthetic)
	eta += fractionOf(etaNext, synthetic.pos-targetAcked, synthetic.pos-prev.pos)
	return clampNonNegativeMS(eta - msOf(now.Sub(c.lastPongArrival)))
}

// fractionOf returns etaNext*num/den, treating a zero-length position gap
// as an instantaneous crossing.
func fractionOf(etaNext int64, num, den uint32) int64 {
	if den == 0 {
		return 0
	}
	return etaNext * int64(num) / int64(den)
}

func clampNonNegativeMS(ms int64) int32 {
	if ms < 0 {
		return 0
	}
	return int32(ms)
}
