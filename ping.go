package vegas

// SentPing records that a ping marker has just been placed on the outgoing
// stream, snapshotting the state needed to later turn its pong into an RTT
// sample.
func (c *Controller) SentPing() {
	c.pings.PushBack(PingSample{
		tv:        c.clock.Now(),
		pos:       c.lastPosition,
		extra:     c.GetExtraBuffer(),
		congested: c.IsCongested(),
	})
}

// GotPong matches the oldest outstanding ping against its pong, derives a
// buffering-compensated RTT sample, and feeds it into the window updater.
// A pong with no matching ping (the queue is empty) is a stray and is
// silently ignored.
func (c *Controller) GotPong() {
	if c.pings.Empty() {
		return
	}
	sample := c.pings.PopFront()
	now := c.clock.Now()
	c.lastPong = sample
	c.lastPongArrival = now

	rtt := msOf(now.Sub(sample.tv))
	if rtt < 1 {
		rtt = 1
	}

	// Base RTT tracks the lowest latency ever seen; this happens
	// unconditionally, even for a sample that is otherwise about to be
	// discarded as stale, so a single well-timed pong can't be lost to
	// staleness filtering.
	if !c.hasBaseRTT() || uint32(rtt) < c.baseRTT {
		c.baseRTT = uint32(rtt)
	}

	// Staleness filter: this pong's ping predates the current
	// measurement batch.
	if sample.tv.Before(c.lastAdjustment) {
		return
	}

	delay := c.bufferDelayMS(sample.extra)
	rtt -= delay
	if rtt < 1 {
		rtt = 1
	}
	if uint32(rtt) < c.baseRTT {
		// We underestimated the wire floor; revise conservatively
		// upward for this sample rather than let it read faster than
		// physically possible.
		rtt = int64(c.baseRTT)
	}

	sampleRTT := uint32(rtt)
	if c.minRTT == 0 || sampleRTT < c.minRTT {
		c.minRTT = sampleRTT
	}
	if sample.congested && (c.minCongestedRTT == 0 || sampleRTT < c.minCongestedRTT) {
		c.minCongestedRTT = sampleRTT
	}

	c.measurements++
	c.updateCongestion(now)
}
