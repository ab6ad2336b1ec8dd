package vegas

import (
	"time"

	"github.com/netcongest/vegas/internal/utils"
)

// updateCongestion is invoked at the end of GotPong. It runs at most once
// per batch of minSamplesPerAdjustment pongs and adjusts congWindow
// according to how far minRTT has drifted above baseRTT: above 50 ms of
// self-induced delay the window shrinks (proportionally above 100 ms, by
// 4096 bytes otherwise). Otherwise, if the batch held a congested pong,
// its delay (minCongestedRTT - baseRTT) grows the window by 8192 bytes
// below 5 ms and by 4096 bytes below 25 ms; anything else leaves it
// alone. Growth is biased this way because a "perfect" window can't be
// told apart from a slightly too-small one without inducing some
// queueing.
func (c *Controller) updateCongestion(now time.Time) {
	if c.measurements < minSamplesPerAdjustment {
		return
	}

	window := int64(c.congWindow)
	diff := int64(c.minRTT) - int64(c.baseRTT)

	switch {
	case diff > 100:
		window = window * int64(c.baseRTT) / int64(c.minRTT)
	case diff > 50:
		window -= 4096
	default:
		if c.minCongestedRTT != 0 {
			diff2 := int64(c.minCongestedRTT) - int64(c.baseRTT)
			switch {
			case diff2 < 5:
				window += 8192
			case diff2 < 25:
				window += 4096
			}
		}
	}

	newWindow := clampWindow(window)
	if newWindow != c.congWindow {
		utils.Debugf("vegas: rtt %dms (base %dms), window %d -> %d bytes", c.minRTT, c.baseRTT, c.congWindow, newWindow)
	}
	c.congWindow = newWindow

	c.measurements = 0
	c.lastAdjustment = now
	c.minRTT = 0
	c.minCongestedRTT = 0
}
