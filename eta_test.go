package vegas

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("in-flight and ETA estimation", func() {
	var (
		clock *mockClock
		c     *Controller
	)

	BeforeEach(func() {
		clock = newMockClock()
		c = NewController(clock)
	})

	It("drains extraBuffer at the steady-state rate once no ping is outstanding", func() {
		c.baseRTT = 10
		c.congWindow = 100
		c.lastPosition = 5000
		c.extraBuffer = 2000
		c.lastUpdate = clock.Now()
		c.lastPong.pos = 3000 // force the "no pings" branch, not the exact-match branch

		clock.Advance(30 * time.Millisecond) // 20ms beyond baseRTT, draining 200 of the 2000 buffered bytes

		Expect(c.GetInFlight()).To(BeEquivalentTo(1800))
	})

	It("extrapolates past the queue when no ping crosses the target", func() {
		c.baseRTT = 10
		c.congWindow = 1000
		c.lastPosition = 5000
		c.extraBuffer = 100
		t0 := clock.Now()
		c.lastPong = PingSample{pos: 3000, tv: t0}
		c.lastPongArrival = t0
		c.lastUpdate = t0.Add(2 * time.Millisecond)
		// Queued ping still below target (5000 - 1000 = 4000).
		c.pings.PushBack(PingSample{pos: 3500, tv: t0.Add(time.Millisecond), extra: 0})

		eta := c.GetUncongestedETA()
		Expect(eta).To(BeNumerically(">=", 0))
	})

	It("reports coarse in-flight while baseRTT is unknown and a ping is outstanding", func() {
		c.lastPosition = 4000
		c.pings.PushBack(PingSample{pos: 1000, tv: clock.Now()})

		Expect(c.GetInFlight()).To(BeEquivalentTo(3000))
	})

	It("getUncongestedETA is unknown while baseRTT has never been learned", func() {
		c.congWindow = 100
		c.lastPosition = 1000 // nominally congested: with no RTT and no pings, inFlight falls back to lastPosition - lastPong.pos

		Expect(c.GetUncongestedETA()).To(BeEquivalentTo(UnknownETA))
	})
})
