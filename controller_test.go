package vegas

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Controller", func() {
	var (
		clock *mockClock
		c     *Controller
	)

	BeforeEach(func() {
		clock = newMockClock()
		c = NewController(clock)
	})

	Describe("S1 cold start", func() {
		It("is uncongested with an unused window", func() {
			c.UpdatePosition(0)

			Expect(c.IsCongested()).To(BeFalse())
			Expect(c.GetInFlight()).To(BeEquivalentTo(0))
			Expect(c.GetUncongestedETA()).To(BeEquivalentTo(0))
			Expect(c.congWindow).To(BeEquivalentTo(InitialWindow))
		})
	})

	Describe("S2 base RTT learning", func() {
		It("learns baseRTT from the first pong without adjusting the window", func() {
			c.SentPing()
			clock.Advance(10 * time.Millisecond)
			c.UpdatePosition(1000)
			clock.Advance(40 * time.Millisecond)
			c.GotPong()

			Expect(c.GetBaseRTT()).To(BeEquivalentTo(50))
			Expect(c.measurements).To(BeEquivalentTo(1))
			Expect(c.congWindow).To(BeEquivalentTo(InitialWindow))
		})
	})

	Describe("S3 window shrink on excessive delay", func() {
		It("multiplicatively decreases toward a window that would restore baseRTT", func() {
			c.baseRTT = 20
			c.congWindow = 100000
			c.lastAdjustment = clock.Now()

			for _, rtt := range []time.Duration{150, 160, 155} {
				c.SentPing()
				clock.Advance(rtt * time.Millisecond)
				c.GotPong()
			}

			Expect(c.congWindow).To(BeEquivalentTo(13333))
		})
	})

	Describe("S4 window grow when starved", func() {
		It("grows fast when congested probes find the queue nearly empty", func() {
			c.baseRTT = 20
			c.congWindow = 100000
			c.lastAdjustment = clock.Now()

			for _, rtt := range []time.Duration{22, 23, 24} {
				c.pings.PushBack(PingSample{tv: clock.Now(), pos: c.lastPosition, extra: 0, congested: true})
				clock.Advance(rtt * time.Millisecond)
				c.GotPong()
			}

			Expect(c.congWindow).To(BeEquivalentTo(108192))
		})
	})

	Describe("S5 idle reset", func() {
		It("reverts to the initial window after a long idle gap", func() {
			c.baseRTT = 50
			c.congWindow = 200000
			c.lastPosition = 42
			c.lastSent = clock.Now()

			clock.Advance(300 * time.Millisecond)
			c.UpdatePosition(42)

			Expect(c.GetBaseRTT()).To(BeEquivalentTo(unknownRTT))
			Expect(c.congWindow).To(BeEquivalentTo(InitialWindow))
			Expect(c.measurements).To(BeEquivalentTo(0))
		})
	})

	Describe("S6 ETA interpolation", func() {
		It("interpolates across the queued ping and subtracts elapsed time", func() {
			c.baseRTT = 10
			c.congWindow = 10000
			c.lastPosition = 25000
			t0 := clock.Now()
			c.lastPong = PingSample{pos: 10000, tv: t0}
			c.lastPongArrival = t0
			c.pings.PushBack(PingSample{pos: 20000, tv: t0.Add(5 * time.Millisecond), extra: 0, congested: true})

			clock.Advance(3 * time.Millisecond)

			Expect(c.GetUncongestedETA()).To(BeEquivalentTo(0))
		})
	})

	Describe("invariants", func() {
		It("never reports congWindow outside [MinimumWindow, MaximumWindow]", func() {
			c.baseRTT = 1
			c.congWindow = MinimumWindow
			c.lastAdjustment = clock.Now()

			rtts := []time.Duration{1, 1, 1, 500, 500, 500, 1, 1, 1, 200, 200, 200}
			for round := 0; round < 20; round++ {
				for _, rtt := range rtts {
					c.SentPing()
					clock.Advance(rtt * time.Millisecond)
					c.GotPong()
					Expect(c.congWindow).To(BeNumerically(">=", MinimumWindow))
					Expect(c.congWindow).To(BeNumerically("<=", MaximumWindow))
				}
			}
		})

		It("isCongested iff inFlight >= congWindow", func() {
			c.baseRTT = 10
			c.congWindow = 5000
			c.lastPosition = 4999
			Expect(c.IsCongested()).To(Equal(c.GetInFlight() >= c.congWindow))

			c.lastPosition = 5000
			Expect(c.IsCongested()).To(Equal(c.GetInFlight() >= c.congWindow))
		})

		It("getInFlight is zero exactly when lastPosition equals the last pong's position", func() {
			c.lastPosition = 777
			c.lastPong.pos = 777
			Expect(c.GetInFlight()).To(BeEquivalentTo(0))

			c.lastPosition = 778
			Expect(c.GetInFlight()).NotTo(BeEquivalentTo(0))
		})

		It("ignores a stray pong with no outstanding ping", func() {
			before := *c
			c.GotPong()
			Expect(*c).To(Equal(before))
		})

		It("getUncongestedETA is zero whenever uncongested and baseRTT is known", func() {
			c.baseRTT = 10
			c.congWindow = 100000
			c.lastPosition = 0
			Expect(c.IsCongested()).To(BeFalse())
			Expect(c.GetUncongestedETA()).To(BeEquivalentTo(0))
		})

		It("pings remain ordered by send time", func() {
			for i := 0; i < 5; i++ {
				c.SentPing()
				clock.Advance(time.Millisecond)
			}
			for i := 0; i < c.pings.Len()-1; i++ {
				Expect(c.pings.At(i).tv).To(BeTemporally("<=", c.pings.At(i+1).tv))
			}
		})
	})
})
