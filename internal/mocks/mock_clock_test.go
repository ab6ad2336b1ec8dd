package mocks_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/netcongest/vegas"
	"github.com/netcongest/vegas/internal/mocks"
)

func TestMockClockSatisfiesClockInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(want).AnyTimes()

	c := vegas.NewController(clock)
	c.UpdatePosition(0)

	if got := c.GetCongestionWindow(); got != vegas.InitialWindow {
		t.Fatalf("GetCongestionWindow() = %v, want %v", got, vegas.InitialWindow)
	}
}
