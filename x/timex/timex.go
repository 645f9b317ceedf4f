package timex

import (
	"time"

	"rfbringup-go/x/mathx"
)

// Sleeper blocks the caller for a fixed duration. An error means the
// scheduler could not honour the wait.
type Sleeper interface {
	Sleep(d time.Duration) error
}

// Real sleeps on the runtime timer.
type Real struct{}

func (Real) Sleep(d time.Duration) error {
	if d > 0 {
		time.Sleep(d)
	}
	return nil
}

// SettleFloor returns the time taken by cycles periods of a refHz clock,
// rounded up to whole milliseconds. refHz == 0 yields 0.
func SettleFloor(cycles, refHz uint32) time.Duration {
	if refHz == 0 || cycles == 0 {
		return 0
	}
	ns := mathx.CeilDiv(uint64(cycles)*uint64(time.Second), uint64(refHz))
	ms := mathx.CeilDiv(ns, uint64(time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}
