// cmd/boardtest/main.go
package main

import (
	"time"

	"rfbringup-go/profiles"
	"rfbringup-go/services/hal"
	"rfbringup-go/services/selector"
	"rfbringup-go/types"
)

// ---------- Configuration ----------

const (
	// Time each address is held so it can be probed on the S0/S1 lines.
	dwell = 2 * time.Second
	// LED flashes once per address, twice on a readback fault.
	flash = 150 * time.Millisecond

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

// Walks the multiplexer through every address without touching the bus, so
// the select wiring can be checked before any RF chip is programmed.
func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[boardtest] boot …")

	res, err := hal.NewResources()
	if err != nil {
		println("[boardtest] FAIL: resources:", err.Error())
		return
	}
	println("[boardtest] board", res.Board)
	sel := selector.New(res.MuxS0, res.MuxS1)
	p := profiles.Default()

	addrs := []types.MuxAddr{types.Mux00, types.Mux01, types.Mux10, types.Mux11}
	for cycle := 1; cyclesToRun == 0 || cycle <= cyclesToRun; cycle++ {
		for _, a := range addrs {
			fam := "-"
			for _, pr := range p.Programs {
				if pr.Route == types.ViaMux(a) {
					fam = pr.Family.String()
				}
			}
			if err := sel.Select(types.ViaMux(a)); err != nil {
				println("[boardtest] FAIL", a.String(), err.Error())
				blink(res.LED, 2)
			} else {
				println("[boardtest] mux", a.String(), "->", fam)
				blink(res.LED, 1)
			}
			time.Sleep(dwell)
		}
	}
	println("[boardtest] done")
}

func blink(led types.OutputPin, n int) {
	for i := 0; i < n; i++ {
		_ = led.Set(true)
		time.Sleep(flash)
		_ = led.Set(false)
		time.Sleep(flash)
	}
}
