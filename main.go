package main

import (
	"context"
	"log/slog"

	"rfbringup-go/drivers"
	"rfbringup-go/profiles"
	"rfbringup-go/services/bringup"
	"rfbringup-go/services/hal"
	"rfbringup-go/services/heartbeat"
	"rfbringup-go/services/selector"
	"rfbringup-go/x/timex"
)

func main() {
	println("boot")

	res, err := hal.NewResources()
	if err != nil {
		println("hal:", err.Error())
		halt()
	}
	log := slog.New(slog.NewTextHandler(res.Console, &slog.HandlerOptions{Level: logLevel}))

	p := profiles.Default()
	log.Info("boot", slog.String("board", res.Board), slog.String("profile", p.Name))

	seq := bringup.New(res.Bus, selector.New(res.MuxS0, res.MuxS1), timex.Real{},
		bringup.WithLogger(log),
		bringup.WithFrameDescriber(drivers.Describe),
	)
	if err := seq.Run(p); err != nil {
		// No heartbeat: a dark LED is the failure indication.
		log.Error("bringup failed", slog.String("state", seq.State().String()), slog.String("err", err.Error()))
		halt()
	}

	hb := &heartbeat.Service{LED: res.LED, Logger: log}
	_ = hb.Start(context.Background())
	select {}
}

func halt() { select {} }
