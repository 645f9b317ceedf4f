package heartbeat

import (
	"context"
	"log/slog"
	"time"

	"rfbringup-go/types"
)

// Period is one full on/off cycle of the status LED.
const Period = time.Second

type Service struct {
	LED    types.OutputPin
	Logger *slog.Logger
	// Half overrides the on and off time (Period/2 when zero).
	Half time.Duration
}

func (s *Service) serviceLoop(ctx context.Context) {
	half := s.Half
	if half <= 0 {
		half = Period / 2
	}
	log := s.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	tick := time.NewTicker(half)
	defer tick.Stop()

	on := true
	_ = s.LED.Set(on)
	log.Info("heartbeat:start", slog.Duration("half", half))

	// loop until context is cancelled, toggling on every tick
	for {
		select {
		case <-ctx.Done():
			_ = s.LED.Set(false)
			log.Info("heartbeat:stop")
			return
		case <-tick.C:
			on = !on
			if err := s.LED.Set(on); err != nil {
				log.Warn("heartbeat:led", slog.String("err", err.Error()))
			}
		}
	}
}

// Start the heartbeat service. Only call it once bring-up has succeeded: a
// dark LED is the failure indication.
func (s *Service) Start(ctx context.Context) error {
	go s.serviceLoop(ctx)
	return nil
}
