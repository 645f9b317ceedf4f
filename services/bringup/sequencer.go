// Package bringup plays the register programmes of every device family onto
// the shared SPI bus, in the mandated order, with the mandated settle delays.
//
// Bring-up runs once at boot on a single goroutine. Any transport, selector
// or timing failure aborts the whole sequence: partially programmed RF chips
// are unsafe, so there is no partial-success state and nothing is retried.
// Recovery is a full reset followed by a fresh Run.
package bringup

import (
	"context"
	"log/slog"
	"strconv"

	"rfbringup-go/errcode"
	"rfbringup-go/types"
	"rfbringup-go/x/timex"
)

// Selector routes the shared chip-select to a family.
type Selector interface {
	Select(r types.Route) error
}

// Sequencer executes bring-up. It holds the only live bus handle while a
// stage is running and none at any other time.
type Sequencer struct {
	bus   types.BusTransport
	sel   Selector
	sleep timex.Sleeper
	cfg   Config
	log   *slog.Logger

	state State
	pos   Position
	held  types.BusHandle
	done  int
	total int
}

func New(bus types.BusTransport, sel Selector, sleep timex.Sleeper, opts ...Option) *Sequencer {
	var cfg Config
	for _, o := range opts {
		o(&cfg)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Sequencer{
		bus:   bus,
		sel:   sel,
		sleep: sleep,
		cfg:   cfg,
		log:   log,
		pos:   noPosition,
	}
}

func (s *Sequencer) State() State       { return s.state }
func (s *Sequencer) Position() Position { return s.pos }

// Reset returns a finished or failed sequencer to Idle, as after a power
// cycle. It refuses while a run is in progress.
func (s *Sequencer) Reset() error {
	switch s.state {
	case Idle, Done, Failed:
		s.state, s.pos, s.done, s.total = Idle, noPosition, 0, 0
		return nil
	}
	return errcode.Busy
}

// Run brings up every family in p.Order. It may be called once per Reset.
func (s *Sequencer) Run(p types.Profile) error {
	if s.state != Idle {
		return errcode.Busy
	}
	if err := p.Validate(); err != nil {
		s.state = Failed
		return err
	}
	steps := Plan(p, s.cfg.Acquire)
	s.total = p.Transactions()
	s.log.Info("bringup:start", slog.String("profile", p.Name), slog.String("version", p.Version),
		slog.Int("families", len(p.Order)), slog.Int("frames", s.total))

	for _, st := range steps {
		if err := s.exec(st); err != nil {
			s.abort(st, err)
			return err
		}
		s.report(st)
	}
	s.state, s.pos = Done, noPosition
	s.log.Info("bringup:done", slog.String("profile", p.Name), slog.Int("frames", s.done))
	return nil
}

func (s *Sequencer) exec(st Step) error {
	s.pos = st.Pos
	switch st.Kind {
	case StepSleep:
		s.state = AwaitingSettle
		s.log.Debug("bringup:settle", slog.String("reason", st.Reason.String()), slog.Duration("delay", st.Delay))
		if err := s.sleep.Sleep(st.Delay); err != nil {
			return s.fail(errcode.TimingFailure, "sleep "+st.Reason.String(), st, err)
		}

	case StepSelect:
		s.state = Selecting
		s.log.Info("bringup:select", slog.String("family", st.Pos.Family.String()),
			slog.String("chip", st.Pos.Family.Chip()), slog.String("route", st.Route.String()))
		if err := s.sel.Select(st.Route); err != nil {
			return s.fail(errcode.SelectorFailure, "select", st, err)
		}

	case StepAcquire:
		s.state = RunningStage
		if s.held != nil {
			// Plans never nest acquisitions; reaching this is a sequencing bug.
			return s.fail(errcode.BusInUse, "acquire", st, nil)
		}
		h, err := s.bus.Acquire()
		if err != nil {
			return s.fail(errcode.TransportFailure, "acquire", st, err)
		}
		s.held = h
		if err := h.Configure(st.Bus); err != nil {
			return s.fail(errcode.TransportFailure, "configure", st, err)
		}
		if st.Pos.Frame <= 0 {
			s.log.Debug("bringup:stage", slog.String("family", st.Pos.Family.String()),
				slog.String("stage", st.Stage.Label()), slog.String("kind", st.Stage.Kind.String()))
		}

	case StepTransact:
		s.state = RunningStage
		if s.held == nil {
			return s.fail(errcode.NotHeld, "transact", st, nil)
		}
		if err := s.held.Transact(st.Route.Line(), st.Data); err != nil {
			return s.fail(errcode.TransportFailure, "transact", st, err)
		}
		s.done++
		if s.log.Enabled(context.Background(), slog.LevelDebug) {
			attrs := []any{slog.String("family", st.Pos.Family.String()), slog.Int("frame", st.Pos.Frame),
				slog.String("data", st.Data.Hex())}
			if s.cfg.Describe != nil {
				attrs = append(attrs, slog.String("reg", s.cfg.Describe(st.Pos.Family, st.Data)))
			}
			s.log.Debug("bringup:frame", attrs...)
		}

	case StepRelease:
		s.releaseHeld()
	}
	return nil
}

func (s *Sequencer) releaseHeld() {
	if s.held != nil {
		s.held.Release()
		s.held = nil
	}
}

func (s *Sequencer) abort(st Step, err error) {
	s.releaseHeld()
	s.state = Failed
	s.log.Error("bringup:abort", slog.String("step", st.Kind.String()),
		slog.String("family", st.Pos.Family.String()), slog.Int("stage", st.Pos.Stage),
		slog.Int("frame", st.Pos.Frame), slog.Int("frames_sent", s.done), slog.String("err", err.Error()))
	if s.cfg.Progress != nil {
		s.cfg.Progress(Progress{State: Failed, Position: st.Pos, Step: st, Done: s.done, Total: s.total})
	}
}

func (s *Sequencer) report(st Step) {
	if s.cfg.Progress != nil {
		s.cfg.Progress(Progress{State: s.state, Position: st.Pos, Step: st, Done: s.done, Total: s.total})
	}
}

func (s *Sequencer) fail(c errcode.Code, op string, st Step, cause error) error {
	msg := ""
	if st.Pos.FamilyIndex >= 0 {
		msg = st.Pos.Family.String()
		if st.Pos.Stage >= 0 {
			msg += " stage " + st.Stage.Label()
		}
		if st.Pos.Frame >= 0 {
			msg += " frame " + strconv.Itoa(st.Pos.Frame)
		}
	}
	return &errcode.E{C: c, Op: "bringup " + op, Msg: msg, Err: cause}
}
