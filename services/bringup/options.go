package bringup

import (
	"log/slog"

	"rfbringup-go/types"
)

// AcquirePolicy decides how long the sequencer holds the bus.
type AcquirePolicy uint8

const (
	// AcquireAsTabled follows each stage's PerFrameAcquire flag.
	AcquireAsTabled AcquirePolicy = iota
	// AcquirePerStage holds the bus across every frame of a stage.
	AcquirePerStage
	// AcquirePerFrame takes and releases the bus around each frame.
	AcquirePerFrame
)

func (p AcquirePolicy) String() string {
	switch p {
	case AcquirePerStage:
		return "stage"
	case AcquirePerFrame:
		return "frame"
	default:
		return "tabled"
	}
}

// ParseAcquirePolicy accepts the names printed by String.
func ParseAcquirePolicy(s string) (AcquirePolicy, bool) {
	for _, p := range []AcquirePolicy{AcquireAsTabled, AcquirePerStage, AcquirePerFrame} {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

func (p AcquirePolicy) perFrame(s types.Stage) bool {
	switch p {
	case AcquirePerStage:
		return false
	case AcquirePerFrame:
		return true
	default:
		return s.PerFrameAcquire
	}
}

// Config holds the sequencer configuration.
type Config struct {
	// Logger receives structured progress. Nil disables logging.
	Logger *slog.Logger
	// Progress is called after every step (optional). It runs on the
	// sequencing goroutine and must return quickly.
	Progress ProgressCallback
	// Acquire selects the bus ownership policy.
	Acquire AcquirePolicy
	// Describe renders a frame for debug logs (optional). The sequencer never
	// interprets frames itself.
	Describe func(types.DeviceFamily, types.Frame) string
}

// Option is a functional option for configuring the Sequencer.
type Option func(*Config)

func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithProgress sets a callback to track bring-up progress.
//
//	seq := bringup.New(bus, sel, sleep,
//	    bringup.WithProgress(func(p bringup.Progress) {
//	        println(p.State.String(), p.Done, "/", p.Total)
//	    }),
//	)
func WithProgress(cb ProgressCallback) Option {
	return func(c *Config) { c.Progress = cb }
}

func WithAcquirePolicy(p AcquirePolicy) Option {
	return func(c *Config) { c.Acquire = p }
}

func WithFrameDescriber(fn func(types.DeviceFamily, types.Frame) string) Option {
	return func(c *Config) { c.Describe = fn }
}
