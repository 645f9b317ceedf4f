package main

import (
	"fmt"
	"time"

	"rfbringup-go/drivers"
	"rfbringup-go/services/bringup"
	"rfbringup-go/types"
	"rfbringup-go/x/mathx"
)

// observed is one chip-select framed transfer decoded from a capture.
type observed struct {
	Data  []byte
	Start float64 // seconds since capture start
}

type verdict uint8

const (
	match verdict = iota
	mismatch
	shortGap
	missing
	extra
)

func (v verdict) String() string {
	switch v {
	case match:
		return "ok"
	case mismatch:
		return "DIFF"
	case shortGap:
		return "GAP"
	case missing:
		return "MISSING"
	default:
		return "EXTRA"
	}
}

// expected is a planned frame plus the idle time the plan requires before it.
type expected struct {
	Step   bringup.Step
	MinGap time.Duration
}

type finding struct {
	Index int
	V     verdict
	Exp   *expected
	Obs   *observed
	Gap   time.Duration // observed start-to-start gap to the previous frame
}

func (f finding) String() string {
	s := fmt.Sprintf("%3d %-7s", f.Index+1, f.V)
	if f.Exp != nil {
		st := f.Exp.Step
		s += fmt.Sprintf(" %-8s %-11s want %-10s %s", st.Pos.Family, st.Stage.Label(), st.Data, drivers.Describe(st.Pos.Family, st.Data))
	}
	if f.Obs != nil {
		s += fmt.Sprintf("  got %s @%.6fs", types.Frame(f.Obs.Data), f.Obs.Start)
	}
	if f.V == shortGap {
		s += fmt.Sprintf("  gap %s < %s", f.Gap, f.Exp.MinGap)
	}
	return s
}

// expectations keeps the transact steps of a plan, carrying forward the sum
// of sleeps that precede each one.
func expectations(steps []bringup.Step) []expected {
	var out []expected
	var gap time.Duration
	for _, st := range steps {
		switch st.Kind {
		case bringup.StepSleep:
			gap += st.Delay
		case bringup.StepTransact:
			out = append(out, expected{Step: st, MinGap: gap})
			gap = 0
		}
	}
	return out
}

// compare lines observed frames up with the plan by position. Gaps are
// measured start to start, so they include the previous frame's transfer time.
func compare(exp []expected, obs []observed) (out []finding, ok bool) {
	ok = true
	n := mathx.Max(len(exp), len(obs))
	for i := 0; i < n; i++ {
		f := finding{Index: i}
		if i < len(exp) {
			f.Exp = &exp[i]
		}
		if i < len(obs) {
			f.Obs = &obs[i]
			if i > 0 {
				f.Gap = time.Duration((obs[i].Start - obs[i-1].Start) * float64(time.Second))
			}
		}
		switch {
		case f.Obs == nil:
			f.V = missing
		case f.Exp == nil:
			f.V = extra
		case !f.Exp.Step.Data.Equal(f.Obs.Data):
			f.V = mismatch
		case i > 0 && f.Gap < f.Exp.MinGap:
			f.V = shortGap
		default:
			f.V = match
		}
		if f.V != match {
			ok = false
		}
		out = append(out, f)
	}
	return out, ok
}
