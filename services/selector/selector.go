// Package selector drives the two address lines of the chip-select
// multiplexer that routes the shared bus to one device family at a time.
package selector

import (
	"rfbringup-go/errcode"
	"rfbringup-go/types"
)

// Selector owns the mux address lines S0 and S1.
type Selector struct {
	s0, s1 types.OutputPin
	cur    types.Route
	have   bool
}

func New(s0, s1 types.OutputPin) *Selector {
	return &Selector{s0: s0, s1: s1}
}

// Select applies the route and confirms the lines read back at the requested
// levels. A direct route leaves the mux lines untouched.
func (s *Selector) Select(r types.Route) error {
	if r.Direct {
		s.cur, s.have = r, true
		return nil
	}
	if !r.Addr.Valid() {
		return &errcode.E{C: errcode.InvalidParams, Op: "select", Msg: "mux address " + r.Addr.String()}
	}
	// Invalidate first: a half-written address is not a selection.
	s.have = false
	if err := drive(s.s0, "S0", r.Addr.S0()); err != nil {
		return err
	}
	if err := drive(s.s1, "S1", r.Addr.S1()); err != nil {
		return err
	}
	s.cur, s.have = r, true
	return nil
}

// Current reports the last route applied successfully.
func (s *Selector) Current() (types.Route, bool) { return s.cur, s.have }

func drive(p types.OutputPin, name string, level bool) error {
	if err := p.Set(level); err != nil {
		return &errcode.E{C: errcode.SelectorFailure, Op: "select", Msg: name + " write", Err: err}
	}
	if p.Get() != level {
		return &errcode.E{C: errcode.SelectorFailure, Op: "select", Msg: name + " readback " + levelString(!level)}
	}
	return nil
}

func levelString(b bool) string {
	if b {
		return "high"
	}
	return "low"
}
