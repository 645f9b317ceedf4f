package selector

import (
	"errors"
	"testing"

	"rfbringup-go/errcode"
	"rfbringup-go/types"
)

type pin struct {
	level  bool
	writes int
	err    error
	stuck  *bool // readback ignores writes when set
}

func (p *pin) Set(l bool) error {
	p.writes++
	if p.err != nil {
		return p.err
	}
	p.level = l
	return nil
}

func (p *pin) Get() bool {
	if p.stuck != nil {
		return *p.stuck
	}
	return p.level
}

func TestSelectEncodings(t *testing.T) {
	var s0, s1 pin
	s := New(&s0, &s1)

	cases := []struct {
		addr   types.MuxAddr
		s0, s1 bool
	}{
		{types.Mux00, false, false},
		{types.Mux10, false, true},
		{types.Mux01, true, false},
		{types.Mux11, true, true},
	}
	for _, c := range cases {
		if err := s.Select(types.ViaMux(c.addr)); err != nil {
			t.Fatalf("%s: %v", c.addr, err)
		}
		if s0.level != c.s0 || s1.level != c.s1 {
			t.Fatalf("%s: S0=%v S1=%v", c.addr, s0.level, s1.level)
		}
		cur, ok := s.Current()
		if !ok || cur != types.ViaMux(c.addr) {
			t.Fatalf("Current=%v,%v", cur, ok)
		}
	}
}

func TestDirectRouteLeavesMuxAlone(t *testing.T) {
	var s0, s1 pin
	s := New(&s0, &s1)
	if err := s.Select(types.ViaMux(types.Mux11)); err != nil {
		t.Fatal(err)
	}
	w0, w1 := s0.writes, s1.writes
	if err := s.Select(types.DirectCS()); err != nil {
		t.Fatal(err)
	}
	if s0.writes != w0 || s1.writes != w1 || !s0.level || !s1.level {
		t.Fatal("direct route touched the mux lines")
	}
	if cur, _ := s.Current(); !cur.Direct {
		t.Fatalf("Current=%v", cur)
	}
}

func TestWriteFailureIsSelectorFailure(t *testing.T) {
	cause := errors.New("gpio: EBUSY")
	s0 := pin{}
	s1 := pin{err: cause}
	s := New(&s0, &s1)

	err := s.Select(types.ViaMux(types.Mux10))
	if errcode.Of(err) != errcode.SelectorFailure || !errors.Is(err, cause) {
		t.Fatalf("got %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("failed select must not report a current route")
	}
}

func TestReadbackMismatch(t *testing.T) {
	low := false
	s0 := pin{stuck: &low}
	var s1 pin
	s := New(&s0, &s1)
	err := s.Select(types.ViaMux(types.Mux01))
	if errcode.Of(err) != errcode.SelectorFailure {
		t.Fatalf("got %v", err)
	}
	if s1.writes != 0 {
		t.Fatal("S1 written after S0 failed")
	}
}

func TestInvalidAddress(t *testing.T) {
	var s0, s1 pin
	s := New(&s0, &s1)
	if err := s.Select(types.ViaMux(9)); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("got %v", err)
	}
}
