package spibus

import (
	"errors"
	"testing"

	"rfbringup-go/errcode"
	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/types"
)

type fakePin struct {
	name   string
	level  bool
	out    bool
	cfgErr error
	// setErr fails writes of level failLevel.
	setErr    error
	failLevel bool
	writes    []bool
}

func (p *fakePin) ConfigureOutput(initial bool) error {
	if p.cfgErr != nil {
		return p.cfgErr
	}
	p.out, p.level = true, initial
	return nil
}

func (p *fakePin) Set(level bool) error {
	p.writes = append(p.writes, level)
	if p.setErr != nil && level == p.failLevel {
		return p.setErr
	}
	p.level = level
	return nil
}

func (p *fakePin) Get() bool    { return p.level }
func (p *fakePin) Name() string { return p.name }

func mustNew(t *testing.T, hw *fakePort, csMux, csDirect *fakePin) *Owner {
	t.Helper()
	var mux, direct halcore.GPIOPin
	if csMux != nil {
		mux = csMux
	}
	if csDirect != nil {
		direct = csDirect
	}
	o, err := New("spi1", hw, mux, direct)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

type fakePort struct {
	cfgs    []types.SPIConfig
	frames  [][]byte
	csLevel []bool // level of the watched pin during each Tx
	watch   *fakePin
	err     error
}

func (f *fakePort) Configure(cfg types.SPIConfig) error {
	f.cfgs = append(f.cfgs, cfg)
	return nil
}

func (f *fakePort) Tx(w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	f.frames = append(f.frames, append([]byte(nil), w...))
	if f.watch != nil {
		f.csLevel = append(f.csLevel, f.watch.level)
	}
	return nil
}

func (f *fakePort) Transfer(b byte) (byte, error) { return 0, f.err }

var cfg = types.SPIConfig{ClockHz: 328_125}

func TestAcquireIsExclusive(t *testing.T) {
	o := mustNew(t, &fakePort{}, nil, nil)
	h, err := o.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Acquire(); errcode.Of(err) != errcode.BusInUse {
		t.Fatalf("second Acquire: %v", err)
	}
	h.Release()
	h.Release() // no-op
	if o.Held() {
		t.Fatal("still held after Release")
	}
	h2, err := o.Acquire()
	if err != nil {
		t.Fatalf("Acquire after Release: %v", err)
	}
	h2.Release()
}

func TestTransactFramesChipSelect(t *testing.T) {
	mux := &fakePin{name: "PA4"}
	direct := &fakePin{name: "PB6"}
	port := &fakePort{watch: mux}
	o := mustNew(t, port, mux, direct)
	if !mux.out || !mux.level || !direct.level {
		t.Fatal("select lines must idle high as outputs")
	}

	h, _ := o.Acquire()
	defer h.Release()
	if err := h.Configure(cfg); err != nil {
		t.Fatal(err)
	}
	frame := []byte{0x00, 0x00, 0x00, 0x07}
	if err := h.Transact(types.CSMux, frame); err != nil {
		t.Fatal(err)
	}
	if len(port.frames) != 1 || !types.Frame(port.frames[0]).Equal(frame) {
		t.Fatalf("frames=%x", port.frames)
	}
	if port.csLevel[0] {
		t.Fatal("select not asserted during transfer")
	}
	if !mux.level || !direct.level {
		t.Fatal("select not released after transfer")
	}
}

func TestConfigureOnlyOnChange(t *testing.T) {
	port := &fakePort{}
	o := mustNew(t, port, nil, nil)
	for i := 0; i < 3; i++ {
		h, _ := o.Acquire()
		if err := h.Configure(cfg); err != nil {
			t.Fatal(err)
		}
		h.Release()
	}
	h, _ := o.Acquire()
	_ = h.Configure(types.SPIConfig{ClockHz: 1_000_000, Polarity: 1, Phase: 1})
	h.Release()
	if len(port.cfgs) != 2 {
		t.Fatalf("hardware reconfigured %d times", len(port.cfgs))
	}
}

func TestTransactErrors(t *testing.T) {
	cause := errors.New("overrun")
	port := &fakePort{}
	o := mustNew(t, port, nil, nil)
	h, _ := o.Acquire()

	if err := h.Transact(types.CSMux, []byte{1}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("unconfigured: %v", err)
	}
	_ = h.Configure(cfg)
	if err := h.Transact(types.CSMux, nil); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("empty: %v", err)
	}
	if err := h.Transact(types.ChipSelect(9), []byte{1}); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("bad line: %v", err)
	}
	port.err = cause
	err := h.Transact(types.CSMux, []byte{1, 2, 3})
	if errcode.Of(err) != errcode.TransportFailure || !errors.Is(err, cause) {
		t.Fatalf("tx error: %v", err)
	}
	h.Release()
	if err := h.Transact(types.CSMux, []byte{1}); err != errcode.NotHeld {
		t.Fatalf("after release: %v", err)
	}
}

func TestNewReportsSelectPinFailure(t *testing.T) {
	cause := errors.New("pin claimed")
	_, err := New("spi1", &fakePort{}, &fakePin{name: "PA4", cfgErr: cause}, nil)
	if errcode.Of(err) != errcode.UnknownPin || !errors.Is(err, cause) {
		t.Fatalf("err=%v", err)
	}
}

func TestTransactSelectWriteFailure(t *testing.T) {
	cause := errors.New("line driver fault")

	// Assert fails: nothing is clocked out and the line is driven back high.
	mux := &fakePin{name: "PA4", setErr: cause, failLevel: false}
	port := &fakePort{}
	o := mustNew(t, port, mux, nil)
	h, _ := o.Acquire()
	_ = h.Configure(cfg)
	err := h.Transact(types.CSMux, []byte{1, 2, 3})
	if errcode.Of(err) != errcode.TransportFailure || !errors.Is(err, cause) {
		t.Fatalf("assert failure: %v", err)
	}
	if len(port.frames) != 0 {
		t.Fatalf("frame sent without select: %x", port.frames)
	}
	if w := mux.writes; len(w) != 2 || w[1] != true {
		t.Fatalf("writes=%v, want deassert attempt", w)
	}
	h.Release()

	// Deassert fails after a good transfer.
	direct := &fakePin{name: "PB6", setErr: cause, failLevel: true}
	port = &fakePort{}
	o = mustNew(t, port, nil, direct)
	h, _ = o.Acquire()
	_ = h.Configure(cfg)
	err = h.Transact(types.CSDirect, []byte{1, 2, 3})
	if errcode.Of(err) != errcode.TransportFailure || !errors.Is(err, cause) {
		t.Fatalf("deassert failure: %v", err)
	}
	if len(port.frames) != 1 {
		t.Fatalf("frames=%x", port.frames)
	}
	h.Release()
}
