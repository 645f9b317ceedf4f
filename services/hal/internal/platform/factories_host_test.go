//go:build !(stm32f4 || rp2040 || rp2350) && !(linux && periph)

package platform

import (
	"errors"
	"testing"
)

func TestHostSPIRecordsAndFails(t *testing.T) {
	f := DefaultSPIFactory().(*hostSPIFactory)
	if _, ok := f.ByID("spi9"); ok {
		t.Fatal("unknown bus resolved")
	}
	h, _ := f.Host("spi0")
	h.FailAt = 2
	h.Err = errors.New("bus fault")

	if err := h.Tx([]byte{1, 2}, nil); err != nil {
		t.Fatal(err)
	}
	if err := h.Tx([]byte{3}, nil); err != h.Err {
		t.Fatalf("injected failure: %v", err)
	}
	r := []byte{0xFF}
	_ = h.Tx([]byte{4}, r)
	if fr := h.Frames(); len(fr) != 2 || fr[1][0] != 4 || r[0] != 0 {
		t.Fatalf("frames=%x r=%x", fr, r)
	}
}

func TestHostPinsAreStable(t *testing.T) {
	f := DefaultPinFactory().(*HostPinFactory)
	a, _ := f.ByName("S0")
	b, _ := f.ByName("S0")
	if a != b {
		t.Fatal("same name, different pin")
	}
	if _, ok := f.ByName(""); ok {
		t.Fatal("empty name resolved")
	}
	p, _ := f.Get("S0")
	a.Set(true)
	a.Set(true)
	p.Toggle()
	if p.Get() || p.Edges() != 2 {
		t.Fatalf("level=%v edges=%d", p.Get(), p.Edges())
	}
	p.Stuck = true
	a.Set(true)
	if a.Get() {
		t.Fatal("stuck pin followed a write")
	}
	p.Fail = errors.New("open drain fault")
	if err := a.Set(false); !errors.Is(err, p.Fail) {
		t.Fatalf("failing pin Set: %v", err)
	}
	if err := a.ConfigureOutput(true); !errors.Is(err, p.Fail) {
		t.Fatalf("failing pin ConfigureOutput: %v", err)
	}
}
