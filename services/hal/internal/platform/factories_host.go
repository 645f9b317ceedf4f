// services/hal/internal/platform/factories_host.go
//go:build !(stm32f4 || rp2040 || rp2350) && !(linux && periph)

package platform

import (
	"io"
	"os"
	"sync"

	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/services/hal/internal/platform/boards"
	"rfbringup-go/types"
)

// ----------------------------- SPI (host) ------------------------------------

// HostSPI implements halcore.SPIPort for host-side runs and tests. It records
// every frame written; nothing is clocked anywhere.
type HostSPI struct {
	mu     sync.Mutex
	cfg    types.SPIConfig
	frames [][]byte
	// FailAt makes the nth Tx call (1-based) return Err.
	FailAt int
	Err    error
	calls  int
}

func (h *HostSPI) Configure(cfg types.SPIConfig) error {
	h.mu.Lock()
	h.cfg = cfg
	h.mu.Unlock()
	return nil
}

func (h *HostSPI) Tx(w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.FailAt != 0 && h.calls == h.FailAt {
		return h.Err
	}
	h.frames = append(h.frames, append([]byte(nil), w...))
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (h *HostSPI) Transfer(b byte) (byte, error) {
	return 0, h.Tx([]byte{b}, nil)
}

// Frames returns copies of the frames written so far.
func (h *HostSPI) Frames() [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([][]byte, len(h.frames))
	for i, f := range h.frames {
		out[i] = append([]byte(nil), f...)
	}
	return out
}

// Config returns the last applied bus configuration.
func (h *HostSPI) Config() types.SPIConfig {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cfg
}

type hostSPIFactory struct {
	buses map[string]*HostSPI
}

func (f *hostSPIFactory) ByID(id string) (halcore.SPIPort, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// Host exposes the concrete fake for tests.
func (f *hostSPIFactory) Host(id string) (*HostSPI, bool) {
	b, ok := f.buses[id]
	return b, ok
}

// DefaultSPIFactory creates inert host SPI buses "spi0" and "spi1".
func DefaultSPIFactory() halcore.SPIBusFactory {
	return &hostSPIFactory{
		buses: map[string]*HostSPI{
			"spi0": {},
			"spi1": {},
		},
	}
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests.
type FakePin struct {
	mu      sync.RWMutex
	name    string
	level   bool
	modeOut bool
	// Stuck pins ignore writes, as a shorted or unpowered line would.
	Stuck bool
	// Fail, when set, is returned by ConfigureOutput and Set.
	Fail  error
	edges int
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail != nil {
		return p.Fail
	}
	p.modeOut = true
	if !p.Stuck {
		p.level = initial
	}
	return nil
}

func (p *FakePin) Set(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail != nil {
		return p.Fail
	}
	if !p.Stuck && p.level != level {
		p.level = level
		p.edges++
	}
	return nil
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() error { return p.Set(!p.Get()) }

func (p *FakePin) Name() string { return p.name }

// Edges counts level changes since creation.
func (p *FakePin) Edges() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.edges
}

// HostPinFactory returns stable *FakePin instances per name.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[string]*FakePin
}

func (f *HostPinFactory) ByName(name string) (halcore.GPIOPin, bool) {
	if name == "" {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[string]*FakePin)
	}
	p, ok := f.pins[name]
	if !ok {
		p = &FakePin{name: name}
		f.pins[name] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(name string) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[name]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() halcore.PinFactory {
	return &HostPinFactory{pins: make(map[string]*FakePin)}
}

// ----------------------------- Console (host) --------------------------------

type stdoutConsole struct{}

func (stdoutConsole) Console() io.Writer { return os.Stdout }

func DefaultConsoleFactory() halcore.ConsoleFactory { return stdoutConsole{} }

// Board is the wiring in use for this build.
func Board() boards.Board { return boards.Selected }
