// services/hal/internal/platform/factories_periph.go
//go:build linux && periph && !(stm32f4 || rp2040 || rp2350)

package platform

import (
	"errors"
	"io"
	"os"
	"sync"

	"rfbringup-go/errcode"
	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/services/hal/internal/platform/boards"
	"rfbringup-go/types"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// -----------------------------------------------------------------------------
// Linux bench rig (Raspberry Pi) through periph.io
// -----------------------------------------------------------------------------

var hostInit = sync.OnceValue(func() error {
	_, err := host.Init()
	return err
})

// DefaultSPIFactory opens spidev ports lazily by path.
func DefaultSPIFactory() halcore.SPIBusFactory { return &periphSPIFactory{ports: map[string]*periphSPI{}} }

func DefaultPinFactory() halcore.PinFactory { return periphPinFactory{} }

func DefaultConsoleFactory() halcore.ConsoleFactory { return stderrConsole{} }

func Board() boards.Board { return boards.Selected }

// ---- SPI implementation ----

type periphSPIFactory struct {
	mu    sync.Mutex
	ports map[string]*periphSPI
}

func (f *periphSPIFactory) ByID(id string) (halcore.SPIPort, bool) {
	if hostInit() != nil {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.ports[id]; ok {
		return p, true
	}
	pc, err := spireg.Open(id)
	if err != nil {
		return nil, false
	}
	p := &periphSPI{port: pc}
	f.ports[id] = p
	return p, true
}

// periphSPI adapts a spidev port. periph allows a single Connect per port,
// so the first configuration sticks and a different one is refused.
type periphSPI struct {
	port spi.PortCloser
	conn spi.Conn
	cfg  types.SPIConfig
}

var errNotConnected = errors.New("spidev: not connected")

func (s *periphSPI) Configure(cfg types.SPIConfig) error {
	if s.conn != nil {
		if cfg == s.cfg {
			return nil
		}
		return &errcode.E{C: errcode.Unsupported, Op: "spidev configure", Msg: "port already connected"}
	}
	mode := spi.Mode(cfg.Mode())
	if cfg.Order == types.LSBFirst {
		mode |= spi.LSBFirst
	}
	c, err := s.port.Connect(physic.Frequency(cfg.ClockHz)*physic.Hertz, mode, 8)
	if err != nil {
		return err
	}
	s.conn, s.cfg = c, cfg
	return nil
}

func (s *periphSPI) Tx(w, r []byte) error {
	if s.conn == nil {
		return errNotConnected
	}
	return s.conn.Tx(w, r)
}

func (s *periphSPI) Transfer(b byte) (byte, error) {
	var r [1]byte
	err := s.Tx([]byte{b}, r[:])
	return r[0], err
}

// ---- GPIO implementation ----

type periphPinFactory struct{}

func (periphPinFactory) ByName(name string) (halcore.GPIOPin, bool) {
	if name == "" || hostInit() != nil {
		return nil, false
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, false
	}
	return &periphPin{p: p}, true
}

type periphPin struct{ p gpio.PinIO }

func (r *periphPin) ConfigureOutput(initial bool) error { return r.p.Out(gpio.Level(initial)) }
func (r *periphPin) Set(level bool) error               { return r.p.Out(gpio.Level(level)) }
func (r *periphPin) Get() bool                          { return bool(r.p.Read()) }
func (r *periphPin) Name() string                       { return r.p.Name() }

// ---- Console ----

type stderrConsole struct{}

func (stderrConsole) Console() io.Writer { return os.Stderr }
