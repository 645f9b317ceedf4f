// services/hal/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"
	"strconv"
	"strings"

	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/services/hal/internal/platform/boards"
	"rfbringup-go/types"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// -----------------------------------------------------------------------------
// Defaults used on Raspberry Pi Pico / Pico 2 (RP2 family)
// -----------------------------------------------------------------------------

func DefaultSPIFactory() halcore.SPIBusFactory {
	b := boards.Selected
	return &rp2SPIFactory{buses: map[string]*rp2SPI{
		"spi0": {hw: machine.SPI0, sck: gp(b.SCK), sdo: gp(b.SDO), sdi: gp(b.SDI)},
		"spi1": {hw: machine.SPI1, sck: machine.NoPin, sdo: machine.NoPin, sdi: machine.NoPin},
	}}
}

// DefaultPinFactory maps "GPn" names directly to machine.Pin(n). This matches
// Pico/Pico 2 GP numbering.
func DefaultPinFactory() halcore.PinFactory { return rp2PinFactory{} }

// DefaultConsoleFactory configures UART0 on the board console pins.
func DefaultConsoleFactory() halcore.ConsoleFactory {
	b := boards.Selected
	hw := uartx.UART0
	// Defaults inside uartx apply if zero.
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: b.ConsoleBaud,
		TX:       gp(b.ConsoleTX),
		RX:       gp(b.ConsoleRX),
	})
	return uartConsole{u: hw}
}

func Board() boards.Board { return boards.Selected }

// ---- SPI implementation ----

type rp2SPIFactory struct {
	buses map[string]*rp2SPI
}

func (f *rp2SPIFactory) ByID(id string) (halcore.SPIPort, bool) {
	b, ok := f.buses[id]
	return b, ok
}

type rp2SPI struct {
	hw            *machine.SPI
	sck, sdo, sdi machine.Pin
}

func (s *rp2SPI) Configure(cfg types.SPIConfig) error {
	return s.hw.Configure(machine.SPIConfig{
		Frequency: cfg.ClockHz,
		SCK:       s.sck,
		SDO:       s.sdo,
		SDI:       s.sdi,
		LSBFirst:  cfg.Order == types.LSBFirst,
		Mode:      cfg.Mode(),
	})
}

func (s *rp2SPI) Tx(w, r []byte) error          { return s.hw.Tx(w, r) }
func (s *rp2SPI) Transfer(b byte) (byte, error) { return s.hw.Transfer(b) }

// ---- GPIO implementation ----

func gpNumber(name string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "GP"))
	// Constrain to RP2's user GPIOs (GP0..GP29).
	if err != nil || !strings.HasPrefix(name, "GP") || n < 0 || n > 29 {
		return 0, false
	}
	return n, true
}

func gp(name string) machine.Pin {
	if n, ok := gpNumber(name); ok {
		return machine.Pin(n)
	}
	return machine.NoPin
}

type rp2PinFactory struct{}

func (rp2PinFactory) ByName(name string) (halcore.GPIOPin, bool) {
	n, ok := gpNumber(name)
	if !ok {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), name: name}, true
}

type rp2Pin struct {
	p    machine.Pin
	name string
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) error { r.p.Set(level); return nil }
func (r *rp2Pin) Get() bool            { return r.p.Get() }
func (r *rp2Pin) Name() string         { return r.name }

// ---- Console ----

type uartConsole struct{ u *uartx.UART }

func (c uartConsole) Console() io.Writer { return c.u }
