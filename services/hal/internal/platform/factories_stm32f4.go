// services/hal/internal/platform/factories_stm32f4.go
//go:build stm32f4

package platform

import (
	"io"
	"machine"

	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/services/hal/internal/platform/boards"
	"rfbringup-go/types"
)

// -----------------------------------------------------------------------------
// Defaults used on the Olimex STM32-E407
// -----------------------------------------------------------------------------

// DefaultSPIFactory exposes SPI1 on the board pins. The controller is only
// configured when the bus owner first applies a profile's SPIConfig.
func DefaultSPIFactory() halcore.SPIBusFactory {
	b := boards.Selected
	return &stm32SPIFactory{buses: map[string]*stm32SPI{
		"spi1": {hw: machine.SPI1, sck: pinOf(b.SCK), sdo: pinOf(b.SDO), sdi: pinOf(b.SDI)},
	}}
}

func DefaultPinFactory() halcore.PinFactory { return stm32PinFactory{} }

func DefaultConsoleFactory() halcore.ConsoleFactory { return serialConsole{} }

func Board() boards.Board { return boards.Selected }

// ---- SPI implementation ----

type stm32SPIFactory struct {
	buses map[string]*stm32SPI
}

func (f *stm32SPIFactory) ByID(id string) (halcore.SPIPort, bool) {
	b, ok := f.buses[id]
	return b, ok
}

type stm32SPI struct {
	hw            *machine.SPI
	sck, sdo, sdi machine.Pin
}

func (s *stm32SPI) Configure(cfg types.SPIConfig) error {
	return s.hw.Configure(machine.SPIConfig{
		Frequency: cfg.ClockHz,
		SCK:       s.sck,
		SDO:       s.sdo,
		SDI:       s.sdi,
		LSBFirst:  cfg.Order == types.LSBFirst,
		Mode:      cfg.Mode(),
	})
}

func (s *stm32SPI) Tx(w, r []byte) error          { return s.hw.Tx(w, r) }
func (s *stm32SPI) Transfer(b byte) (byte, error) { return s.hw.Transfer(b) }

// ---- GPIO implementation ----

var stm32Pins = map[string]machine.Pin{
	"PA4": machine.PA4, "PA5": machine.PA5, "PA6": machine.PA6, "PA7": machine.PA7,
	"PG0": machine.PG0, "PG1": machine.PG1, "PG2": machine.PG2,
	"PC13": machine.PC13,
}

func pinOf(name string) machine.Pin {
	if p, ok := stm32Pins[name]; ok {
		return p
	}
	return machine.NoPin
}

type stm32PinFactory struct{}

func (stm32PinFactory) ByName(name string) (halcore.GPIOPin, bool) {
	p, ok := stm32Pins[name]
	if !ok {
		return nil, false
	}
	return &stm32Pin{p: p, name: name}, true
}

type stm32Pin struct {
	p    machine.Pin
	name string
}

func (r *stm32Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *stm32Pin) Set(level bool) error { r.p.Set(level); return nil }
func (r *stm32Pin) Get() bool            { return r.p.Get() }
func (r *stm32Pin) Name() string         { return r.name }

// ---- Console ----

type serialConsole struct{}

func (serialConsole) Console() io.Writer { return machine.Serial }
