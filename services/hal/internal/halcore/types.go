// services/hal/internal/halcore/types.go
package halcore

import (
	"io"

	"rfbringup-go/types"

	"tinygo.org/x/drivers"
)

// ---- Buses ----

// SPIPort is one SPI controller. The byte path is the TinyGo drivers.SPI
// interface so MCU and host builds share the same surface; Configure applies
// clock, mode and bit order.
type SPIPort interface {
	drivers.SPI
	Configure(cfg types.SPIConfig) error
}

// SPIBusFactory injects configured SPI controllers by id ("spi0", "spi1", ...).
type SPIBusFactory interface {
	ByID(id string) (SPIPort, bool)
}

// ---- GPIO abstractions ----

// GPIOPin is one push-pull output. Set reports a write the pin driver
// refused.
type GPIOPin interface {
	ConfigureOutput(initial bool) error
	Set(level bool) error
	Get() bool
	Name() string
}

// PinFactory supplies GPIO pins by board name ("PG0", "GP17", "GPIO22").
type PinFactory interface {
	ByName(name string) (GPIOPin, bool)
}

// ---- Console ----

// ConsoleFactory returns the log sink of the platform: a UART on MCU builds,
// stdout on host builds.
type ConsoleFactory interface {
	Console() io.Writer
}

// Output configures p as an output at level initial and adapts it to the
// types.OutputPin contract used by the selector and heartbeat.
func Output(p GPIOPin, initial bool) (types.OutputPin, error) {
	if err := p.ConfigureOutput(initial); err != nil {
		return nil, err
	}
	return outputPin{p}, nil
}

type outputPin struct{ p GPIOPin }

func (o outputPin) Set(level bool) error { return o.p.Set(level) }
func (o outputPin) Get() bool            { return o.p.Get() }
