// services/hal/hal.go

// Package hal assembles the board resources bring-up needs: the shared SPI
// bus, the multiplexer address lines, the status LED and the console. The
// platform is chosen at build time (host, stm32f4, rp2040/rp2350, or
// linux+periph).
package hal

import (
	"io"

	"rfbringup-go/errcode"
	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/services/hal/internal/platform"
	"rfbringup-go/services/hal/internal/platform/boards"
	"rfbringup-go/services/hal/internal/spibus"
	"rfbringup-go/types"
)

// Resources are the claimed peripherals of one board.
type Resources struct {
	Board string

	Bus   types.BusTransport
	MuxS0 types.OutputPin
	MuxS1 types.OutputPin
	LED   types.OutputPin

	Console io.Writer
}

// NewResources claims the peripherals of the selected board.
func NewResources() (*Resources, error) {
	return build(platform.DefaultSPIFactory(), platform.DefaultPinFactory(),
		platform.DefaultConsoleFactory(), platform.Board())
}

func build(spis halcore.SPIBusFactory, pins halcore.PinFactory, con halcore.ConsoleFactory, b boards.Board) (*Resources, error) {
	port, ok := spis.ByID(b.SPI)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownBus, Op: "hal " + b.Name, Msg: b.SPI}
	}

	// Select lines are optional: an empty name leaves the line to the controller.
	optional := func(name string) (halcore.GPIOPin, error) {
		if name == "" {
			return nil, nil
		}
		p, ok := pins.ByName(name)
		if !ok {
			return nil, &errcode.E{C: errcode.UnknownPin, Op: "hal " + b.Name, Msg: name}
		}
		return p, nil
	}
	output := func(name string) (types.OutputPin, error) {
		p, ok := pins.ByName(name)
		if !ok {
			return nil, &errcode.E{C: errcode.UnknownPin, Op: "hal " + b.Name, Msg: name}
		}
		o, err := halcore.Output(p, false)
		if err != nil {
			return nil, errcode.Wrap(errcode.UnknownPin, "hal "+b.Name+" "+name, err)
		}
		return o, nil
	}

	csMux, err := optional(b.CSMux)
	if err != nil {
		return nil, err
	}
	csDirect, err := optional(b.CSDirect)
	if err != nil {
		return nil, err
	}
	bus, err := spibus.New(b.SPI, port, csMux, csDirect)
	if err != nil {
		return nil, err
	}
	r := &Resources{
		Board:   b.Name,
		Bus:     bus,
		Console: con.Console(),
	}
	if r.MuxS0, err = output(b.MuxS0); err != nil {
		return nil, err
	}
	if r.MuxS1, err = output(b.MuxS1); err != nil {
		return nil, err
	}
	if r.LED, err = output(b.LED); err != nil {
		return nil, err
	}
	return r, nil
}
