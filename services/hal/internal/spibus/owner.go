// services/hal/internal/spibus/owner.go

// Package spibus owns one SPI controller and its chip-select lines and hands
// out exclusive handles to it.
package spibus

import (
	"sync"

	"rfbringup-go/errcode"
	"rfbringup-go/services/hal/internal/halcore"
	"rfbringup-go/types"
)

// Owner implements types.BusTransport over a halcore.SPIPort.
//
// A select line with a nil pin is driven by the controller itself (hardware
// NSS). Select pins are active low and idle high.
type Owner struct {
	id string
	hw halcore.SPIPort
	cs [2]halcore.GPIOPin // indexed by types.ChipSelect

	mu         sync.Mutex
	held       bool
	cfg        types.SPIConfig
	configured bool
}

// New takes ownership of hw and drives both select pins high as outputs.
func New(id string, hw halcore.SPIPort, csMux, csDirect halcore.GPIOPin) (*Owner, error) {
	o := &Owner{id: id, hw: hw}
	o.cs[types.CSMux] = csMux
	o.cs[types.CSDirect] = csDirect
	for cs, p := range o.cs {
		if p == nil {
			continue
		}
		if err := p.ConfigureOutput(true); err != nil {
			return nil, errcode.Wrap(errcode.UnknownPin, "spi "+id+" "+types.ChipSelect(cs).String(), err)
		}
	}
	return o, nil
}

func (o *Owner) ID() string { return o.id }

// Held reports whether a handle is outstanding.
func (o *Owner) Held() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.held
}

func (o *Owner) Acquire() (types.BusHandle, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.held {
		return nil, &errcode.E{C: errcode.BusInUse, Op: "spi acquire", Msg: o.id}
	}
	o.held = true
	return &handle{o: o}, nil
}

func (o *Owner) release() {
	o.mu.Lock()
	o.held = false
	o.mu.Unlock()
}

type handle struct {
	o    *Owner
	done bool
}

func (h *handle) Configure(cfg types.SPIConfig) error {
	if h.done {
		return errcode.NotHeld
	}
	o := h.o
	if cfg.ClockHz == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "spi configure", Msg: "zero clock"}
	}
	if o.configured && o.cfg == cfg {
		return nil
	}
	if err := o.hw.Configure(cfg); err != nil {
		return errcode.Wrap(errcode.TransportFailure, "spi configure", err)
	}
	o.cfg, o.configured = cfg, true
	return nil
}

// Transact asserts the select line, clocks w out and ignores whatever the
// device shifts back, then deasserts. A select pin that refuses a write is a
// transport failure; deassert is still attempted after a failed Tx.
func (h *handle) Transact(cs types.ChipSelect, w []byte) error {
	if h.done {
		return errcode.NotHeld
	}
	if int(cs) >= len(h.o.cs) {
		return &errcode.E{C: errcode.UnknownPin, Op: "spi transact", Msg: "select line " + cs.String()}
	}
	if len(w) == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "spi transact", Msg: "empty frame"}
	}
	if !h.o.configured {
		return &errcode.E{C: errcode.InvalidParams, Op: "spi transact", Msg: "not configured"}
	}
	pin := h.o.cs[cs]
	if pin != nil {
		if err := pin.Set(false); err != nil {
			_ = pin.Set(true)
			return errcode.Wrap(errcode.TransportFailure, "spi select "+pin.Name(), err)
		}
	}
	err := h.o.hw.Tx(w, nil)
	if pin != nil {
		if cerr := pin.Set(true); cerr != nil && err == nil {
			return errcode.Wrap(errcode.TransportFailure, "spi deselect "+pin.Name(), cerr)
		}
	}
	if err != nil {
		return errcode.Wrap(errcode.TransportFailure, "spi tx", err)
	}
	return nil
}

func (h *handle) Release() {
	if h.done {
		return
	}
	h.done = true
	h.o.release()
}
