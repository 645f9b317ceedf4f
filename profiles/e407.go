package profiles

import (
	"time"

	"rfbringup-go/types"
)

// Register tables for the Olimex STM32-E407 RF front-end board.
// These values are validated operating points; do not re-derive them.

// ADF4159 power-on load: registers 7..0, with 6/5/4 each written twice so the
// double-buffered select bits latch both settings.
var adf4159Provisional = []types.Frame{
	{0x00, 0x00, 0x00, 0x07}, // R7
	{0x00, 0x00, 0x3E, 0x86}, // R6, STEP SEL = 0
	{0x00, 0x80, 0x3E, 0x86}, // R6, STEP SEL = 1
	{0x00, 0x12, 0x8F, 0x75}, // R5, DEV SEL = 0
	{0x00, 0x92, 0x8F, 0x75}, // R5, DEV SEL = 1
	{0x00, 0x18, 0x00, 0x84}, // R4, CLK DIV SEL = 0
	{0x00, 0x18, 0x00, 0xC4}, // R4, CLK DIV SEL = 1
	{0x00, 0x63, 0x04, 0xC3}, // R3
	{0x10, 0x40, 0x01, 0x92}, // R2
	{0x00, 0x00, 0x00, 0x01}, // R1
	{0xB0, 0x36, 0x60, 0x00}, // R0
}

// ADF4159 operating point: FMCW sweep characteristics.
var adf4159Final = []types.Frame{
	{0x00, 0x00, 0x00, 0x07}, // R7
	{0x00, 0x00, 0x3E, 0x86}, // R6
	{0x00, 0x12, 0x8F, 0x75}, // R5
	{0x00, 0x18, 0x00, 0x84}, // R4
	{0x00, 0x63, 0x04, 0xC3}, // R3
	{0x10, 0x40, 0x01, 0x92}, // R2
	{0x00, 0x00, 0x00, 0x01}, // R1
	{0xB0, 0x36, 0x60, 0x00}, // R0
}

// ADF4355 power-on load: registers 12..1. R4/R2/R1 use the halved fPFD.
var adf4355Provisional = []types.Frame{
	{0x00, 0x01, 0x04, 0x1C}, // R12
	{0x00, 0x61, 0x30, 0x0B}, // R11
	{0x00, 0xC0, 0x3E, 0xBA}, // R10
	{0x3F, 0x40, 0x2C, 0x89}, // R9
	{0x10, 0x2D, 0x04, 0x28}, // R8
	{0x10, 0x00, 0x00, 0x17}, // R7
	{0x15, 0x1F, 0xE0, 0x76}, // R6
	{0x00, 0x80, 0x00, 0x25}, // R5
	{0x30, 0x01, 0x09, 0x84}, // R4, R counter = 2 (fPFD/2)
	{0x00, 0x00, 0x00, 0x03}, // R3
	{0x00, 0x00, 0x40, 0x02}, // R2, fPFD/2
	{0x00, 0x00, 0x00, 0x01}, // R1, fPFD/2
}

// ADF4355 second load: R0 at the halved fPFD starts calibration, then
// R4/R2/R1/R0 at the desired fPFD.
var adf4355Final = []types.Frame{
	{0x00, 0x00, 0xC0, 0x40}, // R0, fPFD/2
	{0x30, 0x00, 0x89, 0x84}, // R4, R counter = 1
	{0x00, 0x00, 0x40, 0x02}, // R2
	{0x00, 0x00, 0x00, 0x01}, // R1
	{0x00, 0x00, 0x03, 0x20}, // R0
}

// ADA8282 U403 and U404 share the same operating point.
var ada8282U403 = []types.Frame{
	{0x00, 0x00, 0x00}, // INTF_CONFA
	{0x00, 0x10, 0x20}, // LNA_OFFSET0
	{0x00, 0x11, 0x20}, // LNA_OFFSET1
	{0x00, 0x14, 0x00}, // BIAS_SEL
	{0x00, 0x15, 0x00}, // PGA_GAIN
	{0x00, 0x17, 0x03}, // EN_CHAN
	{0x00, 0x18, 0x00}, // EN_BIAS_GEN
}

var ada8282U404 = []types.Frame{
	{0x00, 0x00, 0x00}, // INTF_CONFA
	{0x00, 0x10, 0x20}, // LNA_OFFSET0
	{0x00, 0x11, 0x20}, // LNA_OFFSET1
	{0x00, 0x14, 0x00}, // BIAS_SEL
	{0x00, 0x15, 0x00}, // PGA_GAIN
	{0x00, 0x17, 0x03}, // EN_CHAN
	{0x00, 0x18, 0x00}, // EN_BIAS_GEN
}

// ADF4355 calibration needs 16 ADC_CLK cycles; at the halved fPFD ADC_CLK is
// 50 kHz, i.e. 320 µs.
const adf4355CalSettle = time.Millisecond

// SPI1: fPCLK2/128 = 328.125 kHz, mode 0, MSB first.
var e407Bus = types.SPIConfig{
	ClockHz:  328_125,
	Polarity: 0,
	Phase:    0,
	Order:    types.MSBFirst,
}

func e407Programs() []types.Program {
	return []types.Program{
		{
			Family: types.SynthesizerA,
			Route:  types.ViaMux(types.Mux00),
			Stages: []types.Stage{
				{Kind: types.ProvisionalLoad, Name: "power-on", Frames: adf4159Provisional},
				{Kind: types.FinalLoad, Name: "operating", Frames: adf4159Final},
			},
		},
		{
			Family: types.SynthesizerB,
			Route:  types.ViaMux(types.Mux10),
			Stages: []types.Stage{
				{Kind: types.ProvisionalLoad, Name: "power-on", Frames: adf4355Provisional, Settle: adf4355CalSettle},
				{Kind: types.FinalLoad, Name: "operating", Frames: adf4355Final},
			},
		},
		{
			Family: types.GainStageA,
			Route:  types.ViaMux(types.Mux01),
			Stages: []types.Stage{
				{Kind: types.SingleLoad, Name: "U403", Frames: ada8282U403, PerFrameAcquire: true},
			},
			// U404 follows U403 with no family delay.
			BackToBack: true,
		},
		{
			Family: types.GainStageB,
			Route:  types.ViaMux(types.Mux11),
			Stages: []types.Stage{
				{Kind: types.SingleLoad, Name: "U404", Frames: ada8282U404, PerFrameAcquire: true},
			},
		},
		// The AD9648 has its own select line and no validated table yet.
		{Family: types.Adc, Route: types.DirectCS()},
	}
}

var e407Order = []types.DeviceFamily{
	types.SynthesizerA,
	types.SynthesizerB,
	types.GainStageA,
	types.GainStageB,
}

func init() {
	Register(types.Profile{
		Name:         NameE407,
		Version:      "1.1.1",
		Bus:          e407Bus,
		Order:        e407Order,
		Programs:     e407Programs(),
		BootDelay:    time.Second,
		FamilySettle: time.Second,
	})
	// Bench timing: same tables, short spacing between families.
	Register(types.Profile{
		Name:         NameE407Fast,
		Version:      "1.1.1",
		Bus:          e407Bus,
		Order:        e407Order,
		Programs:     e407Programs(),
		BootDelay:    50 * time.Millisecond,
		FamilySettle: 50 * time.Millisecond,
	})
}
