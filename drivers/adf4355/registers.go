// Package adf4355 holds the register map of the ADF4355 wideband synthesizer
// with integrated VCO. Writes are 32-bit words, MSB first; DB3..DB0 select
// one of 13 registers. Writing R0 last latches the double-buffered values.
package adf4355

const (
	FrameWidth = 4

	ctrlMask = 0x0F

	RegINT          = 0  // R0: autocal, prescaler, 16-bit INT
	RegFRAC1        = 1  // R1: 24-bit main fractional value
	RegFRAC2_MOD2   = 2  // R2: auxiliary FRAC and MOD
	RegPHASE        = 3  // R3: SD load reset, phase resync, phase adjust
	RegREFERENCE    = 4  // R4: MUXOUT, ref doubler, R counter, RDIV2, charge pump
	RegRESERVED5    = 5  // R5: fixed pattern
	RegOUTPUT       = 6  // R6: gated bleed, negative bleed, RF divider, output power
	RegLOCK_DETECT  = 7  // R7: LE sync, LD cycle count, LOL mode
	RegRESERVED8    = 8  // R8: fixed pattern
	RegTIMEOUT      = 9  // R9: VCO band division, timeout, synth lock timeout
	RegADC          = 10 // R10: ADC clock divider, conversion enable
	RegVCO_TEMP     = 11 // R11: fixed pattern
	RegRESYNC_CLOCK = 12 // R12: phase resync clock divider

	// R4 DB24..DB15: 10-bit reference counter. The provisional load uses
	// twice the final count, halving fPFD while the VCO calibrates.
	rCounterShift = 15
	rCounterMask  = 0x3FF

	// ADC_CLK cycles the VCO calibration needs after R10 is written.
	CalibrationADCCycles = 16
)

var names = [...]string{
	RegINT:          "INT",
	RegFRAC1:        "FRAC1",
	RegFRAC2_MOD2:   "FRAC2/MOD2",
	RegPHASE:        "PHASE",
	RegREFERENCE:    "REFERENCE",
	RegRESERVED5:    "R5",
	RegOUTPUT:       "OUTPUT",
	RegLOCK_DETECT:  "LOCK DETECT",
	RegRESERVED8:    "R8",
	RegTIMEOUT:      "TIMEOUT",
	RegADC:          "ADC",
	RegVCO_TEMP:     "R11",
	RegRESYNC_CLOCK: "RESYNC CLOCK",
}
