// Package adf4159 holds the register map of the ADF4159 13 GHz fractional-N
// FMCW synthesizer. Every write is a 32-bit word sent MSB first; the three
// least significant bits select the register.
package adf4159

const (
	FrameWidth = 4

	// Control bits DB2..DB0.
	ctrlMask = 0x07

	RegFRAC_INT   = 0 // R0: ramp on, MUXOUT, 12-bit INT, 12 MSB FRAC
	RegLSB_FRAC   = 1 // R1: phase adjust, 13 LSB FRAC, phase
	RegR_DIVIDER  = 2 // R2: CSR, charge pump, prescaler, R divider, CLK1
	RegFUNCTION   = 3 // R3: N SEL, SD reset, ramp mode, PD polarity, LDP
	RegCLOCK      = 4 // R4: LE SEL, sigma-delta modulator, ramp status, CLK DIV SEL
	RegDEVIATION  = 5 // R5: TX ramp CLK, parabolic ramp, DEV SEL, deviation
	RegSTEP       = 6 // R6: STEP SEL, step word
	RegDELAY      = 7 // R7: ramp delay, fast lock, delay start word

	// Double-buffered select bits reloaded during the provisional load.
	bitStepSel   = 1 << 23 // R6 DB23
	bitDevSel    = 1 << 23 // R5 DB23
	bitClkDivSel = 1 << 6  // R4 DB6
)

var names = [...]string{
	RegFRAC_INT:  "FRAC/INT",
	RegLSB_FRAC:  "LSB FRAC",
	RegR_DIVIDER: "R DIVIDER",
	RegFUNCTION:  "FUNCTION",
	RegCLOCK:     "CLOCK",
	RegDEVIATION: "DEVIATION",
	RegSTEP:      "STEP",
	RegDELAY:     "DELAY",
}
