// Package ada8282 holds the register map of the ADA8282 quad-channel
// LNA/PGA. Writes are 24-bit frames: a 16-bit instruction (R/W bit and
// 15-bit address) followed by one data byte.
package ada8282

const (
	FrameWidth = 3

	bitRead  = 0x80
	addrMask = 0x7FFF

	RegINTF_CONFA  = 0x00
	RegLNA_OFFSET0 = 0x10
	RegLNA_OFFSET1 = 0x11
	RegBIAS_SEL    = 0x14
	RegPGA_GAIN    = 0x15
	RegEN_CHAN     = 0x17
	RegEN_BIAS_GEN = 0x18
)

var names = map[uint16]string{
	RegINTF_CONFA:  "INTF_CONFA",
	RegLNA_OFFSET0: "LNA_OFFSET0",
	RegLNA_OFFSET1: "LNA_OFFSET1",
	RegBIAS_SEL:    "BIAS_SEL",
	RegPGA_GAIN:    "PGA_GAIN",
	RegEN_CHAN:     "EN_CHAN",
	RegEN_BIAS_GEN: "EN_BIAS_GEN",
}

// Name returns the datasheet mnemonic for addr, or "".
func Name(addr uint16) string { return names[addr] }
