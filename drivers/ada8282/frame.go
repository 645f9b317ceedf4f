package ada8282

import (
	"strconv"
	"strings"
)

// Instruction is a decoded 3-byte frame.
type Instruction struct {
	Read bool
	Addr uint16
	Data byte
}

// Decode splits a frame into its instruction fields.
func Decode(f []byte) (Instruction, bool) {
	if len(f) != FrameWidth {
		return Instruction{}, false
	}
	return Instruction{
		Read: f[0]&bitRead != 0,
		Addr: (uint16(f[0])<<8 | uint16(f[1])) & addrMask,
		Data: f[2],
	}, true
}

// Encode builds a write frame.
func Encode(addr uint16, data byte) []byte {
	addr &= addrMask
	return []byte{byte(addr >> 8), byte(addr), data}
}

// Describe renders a frame for logs, e.g. "W 0x17 EN_CHAN=0x03".
func Describe(f []byte) string {
	in, ok := Decode(f)
	if !ok {
		return "malformed"
	}
	s := "W "
	if in.Read {
		s = "R "
	}
	s += "0x" + hexUpper(in.Addr)
	if n := Name(in.Addr); n != "" {
		s += " " + n
	}
	return s + "=0x" + hexUpper(uint16(in.Data))
}

// hexUpper renders v in upper-case hex with at least two digits.
func hexUpper(v uint16) string {
	s := strings.ToUpper(strconv.FormatUint(uint64(v), 16))
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
