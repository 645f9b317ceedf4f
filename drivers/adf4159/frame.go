package adf4159

import "strconv"

// Word returns the 32-bit register word carried by a frame.
// ok is false when the frame is not four bytes.
func Word(f []byte) (w uint32, ok bool) {
	if len(f) != FrameWidth {
		return 0, false
	}
	return uint32(f[0])<<24 | uint32(f[1])<<16 | uint32(f[2])<<8 | uint32(f[3]), true
}

// Register returns the register addressed by a frame.
func Register(f []byte) (int, bool) {
	w, ok := Word(f)
	if !ok {
		return 0, false
	}
	return int(w & ctrlMask), true
}

// Describe renders a frame for logs, e.g. "R6 STEP [STEP SEL=1]".
func Describe(f []byte) string {
	w, ok := Word(f)
	if !ok {
		return "malformed"
	}
	r := int(w & ctrlMask)
	s := "R" + strconv.Itoa(r) + " " + names[r]
	switch r {
	case RegSTEP:
		s += " [STEP SEL=" + bit(w&bitStepSel != 0) + "]"
	case RegDEVIATION:
		s += " [DEV SEL=" + bit(w&bitDevSel != 0) + "]"
	case RegCLOCK:
		s += " [CLK DIV SEL=" + bit(w&bitClkDivSel != 0) + "]"
	}
	return s
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
