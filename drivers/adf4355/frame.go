package adf4355

import "strconv"

// Word returns the 32-bit register word carried by a frame.
func Word(f []byte) (uint32, bool) {
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
	r := int(w & ctrlMask)
	if r >= len(names) {
		return r, false
	}
	return r, true
}

// RCounter returns the reference divider of an R4 frame.
func RCounter(f []byte) (uint32, bool) {
	w, ok := Word(f)
	if !ok || w&ctrlMask != RegREFERENCE {
		return 0, false
	}
	return (w >> rCounterShift) & rCounterMask, true
}

// Describe renders a frame for logs, e.g. "R4 REFERENCE [R=2]".
func Describe(f []byte) string {
	r, ok := Register(f)
	if !ok {
		return "malformed"
	}
	s := "R" + strconv.Itoa(r) + " " + names[r]
	if rc, ok := RCounter(f); ok {
		s += " [R=" + strconv.Itoa(int(rc)) + "]"
	}
	return s
}
