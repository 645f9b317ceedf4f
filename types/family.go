package types

// ---- Device families ----

// DeviceFamily is one chip role multiplexed onto the shared bus.
type DeviceFamily uint8

const (
	SynthesizerA DeviceFamily = iota // ADF4159 FMCW synthesizer
	SynthesizerB                     // ADF4355 wideband synthesizer
	GainStageA                       // ADA8282 U403
	GainStageB                       // ADA8282 U404
	Adc                              // AD9648

	numFamilies
)

// Families lists every family in declaration order.
func Families() []DeviceFamily {
	return []DeviceFamily{SynthesizerA, SynthesizerB, GainStageA, GainStageB, Adc}
}

func (f DeviceFamily) Valid() bool { return f < numFamilies }

func (f DeviceFamily) String() string {
	switch f {
	case SynthesizerA:
		return "synth_a"
	case SynthesizerB:
		return "synth_b"
	case GainStageA:
		return "gain_a"
	case GainStageB:
		return "gain_b"
	case Adc:
		return "adc"
	default:
		return "unknown"
	}
}

// Chip names the part behind the role.
func (f DeviceFamily) Chip() string {
	switch f {
	case SynthesizerA:
		return "ADF4159"
	case SynthesizerB:
		return "ADF4355"
	case GainStageA, GainStageB:
		return "ADA8282"
	case Adc:
		return "AD9648"
	default:
		return ""
	}
}

// FrameWidth is the number of bytes in one register write for the family.
// Zero for an unknown family.
func (f DeviceFamily) FrameWidth() int {
	switch f {
	case SynthesizerA, SynthesizerB:
		return 4
	case GainStageA, GainStageB, Adc:
		return 3
	default:
		return 0
	}
}

// ParseFamily is the inverse of String.
func ParseFamily(s string) (DeviceFamily, bool) {
	for _, f := range Families() {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// ---- Routing ----

// MuxAddr is the 2-bit address driven onto the chip-select multiplexer.
// Bit 0 drives line S0, bit 1 drives line S1.
type MuxAddr uint8

const (
	Mux00 MuxAddr = 0b00
	Mux01 MuxAddr = 0b01 // S0 high
	Mux10 MuxAddr = 0b10 // S1 high
	Mux11 MuxAddr = 0b11
)

func (a MuxAddr) S0() bool    { return a&0b01 != 0 }
func (a MuxAddr) S1() bool    { return a&0b10 != 0 }
func (a MuxAddr) Valid() bool { return a <= Mux11 }

func (a MuxAddr) String() string {
	b := [2]byte{'0', '0'}
	if a.S1() {
		b[0] = '1'
	}
	if a.S0() {
		b[1] = '1'
	}
	return string(b[:])
}

// ChipSelect identifies a physical select line on the bus owner.
// CSMux is the line behind the multiplexer.
type ChipSelect uint8

const (
	CSMux ChipSelect = iota
	CSDirect
)

func (c ChipSelect) String() string {
	if c == CSDirect {
		return "direct"
	}
	return "mux"
}

// Route says how the single physical chip-select reaches a family.
// Direct routes bypass the multiplexer and leave its lines untouched.
type Route struct {
	Direct bool
	Addr   MuxAddr
}

// ViaMux returns the route for a mux-addressed family.
func ViaMux(a MuxAddr) Route { return Route{Addr: a} }

// DirectCS returns the route for a family with its own select line.
func DirectCS() Route { return Route{Direct: true} }

// Line is the select line asserted for transactions on this route.
func (r Route) Line() ChipSelect {
	if r.Direct {
		return CSDirect
	}
	return CSMux
}

func (r Route) String() string {
	if r.Direct {
		return "direct"
	}
	return "mux=" + r.Addr.String()
}
