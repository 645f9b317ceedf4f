package types

import (
	"encoding/hex"
	"strconv"
	"time"

	"rfbringup-go/errcode"
)

// ---- Frames ----

// Frame is one addressed register write. Its contents belong to the chip's
// register map and are never interpreted by the sequencer.
type Frame []byte

func (f Frame) Width() int     { return len(f) }
func (f Frame) Hex() string    { return hex.EncodeToString(f) }
func (f Frame) Clone() Frame   { return append(Frame(nil), f...) }
func (f Frame) String() string { return "0x" + f.Hex() }

// Equal compares payloads byte for byte.
func (f Frame) Equal(g Frame) bool {
	if len(f) != len(g) {
		return false
	}
	for i := range f {
		if f[i] != g[i] {
			return false
		}
	}
	return true
}

// ---- Stages ----

// StageKind tags the role a stage plays in a family's protocol.
type StageKind uint8

const (
	SingleLoad      StageKind = iota // the whole program in one load
	ProvisionalLoad                  // power-on values that establish internal dividers
	FinalLoad                        // desired operating values, after the provisional load settled
)

func (k StageKind) String() string {
	switch k {
	case ProvisionalLoad:
		return "provisional"
	case FinalLoad:
		return "final"
	default:
		return "single"
	}
}

// Stage is an ordered group of frames sent back-to-back, each as its own
// transaction, optionally followed by a settle delay.
type Stage struct {
	Kind   StageKind
	Name   string
	Frames []Frame
	// Settle must fully elapse, bus released, before the next stage or family.
	Settle time.Duration
	// PerFrameAcquire takes and releases the bus around every frame instead of
	// once around the stage.
	PerFrameAcquire bool
}

func (s Stage) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Kind.String()
}

// ---- Programs ----

// Program is the complete register programme for one family.
type Program struct {
	Family DeviceFamily
	Route  Route
	Stages []Stage
	// BackToBack skips FamilySettle before the next family in Order. It has
	// no effect on the last family.
	BackToBack bool
}

// Frames counts the transactions the programme emits.
func (p Program) Frames() int {
	n := 0
	for _, s := range p.Stages {
		n += len(s.Frames)
	}
	return n
}

// ---- Bus parameters ----

type BitOrder uint8

const (
	MSBFirst BitOrder = iota
	LSBFirst
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "lsb"
	}
	return "msb"
}

// SPIConfig holds the per-transaction electrical parameters.
type SPIConfig struct {
	ClockHz  uint32
	Polarity uint8 // CPOL: idle clock level
	Phase    uint8 // CPHA: 0 = capture on first edge
	Order    BitOrder
}

// Mode folds CPOL/CPHA into the conventional SPI mode number 0..3.
func (c SPIConfig) Mode() uint8 { return (c.Polarity&1)<<1 | c.Phase&1 }

// ---- Profiles ----

// Profile is a named, versioned configuration: register tables, bring-up
// order, bus parameters and the delays between families.
type Profile struct {
	Name    string
	Version string
	Bus     SPIConfig

	// Order is the bring-up order. Families with a programme that are not in
	// Order are never touched.
	Order    []DeviceFamily
	Programs []Program

	// BootDelay is applied once before the first family.
	BootDelay time.Duration
	// FamilySettle is applied after every family, including the last, unless
	// the family is marked BackToBack.
	FamilySettle time.Duration
	// MuxSettle is applied after the selector lines change.
	MuxSettle time.Duration
}

// Program returns the programme for f.
func (p *Profile) Program(f DeviceFamily) (Program, bool) {
	for _, pr := range p.Programs {
		if pr.Family == f {
			return pr, true
		}
	}
	return Program{}, false
}

// Transactions counts the frames the ordered families emit.
func (p *Profile) Transactions() int {
	n := 0
	for _, f := range p.Order {
		if pr, ok := p.Program(f); ok {
			n += pr.Frames()
		}
	}
	return n
}

// Clone deep-copies the profile so callers cannot mutate a shared table.
func (p Profile) Clone() Profile {
	out := p
	out.Order = append([]DeviceFamily(nil), p.Order...)
	out.Programs = make([]Program, len(p.Programs))
	for i, pr := range p.Programs {
		cp := pr
		cp.Stages = make([]Stage, len(pr.Stages))
		for j, s := range pr.Stages {
			cs := s
			cs.Frames = make([]Frame, len(s.Frames))
			for k, f := range s.Frames {
				cs.Frames[k] = f.Clone()
			}
			cp.Stages[j] = cs
		}
		out.Programs[i] = cp
	}
	return out
}

// Validate checks the table invariants: known families, one programme per
// family, frame width matching the family, usable routes, and an ordered
// family list that only names families with a non-empty programme.
func (p *Profile) Validate() error {
	bad := func(msg string) error {
		return &errcode.E{C: errcode.InvalidProfile, Op: "validate " + p.Name, Msg: msg}
	}
	if p.Name == "" {
		return bad("missing name")
	}
	if p.Bus.ClockHz == 0 {
		return bad("bus clock not set")
	}
	seen := make(map[DeviceFamily]bool, len(p.Programs))
	routes := make(map[Route]DeviceFamily, len(p.Programs))
	for _, pr := range p.Programs {
		f := pr.Family
		if !f.Valid() {
			return bad("unknown family " + strconv.Itoa(int(f)))
		}
		if seen[f] {
			return bad("duplicate programme for " + f.String())
		}
		seen[f] = true
		if !pr.Route.Direct && !pr.Route.Addr.Valid() {
			return bad(f.String() + ": mux address out of range")
		}
		if other, ok := routes[pr.Route]; ok {
			return bad(f.String() + ": route " + pr.Route.String() + " already used by " + other.String())
		}
		routes[pr.Route] = f
		w := f.FrameWidth()
		for si, s := range pr.Stages {
			if len(s.Frames) == 0 {
				return bad(f.String() + ": stage " + strconv.Itoa(si) + " has no frames")
			}
			if s.Settle < 0 {
				return bad(f.String() + ": negative settle")
			}
			for fi, fr := range s.Frames {
				if len(fr) != w {
					return bad(f.String() + ": stage " + s.Label() + " frame " + strconv.Itoa(fi) +
						" is " + strconv.Itoa(len(fr)) + " bytes, want " + strconv.Itoa(w))
				}
			}
		}
	}
	ordered := make(map[DeviceFamily]bool, len(p.Order))
	for _, f := range p.Order {
		if ordered[f] {
			return bad(f.String() + " appears twice in order")
		}
		ordered[f] = true
		pr, ok := p.Program(f)
		if !ok {
			return bad(f.String() + " ordered but has no programme")
		}
		if len(pr.Stages) == 0 {
			return bad(f.String() + " ordered but programme is empty")
		}
	}
	if p.BootDelay < 0 || p.FamilySettle < 0 || p.MuxSettle < 0 {
		return bad("negative delay")
	}
	return nil
}
