package bringup

import (
	"strconv"
	"time"

	"rfbringup-go/types"
)

type StepKind uint8

const (
	StepSleep StepKind = iota
	StepSelect
	StepAcquire
	StepTransact
	StepRelease
)

func (k StepKind) String() string {
	switch k {
	case StepSleep:
		return "sleep"
	case StepSelect:
		return "select"
	case StepAcquire:
		return "acquire"
	case StepTransact:
		return "transact"
	case StepRelease:
		return "release"
	default:
		return "unknown"
	}
}

// SleepReason says why a sleep step exists.
type SleepReason uint8

const (
	SleepBoot SleepReason = iota
	SleepMux
	SleepStage
	SleepFamily
)

func (r SleepReason) String() string {
	switch r {
	case SleepBoot:
		return "boot"
	case SleepMux:
		return "mux"
	case SleepStage:
		return "stage_settle"
	default:
		return "family_settle"
	}
}

// Step is one primitive action of a bring-up run.
type Step struct {
	Kind StepKind
	Pos  Position

	Route  types.Route     // StepSelect, StepTransact
	Stage  types.Stage     // stage steps; Frames is nil
	Data   types.Frame     // StepTransact
	Delay  time.Duration   // StepSleep
	Reason SleepReason     // StepSleep
	Bus    types.SPIConfig // StepAcquire
}

func (s Step) String() string {
	switch s.Kind {
	case StepSleep:
		return "sleep " + s.Delay.String() + " (" + s.Reason.String() + ")"
	case StepSelect:
		return "select " + s.Pos.Family.String() + " " + s.Route.String()
	case StepTransact:
		return "transact " + s.Pos.Family.String() + " " + s.Stage.Label() +
			"[" + strconv.Itoa(s.Pos.Frame) + "] " + s.Route.Line().String() + " " + s.Data.String()
	default:
		return s.Kind.String() + " " + s.Pos.Family.String() + " " + s.Stage.Label()
	}
}

// Plan expands a profile into the exact ordered steps Run executes. Zero
// delays produce no sleep step. The profile must already be valid.
func Plan(p types.Profile, policy AcquirePolicy) []Step {
	var out []Step
	sleep := func(pos Position, d time.Duration, why SleepReason) {
		if d > 0 {
			out = append(out, Step{Kind: StepSleep, Pos: pos, Delay: d, Reason: why})
		}
	}

	sleep(noPosition, p.BootDelay, SleepBoot)
	for i, f := range p.Order {
		pr, ok := p.Program(f)
		if !ok {
			continue
		}
		fam := Position{FamilyIndex: i, Family: f, Stage: -1, Frame: -1}
		out = append(out, Step{Kind: StepSelect, Pos: fam, Route: pr.Route})
		if !pr.Route.Direct {
			sleep(fam, p.MuxSettle, SleepMux)
		}

		for j, st := range pr.Stages {
			pos := fam
			pos.Stage = j
			meta := st
			meta.Frames = nil
			perFrame := policy.perFrame(st)

			acquire := Step{Kind: StepAcquire, Pos: pos, Stage: meta, Bus: p.Bus}
			release := Step{Kind: StepRelease, Pos: pos, Stage: meta}
			if !perFrame {
				out = append(out, acquire)
			}
			for k, fr := range st.Frames {
				fp := pos
				fp.Frame = k
				if perFrame {
					acquire.Pos = fp
					out = append(out, acquire)
				}
				out = append(out, Step{Kind: StepTransact, Pos: fp, Route: pr.Route, Stage: meta, Data: fr})
				if perFrame {
					release.Pos = fp
					out = append(out, release)
				}
			}
			if !perFrame {
				out = append(out, release)
			}
			sleep(pos, st.Settle, SleepStage)
		}
		if !pr.BackToBack || i == len(p.Order)-1 {
			sleep(fam, p.FamilySettle, SleepFamily)
		}
	}
	return out
}
