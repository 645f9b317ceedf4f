package bringup

import "rfbringup-go/types"

// State is the position of the sequencer in its linear state machine:
// Idle → Selecting → RunningStage → AwaitingSettle → … → Done.
// Failed is terminal until Reset.
type State uint8

const (
	Idle State = iota
	Selecting
	RunningStage
	AwaitingSettle
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case RunningStage:
		return "running_stage"
	case AwaitingSettle:
		return "awaiting_settle"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Position locates the sequencer inside a profile. Indexes are -1 when not
// applicable (boot delay, between stages).
type Position struct {
	FamilyIndex int
	Family      types.DeviceFamily
	Stage       int
	Frame       int
}

var noPosition = Position{FamilyIndex: -1, Stage: -1, Frame: -1}
