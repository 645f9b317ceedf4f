package bringup

// Progress is passed to ProgressCallback after each executed step.
type Progress struct {
	State    State
	Position Position
	Step     Step
	// Done counts frames transmitted so far; Total is the frame count of the
	// whole profile.
	Done  int
	Total int
}

// ProgressCallback observes bring-up. Implementations must not block.
type ProgressCallback func(Progress)
