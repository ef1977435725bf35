package cpu

// Phase is a step of the instruction cycle.
type Phase int

// Instruction cycle phases.
const (
	PhaseFetch Phase = iota
	PhaseDecode
	PhaseExecute
)

var phaseNames = [...]string{"fetch", "decode", "execute"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// State is the run state of the processor.
type State int

// Processor run states.
const (
	StateReady   State = iota // instructions can be executed
	StateHalted               // halted by an instruction or a stop request
	StateFaulted              // a fatal error occurred
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateHalted:
		return "halted"
	case StateFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// StopReason describes why the last run ended.
type StopReason int

// Stop reasons.
const (
	ReasonNone StopReason = iota
	ReasonHalt
	ReasonStop
	ReasonRequested
	ReasonBreakpoint
	ReasonCycleLimit
	ReasonStepLimit
	ReasonCanceled
	ReasonFault
)

var reasonNames = [...]string{
	ReasonNone:       "none",
	ReasonHalt:       "halt instruction",
	ReasonStop:       "stop instruction",
	ReasonRequested:  "stop requested",
	ReasonBreakpoint: "breakpoint",
	ReasonCycleLimit: "cycle limit",
	ReasonStepLimit:  "step limit",
	ReasonCanceled:   "canceled",
	ReasonFault:      "fault",
}

func (r StopReason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}
	return reasonNames[r]
}
