package editor

// PopoverKind names the asynchronous UI surfaces the editor manages.
type PopoverKind int

const (
	PopoverCompletion PopoverKind = iota
	PopoverHover
	PopoverDefinition
	PopoverCodeAction
)

// String returns the popover kind name.
func (k PopoverKind) String() string {
	switch k {
	case PopoverCompletion:
		return "completion"
	case PopoverHover:
		return "hover"
	case PopoverDefinition:
		return "definition"
	default:
		return "code-action"
	}
}

// Phase is a popover's lifecycle state. The machine moves Hidden →
// Pending → Shown and back to Hidden; a new trigger while Pending
// replaces the outstanding query rather than queueing behind it.
type Phase int

const (
	PhaseHidden Phase = iota
	PhasePending
	PhaseShown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseShown:
		return "shown"
	default:
		return "hidden"
	}
}

// PopoverChange is the payload published on popover transitions.
type PopoverChange struct {
	Kind  PopoverKind
	Phase Phase
}
