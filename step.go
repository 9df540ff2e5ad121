package cachecheck

// Step is a state of the check cycle. Every step but StepDone has a single
// exit to failure.
type Step uint8

const (
	StepGenerate Step = iota
	StepWrite
	StepVerifyHit
	StepVerifyValue
	StepDelete
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepGenerate:
		return "generate"
	case StepWrite:
		return "write"
	case StepVerifyHit:
		return "verify_hit"
	case StepVerifyValue:
		return "verify_value"
	case StepDelete:
		return "delete"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}
