package cachecheck

import "time"

// Hooks lightweight callbacks for check outcomes.
// Implementations MUST be cheap and non-blocking; they run inside Check.
type Hooks interface {
	// A check produced a Result. step is where it stopped: StepDone on
	// success, otherwise the step that failed.
	CheckCompleted(key string, step Step, r Result, elapsed time.Duration)

	// Check returned an unclassified error instead of a Result.
	UnexpectedError(key string, step Step, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CheckCompleted(string, Step, Result, time.Duration) {}
func (NopHooks) UnexpectedError(string, Step, error)                {}
