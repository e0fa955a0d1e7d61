package core

import "time"

// State is the lifecycle state of a job. It is never stored; Classify derives it.
type State string

const (
	StateScheduled State = "scheduled"
	StateQueued    State = "queued"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateDiscarded State = "discarded"
	StateRetried   State = "retried"

	// StateFinished is a filter alias for succeeded, discarded and retried.
	// Classify never returns it.
	StateFinished State = "finished"
)

var stateNames = []State{
	StateScheduled,
	StateRetried,
	StateQueued,
	StateRunning,
	StateSucceeded,
	StateDiscarded,
}

// StateNames returns the canonical states in facet order.
// The caller owns the returned slice.
func StateNames() []State {
	names := make([]State, len(stateNames))
	copy(names, stateNames)
	return names
}

// FinishedStates returns the states covered by the StateFinished alias.
func FinishedStates() []State {
	return []State{StateSucceeded, StateDiscarded, StateRetried}
}

// ParseState returns the canonical state named s.
// The finished alias is not a canonical state.
func ParseState(s string) (State, bool) {
	for _, st := range stateNames {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Finished reports whether s is a terminal state.
func (s State) Finished() bool {
	return s == StateSucceeded || s == StateDiscarded || s == StateRetried
}

func (s State) String() string {
	return string(s)
}

// Classify derives the state of job at now. Rules are checked in order:
//
//	finished + error + retry link -> retried
//	finished + error              -> discarded
//	finished                      -> succeeded
//	performed                     -> running
//	scheduled in the future       -> scheduled
//	otherwise                     -> queued
//
// Malformed combinations are not special-cased.
func Classify(job *Job, now time.Time) State {
	switch {
	case job.FinishedAt != nil:
		if job.Error != "" && job.RetriedJobID != nil {
			return StateRetried
		}
		if job.Error != "" {
			return StateDiscarded
		}
		return StateSucceeded
	case job.PerformedAt != nil:
		return StateRunning
	case job.ScheduledAt != nil && job.ScheduledAt.After(now):
		return StateScheduled
	default:
		return StateQueued
	}
}
