// SPDX-License-Identifier: EPL-2.0

package convert

// State is the lifecycle position of a conversion job.
type State int32

const (
	StateIdle State = iota
	StateOpening
	StateProbing
	StateDecoding
	StateFinalizing
	StateSucceeded
	StateFailed
	StateCancelled
)

var stateNames = map[State]string{
	StateIdle:       "idle",
	StateOpening:    "opening",
	StateProbing:    "probing",
	StateDecoding:   "decoding",
	StateFinalizing: "finalizing",
	StateSucceeded:  "succeeded",
	StateFailed:     "failed",
	StateCancelled:  "cancelled",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "invalid"
	}

	return name
}

// Terminal reports whether the state is one of the end states.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}
