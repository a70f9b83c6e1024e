package drone

import (
	"fmt"
	"slices"

	"dronefleet/internal/pkg/errs"
)

// State is the lifecycle state of a drone. Attachments reuse it for their
// own delivery status (LOADED, DELIVERING, DELIVERED).
//
//	IDLE ──> LOADING ──> (LOADED) ──> DELIVERING ──> DELIVERED ──> RETURNING ──> IDLE
//	  │  ^                               ^
//	  v  │                               │
//	AVAILABLE <──> UNAVAILABLE           │
//	  └──────────────────────────────────┘
type State string

const (
	Idle        State = "IDLE"
	Loading     State = "LOADING"
	Loaded      State = "LOADED"
	Delivering  State = "DELIVERING"
	Delivered   State = "DELIVERED"
	Returning   State = "RETURNING"
	Available   State = "AVAILABLE"
	Unavailable State = "UNAVAILABLE"
)

var allStates = []State{Idle, Loading, Loaded, Delivering, Delivered, Returning, Available, Unavailable}

var loadableStates = []State{Idle, Loading, Available}

// manual transitions; LOADED is reachable only through Drone.Load.
var transitions = map[State][]State{
	Idle:        {Loading, Available, Unavailable},
	Loading:     {Idle, Delivering},
	Loaded:      {Delivering},
	Delivering:  {Delivered},
	Delivered:   {Returning},
	Returning:   {Idle},
	Available:   {Idle, Loading, Delivering, Unavailable},
	Unavailable: {Idle, Available},
}

// States lists every known state in lifecycle order.
func States() []State {
	return slices.Clone(allStates)
}

// LoadableStates lists the states from which a load may be admitted. The
// fleet query filters on exactly this set.
func LoadableStates() []State {
	return slices.Clone(loadableStates)
}

// ParseState converts external input into a State.
func ParseState(s string) (State, error) {
	st := State(s)
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Validate fails for any value outside the known states.
func (s State) Validate() error {
	if !slices.Contains(allStates, s) {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a drone state", string(s)))
	}
	return nil
}

// IsLoadable reports whether a load request may be admitted in this state.
func (s State) IsLoadable() bool {
	return slices.Contains(loadableStates, s)
}

// CanTransitionTo reports whether a manual state change from s to target is allowed.
func (s State) CanTransitionTo(target State) bool {
	return slices.Contains(transitions[s], target)
}

func (s State) String() string {
	return string(s)
}
