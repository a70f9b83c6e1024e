package drone

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState     = errors.New("drone is not in a valid state for this operation")
	ErrBatteryTooLow    = errors.New("Drone battery is below 25% - cannot load")
	ErrCapacityReached  = errors.New("Drone weight limit already reached")
	ErrCapacityExceeded = errors.New("drone weight limit would be exceeded")

	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone")
)

// InvalidStateError reports a load attempted in a non-loadable state, or a
// manual transition that the state machine forbids (Target set).
type InvalidStateError struct {
	Current State
	Target  State
}

func NewInvalidStateError(current State) *InvalidStateError {
	return &InvalidStateError{Current: current}
}

func NewInvalidTransitionError(current, target State) *InvalidStateError {
	return &InvalidStateError{Current: current, Target: target}
}

func (e *InvalidStateError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("Drone is not in a loadable state, currently %s", e.Current)
	}
	return fmt.Sprintf("Drone cannot change state from %s to %s", e.Current, e.Target)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// CapacityExceededError carries the numbers of a rejected load, in grams.
type CapacityExceededError struct {
	Current  int
	Incoming int
	Limit    int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"Drone Load Weight would be exceeded with this request load! [current load: %dg | incoming load: %dg]",
		e.Current, e.Incoming,
	)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// IsRuleViolation reports whether err is one of the loading rule errors of this package.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrBatteryTooLow) ||
		errors.Is(err, ErrCapacityReached) ||
		errors.Is(err, ErrCapacityExceeded)
}
