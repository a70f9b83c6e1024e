// Package guard holds small invariant helpers shared by commands, queries and
// domain value types.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller does not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as produced by its constructor. Embed it in a
// struct and call Validate before using the value; a zero-value struct fails.
//
// Example:
//
//	type LoadDroneCommand struct {
//	    serial string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c LoadDroneCommand) Validate() error {
//	    return c.guard.Validate(ErrLoadDroneCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
