// Package guard provides the constructor-guard pattern used by commands and
// value objects that must only be created through their constructor functions.
// A zero-value guard fails validation, which makes accidentally instantiated
// structs detectable before they reach business logic.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and the caller supplied no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built by its constructor.
// Embed one in a struct and set it with NewConstructorGuard inside the
// constructor; Validate then distinguishes constructed instances from zero
// values restored by accident.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, falling back to ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
