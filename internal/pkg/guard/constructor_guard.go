// Package guard implements a constructor guard for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only objects built through their constructor pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is provided and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, which prevents bypassing invariant
// checks by direct struct initialization.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the embedding object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
