// Package guard provides a constructor guard for value objects, entities,
// commands, and queries. Embedding a ConstructorGuard in a struct makes the
// zero value detectable, so objects created outside their designated
// constructor fail validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard holds an internal flag that is only set
// when the object is built through NewConstructorGuard; a zero-value struct
// fails validation.
//
// Example usage:
//
//	var ErrOrderNotConstructed = errors.New("Order must be created via NewOrder")
//
//	type Order struct {
//	    id    int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrder(id int) Order {
//	    return Order{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (o Order) Validate() error {
//	    return o.guard.Validate(ErrOrderNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call this in the constructor of guarded objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns validationError for zero-value guards, or ErrDefaultConstructorGuard
// when validationError is nil. Returns nil for properly constructed objects.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
