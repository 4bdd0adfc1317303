// Package guard marks values that were produced by their constructor or builder so that
// zero-value structs can be told apart from properly built ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in entities as an unexported field. Only NewConstructorGuard
// produces a guard that passes Validate, so a literal such as complaint.Complaint{} is rejected
// by repositories before it reaches the database.
//
// Example:
//
//	var ErrRateNotConstructed = errors.New("DailyRate must be created via NewDailyRate")
//
//	type DailyRate struct {
//	    cents int
//	    guard guard.ConstructorGuard
//	}
//
//	func (r DailyRate) Validate() error {
//	    return r.guard.Validate(ErrRateNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
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
