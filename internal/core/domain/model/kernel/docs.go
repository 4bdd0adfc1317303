// Package kernel provides the primitive checks and date helpers shared by every rental entity.
//
// All predicates use "is-invalid" polarity: they return true when the value must be rejected.
// Factories combine them and turn a true result into a classified error from package errs.
package kernel
