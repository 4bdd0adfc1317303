// Package errs provides the classified error kinds used across the rental back end.
//
// The package includes:
//   - ObjectNotFoundError: a referenced or requested record does not exist
//   - ValueIsInvalidError: a supplied value fails a format or business rule
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//
// Each kind has a sentinel (ErrObjectNotFound, ...) returned by Unwrap, so callers classify
// with errors.Is and inspect details with errors.As. The HTTP adapter turns the kinds into
// status codes; services never return an ambiguous nil result for a missing record.
package errs
