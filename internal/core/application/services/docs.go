// Package services holds the application services of the truck-rental back end.
//
// Each service validates input through the entity factories, runs its repository calls in a
// unit of work and returns typed errors from internal/pkg/errs:
//
//   - *errs.ObjectNotFoundError when a referenced record does not exist
//   - *errs.ValueIsInvalidError or *errs.ValueIsRequiredError when input fails validation
//
// Deleting a record that does not exist is not an error.
//
// Services take narrow unit-of-work interfaces listing only the repositories they use, so a
// test double needs to implement nothing more.
package services
