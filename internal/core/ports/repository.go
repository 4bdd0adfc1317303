// Package ports defines the persistence contracts the services depend on.
// Adapters in internal/adapters/out implement them; services never see GORM types.
package ports

import "context"

// Repository is the contract every entity store shares.
//
// Identifiers are drawn from the store with NextID before the entity factory runs, so the
// entity handed to Save is already complete. Get returns an error wrapping
// errs.ErrObjectNotFound when the id is unknown; Delete of an unknown id is a no-op.
type Repository[E any] interface {
	// NextID reserves a fresh identifier.
	NextID(ctx context.Context) (int, error)

	// Get returns the entity stored under id.
	Get(ctx context.Context, id int) (E, error)

	// List returns every entity in ascending id order.
	List(ctx context.Context) ([]E, error)

	// Save inserts the entity or replaces the stored row with the same id.
	Save(ctx context.Context, entity E) error

	// Delete removes the entity stored under id.
	Delete(ctx context.Context, id int) error
}
