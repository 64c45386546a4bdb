package domain

import "context"

// Store is the port for the opaque string-keyed persistence medium. The
// record repository serialises whole collections into single slots; the
// medium itself knows nothing about record shapes.
type Store interface {
	// Get returns the value for key and whether the slot exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value for key, creating the slot if needed.
	Set(ctx context.Context, key, value string) error
	// Delete removes the slot for key; deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}
