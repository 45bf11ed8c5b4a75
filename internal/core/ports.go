package core

import "context"

// SecretResolver looks up the signing secret registered for a consumer.
// Implementations: Kong admin API resolver, static (in-config) resolver.
type SecretResolver interface {
	// Name returns the identifier of this resolver (as used in config).
	Name() string

	// Resolve returns the signing secret for the given consumer.
	// It fails with an *UpstreamError if the gateway answers with a
	// non-success status and with ErrNoCredentials if the consumer has no
	// secret registered.
	Resolve(ctx context.Context, consumerID string) ([]byte, error)
}

// ItemStore is the persistence port for items.
// Implementations: in-memory store, Postgres store.
type ItemStore interface {
	// Create inserts the item and returns it with its assigned ID.
	Create(ctx context.Context, item Item) (Item, error)

	// Get returns the item with the given ID, or ErrItemNotFound.
	Get(ctx context.Context, id int64) (Item, error)

	// Update replaces name and description of an existing item,
	// or fails with ErrItemNotFound.
	Update(ctx context.Context, item Item) (Item, error)

	// Delete removes the item with the given ID, or fails with ErrItemNotFound.
	Delete(ctx context.Context, id int64) error

	// List returns all items ordered by ID.
	List(ctx context.Context) ([]Item, error)
}
