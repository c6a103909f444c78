// Package storage defines the durable key-value byte store the state
// containers persist through. Adapters never interpret the blobs they hold;
// serialization format and corrupt-blob handling belong to the callers.
package storage

import "context"

// Fixed keys, one per state container. The keys are independent: there is no
// transactional guarantee across them, which is acceptable because the
// containers share no cross-invariant.
const (
	KeyCart      = "storefront:cart"
	KeyFavorites = "storefront:favorites"
	KeyUser      = "storefront:user"
)

// Adapter is a durable key-value byte store. Load returns
// errors.ErrNotFound (wrapped) when no value exists for the key.
type Adapter interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
