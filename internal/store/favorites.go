package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trvanh/storefront/internal/domain"
	"github.com/trvanh/storefront/internal/storage"
	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// FavoriteStore owns the saved-products snapshot. It follows the same
// hydrate-once, persist-on-every-mutation, notify-after-mutation contract
// as CartStore. Entries key on product ID alone.
type FavoriteStore struct {
	adapter storage.Adapter
	logger  *slog.Logger

	mu      sync.Mutex
	entries domain.FavoriteSnapshot

	subs notifier
}

// NewFavoriteStore creates a favorite store hydrated from the persistence
// adapter. A missing or corrupt persisted snapshot yields an empty store.
func NewFavoriteStore(ctx context.Context, adapter storage.Adapter, logger *slog.Logger) *FavoriteStore {
	s := &FavoriteStore{
		adapter: adapter,
		logger:  logger,
	}
	storage.LoadJSON(ctx, adapter, storage.KeyFavorites, &s.entries, logger)
	return s
}

// Toggle flips the saved state of the given product: absent entries are
// appended, present ones removed. The entry is stored as given, so toggling
// a product back on replaces the prior snapshot entirely (its price or
// rating may have changed). Returns the resulting membership: true means
// the product is now favorited.
func (s *FavoriteStore) Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error) {
	if entry.ProductID == "" {
		return false, apperrors.InvalidInput("product id is required")
	}

	s.mu.Lock()
	var favorited bool
	if i := s.entries.FindIndex(entry.ProductID); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		favorited = false
	} else {
		s.entries = append(s.entries, entry)
		favorited = true
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.subs.notify()

	s.logger.InfoContext(ctx, "favorite toggled",
		slog.String("product_id", entry.ProductID),
		slog.Bool("favorited", favorited),
	)

	return favorited, nil
}

// RemoveItem removes the entry for the given product ID unconditionally.
// An absent ID is a no-op, not an error.
func (s *FavoriteStore) RemoveItem(ctx context.Context, productID string) {
	s.mu.Lock()
	i := s.entries.FindIndex(productID)
	if i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if i < 0 {
		return
	}

	s.subs.notify()

	s.logger.InfoContext(ctx, "favorite removed",
		slog.String("product_id", productID),
	)
}

// IsFavorite reports whether the product is currently saved. Pure
// membership test: no mutation, no persistence.
func (s *FavoriteStore) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Contains(productID)
}

// Items returns a copy of the current snapshot in insertion order.
func (s *FavoriteStore) Items() domain.FavoriteSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Clone()
}

// ItemCount returns the number of saved products.
func (s *FavoriteStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Subscribe registers fn to be called synchronously after every mutation.
// The returned cancel function removes the subscription.
func (s *FavoriteStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.subscribe(fn)
}

func (s *FavoriteStore) persistLocked(ctx context.Context) {
	storage.SaveJSON(ctx, s.adapter, storage.KeyFavorites, s.entries, s.logger)
}
