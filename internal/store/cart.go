package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trvanh/storefront/internal/domain"
	"github.com/trvanh/storefront/internal/storage"
	apperrors "github.com/trvanh/storefront/pkg/errors"
)

// Delivery-fee policy. The fee is flat and waived once the subtotal reaches
// the free-shipping threshold or when the cart is empty.
const (
	// DeliveryFee is the flat delivery fee in the smallest currency unit.
	DeliveryFee int64 = 30_000
	// FreeShippingThreshold is the subtotal at which delivery becomes free.
	FreeShippingThreshold int64 = 3_600_000
)

// AddItemInput holds the parameters for adding an item to the cart. The
// identity key is derived internally, never supplied by the caller.
type AddItemInput struct {
	ProductID string
	Name      string
	UnitPrice int64
	Image     string
	Quantity  int
	Size      *string
	Color     *string
}

// OrderSummary is the derived cart total including the delivery fee.
type OrderSummary struct {
	Subtotal     int64 `json:"subtotal"`
	DeliveryFee  int64 `json:"delivery_fee"`
	Total        int64 `json:"total"`
	ItemCount    int   `json:"item_count"`
	FreeShipping bool  `json:"free_shipping"`
}

// CartStore owns the cart snapshot. It hydrates once at construction,
// applies each mutation to the in-memory snapshot, persists the full
// snapshot before returning, and then notifies subscribers. Persistence
// faults are logged and swallowed: the in-memory state is kept and the
// shopping flow is never blocked by storage.
type CartStore struct {
	adapter storage.Adapter
	logger  *slog.Logger

	mu    sync.Mutex
	lines domain.CartSnapshot

	subs notifier
}

// NewCartStore creates a cart store hydrated from the persistence adapter.
// A missing or corrupt persisted snapshot yields an empty cart.
func NewCartStore(ctx context.Context, adapter storage.Adapter, logger *slog.Logger) *CartStore {
	s := &CartStore{
		adapter: adapter,
		logger:  logger,
	}
	storage.LoadJSON(ctx, adapter, storage.KeyCart, &s.lines, logger)
	return s
}

// AddItem adds a candidate line to the cart. If a line with the same derived
// identity key already exists, its quantity is incremented and the stored
// name, price, and image are kept; candidate data seeds only brand-new
// lines. A non-positive candidate quantity is clamped to 1.
func (s *CartStore) AddItem(ctx context.Context, input AddItemInput) (domain.CartLine, error) {
	if input.ProductID == "" {
		return domain.CartLine{}, apperrors.InvalidInput("product id is required")
	}
	if input.UnitPrice < 0 {
		return domain.CartLine{}, apperrors.InvalidInput("unit price must not be negative")
	}

	qty := input.Quantity
	if qty < 1 {
		qty = 1
	}

	key := domain.LineKey(input.ProductID, input.Size, input.Color)

	s.mu.Lock()
	var line domain.CartLine
	if i := s.lines.FindIndex(key); i >= 0 {
		s.lines[i].Quantity += qty
		line = s.lines[i]
	} else {
		line = domain.CartLine{
			Key:       key,
			ProductID: input.ProductID,
			Name:      input.Name,
			UnitPrice: input.UnitPrice,
			Image:     input.Image,
			Quantity:  qty,
			Size:      input.Size,
			Color:     input.Color,
		}
		s.lines = append(s.lines, line)
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.subs.notify()

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("line_key", key),
		slog.Int("quantity", qty),
	)

	return line, nil
}

// UpdateQuantity sets the quantity of the line with the given identity key.
// A quantity of zero or less removes the line entirely. An absent key is a
// no-op, not an error; the snapshot is persisted either way.
func (s *CartStore) UpdateQuantity(ctx context.Context, key string, quantity int) {
	s.mu.Lock()
	if i := s.lines.FindIndex(key); i >= 0 {
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
	}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.subs.notify()

	s.logger.InfoContext(ctx, "cart line quantity updated",
		slog.String("line_key", key),
		slog.Int("quantity", quantity),
	)
}

// RemoveItem deletes the line with the given identity key. An absent key is
// a no-op, not an error.
func (s *CartStore) RemoveItem(ctx context.Context, key string) {
	s.mu.Lock()
	i := s.lines.FindIndex(key)
	if i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if i < 0 {
		return
	}

	s.subs.notify()

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("line_key", key),
	)
}

// Clear empties the cart, e.g. after checkout hands the order off.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = domain.CartSnapshot{}
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.subs.notify()

	s.logger.InfoContext(ctx, "cart cleared")
}

// Items returns a copy of the current snapshot in insertion order.
func (s *CartStore) Items() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines.Clone()
}

// Total returns the cart subtotal in the smallest currency unit.
func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines.Total()
}

// ItemCount returns the sum of line quantities.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines.ItemCount()
}

// Summary computes the order summary under the delivery-fee policy.
func (s *CartStore) Summary() OrderSummary {
	s.mu.Lock()
	subtotal := s.lines.Total()
	count := s.lines.ItemCount()
	s.mu.Unlock()

	free := subtotal >= FreeShippingThreshold
	var fee int64
	if subtotal > 0 && !free {
		fee = DeliveryFee
	}

	return OrderSummary{
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Total:        subtotal + fee,
		ItemCount:    count,
		FreeShipping: free,
	}
}

// Subscribe registers fn to be called synchronously after every mutation.
// The returned cancel function removes the subscription.
func (s *CartStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.subscribe(fn)
}

func (s *CartStore) persistLocked(ctx context.Context) {
	storage.SaveJSON(ctx, s.adapter, storage.KeyCart, s.lines, s.logger)
}
