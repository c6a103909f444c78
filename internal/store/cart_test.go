package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trvanh/storefront/internal/storage"
	"github.com/trvanh/storefront/internal/storage/memory"
	apperrors "github.com/trvanh/storefront/pkg/errors"
)

func strPtr(s string) *string { return &s }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// faultyAdapter fails every save but accepts loads, for exercising the
// swallowed write-fault path.
type faultyAdapter struct{}

func (faultyAdapter) Load(_ context.Context, key string) ([]byte, error) {
	return nil, apperrors.NotFound("state", key)
}

func (faultyAdapter) Save(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func newCartStore(t *testing.T) (*CartStore, *memory.Adapter) {
	t.Helper()
	adapter := memory.New()
	return NewCartStore(context.Background(), adapter, testLogger()), adapter
}

func sampleInput() AddItemInput {
	return AddItemInput{
		ProductID: "prod-1",
		Name:      "Air Max Classic",
		UnitPrice: 650_000,
		Image:     "https://img.example.com/air-max.jpg",
		Quantity:  1,
		Size:      strPtr("40.5"),
	}
}

// ============================================================================
// AddItem
// ============================================================================

func TestAddItem_NewLine(t *testing.T) {
	s, _ := newCartStore(t)

	line, err := s.AddItem(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Equal(t, "prod-1|40.5|-", line.Key)
	assert.Equal(t, 1, line.Quantity)
	assert.Len(t, s.Items(), 1)
}

func TestAddItem_MergesSameIdentity(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	in := sampleInput()
	in.Quantity = 1
	_, err := s.AddItem(ctx, in)
	require.NoError(t, err)

	in.Quantity = 2
	line, err := s.AddItem(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 3, line.Quantity)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 3, s.ItemCount())
}

func TestAddItem_DifferentVariantsAreDistinctLines(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	in := sampleInput()
	_, err := s.AddItem(ctx, in)
	require.NoError(t, err)

	in.Size = strPtr("42")
	_, err = s.AddItem(ctx, in)
	require.NoError(t, err)

	assert.Len(t, s.Items(), 2)
}

func TestAddItem_MergeKeepsStoredData(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	in := sampleInput()
	_, err := s.AddItem(ctx, in)
	require.NoError(t, err)

	// A stale candidate must not overwrite the stored line's data.
	stale := in
	stale.Name = "Renamed Product"
	stale.UnitPrice = 1
	stale.Image = "https://img.example.com/other.jpg"
	line, err := s.AddItem(ctx, stale)
	require.NoError(t, err)

	assert.Equal(t, "Air Max Classic", line.Name)
	assert.Equal(t, int64(650_000), line.UnitPrice)
	assert.Equal(t, "https://img.example.com/air-max.jpg", line.Image)
}

func TestAddItem_NonPositiveQuantityClampedToOne(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	in := sampleInput()
	in.Quantity = 0
	line, err := s.AddItem(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	in.Quantity = -5
	line, err = s.AddItem(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddItem_MissingProductID(t *testing.T) {
	s, _ := newCartStore(t)

	in := sampleInput()
	in.ProductID = ""
	_, err := s.AddItem(context.Background(), in)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Empty(t, s.Items())
}

func TestAddItem_NegativePrice(t *testing.T) {
	s, _ := newCartStore(t)

	in := sampleInput()
	in.UnitPrice = -1
	_, err := s.AddItem(context.Background(), in)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	for _, id := range []string{"prod-1", "prod-2", "prod-3"} {
		in := sampleInput()
		in.ProductID = id
		in.Size = nil
		_, err := s.AddItem(ctx, in)
		require.NoError(t, err)
	}

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "prod-1", items[0].ProductID)
	assert.Equal(t, "prod-2", items[1].ProductID)
	assert.Equal(t, "prod-3", items[2].ProductID)
}

// ============================================================================
// UpdateQuantity / RemoveItem / Clear
// ============================================================================

func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	line, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	s.UpdateQuantity(ctx, line.Key, 7)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	line, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	s.UpdateQuantity(ctx, line.Key, 0)

	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.ItemCount())
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	line, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	s.UpdateQuantity(ctx, line.Key, -5)

	assert.Empty(t, s.Items())
}

func TestUpdateQuantity_AbsentKeyIsNoOp(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	// Must not panic, error, or change existing lines.
	s.UpdateQuantity(ctx, "ghost|-|-", 3)

	require.Len(t, s.Items(), 1)
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	line, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	s.RemoveItem(ctx, line.Key)

	assert.Empty(t, s.Items())
}

func TestRemoveItem_AbsentKeyIsNoOp(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	s.RemoveItem(ctx, "ghost|-|-")

	assert.Len(t, s.Items(), 1)
}

func TestClear(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	s.Clear(ctx)

	assert.Empty(t, s.Items())
	assert.Equal(t, int64(0), s.Total())
}

// ============================================================================
// Derived aggregates
// ============================================================================

func TestTotalAndItemCount(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, AddItemInput{ProductID: "a", UnitPrice: 100, Quantity: 2})
	require.NoError(t, err)
	_, err = s.AddItem(ctx, AddItemInput{ProductID: "b", UnitPrice: 50, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(350), s.Total())
	assert.Equal(t, 5, s.ItemCount())
}

func TestSummary_FlatFeeBelowThreshold(t *testing.T) {
	s, _ := newCartStore(t)

	_, err := s.AddItem(context.Background(), AddItemInput{ProductID: "a", UnitPrice: 650_000, Quantity: 1})
	require.NoError(t, err)

	sum := s.Summary()
	assert.Equal(t, int64(650_000), sum.Subtotal)
	assert.Equal(t, DeliveryFee, sum.DeliveryFee)
	assert.Equal(t, int64(650_000)+DeliveryFee, sum.Total)
	assert.False(t, sum.FreeShipping)
}

func TestSummary_FreeShippingAtThreshold(t *testing.T) {
	s, _ := newCartStore(t)

	_, err := s.AddItem(context.Background(), AddItemInput{ProductID: "a", UnitPrice: FreeShippingThreshold, Quantity: 1})
	require.NoError(t, err)

	sum := s.Summary()
	assert.Equal(t, int64(0), sum.DeliveryFee)
	assert.Equal(t, FreeShippingThreshold, sum.Total)
	assert.True(t, sum.FreeShipping)
}

func TestSummary_EmptyCartHasNoFee(t *testing.T) {
	s, _ := newCartStore(t)

	sum := s.Summary()
	assert.Equal(t, int64(0), sum.Subtotal)
	assert.Equal(t, int64(0), sum.DeliveryFee)
	assert.Equal(t, int64(0), sum.Total)
}

// ============================================================================
// Persistence
// ============================================================================

func TestPersistence_RoundTripNewStore(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()
	s := NewCartStore(ctx, adapter, testLogger())

	in := sampleInput()
	in.Quantity = 2
	_, err := s.AddItem(ctx, in)
	require.NoError(t, err)

	in2 := sampleInput()
	in2.ProductID = "prod-2"
	in2.Size = nil
	in2.Color = strPtr("Grey")
	_, err = s.AddItem(ctx, in2)
	require.NoError(t, err)

	// Discard the in-memory store; a fresh one over the same adapter must
	// reproduce an identical snapshot.
	fresh := NewCartStore(ctx, adapter, testLogger())

	assert.Equal(t, s.Items(), fresh.Items())
	assert.Equal(t, 3, fresh.ItemCount())
}

func TestHydrate_CorruptBlobYieldsEmptyCart(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()
	require.NoError(t, adapter.Save(ctx, storage.KeyCart, []byte("{{{not json")))

	s := NewCartStore(ctx, adapter, testLogger())

	assert.Empty(t, s.Items())
}

func TestAddItem_SaveFaultKeepsInMemoryMutation(t *testing.T) {
	s := NewCartStore(context.Background(), faultyAdapter{}, testLogger())

	line, err := s.AddItem(context.Background(), sampleInput())

	// The write fault is swallowed; the UI still reflects the action.
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Len(t, s.Items(), 1)
}

func TestItems_ReturnsCopy(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity)
}

// ============================================================================
// Subscriptions
// ============================================================================

func TestSubscribe_NotifiedOnMutations(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	var calls int
	cancel := s.Subscribe(func() { calls++ })
	defer cancel()

	line, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	s.UpdateQuantity(ctx, line.Key, 4)
	assert.Equal(t, 2, calls)

	s.Clear(ctx)
	assert.Equal(t, 3, calls)
}

func TestSubscribe_SubscriberMayReadStore(t *testing.T) {
	s, _ := newCartStore(t)

	var observed int
	cancel := s.Subscribe(func() { observed = s.ItemCount() })
	defer cancel()

	_, err := s.AddItem(context.Background(), AddItemInput{ProductID: "a", UnitPrice: 10, Quantity: 3})
	require.NoError(t, err)

	// The subscriber sees the post-mutation snapshot.
	assert.Equal(t, 3, observed)
}

func TestSubscribe_CancelStopsNotifications(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	var calls int
	cancel := s.Subscribe(func() { calls++ })

	_, err := s.AddItem(ctx, sampleInput())
	require.NoError(t, err)
	cancel()

	s.Clear(ctx)

	assert.Equal(t, 1, calls)
}

func TestSubscribe_MultipleSubscribers(t *testing.T) {
	s, _ := newCartStore(t)

	var a, b int
	cancelA := s.Subscribe(func() { a++ })
	defer cancelA()
	cancelB := s.Subscribe(func() { b++ })
	defer cancelB()

	_, err := s.AddItem(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestStores_Independent(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()

	cart := NewCartStore(ctx, adapter, testLogger())
	favorites := NewFavoriteStore(ctx, adapter, testLogger())

	_, err := cart.AddItem(ctx, sampleInput())
	require.NoError(t, err)

	// Cart mutations never leak into the favorites key.
	assert.Equal(t, 0, favorites.ItemCount())

	fresh := NewFavoriteStore(ctx, adapter, testLogger())
	assert.Equal(t, 0, fresh.ItemCount())
}

func TestCartLine_JSONOmitsAbsentVariant(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()
	s := NewCartStore(ctx, adapter, testLogger())

	_, err := s.AddItem(ctx, AddItemInput{ProductID: "prod-9", UnitPrice: 10, Quantity: 1})
	require.NoError(t, err)

	blob, err := adapter.Load(ctx, storage.KeyCart)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), `"size"`)
	assert.NotContains(t, string(blob), `"color"`)
}

func TestPersistence_VariantFieldsSurviveRoundTrip(t *testing.T) {
	adapter := memory.New()
	ctx := context.Background()
	s := NewCartStore(ctx, adapter, testLogger())

	in := sampleInput()
	in.Color = strPtr("Black/White")
	_, err := s.AddItem(ctx, in)
	require.NoError(t, err)

	fresh := NewCartStore(ctx, adapter, testLogger())
	items := fresh.Items()
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Size)
	assert.Equal(t, "40.5", *items[0].Size)
	require.NotNil(t, items[0].Color)
	assert.Equal(t, "Black/White", *items[0].Color)
}
