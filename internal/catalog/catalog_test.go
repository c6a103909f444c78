package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/trvanh/storefront/pkg/errors"
	"github.com/trvanh/storefront/pkg/pagination"
)

func testProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Runner One", Price: 650_000, Category: "Giày", Rating: float64Ptr(4.8)},
		{ID: "p2", Name: "Court High", Price: 890_000, Category: "Giày", Rating: float64Ptr(4.2)},
		{ID: "p3", Name: "Slide Basic", Price: 250_000, Category: "Dép", Rating: float64Ptr(4.0)},
		{ID: "p4", Name: "Crew Socks", Price: 45_000, Category: "Phụ Kiện"},
	}
}

func TestGet(t *testing.T) {
	c := New(testProducts())

	p, err := c.Get("p2")
	require.NoError(t, err)
	assert.Equal(t, "Court High", p.Name)
}

func TestGet_Unknown(t *testing.T) {
	c := New(testProducts())

	_, err := c.Get("ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCategories_DistinctSorted(t *testing.T) {
	c := New(testProducts())

	assert.Equal(t, []string{"Dép", "Giày", "Phụ Kiện"}, c.Categories())
}

func TestDiscountPercent(t *testing.T) {
	p := Product{Price: 650_000, OriginalPrice: int64Ptr(890_000)}
	assert.Equal(t, 27, p.DiscountPercent())

	assert.Equal(t, 0, Product{Price: 650_000}.DiscountPercent())
}

func TestFilterMatches_Category(t *testing.T) {
	f := DefaultFilter()
	f.Categories = []string{"Giày"}

	res := New(testProducts()).Search(f, pagination.DefaultParams())

	require.Len(t, res.Data, 2)
	assert.Equal(t, "p1", res.Data[0].ID)
	assert.Equal(t, "p2", res.Data[1].ID)
}

func TestFilterMatches_PriceRange(t *testing.T) {
	f := DefaultFilter()
	f.PriceMin = 100_000
	f.PriceMax = 300_000

	res := New(testProducts()).Search(f, pagination.DefaultParams())

	require.Len(t, res.Data, 1)
	assert.Equal(t, "p3", res.Data[0].ID)
}

func TestFilterMatches_MinRatingExcludesUnrated(t *testing.T) {
	f := DefaultFilter()
	f.MinRating = 4.0

	res := New(testProducts()).Search(f, pagination.DefaultParams())

	// p4 carries no rating and must not pass a rating filter.
	require.Len(t, res.Data, 3)
	for _, p := range res.Data {
		assert.NotEqual(t, "p4", p.ID)
	}
}

func TestFilterMatches_Query(t *testing.T) {
	f := DefaultFilter()
	f.Query = "runner"

	res := New(testProducts()).Search(f, pagination.DefaultParams())

	require.Len(t, res.Data, 1)
	assert.Equal(t, "p1", res.Data[0].ID)
}

func TestFilterMatches_ZeroValueMatchesAll(t *testing.T) {
	res := New(testProducts()).Search(Filter{}, pagination.DefaultParams())
	assert.Len(t, res.Data, 4)
}

func TestActiveCount_ExcludesPriceRange(t *testing.T) {
	f := DefaultFilter()
	assert.Equal(t, 0, f.ActiveCount())

	f.Categories = []string{"Giày", "Dép"}
	f.MinRating = 4.0
	f.PriceMin = 100_000
	f.PriceMax = 300_000

	// Two categories plus the rating; the price range never counts.
	assert.Equal(t, 3, f.ActiveCount())
}

func TestSearch_Paging(t *testing.T) {
	c := New(testProducts())
	params := pagination.Params{Page: 2, PerPage: 3}

	res := c.Search(DefaultFilter(), params)

	require.Len(t, res.Data, 1)
	assert.Equal(t, "p4", res.Data[0].ID)
	assert.Equal(t, 4, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	assert.False(t, res.HasNext)
	assert.True(t, res.HasPrev)
	assert.Equal(t, []int{1, 2}, res.Pages)
}

func TestSearch_PageBeyondEnd(t *testing.T) {
	c := New(testProducts())
	params := pagination.Params{Page: 9, PerPage: 3}

	res := c.Search(DefaultFilter(), params)

	assert.Empty(t, res.Data)
	assert.Equal(t, 4, res.TotalCount)
}

func TestSeededCatalog(t *testing.T) {
	c := NewSeeded()

	p, err := c.Get("prod-1")
	require.NoError(t, err)
	assert.Equal(t, int64(650_000), p.Price)
	assert.Equal(t, 27, p.DiscountPercent())
	assert.NotEmpty(t, c.Categories())
}
