// Package catalog serves the product listing backing the storefront.
// The inventory is an in-memory seed set; listing supports category,
// price-range, and rating filters plus paging.
package catalog

import (
	"sort"
	"strings"

	apperrors "github.com/trvanh/storefront/pkg/errors"
	"github.com/trvanh/storefront/pkg/pagination"
)

// Product is a storefront catalog item. Prices are VND.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   int      `json:"review_count"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Description   string   `json:"description,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
}

// DiscountPercent returns the rounded markdown percentage, or 0 when the
// product has no original price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	orig := float64(*p.OriginalPrice)
	return int((orig-float64(p.Price))/orig*100 + 0.5)
}

// Filter narrows a product listing. Zero value matches everything.
type Filter struct {
	Query      string   `json:"query,omitempty"`
	Categories []string `json:"categories,omitempty"`
	PriceMin   int64    `json:"price_min"`
	PriceMax   int64    `json:"price_max"`
	MinRating  float64  `json:"min_rating"`
}

// DefaultPriceMax is the upper bound of the untouched price slider.
const DefaultPriceMax = 1_000_000

func DefaultFilter() Filter {
	return Filter{PriceMin: 0, PriceMax: DefaultPriceMax}
}

// Matches reports whether p passes every active criterion.
func (f Filter) Matches(p Product) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
		return false
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if c == p.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && p.Price > f.PriceMax {
		return false
	}
	if f.MinRating > 0 {
		if p.Rating == nil || *p.Rating < f.MinRating {
			return false
		}
	}
	return true
}

// ActiveCount is the badge shown next to the filter button. Price range
// is deliberately not counted, matching the storefront's filter panel.
func (f Filter) ActiveCount() int {
	n := len(f.Categories)
	if f.MinRating > 0 {
		n++
	}
	return n
}

// Catalog is a read-only product inventory.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New builds a catalog over the given products, preserving their order.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	return c
}

// NewSeeded builds a catalog over the built-in demo inventory.
func NewSeeded() *Catalog {
	return New(seedProducts())
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, apperrors.NotFound("product", id)
	}
	return c.products[i], nil
}

// Categories returns the distinct categories in the inventory, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Search lists products matching the filter, paged.
func (c *Catalog) Search(filter Filter, params pagination.Params) pagination.Result[Product] {
	var matched []Product
	for _, p := range c.products {
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}

	var page []Product
	if start, end := pagination.ItemRange(params.Page, params.PerPage, len(matched)); start > 0 {
		page = matched[start-1 : end]
	}
	return pagination.NewResult(page, len(matched), params)
}
