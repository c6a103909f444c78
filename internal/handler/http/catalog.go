package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trvanh/storefront/internal/catalog"
	"github.com/trvanh/storefront/pkg/httputil"
	"github.com/trvanh/storefront/pkg/pagination"
)

// CatalogHandler handles HTTP requests for product listing endpoints.
type CatalogHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewCatalogHandler(c *catalog.Catalog, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
		logger:  logger,
	}
}

type productListResponse struct {
	pagination.Result[catalog.Product]
	ActiveFilters int `json:"active_filters"`
}

// List handles GET /api/v1/products
//
// Supported query parameters: q, category (repeatable), price_min,
// price_max, min_rating, page, per_page.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromRequest(r)
	params := pagination.FromRequest(r)

	result := h.catalog.Search(filter, params)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: productListResponse{
		Result:        result,
		ActiveFilters: filter.ActiveCount(),
	}})
}

// Get handles GET /api/v1/products/{productId}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(chi.URLParam(r, "productId"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: struct {
		catalog.Product
		Discount int `json:"discount"`
	}{Product: p, Discount: p.DiscountPercent()}})
}

// Categories handles GET /api/v1/products/categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.Categories()})
}

func filterFromRequest(r *http.Request) catalog.Filter {
	q := r.URL.Query()

	f := catalog.DefaultFilter()
	f.Query = q.Get("q")
	f.Categories = q["category"]

	if v, err := strconv.ParseInt(q.Get("price_min"), 10, 64); err == nil && v >= 0 {
		f.PriceMin = v
	}
	if v, err := strconv.ParseInt(q.Get("price_max"), 10, 64); err == nil && v > 0 {
		f.PriceMax = v
	}
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil && v > 0 {
		f.MinRating = v
	}
	return f
}
