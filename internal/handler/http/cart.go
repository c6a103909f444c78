package http

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/trvanh/storefront/internal/store"
	apperrors "github.com/trvanh/storefront/pkg/errors"
	"github.com/trvanh/storefront/pkg/httputil"
	"github.com/trvanh/storefront/pkg/validator"
)

var errMissingLineKey = apperrors.InvalidInput("line key is required")

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	cart   *store.CartStore
	logger *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(cart *store.CartStore, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cart,
		logger: logger,
	}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding an item to the cart.
type AddItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required,min=1,max=500"`
	UnitPrice int64   `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

// UpdateQuantityRequest is the JSON request body for updating a line's
// quantity. Zero or negative removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartView struct {
	Items     any   `json:"items"`
	ItemCount int   `json:"item_count"`
	Subtotal  int64 `json:"subtotal"`
}

// --- Handlers ---

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartView{
		Items:     h.cart.Items(),
		ItemCount: h.cart.ItemCount(),
		Subtotal:  h.cart.Total(),
	}})
}

// GetSummary handles GET /api/v1/cart/summary
func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cart.Summary()})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	line, err := h.cart.AddItem(r.Context(), store.AddItemInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Image:     req.Image,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: line})
}

// UpdateQuantity handles PUT /api/v1/cart/items/*
//
// The line key is the remainder of the path; it may contain slashes
// when a color name does.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	key := lineKeyParam(r)
	if key == "" {
		httputil.WriteError(w, r, errMissingLineKey, h.logger)
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	h.cart.UpdateQuantity(r.Context(), key, req.Quantity)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cart.Items()})
}

// RemoveItem handles DELETE /api/v1/cart/items/*
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	key := lineKeyParam(r)
	if key == "" {
		httputil.WriteError(w, r, errMissingLineKey, h.logger)
		return
	}

	h.cart.RemoveItem(r.Context(), key)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.cart.Items()})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "cleared"}})
}

// lineKeyParam extracts the line key from the wildcard path tail. The
// router matches on the escaped path, so the key may arrive
// percent-encoded.
func lineKeyParam(r *http.Request) string {
	key := chi.URLParam(r, "*")
	if unescaped, err := url.PathUnescape(key); err == nil {
		return unescaped
	}
	return key
}
