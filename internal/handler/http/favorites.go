package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trvanh/storefront/internal/domain"
	"github.com/trvanh/storefront/internal/store"
	apperrors "github.com/trvanh/storefront/pkg/errors"
	"github.com/trvanh/storefront/pkg/httputil"
	"github.com/trvanh/storefront/pkg/validator"
)

// FavoritesHandler handles HTTP requests for favorites endpoints.
type FavoritesHandler struct {
	favorites *store.FavoriteStore
	logger    *slog.Logger
}

func NewFavoritesHandler(favorites *store.FavoriteStore, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		logger:    logger,
	}
}

// ToggleRequest is the JSON request body for toggling a favorite.
type ToggleRequest struct {
	ProductID     string   `json:"product_id" validate:"required"`
	Name          string   `json:"name" validate:"required,min=1,max=500"`
	UnitPrice     int64    `json:"price" validate:"gte=0"`
	OriginalPrice *int64   `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        *float64 `json:"rating,omitempty"`
}

type favoritesView struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

// List handles GET /api/v1/favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: favoritesView{
		Items: h.favorites.Items(),
		Count: h.favorites.ItemCount(),
	}})
}

// Toggle handles POST /api/v1/favorites/toggle
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	favorited, err := h.favorites.Toggle(r.Context(), domain.FavoriteEntry{
		ProductID:     req.ProductID,
		Name:          req.Name,
		UnitPrice:     req.UnitPrice,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Category:      req.Category,
		Rating:        req.Rating,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"favorited": favorited}})
}

// Remove handles DELETE /api/v1/favorites/{productId}
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		httputil.WriteError(w, r, apperrors.InvalidInput("productId is required"), h.logger)
		return
	}

	h.favorites.RemoveItem(r.Context(), productID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: favoritesView{
		Items: h.favorites.Items(),
		Count: h.favorites.ItemCount(),
	}})
}
