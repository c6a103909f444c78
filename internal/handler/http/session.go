package http

import (
	"log/slog"
	"net/http"

	"github.com/trvanh/storefront/internal/store"
	"github.com/trvanh/storefront/pkg/httputil"
	"github.com/trvanh/storefront/pkg/validator"
)

// SessionHandler handles HTTP requests for sign-in state.
type SessionHandler struct {
	session *store.SessionStore
	logger  *slog.Logger
}

func NewSessionHandler(session *store.SessionStore, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

// LoginRequest is the JSON request body for signing in.
type LoginRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	FirstName    string  `json:"first_name" validate:"max=100"`
	LastName     string  `json:"last_name" validate:"max=100"`
	ShoppingPref *string `json:"shopping_preference,omitempty"`
}

type sessionView struct {
	LoggedIn bool           `json:"logged_in"`
	Profile  *store.Profile `json:"profile,omitempty"`
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.session.Current()
	view := sessionView{LoggedIn: ok}
	if ok {
		view.Profile = &p
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	p, err := h.session.Login(r.Context(), store.Profile{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ShoppingPref: req.ShoppingPref,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sessionView{LoggedIn: true, Profile: &p}})
}

// Logout handles DELETE /api/v1/session
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sessionView{LoggedIn: false}})
}
