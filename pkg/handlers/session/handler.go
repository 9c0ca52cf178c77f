package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/insure-atlas/pkg/models/api"
	"github.com/de-tools/insure-atlas/pkg/services/session"
	"github.com/rs/zerolog"
)

type Handler struct {
	state session.State
}

func NewHandler(state session.State) *Handler {
	return &Handler{state: state}
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w, r)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.state.SignIn(creds.Email, creds.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		logger.Warn().Str("email", creds.Email).Msg("rejected sign in")
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("sign in failed")
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	logger.Info().Msg("signed in")
	h.writeSession(w, r)
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.state.SignOut()
	zerolog.Ctx(r.Context()).Info().Msg("signed out")
	h.writeSession(w, r)
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(api.Session{Authenticated: h.state.Authenticated()})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode session")
	}
}
