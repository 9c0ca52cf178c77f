package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/insure-atlas/pkg/adapters"
	"github.com/de-tools/insure-atlas/pkg/models/domain"
	"github.com/de-tools/insure-atlas/pkg/store/provider"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	store provider.Catalog
}

func NewHandler(store provider.Catalog) *Handler {
	return &Handler{store: store}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := h.store.Stats(ctx)
	if err != nil {
		writeError(ctx, w, "dashboard stats", err)
		return
	}
	writeJSON(ctx, w, adapters.MapDomainStatsToApi(stats))
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clients, err := h.store.ListClients(ctx, filterFrom(r))
	if err != nil {
		writeError(ctx, w, "clients", err)
		return
	}
	writeJSON(ctx, w, adapters.MapSlice(clients, adapters.MapDomainClientToApi))
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, "client", h.store.GetClient, adapters.MapDomainClientToApi)
}

func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	policies, err := h.store.ListPolicies(ctx, filterFrom(r))
	if err != nil {
		writeError(ctx, w, "policies", err)
		return
	}
	writeJSON(ctx, w, adapters.MapSlice(policies, adapters.MapDomainPolicyToApi))
}

func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, "policy", h.store.GetPolicy, adapters.MapDomainPolicyToApi)
}

func (h *Handler) ListClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := h.store.ListClaims(ctx, filterFrom(r))
	if err != nil {
		writeError(ctx, w, "claims", err)
		return
	}
	writeJSON(ctx, w, adapters.MapSlice(claims, adapters.MapDomainClaimToApi))
}

func (h *Handler) GetClaim(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, "claim", h.store.GetClaim, adapters.MapDomainClaimToApi)
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	payments, err := h.store.ListPayments(ctx, filterFrom(r))
	if err != nil {
		writeError(ctx, w, "payments", err)
		return
	}
	writeJSON(ctx, w, adapters.MapSlice(payments, adapters.MapDomainPaymentToApi))
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	getByID(w, r, "payment", h.store.GetPayment, adapters.MapDomainPaymentToApi)
}

func filterFrom(r *http.Request) domain.Filter {
	q := r.URL.Query()
	return domain.Filter{
		Search: q.Get("q"),
		Status: q.Get("status"),
		Type:   q.Get("type"),
	}
}

func getByID[T, U any](
	w http.ResponseWriter,
	r *http.Request,
	entity string,
	get func(context.Context, int) (T, error),
	mapFn func(T) U,
) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid '"+entity+"' id", http.StatusBadRequest)
		return
	}

	v, err := get(ctx, id)
	if err != nil {
		writeError(ctx, w, entity, err)
		return
	}
	writeJSON(ctx, w, mapFn(v))
}

func writeError(ctx context.Context, w http.ResponseWriter, entity string, err error) {
	if errors.Is(err, provider.ErrNotFound) {
		http.Error(w, entity+" not found", http.StatusNotFound)
		return
	}
	zerolog.Ctx(ctx).Error().Err(err).Str("entity", entity).Msg("failed to load catalog data")
	http.Error(w, "failed to load "+entity, http.StatusInternalServerError)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
