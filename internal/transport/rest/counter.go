package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/counter"
)

type counterService interface {
	Create(ctx context.Context, input counter.CreateInput) (*domain.CounterAggregate, error)
	List(ctx context.Context) ([]domain.CounterAggregate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CounterAggregate, error)
	Update(ctx context.Context, id uuid.UUID, input counter.UpdateInput) (*domain.CounterAggregate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CounterHandler serves the /api/counter endpoints.
type CounterHandler struct {
	svc counterService
	log *slog.Logger
}

// NewCounterHandler creates a CounterHandler.
func NewCounterHandler(svc counterService, logger *slog.Logger) *CounterHandler {
	return &CounterHandler{svc: svc, log: logger.With("handler", "counter")}
}

type createCounterRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	Color string `json:"color"`
}

type updateCounterRequest struct {
	Name  *string `json:"name"`
	Start *string `json:"start"`
	Color *string `json:"color"`
}

// Create handles POST /api/counter/create.
func (h *CounterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCounterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	agg, err := h.svc.Create(r.Context(), counter.CreateInput{
		Name:  req.Name,
		Start: req.Start,
		Color: req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCounterResponse(*agg))
}

// List handles GET /api/counter/get.
func (h *CounterHandler) List(w http.ResponseWriter, r *http.Request) {
	aggs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]counterResponse, 0, len(aggs))
	for _, agg := range aggs {
		out = append(out, toCounterResponse(agg))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/counter/getById/{id}.
func (h *CounterHandler) Get(w http.ResponseWriter, r *http.Request) {
	agg, err := h.svc.Get(r.Context(), pathID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCounterResponse(*agg))
}

// Update handles PATCH /api/counter/update/{id}.
func (h *CounterHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCounterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	agg, err := h.svc.Update(r.Context(), pathID(r), counter.UpdateInput{
		Name:  req.Name,
		Start: req.Start,
		Color: req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCounterResponse(*agg))
}

// Delete handles DELETE /api/counter/delete/{id}. Deleting a missing counter succeeds.
func (h *CounterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), pathID(r)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID returns the {id} path value. Routes carrying it are wrapped in
// middleware.PathID, so the value is already known to parse.
func pathID(r *http.Request) uuid.UUID {
	id, _ := uuid.Parse(r.PathValue("id"))
	return id
}
