package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/record"
)

type recordService interface {
	Add(ctx context.Context, kind domain.RecordKind, input record.AddInput) (*domain.CommentRecord, error)
	Remove(ctx context.Context, kind domain.RecordKind, rawCounterID string, recordID uuid.UUID) error
	Update(ctx context.Context, recordID uuid.UUID, input record.UpdateInput) (*domain.CommentRecord, error)
}

// RecordHandler serves the record endpoints of one counter list:
// /api/diary-record for diary entries and /api/relapse for resets.
type RecordHandler struct {
	svc  recordService
	kind domain.RecordKind
	log  *slog.Logger
}

// NewRecordHandler creates a RecordHandler bound to kind.
func NewRecordHandler(svc recordService, kind domain.RecordKind, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		svc:  svc,
		kind: kind,
		log:  logger.With("handler", "record", "kind", kind.String()),
	}
}

type createRecordRequest struct {
	CounterID string `json:"counterId"`
	Date      string `json:"date"`
	Comment   string `json:"comment"`
}

type deleteRecordRequest struct {
	CounterID string `json:"counterId"`
}

type updateRecordRequest struct {
	Date    *string `json:"date"`
	Comment *string `json:"comment"`
}

// Create handles POST /create.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Add(r.Context(), h.kind, record.AddInput{
		CounterID: req.CounterID,
		Date:      req.Date,
		Comment:   req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordResponse(*rec))
}

// Delete handles DELETE /delete/{id}. The owning counter is named by
// counterId in the JSON body or, failing that, in the query string.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CounterID == "" {
		req.CounterID = r.URL.Query().Get("counterId")
	}

	if err := h.svc.Remove(r.Context(), h.kind, req.CounterID, pathID(r)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Update handles PATCH /update/{id}.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRecordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Update(r.Context(), pathID(r), record.UpdateInput{
		Date:    req.Date,
		Comment: req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(*rec))
}
