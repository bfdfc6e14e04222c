package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []fieldErrorResponse `json:"errors"`
}

type recordResponse struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Comment string    `json:"comment"`
}

type diaryResponse struct {
	Records []recordResponse `json:"records"`
}

type counterResponse struct {
	ID     string           `json:"id"`
	User   string           `json:"user"`
	Name   string           `json:"name"`
	Start  time.Time        `json:"start"`
	Color  string           `json:"color"`
	Resets []recordResponse `json:"resets"`
	Diary  diaryResponse    `json:"diary"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// decodeJSON reads the request body into dst. An empty body leaves dst zeroed
// so that field validation reports what is missing. Returns false after
// writing the error response.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	writeMessage(w, http.StatusBadRequest, "Illegal JSON")
	return false
}

// handleError maps service errors to responses shared by every handler.
// Anything unclassified is logged and reported as a generic client error.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, toValidationResponse(verr))
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeMessage(w, http.StatusBadRequest, "Invalid username or password")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "Already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Missing auth token")
	default:
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeMessage(w, http.StatusBadRequest, "Bad Request")
	}
}

func toValidationResponse(verr *domain.ValidationError) validationResponse {
	out := validationResponse{Errors: make([]fieldErrorResponse, 0, len(verr.Errors))}
	for _, fe := range verr.Errors {
		out.Errors = append(out.Errors, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return out
}

func toRecordResponse(rec domain.CommentRecord) recordResponse {
	return recordResponse{
		ID:      rec.ID.String(),
		Date:    rec.Date,
		Comment: rec.Comment,
	}
}

func toRecordResponses(recs []domain.CommentRecord) []recordResponse {
	out := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toRecordResponse(rec))
	}
	return out
}

func toCounterResponse(agg domain.CounterAggregate) counterResponse {
	return counterResponse{
		ID:     agg.ID.String(),
		User:   agg.UserID.String(),
		Name:   agg.Name,
		Start:  agg.Start,
		Color:  agg.Color,
		Resets: toRecordResponses(agg.Resets),
		Diary:  diaryResponse{Records: toRecordResponses(agg.Diary)},
	}
}
