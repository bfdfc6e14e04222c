package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// AddInput holds parameters for adding a record to a counter.
// CounterID and Date are raw client values.
type AddInput struct {
	CounterID string
	Date      string
	Comment   string
}

type addParams struct {
	counterID uuid.UUID
	date      time.Time
	comment   string
}

func (i AddInput) validate(now time.Time) (addParams, error) {
	var (
		errs []domain.FieldError
		p    addParams
		err  error
	)

	if p.counterID, err = uuid.Parse(strings.TrimSpace(i.CounterID)); err != nil {
		errs = append(errs, domain.FieldError{Field: "counterId", Message: "must be a valid id"})
	}
	date, msg := domain.ValidatePastTimestamp(i.Date, now)
	if msg != "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: msg})
	}
	p.date = date
	p.comment = strings.TrimSpace(i.Comment)
	if msg := domain.ValidateComment(p.comment); msg != "" {
		errs = append(errs, domain.FieldError{Field: "comment", Message: msg})
	}

	if len(errs) > 0 {
		return addParams{}, &domain.ValidationError{Errors: errs}
	}
	return p, nil
}

// UpdateInput holds the optional fields of a record update.
// A nil field or a blank date is left unchanged. An empty comment clears it.
type UpdateInput struct {
	Date    *string
	Comment *string
}

func (i UpdateInput) toUpdate(now time.Time) (domain.RecordUpdate, error) {
	var (
		errs []domain.FieldError
		upd  domain.RecordUpdate
	)

	if i.Date != nil && strings.TrimSpace(*i.Date) == "" {
		i.Date = nil
	}
	if i.Date != nil {
		date, msg := domain.ValidatePastTimestamp(*i.Date, now)
		if msg != "" {
			errs = append(errs, domain.FieldError{Field: "date", Message: msg})
		}
		upd.Date = &date
	}
	if i.Comment != nil {
		comment := strings.TrimSpace(*i.Comment)
		if msg := domain.ValidateComment(comment); msg != "" {
			errs = append(errs, domain.FieldError{Field: "comment", Message: msg})
		}
		upd.Comment = &comment
	}

	if len(errs) > 0 {
		return domain.RecordUpdate{}, &domain.ValidationError{Errors: errs}
	}
	return upd, nil
}

// parseCounterID validates the counter id a removal is scoped to.
// A missing id names no counter at all and is reported as not found.
func parseCounterID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("counter: %w", domain.ErrNotFound)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("counterId", "must be a valid id")
	}
	return id, nil
}
