package counter

import (
	"strings"
	"time"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// CreateInput holds parameters for counter creation.
// Start is the raw ISO 8601 timestamp sent by the client.
type CreateInput struct {
	Name  string
	Start string
	Color string
}

// validate checks every field and returns the parsed start time.
func (i CreateInput) validate(now time.Time) (time.Time, error) {
	var errs []domain.FieldError

	if msg := domain.ValidateCounterName(i.Name); msg != "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: msg})
	}
	start, msg := domain.ValidatePastTimestamp(i.Start, now)
	if msg != "" {
		errs = append(errs, domain.FieldError{Field: "start", Message: msg})
	}
	if msg := domain.ValidateColor(i.Color); msg != "" {
		errs = append(errs, domain.FieldError{Field: "color", Message: msg})
	}

	if len(errs) > 0 {
		return time.Time{}, &domain.ValidationError{Errors: errs}
	}
	return start, nil
}

// UpdateInput holds the optional fields of a counter update.
// A nil or blank field is left unchanged.
type UpdateInput struct {
	Name  *string
	Start *string
	Color *string
}

// toUpdate validates the present fields and converts them to a store update.
func (i UpdateInput) toUpdate(now time.Time) (domain.CounterUpdate, error) {
	var (
		errs []domain.FieldError
		upd  domain.CounterUpdate
	)

	if isBlank(i.Name) {
		i.Name = nil
	}
	if isBlank(i.Start) {
		i.Start = nil
	}
	if isBlank(i.Color) {
		i.Color = nil
	}

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if msg := domain.ValidateCounterName(name); msg != "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: msg})
		}
		upd.Name = &name
	}
	if i.Start != nil {
		start, msg := domain.ValidatePastTimestamp(*i.Start, now)
		if msg != "" {
			errs = append(errs, domain.FieldError{Field: "start", Message: msg})
		}
		upd.Start = &start
	}
	if i.Color != nil {
		if msg := domain.ValidateColor(*i.Color); msg != "" {
			errs = append(errs, domain.FieldError{Field: "color", Message: msg})
		}
		upd.Color = i.Color
	}

	if len(errs) > 0 {
		return domain.CounterUpdate{}, &domain.ValidationError{Errors: errs}
	}
	return upd, nil
}

func isBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
