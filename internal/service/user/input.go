package user

import (
	"strings"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// UpdateInput holds the optional fields of an account update.
// A nil or empty field is left unchanged.
type UpdateInput struct {
	Username *string
	Password *string
	Name     *string
	Language *string
}

func (i *UpdateInput) normalize() {
	i.Username = trimmedOrNil(i.Username)
	i.Name = trimmedOrNil(i.Name)
	i.Language = trimmedOrNil(i.Language)
	if i.Password != nil && *i.Password == "" {
		i.Password = nil
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Validate re-validates only the fields that are present.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		if msg := domain.ValidateUsername(*i.Username); msg != "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: msg})
		}
	}
	if i.Password != nil {
		if msg := domain.ValidatePassword(*i.Password); msg != "" {
			errs = append(errs, domain.FieldError{Field: "password", Message: msg})
		}
	}
	if i.Name != nil {
		if msg := domain.ValidateName(*i.Name); msg != "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: msg})
		}
	}
	if i.Language != nil {
		if msg := domain.ValidateLanguage(*i.Language); msg != "" {
			errs = append(errs, domain.FieldError{Field: "language", Message: msg})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
