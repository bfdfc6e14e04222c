package auth

import (
	"strings"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
)

// SignupInput holds parameters for the signup operation.
type SignupInput struct {
	Username string
	Password string
	Name     string
	Language string
}

func (i *SignupInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Name = strings.TrimSpace(i.Name)
	i.Language = strings.TrimSpace(i.Language)
}

// Validate validates the signup input and reports every broken field.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	if msg := domain.ValidateUsername(i.Username); msg != "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: msg})
	}
	if msg := domain.ValidatePassword(i.Password); msg != "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: msg})
	}
	if msg := domain.ValidateName(i.Name); msg != "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: msg})
	}
	if msg := domain.ValidateLanguage(i.Language); msg != "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: msg})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks the login input with the same rules as signup.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if msg := domain.ValidateUsername(i.Username); msg != "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: msg})
	}
	if msg := domain.ValidatePassword(i.Password); msg != "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: msg})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
