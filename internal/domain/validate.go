package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Field limits shared by the services.
const (
	UsernameMinLen   = 4
	UsernameMaxLen   = 20
	PasswordMinLen   = 8
	PasswordMaxBytes = 72
	NameMaxLen       = 20
	LanguageMaxLen   = 35
	CounterNameMax   = 30
	ColorMaxLen      = 64
	CommentMaxLen    = 500
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// ValidateUsername returns a message describing the first broken rule,
// or "" if the (already trimmed) username is acceptable.
func ValidateUsername(username string) string {
	n := utf8.RuneCountInString(username)
	switch {
	case username == "":
		return "required"
	case n < UsernameMinLen || n > UsernameMaxLen:
		return fmt.Sprintf("must be between %d and %d characters long", UsernameMinLen, UsernameMaxLen)
	case !usernamePattern.MatchString(username):
		return "may contain only letters, digits, dots and underscores"
	}
	return ""
}

// ValidatePassword checks password strength: minimum length plus at least
// one lowercase letter, one uppercase letter and one digit.
func ValidatePassword(password string) string {
	if password == "" {
		return "required"
	}
	if utf8.RuneCountInString(password) < PasswordMinLen {
		return fmt.Sprintf("must be at least %d characters long", PasswordMinLen)
	}
	if len(password) > PasswordMaxBytes {
		return fmt.Sprintf("must be at most %d bytes long", PasswordMaxBytes)
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return "must contain a lowercase letter, an uppercase letter and a digit"
	}
	return ""
}

// ValidateName checks a display name: 1-20 letters or spaces.
func ValidateName(name string) string {
	n := utf8.RuneCountInString(name)
	switch {
	case name == "":
		return "required"
	case n > NameMaxLen:
		return fmt.Sprintf("must be at most %d characters long", NameMaxLen)
	case !namePattern.MatchString(name):
		return "may contain only letters and spaces"
	}
	return ""
}

// ValidateLanguage checks a language tag such as "en" or "it-CH".
func ValidateLanguage(lang string) string {
	switch {
	case lang == "":
		return "required"
	case utf8.RuneCountInString(lang) > LanguageMaxLen:
		return fmt.Sprintf("must be at most %d characters long", LanguageMaxLen)
	}
	return ""
}

// ValidateCounterName checks a counter name: 1-30 characters.
func ValidateCounterName(name string) string {
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return "required"
	case n > CounterNameMax:
		return fmt.Sprintf("must be between 1 and %d characters long", CounterNameMax)
	}
	return ""
}

// ValidateColor checks that a color is present.
func ValidateColor(color string) string {
	switch {
	case strings.TrimSpace(color) == "":
		return "required"
	case utf8.RuneCountInString(color) > ColorMaxLen:
		return fmt.Sprintf("must be at most %d characters long", ColorMaxLen)
	}
	return ""
}

// ValidateComment checks a record comment: at most 500 characters, may be empty.
func ValidateComment(comment string) string {
	if utf8.RuneCountInString(comment) > CommentMaxLen {
		return fmt.Sprintf("must be at most %d characters long", CommentMaxLen)
	}
	return ""
}

// ValidatePastTimestamp parses raw and checks it is not after now.
// The message is "" when the timestamp is acceptable.
func ValidatePastTimestamp(raw string, now time.Time) (time.Time, string) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, "required"
	}
	ts, err := ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, "must be an ISO 8601 date"
	}
	if ts.After(now) {
		return time.Time{}, "must not be in the future"
	}
	return ts, ""
}

var errBadTimestamp = errors.New("unrecognized timestamp format")

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"20060102",
	"2006-01",
	"2006",
}

// ParseTimestamp accepts the ISO 8601 forms clients send: full RFC 3339,
// offsets with or without a colon, a local date-time (read as UTC), a bare
// date in extended or basic form, a year-month or a year.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errBadTimestamp, raw)
}
