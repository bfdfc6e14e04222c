package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/auth"
	"github.com/JanRezzonico/API-Dipendenze/pkg/ctxutil"
)

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (*auth.Identity, error)
}

// Auth rejects requests without a valid session token and binds the
// caller's id and token to the request context.
func Auth(resolver sessionResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeMessage(w, http.StatusUnauthorized, "Missing auth token")
				return
			}

			id, err := resolver.Resolve(r.Context(), token)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrInvalidToken):
				writeMessage(w, http.StatusBadRequest, "Bad auth token")
				return
			case errors.Is(err, domain.ErrTokenRevoked):
				writeMessage(w, http.StatusForbidden, "Forbidden")
				return
			case errors.Is(err, domain.ErrUnknownSubject):
				writeMessage(w, http.StatusBadRequest, "Cannot find user linked to the token")
				return
			default:
				logger.ErrorContext(r.Context(), "session resolve failed", slog.String("error", err.Error()))
				writeMessage(w, http.StatusBadRequest, "Bad auth token")
				return
			}

			if rec, ok := w.(userRecorder); ok {
				rec.recordUser(id.UserID)
			}
			ctx := ctxutil.WithSession(r.Context(), id.UserID, id.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken reads the Authorization header. The "Bearer" scheme
// is optional.
func extractBearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, rest, found := strings.Cut(h, " ")
	if strings.EqualFold(scheme, "Bearer") {
		if !found {
			return ""
		}
		h = rest
	}
	return strings.TrimSpace(h)
}
