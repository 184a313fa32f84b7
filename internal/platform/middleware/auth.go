package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	dErrors "licensedecoder/pkg/domain-errors"
	"licensedecoder/pkg/platform/httputil"
	"licensedecoder/pkg/requestcontext"
)

// TokenValidator validates bearer tokens presented by API clients.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims is what the middleware needs from a validated token.
type TokenClaims struct {
	ClientID string
}

// TokenValidatorFunc adapts a function to TokenValidator.
type TokenValidatorFunc func(tokenString string) (*TokenClaims, error)

func (f TokenValidatorFunc) ValidateToken(tokenString string) (*TokenClaims, error) {
	return f(tokenString)
}

// GetClientID retrieves the authenticated client ID from the context.
func GetClientID(ctx context.Context) string {
	return requestcontext.ClientID(ctx)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the token's client ID on the context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Missing or invalid Authorization header"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestID,
					"error", err,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			ctx = requestcontext.WithClientID(ctx, claims.ClientID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
