package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hiostage/news-feed-service/internal/datasources"
	"github.com/hiostage/news-feed-service/internal/domain"
)

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID uuid.UUID
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using
// the configured authentication methods. Requests no validator claims
// pass through anonymous; public endpoints accept them, the rest are
// gated by requireAuthMiddleware.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewSessionValidator creates a validator that resolves bearer session
// tokens against the external auth service.
func NewSessionValidator(resolver datasources.SessionResolver) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, nil
		}

		user, err := resolver.ResolveSession(r.Context(), authHeader[len("Bearer "):])
		if err != nil {
			return nil, fmt.Errorf("invalid session token")
		}
		if !user.Active {
			return nil, fmt.Errorf("user account is inactive")
		}

		userID, err := uuid.Parse(user.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid session token")
		}

		return &AuthResult{UserID: userID}, nil
	}
}
