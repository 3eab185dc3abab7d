package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"evcharge/internal/authz"
	"evcharge/internal/models"
	"evcharge/internal/service"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller decoded from a verified token.
type Identity struct {
	UserID   string
	Email    string
	FullName string
	Role     models.Role
	TokenID  string
}

// TokenValidator verifies a bearer token and decodes its claims.
type TokenValidator interface {
	ValidateToken(token string) (*service.Claims, error)
}

// SessionChecker reports whether an issued token is still live (not revoked).
type SessionChecker interface {
	Exists(ctx context.Context, tokenID string) (bool, error)
}

// Authenticate resolves the caller's identity from the Authorization header.
// Requests without the header pass through anonymous; requests with an
// invalid or revoked token are rejected outright.
func Authenticate(tokens TokenValidator, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				denyJSON(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				denyJSON(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if sessions != nil {
				live, err := sessions.Exists(r.Context(), claims.ID)
				if err != nil {
					denyJSON(w, http.StatusInternalServerError, "failed to verify session")
					return
				}
				if !live {
					denyJSON(w, http.StatusUnauthorized, "session revoked")
					return
				}
			}

			identity := &Identity{
				UserID:   claims.Subject,
				Email:    claims.Email,
				FullName: claims.FullName,
				Role:     claims.Role,
				TokenID:  claims.ID,
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Require enforces the access policy for one operation. Denials short-circuit
// before the handler runs, so denied calls never reach a service.
func Require(op authz.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := authz.RoleAnonymous
			identity, ok := IdentityFromContext(r.Context())
			if ok {
				role = identity.Role
			}

			if !authz.Allowed(role, op) {
				if !ok {
					denyJSON(w, http.StatusUnauthorized, "authentication required")
					return
				}
				denyJSON(w, http.StatusForbidden, "access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext retrieves the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// Chain applies middlewares right to left around the handler.
func Chain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func denyJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
