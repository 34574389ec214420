package middleware

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// OwnerIDKey is the context key for storing the caller's owner ID.
const OwnerIDKey contextKey = "owner_id"

// OwnerHeader is the request header that carries the caller's owner ID.
// Identity resolution (auth, sessions) belongs to the deployment in front
// of this service; the core only requires that an identity arrives
// explicitly with every request.
const OwnerHeader = "X-Owner-ID"

// GetOwnerID extracts the owner ID from the context.
// Returns empty string if not found.
func GetOwnerID(ctx context.Context) string {
	ownerID, _ := ctx.Value(OwnerIDKey).(string)
	return ownerID
}

// RequireOwner rejects requests without an owner ID header and adds the ID
// to the request context for the handlers behind it.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := strings.TrimSpace(r.Header.Get(OwnerHeader))
		if ownerID == "" {
			http.Error(w, "missing "+OwnerHeader+" header", http.StatusBadRequest)
			return
		}
		ctx := context.WithValue(r.Context(), OwnerIDKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
