package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/avoronkov/wellfinder/internal/common"
	"github.com/avoronkov/wellfinder/internal/server/auth"
)

type contextKey string

// accountIDKey is the request-context key under which the authenticated
// account ID is stored.
const accountIDKey contextKey = "accountID"

// AccountIDFromContext returns the authenticated account ID set by
// RequireAuth, or "" if the request was not authenticated.
func AccountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}

// RequireAuth verifies the Bearer token in the Authorization header and
// stores the account ID in the request context. Missing, malformed, expired
// or forged tokens get 401.
func RequireAuth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AccessTokenHeaderName)

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				respondError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			accountID, err := auth.GetAccountIDFromToken(token, secretKey)
			if err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
