package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/api"
	"github.com/currency-covenant/amg-delivery-logger/pkg/services/identity"
	"github.com/rs/zerolog"
)

// RequireAdmin gates a route on the identity collaborator's role claim.
// Missing or bad tokens get 401, a valid non-admin session gets 403.
func RequireAdmin(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			logger := zerolog.Ctx(ctx)

			user, err := verifier.Verify(ctx, bearerToken(req))
			if err != nil {
				if errors.Is(err, identity.ErrUnknownToken) || errors.Is(err, identity.ErrSessionExpired) {
					writeError(w, http.StatusUnauthorized, "authentication required")
					return
				}
				logger.Error().Err(err).Msg("session verification failed")
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			if !user.IsAdmin() {
				writeError(w, http.StatusForbidden, "admin role required")
				return
			}

			reqLogger := logger.With().Str("user_id", user.ID).Logger()
			next.ServeHTTP(w, req.WithContext(reqLogger.WithContext(ctx)))
		})
	}
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: msg})
}
