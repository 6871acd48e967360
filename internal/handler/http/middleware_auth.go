package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via the auth service, and on success stores the
// authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Rejections, all with client-facing sentinel messages:
//   - header absent → 401 [ErrAccessTokenRequired]
//   - header not of the form "Bearer <token>" → 401 [ErrInvalidTokenFormat]
//   - token expired, tampered, or otherwise unverifiable → 403
//     [ErrInvalidOrExpiredToken]
//
// The middleware is a pure gate: it has no side effects beyond the
// context value.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("authorization header missing")
			writeError(w, http.StatusUnauthorized, ErrAccessTokenRequired.Error())
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			log.Warn().Msg("authorization header malformed")
			writeError(w, http.StatusUnauthorized, ErrInvalidTokenFormat.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token rejected")
			writeError(w, http.StatusForbidden, ErrInvalidOrExpiredToken.Error())
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization" header value of
// the exact form "Bearer <token>". Any other scheme, casing, or a missing
// token reports false.
func bearerToken(authHeader string) (string, bool) {
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
