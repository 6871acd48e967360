package http

import (
	"fmt"
	"net/http"

	"github.com/apozdeyev/article-board/internal/logger"
)

// withRecovery converts a panic in any downstream handler into a
// structured 500 response instead of a dropped connection. The panic
// value and stack location are logged server-side; the client sees the
// detail only outside production.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromRequest(r).Error().
					Any("panic", rec).
					Str("uri", r.RequestURI).
					Msg("handler panicked")

				h.internalError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
