package http

import (
	"fmt"
	"net/http"

	"github.com/apozdeyev/article-board/internal/logger"
	"github.com/apozdeyev/article-board/internal/utils"
	"github.com/apozdeyev/article-board/models"
)

// writeSuccess writes the standard success envelope.
func writeSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	utils.WriteJSON(w, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// writeError writes the standard failure envelope with a single message.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.APIError{
		Success: false,
		Error:   message,
	}, statusCode)
}

// writeValidationError writes a 400 with the full ordered list of
// field-level messages. Clients get every failing field at once.
func writeValidationError(w http.ResponseWriter, messages []string) {
	utils.WriteJSON(w, models.APIError{
		Success:  false,
		Error:    "Validation failed",
		Messages: messages,
	}, http.StatusBadRequest)
}

// routeNotFound is the shared fallback for unmatched paths and methods.
// Shape: {"error": "Route not found", "message": "Cannot GET /x"}.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.RouteError{
		Error:   "Route not found",
		Message: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
	}, http.StatusNotFound)
}

// internalError logs err with full detail and writes a structured 500.
// The response message carries the internal error text only when the
// handler is configured to expose it (never in production).
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("internal server error")

	message := "Something went wrong"
	if h.exposeErrorDetail && err != nil {
		message = err.Error()
	}

	utils.WriteJSON(w, models.RouteError{
		Error:   "Internal server error",
		Message: message,
	}, http.StatusInternalServerError)
}
