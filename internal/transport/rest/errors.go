package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// fieldErrorResponse is one field-level validation failure.
type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse is the uniform error envelope for every non-2xx response.
type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps a service error onto an HTTP status. Validation
// failures carry their field list; everything unexpected is logged and
// collapsed into a generic 500 so internals never leak.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]fieldErrorResponse, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, conflictMessage(err))
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "temporarily unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// conflictMessage surfaces the reason for identity conflicts so the client
// can offer "log in instead"; other conflicts get a generic message.
func conflictMessage(err error) string {
	var cErr *domain.ConflictError
	if errors.As(err, &cErr) {
		return cErr.Reason
	}
	return "conflict"
}
