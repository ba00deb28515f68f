package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goldsaver/memberkit/pkg/enrollment"
	"github.com/goldsaver/memberkit/pkg/logger"
	"github.com/goldsaver/memberkit/pkg/pincode"
)

// Envelope is the body of every API response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details carries per-field
// messages for validation failures.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Data: data})
}

// writeError maps err to a status and error body. Unrecognised errors are
// logged and answered with a generic 500 so internals do not leak.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	httpErr, message := classify(err)
	if httpErr.Code >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err), logger.Status(httpErr.Code))
	}
	writeJSON(w, httpErr.Code, Envelope{Error: &ErrorDetail{Code: httpErr.Key, Message: message}})
}

func classify(err error) (HTTPError, string) {
	var httpErr HTTPError
	var maxBytes *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytes):
		return ErrRequestTooLarge, "request body too large"
	case errors.Is(err, ErrContentType):
		return ErrUnsupportedMediaType, err.Error()
	case errors.Is(err, ErrInvalidJSON):
		return ErrBadRequest, err.Error()
	case errors.Is(err, enrollment.ErrUnknownStep):
		return ErrBadRequest, err.Error()
	case errors.Is(err, enrollment.ErrFailedToDecode):
		return ErrBadRequest, "form could not be decoded"
	case errors.Is(err, enrollment.ErrUnknownField):
		return ErrNotFound, err.Error()
	case errors.Is(err, pincode.ErrInvalidPincode):
		return ErrBadRequest, err.Error()
	case errors.Is(err, pincode.ErrNotFound):
		return ErrNotFound, err.Error()
	case errors.Is(err, pincode.ErrLookupFailed):
		return ErrBadGateway, "pincode lookup is unavailable"
	case errors.As(err, &httpErr):
		return httpErr, http.StatusText(httpErr.Code)
	default:
		return ErrInternal, http.StatusText(http.StatusInternalServerError)
	}
}
