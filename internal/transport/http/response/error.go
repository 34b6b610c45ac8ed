package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"userservice/internal/domain"
	"userservice/internal/logger"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string            `json:"error"`
	Code  string            `json:"code,omitempty"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// WriteError maps a domain error onto an HTTP status and writes the JSON
// body. Internal detail (Cause) is logged, never sent to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.ErrInternal(err)
	}

	status := statusFromKind(de.Kind)
	if status >= http.StatusInternalServerError {
		logger.WithCtx(r.Context()).Error().
			Err(err).
			Str("code", de.Code).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{
		Error: de.Message,
		Code:  de.Code,
		Meta:  de.Meta,
	})
}

func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindBusinessRule:
		return http.StatusUnprocessableEntity
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
