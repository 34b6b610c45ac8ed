package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"userservice/internal/domain"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// DecodeJSON parses the request body into dst. A body with trailing JSON
// values is rejected the same way a malformed one is.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}
	if dec.More() {
		return domain.ErrInvalidJSON(errors.New("trailing data after JSON value"))
	}
	return nil
}
