package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go_verb_master/internal/model"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

var errEmptyBody = fmt.Errorf("empty request body: %w", model.ErrInvalidInput)

// DecodeJSONBody decodes the request body into dst, rejecting unknown fields.
// Errors wrap model.ErrInvalidInput.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("decode request body: %v: %w", err, model.ErrInvalidInput)
	}
	return nil
}

// DecodeOptionalJSONBody is DecodeJSONBody for endpoints whose body may be
// omitted; an empty body leaves dst untouched.
func DecodeOptionalJSONBody(r *http.Request, dst interface{}) error {
	err := DecodeJSONBody(r, dst)
	if errors.Is(err, errEmptyBody) {
		return nil
	}
	return err
}
