package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nradhesh/Outbreak-blockchain/pkg/e"
	"github.com/nradhesh/Outbreak-blockchain/pkg/validator"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object from the body and validates it.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var req T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: invalid JSON", e.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return req, fmt.Errorf("%w: invalid JSON", e.ErrInvalidInput)
	}

	if err := validator.ValidateStruct(req); err != nil {
		return req, err
	}
	return req, nil
}
