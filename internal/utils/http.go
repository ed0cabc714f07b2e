package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxJSONBodySize bounds request bodies read by DecodeJSON.
const MaxJSONBodySize = 64 << 10

var (
	ErrEmptyBody     = errors.New("request body is empty")
	ErrBodyTooLarge  = errors.New("request body is too large")
	ErrMalformedJSON = errors.New("malformed JSON")
)

// WriteJSON marshals data and writes it with statusCode and a JSON content
// type. A marshalling failure is answered with 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads a single JSON value from r's body into dst. The body is
// limited to MaxJSONBodySize bytes and must not carry trailing data.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxJSONBodySize)
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return ErrEmptyBody
		case errors.As(err, &maxErr):
			return ErrBodyTooLarge
		default:
			return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
		}
	}

	if dec.More() {
		return fmt.Errorf("%w: unexpected data after the JSON value", ErrMalformedJSON)
	}
	return nil
}
