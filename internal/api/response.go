package api

import (
	"encoding/json"
	"errors"
	"net/http"

	shaderr "github.com/amterp/shades/internal/errors"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error response, mapping domain errors to HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var notFound *shaderr.NotFoundError
	var validation *shaderr.ValidationError
	var exhausted *shaderr.ExhaustedError
	var unsupported *shaderr.NotSupportedError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &validation):
		status = http.StatusBadRequest
	case errors.As(err, &exhausted):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &unsupported):
		status = http.StatusNotImplemented
	}

	JSON(w, status, map[string]string{"error": err.Error()})
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
