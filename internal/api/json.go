package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Detail string            `json:"detail" validate:"required"`
	Fields map[string]string `json:"fields,omitempty"`
}

func errorBody(msg string) errResponse {
	return errResponse{Detail: msg}
}

// validationBody turns an ozzo validation error into a response carrying
// per-field messages. Non-field errors fall back to a plain detail string.
func validationBody(err error) errResponse {
	var errs validation.Errors
	if errors.As(err, &errs) {
		fields := make(map[string]string, len(errs))
		for field, ferr := range errs {
			fields[field] = ferr.Error()
		}
		return errResponse{Detail: "validation failed", Fields: fields}
	}
	return errResponse{Detail: err.Error()}
}
