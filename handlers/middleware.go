package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/satheeshds/contacts/logger"
)

// ErrorResponse is the JSON body of every failed request. Validation
// failures fill Errors, everything else fills Error.
type ErrorResponse struct {
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeErrors writes the validation messages of a rejected input.
func writeErrors(w http.ResponseWriter, status int, msgs []string) {
	writeJSON(w, status, ErrorResponse{Errors: msgs})
}

// decodeJSON reads the request body into v. An empty body leaves v at its
// zero value so that validation reports the missing fields.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeInternal answers 500 with the raw error message and logs it.
func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	writeError(w, http.StatusInternalServerError, err.Error())
}

// RequestLogger stores a request-scoped logger carrying the request id in
// the context. It must run after middleware.RequestID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.L.With(slog.String("request_id", middleware.GetReqID(r.Context())))
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), l)))
	})
}

// Recoverer recovers from panics in handlers, logs them and answers 500 with
// the panic value as the error message.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.FromContext(r.Context()).Error("panic occurred",
				slog.Any("recovered", v),
				slog.String("stack", string(debug.Stack())),
			)
			writeError(w, http.StatusInternalServerError, fmt.Sprint(v))
		}()
		next.ServeHTTP(w, r)
	})
}
