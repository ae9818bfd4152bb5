// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func JSONError(w http.ResponseWriter, err error) {
	appErr := ToAppError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	JSON(w, appErr.StatusCode, Envelope{
		Success: false,
		Message: appErr.Message,
		Data:    nil,
		Errors:  appErr.Errors,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	JSONError(w, InvalidInputError(message))
}

func Unauthorized(w http.ResponseWriter, message string) {
	JSONError(w, UnauthorizedError(message))
}

func Forbidden(w http.ResponseWriter, message string) {
	JSONError(w, ForbiddenError(message))
}

func NotFound(w http.ResponseWriter, message string) {
	JSONError(w, NotFoundError(message))
}

func InternalServerError(w http.ResponseWriter, err error) {
	JSONError(w, NewAppError(
		err,
		err.Error(),
		http.StatusInternalServerError,
		CodeInternal,
	))
}

// DecodeJSON reads a request body into dst. Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return InvalidInputError("Invalid request body")
	}
	return nil
}
