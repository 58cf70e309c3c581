package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

const errInternalText = "Something went wrong, please try again later"

type ResponseError struct {
	Message string `json:"message"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, msg, "error", err.Error(), "http_code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode error response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}
}

// sendServiceErr translates service sentinel errors into HTTP codes and
// user-facing messages. Unknown errors stay opaque.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotConfigured):
		sendErr(ctx, w, http.StatusServiceUnavailable, err, "Service is not configured yet, please contact the administrator")
	case errors.Is(err, entity.ErrInvalidCredentials):
		sendErr(ctx, w, http.StatusUnauthorized, err, "Invalid email or password")
	case errors.Is(err, entity.ErrSessionExpired):
		sendErr(ctx, w, http.StatusUnauthorized, err, "Your session has expired, please sign in again")
	case errors.Is(err, entity.ErrInvalidToken), errors.Is(err, entity.ErrUnauthorized):
		sendErr(ctx, w, http.StatusUnauthorized, err, "Not authorized")
	case errors.Is(err, entity.ErrNoProfile):
		sendErr(ctx, w, http.StatusForbidden, err, "No profile is registered for this account")
	case errors.Is(err, entity.ErrNoDepartmentAccess):
		sendErr(ctx, w, http.StatusForbidden, err, "You do not have access to this department")
	case errors.Is(err, entity.ErrForbidden):
		sendErr(ctx, w, http.StatusForbidden, err, "Access denied")
	case errors.Is(err, entity.ErrClearanceIncomplete):
		sendErr(ctx, w, http.StatusConflict, err, "Clearance is not complete yet")
	case errors.Is(err, entity.ErrUnknownDepartment):
		sendErr(ctx, w, http.StatusNotFound, err, "Unknown department")
	case errors.Is(err, entity.ErrNotFound):
		sendErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrUnknownStatus):
		sendErr(ctx, w, http.StatusUnprocessableEntity, err, "Unknown clearance status")
	case errors.Is(err, entity.ErrEmailInvalidLen), errors.Is(err, entity.ErrEmailInvalidFormat):
		sendErr(ctx, w, http.StatusUnprocessableEntity, err, "Incorrect email format")
	case errors.Is(err, entity.ErrPasswordEmpty):
		sendErr(ctx, w, http.StatusUnprocessableEntity, err, "Password must not be empty")
	default:
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}
