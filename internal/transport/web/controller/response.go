package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/set-ranker/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedID),
		errors.Is(err, domain.ErrSelfComparison),
		errors.Is(err, domain.ErrInvalidBucket):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBucketMismatch),
		errors.Is(err, domain.ErrPreconditionUnmet):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSelectionFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes it as an ErrorResponse. Server-side failures
// are reported without their detail.
func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)
	status := errorStatus(err)

	resp := ErrorResponse{Error: err.Error(), Code: domain.ErrorCode(err)}
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		resp.Error = http.StatusText(status)
	} else {
		logger.InfoContext(ctx, msg, "error", err)
	}

	writeJSON(ctx, w, status, resp)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
