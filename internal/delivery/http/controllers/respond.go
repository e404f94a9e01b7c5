package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// StatusResponse is the data payload for delete and cancel endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// writeServiceError maps domain sentinels onto HTTP status codes and writes
// the error envelope. Anything unmapped is a 500 and gets logged; business
// rejections are expected traffic and are not.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrStudentNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrFeedbackNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrEventInactive),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrFeedbackExists),
		errors.Is(err, domain.ErrDuplicateStudentCode),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateCollege),
		errors.Is(err, domain.ErrDuplicateUserEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// PagedResponse wraps one page of items with pagination metadata.
// swagger:model PagedResponse
type PagedResponse struct {
	Items any                    `json:"items"`
	Meta  helpers.PaginationMeta `json:"meta"`
}

// pageSlice cuts one page out of items per the pagination params.
func pageSlice[T any](items []T, p domain.PaginationParams) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// pathValue reads a path parameter and writes a 400 if it is empty.
func pathValue(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if v == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	return v, true
}
