package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/domain"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/service"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/yield"
	"github.com/aussiebroadwan/ancestrybio/pkg/httpx"
	"github.com/aussiebroadwan/ancestrybio/pkg/limssdk"
	"github.com/aussiebroadwan/ancestrybio/pkg/slogx"
)

func writeError(w http.ResponseWriter, code int, errCode, desc string) {
	httpx.WriteJSON(w, code, limssdk.ErrorResponse{Error: errCode, ErrorDescription: desc})
}

// writeServiceError translates service and domain errors into responses.
// Anything unrecognised is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		outOfRange *yield.OutOfRangeError
		invalid    *domain.ValidationError
		tooBig     *http.MaxBytesError
	)

	switch {
	case errors.As(err, &outOfRange):
		httpx.WriteJSON(w, http.StatusBadRequest, limssdk.ValidationErrorResponse{
			Error:            limssdk.ErrorCodeValidation,
			ErrorDescription: outOfRange.Error(),
			Fields:           map[string]string{"outputs": outOfRange.Error()},
		})
	case errors.As(err, &invalid):
		httpx.WriteJSON(w, http.StatusBadRequest, limssdk.ValidationErrorResponse{
			Error:            limssdk.ErrorCodeValidation,
			ErrorDescription: "validation failed for some fields",
			Fields:           invalid.Fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, limssdk.ErrorCodeValidation, err.Error())
	case errors.Is(err, httpx.ErrBadJSON):
		writeError(w, http.StatusBadRequest, limssdk.ErrorCodeInvalidRequest, "Request body must be a valid JSON object")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, limssdk.ErrorCodeNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrBootstrapAlready),
		errors.Is(err, service.ErrOwnRole):
		writeError(w, http.StatusConflict, limssdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, limssdk.ErrorCodeInvalidCredential, "Invalid email or password")
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid bootstrap token")
	case errors.Is(err, service.ErrFileTooLarge), errors.As(err, &tooBig):
		writeError(w, http.StatusRequestEntityTooLarge, limssdk.ErrorCodeFileTooLarge, err.Error())
	case errors.Is(err, service.ErrUnsupportedFileType):
		writeError(w, http.StatusUnsupportedMediaType, limssdk.ErrorCodeUnsupportedType, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, limssdk.ErrorCodeServerError, "An internal error occurred")
	}
}
