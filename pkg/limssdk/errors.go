package limssdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field.
const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInvalidCredential = "invalid_credentials"
	ErrorCodeInsufficientRole  = "insufficient_role"
	ErrorCodeFileTooLarge      = "file_too_large"
	ErrorCodeUnsupportedType   = "unsupported_media_type"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is returned by the client for any non-success response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Fields      map[string]string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var v ValidationErrorResponse
	if err := json.Unmarshal(body, &v); err != nil || v.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Code: http.StatusText(resp.StatusCode), Description: string(body)}
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        v.Error,
		Description: v.ErrorDescription,
		Fields:      v.Fields,
	}
}
