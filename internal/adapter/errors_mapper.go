package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-absence-keeper/internal/store"
)

// postgrestError is the error envelope returned by PostgREST-style backends.
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// PostgREST codes that carry more meaning than their HTTP status.
const (
	codeJWTExpired      = "PGRST301"
	codeNoSingleRow     = "PGRST116"
	codeUniqueViolation = "23505"
)

// mapHTTPError turns a non-2xx response into one of the sentinel errors of
// this package. The backend's message is kept in the error text, the
// response body itself never is when it decodes as an error envelope.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	pe, detail := decodeErrorBody(resp.Body())
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch pe.Code {
	case codeJWTExpired:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case codeNoSingleRow:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", store.ErrTransient, ErrRateLimited, detail)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w: %s", store.ErrTransient, ErrBadGateway, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", status, detail)
	}
}

// decodeErrorBody extracts the PostgREST envelope from body. Bodies that are
// not an envelope are returned trimmed as the detail text.
func decodeErrorBody(body []byte) (postgrestError, string) {
	var pe postgrestError
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return pe, ""
	}
	if err := json.Unmarshal(body, &pe); err != nil || pe.Message == "" {
		return postgrestError{}, raw
	}

	detail := pe.Message
	if pe.Details != "" {
		detail += " (" + pe.Details + ")"
	}
	return pe, detail
}
