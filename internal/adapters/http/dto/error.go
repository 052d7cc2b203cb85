package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at the request member that failed validation.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusBySentinel is checked in order; the first match wins.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// statusFor maps err onto an HTTP status. Anything unrecognized, including
// a nil reference passed to the domain, is a 500.
func statusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

func problem(r *http.Request, status int) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}
}

// NewErrorResponse describes err as a problem document for r. A validation
// error also lists the failing field. Server errors carry no detail so
// internals stay out of responses.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := problem(r, statusFor(err))
	if resp.Status < http.StatusInternalServerError {
		resp.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = []ErrorDetail{{Location: fieldLocation(verr.Field), Message: verr.Message}}
	}
	return resp
}

// WriteErrorResponse writes err as a problem response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteStatusResponse writes a problem response for status alone, for
// failures such as unknown routes that have no domain error behind them.
func WriteStatusResponse(w http.ResponseWriter, r *http.Request, status int) {
	writeProblem(w, r, problem(r, status))
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

// fieldLocation turns a domain field name into the JSON member it came from,
// so "SerialNumber" becomes "body.serialNumber". Names that already carry a
// location, such as "path.id", pass through.
func fieldLocation(field string) string {
	if field == "" || field == "body" || strings.Contains(field, ".") {
		return field
	}
	r, size := utf8.DecodeRuneInString(field)
	return "body." + string(unicode.ToLower(r)) + field[size:]
}
