package seedsource

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/device-usage-service/internal/domain"
)

// maxProblemBytes bounds how much of a failed download is read for context.
const maxProblemBytes = 64 << 10

// translateHTTPError turns a non-200 export download into a domain error,
// using the RFC 9457 detail as context when the server sends one.
func translateHTTPError(resp *http.Response) error {
	reason := problemDetail(resp)
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	kind := kindForStatus(resp.StatusCode)
	if kind == nil {
		return fmt.Errorf("seed export answered %d: %s", resp.StatusCode, reason)
	}
	return fmt.Errorf("seed export: %s: %w", reason, kind)
}

func kindForStatus(code int) error {
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		return domain.ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return domain.ErrForbidden
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return domain.ErrUnavailable
	default:
		return nil
	}
}

// problemDetail returns the detail member of a problem+json body, or "".
func problemDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return ""
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
