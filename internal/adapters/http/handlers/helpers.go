package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/logging"
)

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// parseID reads the named route parameter as a decimal id. Range checks
// belong to the services.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("path."+param, "must be a valid integer")
	}
	return id, nil
}

func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// writeCreated answers 201 with a Location naming the new resource.
func writeCreated(w http.ResponseWriter, r *http.Request, id int64, v any) {
	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(id, 10))
	respond(w, r, http.StatusCreated, v)
}

// decodeJSONBody reads at most maxBodyBytes of JSON into dst. On failure it
// answers 400 and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes dst and runs its request-level checks, answering
// 400 on the first failure.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// idChecker is implemented by PUT bodies that may repeat the route id.
type idChecker interface {
	CheckID(routeID int64) error
}

// decodeReplacement reads the route id and the PUT body, rejecting a body
// that names another resource. It answers the error itself and reports
// false when anything is wrong.
func decodeReplacement[T idChecker](w http.ResponseWriter, r *http.Request, dst T) (int64, bool) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, false
	}
	if !decodeJSONBody(w, r, dst) {
		return 0, false
	}
	if err := dst.CheckID(id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return 0, false
	}
	return id, true
}
