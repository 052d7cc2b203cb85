package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/device-usage-service/internal/app/context"
)

// AppContext attaches a fresh appctx memo to every request. A usage booking
// that resolves its device and person through the memo reads each one once,
// however many checks touch it. Mount it after CorrelationID so lookups log
// with both IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			memo := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), memo)))
		}
		return http.HandlerFunc(fn)
	}
}
