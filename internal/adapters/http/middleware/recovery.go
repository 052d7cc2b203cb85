package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
)

// Recovery answers a panicking handler with a bare 500 problem document and
// logs the panic value with its stack. http.ErrAbortHandler is re-raised for
// net/http to handle. When the handler had already started its response the
// panic is only logged.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if v := recover(); v != nil {
					handlePanic(logger, ww, r, v)
				}
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func handlePanic(logger *slog.Logger, ww chimw.WrapResponseWriter, r *http.Request, v any) {
	if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
		panic(v)
	}

	ctx := r.Context()
	logger.ErrorContext(ctx, "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFromContext(ctx)),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
	)

	if ww.Status() == 0 {
		dto.WriteStatusResponse(ww, r, http.StatusInternalServerError)
	}
}
