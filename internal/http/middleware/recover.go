package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

var errPanic = errors.New("panic")

// Recover превращает panic в 500/internal. Детали паники остаются в логе.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					log.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
						slog.String("path", r.URL.Path),
						slog.Any("reason", rec),
					)
					apperrors.WriteError(w, r, errPanic)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
