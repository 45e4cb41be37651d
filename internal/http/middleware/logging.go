package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/clients/transport"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

// Logging кладёт в контекст логгер запроса (с request_id, если RequestID
// стоит раньше) и по завершении пишет запись "http". 5xx - уровнем Warn.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := log.Into(r.Context(), l)
			if rid := transport.RequestID(ctx); rid != "" {
				ctx, _ = log.With(ctx, slog.String("request_id", rid))
			}
			r = r.WithContext(ctx)

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			level := slog.LevelInfo
			if sw.code() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}

			log.From(r.Context()).LogAttrs(r.Context(), level, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.code()),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.bytes),
			)
		})
	}
}
