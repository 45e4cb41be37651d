package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/sort-a-short/pkg/log"
)

// WithLogging - логирование исходящих запросов.
//   - поля request_id/method/path, обогащённый логгер прокладывается в контекст;
//   - одна финальная запись: msg="http_upstream", status (0 - нет ответа), dur;
//   - query, тело и заголовки (токен) не логируются.
//
// Ставится после WithMetadata, чтобы request_id уже был в заголовке.
func WithLogging(base *slog.Logger) Middleware {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			l := base.With(
				slog.String("request_id", r.Header.Get(HeaderRequestID)),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			r = r.WithContext(log.Into(r.Context(), l))

			resp, err := next.RoundTrip(r)

			status := 0
			if resp != nil {
				status = resp.StatusCode
			}

			if err != nil {
				l.Warn("http_upstream",
					slog.Int("status", status),
					slog.Duration("dur", time.Since(start)),
					slog.String("err", err.Error()),
				)
				return resp, err
			}

			l.Info("http_upstream",
				slog.Int("status", status),
				slog.Duration("dur", time.Since(start)),
			)

			return resp, nil
		})
	}
}
