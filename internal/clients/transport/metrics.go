package transport

import (
	"net/http"
	"time"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/metrics"
)

// WithMetrics учитывает запросы в prometheus. outcome - "ok" или класс ошибки
// в той же таксономии, что и у API-клиента.
func WithMetrics(m *metrics.Metrics) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.RoundTrip(r)

			outcome := "ok"
			switch {
			case err != nil:
				outcome = apperrors.KindNetwork.String()
			default:
				if e := apperrors.Classify("", r.Method, r.URL.Path, resp.StatusCode, ""); e != nil {
					outcome = e.Kind.String()
				}
			}

			m.ObserveUpstream(r.Method, r.URL.Path, outcome, time.Since(start))

			return resp, err
		})
	}
}
