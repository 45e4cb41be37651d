package transport

import (
	"context"
	"io"
	"net/http"
	"time"
)

// WithTimeout навешивает таймаут d на исходящий запрос, если у контекста ещё нет
// дедлайна. Существующий дедлайн не переопределяется; d <= 0 - без изменений.
//
// cancel вызывается при закрытии тела ответа (или сразу при ошибке), иначе
// чтение тела после RoundTrip оборвалось бы.
func WithTimeout(d time.Duration) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			if d <= 0 {
				return next.RoundTrip(r)
			}
			if _, ok := r.Context().Deadline(); ok {
				return next.RoundTrip(r)
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)

			resp, err := next.RoundTrip(r.WithContext(ctx))
			if err != nil {
				cancel()
				return nil, err
			}

			resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}

			return resp, nil
		})
	}
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()

	return err
}
