package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
)

// Timeout ограничивает обработку запроса временем d (вызовы API внутри
// наследуют дедлайн). Уже заданный дедлайн не трогается, d <= 0 - no-op.
// Если обработчик упёрся в дедлайн и ничего не ответил, клиент получает 503.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Deadline(); ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			sw := newStatusWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(sw, r)

			if !sw.written() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				apperrors.WriteError(sw, r, apperrors.Transport("http/Timeout", ctx.Err()))
			}
		})
	}
}
