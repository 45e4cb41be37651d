package transport

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
	CtxAuthToken CtxKey = "auth_token"
)

const HeaderRequestID = "X-Request-Id"

// WithRequestID кладёт request id в контекст исходящих запросов.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, CtxRequestID, rid)
}

// RequestID достаёт request id из контекста ("" если нет).
func RequestID(ctx context.Context) string {
	rid, _ := ctx.Value(CtxRequestID).(string)
	return rid
}

// WithMetadata добавляет в исходящий запрос заголовки:
//   - X-Request-Id (из контекста, иначе новый UUID);
//   - Authorization: Bearer <token> (если токен есть в контексте и заголовок не задан);
//   - User-Agent (если передан параметром).
//
// Исходный запрос не модифицируется (RoundTripper-контракт).
func WithMetadata(userAgent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return Func(func(r *http.Request) (*http.Response, error) {
			r = r.Clone(r.Context())

			if r.Header.Get(HeaderRequestID) == "" {
				rid := RequestID(r.Context())
				if rid == "" {
					rid = uuid.NewString()
				}
				r.Header.Set(HeaderRequestID, rid)
			}

			if tok, _ := r.Context().Value(CtxAuthToken).(string); tok != "" && r.Header.Get("Authorization") == "" {
				r.Header.Set("Authorization", "Bearer "+tok)
			}

			if userAgent != "" {
				r.Header.Set("User-Agent", userAgent)
			}

			return next.RoundTrip(r)
		})
	}
}
