package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/sort-a-short/internal/clients/transport"
)

// RequestID обеспечивает наличие X-Request-Id:
//  1. берёт заголовок запроса, если он есть;
//  2. иначе генерирует id (UUID без дефисов, 32 hex-символа);
//  3. кладёт id в заголовки ответа и запроса и в контекст (transport.CtxRequestID),
//     откуда его забирают исходящие запросы к API.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(transport.HeaderRequestID)
			if id == "" {
				id = genID()
				r.Header.Set(transport.HeaderRequestID, id)
			}
			w.Header().Set(transport.HeaderRequestID, id)

			ctx := transport.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func genID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
