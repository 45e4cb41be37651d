// transport предоставляет набор http.RoundTripper-обёрток для исходящих
// запросов к REST API Sort a Short.
package transport

import "net/http"

// Middleware оборачивает RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Func - адаптер функции к http.RoundTripper.
type Func func(*http.Request) (*http.Response, error)

func (f Func) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// Chain собирает цепочку: первая обёртка - самая внешняя.
// base == nil - http.DefaultTransport.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}

	return rt
}
