// middleware - обёртки view API: Recover, RequestID, Logging, Timeout.
// Порядок в роутере: Recover снаружи, Timeout ближе всего к обработчику.
package middleware

import (
	"net/http"
	"slices"
)

type Middleware func(http.Handler) http.Handler

// Chain оборачивает h так, что mws[0] получает запрос первым.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range slices.Backward(mws) {
		h = mw(h)
	}

	return h
}

// statusWriter запоминает код и объём ответа. Нужен Logging (запись "http")
// и Timeout (ответил ли обработчик до дедлайна).
type statusWriter struct {
	http.ResponseWriter
	status int // 0 - заголовки ещё не ушли
	bytes  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

// WriteHeader пропускает только первый код: повторный всё равно не дойдёт до клиента.
func (w *statusWriter) WriteHeader(code int) {
	if w.written() {
		return
	}

	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if !w.written() {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n

	return n, err
}

// Unwrap для http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *statusWriter) written() bool { return w.status != 0 }

// code - статус для логов; молчащий обработчик net/http закрывает ответом 200.
func (w *statusWriter) code() int {
	if !w.written() {
		return http.StatusOK
	}

	return w.status
}
