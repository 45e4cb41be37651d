// Package log переносит логгер запроса через context.Context. Middleware
// view API кладёт его с request_id, а сервис, реконсилер и транспорт
// достают через From, не протаскивая *slog.Logger через сигнатуры.
package log

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// Into возвращает ctx с логгером l. nil не сохраняется: From тогда отдаст
// то, что было в ctx раньше.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	if l == nil {
		return ctx
	}

	return context.WithValue(ctx, loggerKey{}, l)
}

// From - логгер запроса, вне запроса slog.Default().
func From(ctx context.Context) *slog.Logger {
	if l, _ := ctx.Value(loggerKey{}).(*slog.Logger); l != nil {
		return l
	}

	return slog.Default()
}

// With дописывает атрибуты к логгеру из ctx; результат и в новом ctx, и вторым значением.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	l := From(ctx).With(args...)

	return Into(ctx, l), l
}
