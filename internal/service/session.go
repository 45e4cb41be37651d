package service

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/reconciler"
	"github.com/pribylovaa/sort-a-short/pkg/log"
	"github.com/pribylovaa/sort-a-short/pkg/redact"
)

// Session - текущее состояние сессии без сетевых вызовов.
func (s *Service) Session() SessionView {
	return s.sessionView(s.rec.View())
}

// Refresh - ручное обновление профиля (pull-to-refresh).
func (s *Service) Refresh(ctx context.Context) (SessionView, error) {
	v, err := s.rec.Refresh(ctx)

	return s.sessionView(v), err
}

func (s *Service) SignUp(ctx context.Context, email, password string) error {
	if err := s.api.SignUp(ctx, email, password); err != nil {
		return err
	}

	log.From(ctx).Info("signed_up", slog.String("email", redact.Email(email)))

	return nil
}

func (s *Service) ConfirmSignUp(ctx context.Context, email, code string) error {
	return s.api.ConfirmSignUp(ctx, email, code)
}

// SignIn - вход и первое обновление. Если вход удался, а обновление нет,
// вход всё равно успешен: сессия в состоянии Stale. Отказ на шаге учётных
// данных всегда ошибка, даже если сохранена прежняя сессия.
func (s *Service) SignIn(ctx context.Context, email, password string) (SessionView, error) {
	v, err := s.rec.SignIn(ctx, email, password)
	if err != nil && (errors.Is(err, reconciler.ErrSignInRejected) || v.Session == nil) {
		return s.sessionView(v), err
	}

	if err != nil {
		log.From(ctx).Warn("signin_refresh_failed",
			slog.String("kind", apperrors.KindOf(err).String()),
			slog.String("err", err.Error()),
		)
	}

	return s.sessionView(v), nil
}

// SignOut всегда завершает сессию; ошибка очистки хранилища возвращается,
// но состояние уже Anonymous.
func (s *Service) SignOut(ctx context.Context) (SessionView, error) {
	err := s.rec.SignOut(ctx)

	return s.sessionView(s.rec.View()), err
}
