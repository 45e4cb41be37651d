package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pribylovaa/sort-a-short/internal/avatar"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/progress"
	"github.com/pribylovaa/sort-a-short/internal/reconciler"
	"github.com/pribylovaa/sort-a-short/internal/social"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

// ProfileInput - изменяемые поля профиля.
type ProfileInput struct {
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Color    string `json:"color"`
}

// RatingInput - оценка фильма из view API.
type RatingInput struct {
	MovieID models.MovieID `json:"movie_id"`
	Stars   int            `json:"rating"`
	Review  string         `json:"review"`
}

// Profile - собственный профиль по последнему снимку реконсилера.
func (s *Service) Profile(ctx context.Context) (ProfileView, error) {
	const op = "service/Profile"

	v, err := s.current(op)
	if err != nil {
		return ProfileView{}, err
	}

	return s.profileView(v), nil
}

// SaveProfile сохраняет имя, аватар и цвет. Закрытый аватар отклоняется до
// вызова API; пустой или цвет по умолчанию заменяется случайным из палитры.
func (s *Service) SaveProfile(ctx context.Context, in ProfileInput) (ProfileView, error) {
	const op = "service/SaveProfile"

	v, err := s.current(op)
	if err != nil {
		return ProfileView{}, err
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return ProfileView{}, apperrors.New(apperrors.KindValidation, op, "username is required")
	}

	unlocked := progress.UnlockedRewards(s.catalog.Collections(), v.Profile.Watched)
	if !avatar.Allowed(in.Avatar, unlocked) {
		return ProfileView{}, apperrors.New(apperrors.KindValidation, op, "avatar is locked")
	}

	color := avatar.EnsureColor(in.Color)

	snap, err := s.api.SaveProfile(ctx, v.Session.Email, username, in.Avatar, color)
	if err != nil {
		return ProfileView{}, err
	}

	patch := models.SessionPatch{
		Username: &snap.Username,
		Avatar:   &snap.Avatar,
		Color:    &snap.Color,
	}
	if err := s.rec.PatchSession(ctx, patch); err != nil {
		log.From(ctx).Warn("session_patch_failed", slog.String("err", err.Error()))
	}

	return s.profileView(s.resync(ctx)), nil
}

// Rate отправляет оценку фильму из каталога.
func (s *Service) Rate(ctx context.Context, in RatingInput) (ProfileView, error) {
	const op = "service/Rate"

	v, err := s.current(op)
	if err != nil {
		return ProfileView{}, err
	}

	if _, ok := s.catalog.Lookup(in.MovieID); !ok {
		return ProfileView{}, apperrors.New(apperrors.KindNotFound, op, "movie not found")
	}

	err = s.api.SubmitRating(ctx, v.Session.Email, models.Rating{
		MovieID: in.MovieID,
		Stars:   in.Stars,
		Review:  strings.TrimSpace(in.Review),
	})
	if err != nil {
		return ProfileView{}, err
	}

	return s.profileView(s.resync(ctx)), nil
}

// DevRefill - отладочное пополнение энергии; без dev-режима операции нет.
func (s *Service) DevRefill(ctx context.Context) (ProfileView, error) {
	const op = "service/DevRefill"

	if !s.devTools {
		return ProfileView{}, apperrors.New(apperrors.KindNotFound, op, "")
	}

	v, err := s.current(op)
	if err != nil {
		return ProfileView{}, err
	}

	if err := s.api.DevRefill(ctx, v.Session.Email); err != nil {
		return ProfileView{}, err
	}

	return s.profileView(s.resync(ctx)), nil
}

func (s *Service) profileView(v reconciler.View) ProfileView {
	unlocked := progress.UnlockedRewards(s.catalog.Collections(), v.Profile.Watched)

	return ProfileView{
		SessionView:     s.sessionView(v),
		Energy:          v.Profile.Energy,
		Counts:          social.ViewCounts(v.Profile),
		History:         s.catalog.History(v.Profile.Watched),
		Reviews:         s.catalog.Reviews(v.Profile.Reviews),
		UnlockedRewards: unlocked,
		AvatarChoices:   avatar.Choices(unlocked),
		Following:       v.Profile.Following,
		Followers:       v.Profile.Followers,
	}
}
