package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pribylovaa/sort-a-short/internal/avatar"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/progress"
	"github.com/pribylovaa/sort-a-short/internal/social"
	"github.com/pribylovaa/sort-a-short/pkg/log"
	"github.com/pribylovaa/sort-a-short/pkg/redact"
)

// Search - поиск пользователей. Сбой поиска даёт пустую выдачу.
func (s *Service) Search(ctx context.Context, query string) ([]UserView, error) {
	const op = "service/Search"

	v, err := s.current(op)
	if err != nil {
		return nil, err
	}

	raw, err := s.api.SearchUsers(ctx, query)
	if err != nil {
		log.From(ctx).Warn("search_failed", slog.String("err", err.Error()))
		return []UserView{}, nil
	}

	users := social.MergeSearchResults(raw, v.Session.Email)
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, s.userView(u, v.Session))
	}

	return out, nil
}

// ToggleFollow переключает подписку на target: оптимистично, затем по
// результату вызова подтверждает или откатывает.
func (s *Service) ToggleFollow(ctx context.Context, target string) (FollowResult, error) {
	const op = "service/ToggleFollow"

	v, err := s.current(op)
	if err != nil {
		return FollowResult{}, err
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return FollowResult{}, apperrors.New(apperrors.KindValidation, op, "target email is required")
	}
	if strings.EqualFold(target, v.Session.Email) {
		return FollowResult{}, apperrors.New(apperrors.KindValidation, op, "cannot follow yourself")
	}

	id, next := s.tracker.Begin(target, s.isFollowing(v.Session, target))

	if next {
		err = s.api.Follow(ctx, v.Session.Email, target)
	} else {
		err = s.api.Unfollow(ctx, v.Session.Email, target)
	}

	final, _ := s.tracker.Settle(id, err)
	if err != nil {
		s.metrics.IncOptimisticRevert()
		log.From(ctx).Warn("follow_reverted",
			slog.String("target", redact.Email(target)),
			slog.Bool("following", final),
			slog.String("err", err.Error()),
		)

		return FollowResult{Target: target, Following: final, Reverted: true}, err
	}

	s.resync(ctx)

	return FollowResult{Target: target, Following: final}, nil
}

// FollowByCode подписывает на пользователя по коду друга.
func (s *Service) FollowByCode(ctx context.Context, code string) (FollowResult, error) {
	const op = "service/FollowByCode"

	v, err := s.current(op)
	if err != nil {
		return FollowResult{}, err
	}

	email, err := s.api.FollowByCode(ctx, v.Session.Email, code)
	if err != nil {
		return FollowResult{}, err
	}

	s.resync(ctx)

	return FollowResult{Target: email, Following: true}, nil
}

// Feed - лента друзей, новые события сверху. Сбой даёт пустую ленту.
func (s *Service) Feed(ctx context.Context) ([]FeedEntry, error) {
	const op = "service/Feed"

	v, err := s.current(op)
	if err != nil {
		return nil, err
	}

	items, err := s.api.FetchSocialFeed(ctx, v.Session.Email)
	if err != nil {
		log.From(ctx).Warn("feed_failed", slog.String("err", err.Error()))
		return []FeedEntry{}, nil
	}

	items = social.SortFeed(items)
	out := make([]FeedEntry, 0, len(items))
	for _, it := range items {
		e := FeedEntry{
			FeedItem: it,
			Action:   feedAction(it),
			AvatarUI: avatar.Resolve(s.mediaBase(), it.Avatar, it.Username, it.Color, nil),
		}
		if m, ok := s.catalog.Lookup(it.MovieID); ok {
			e.Title = m.Title
		}
		out = append(out, e)
	}

	return out, nil
}

// Following - карточки подписок текущего пользователя.
func (s *Service) Following(ctx context.Context) ([]UserView, error) {
	const op = "service/Following"

	v, err := s.current(op)
	if err != nil {
		return nil, err
	}

	return s.resolveUsers(ctx, v.Session, v.Session.Following), nil
}

// Followers - карточки подписчиков текущего пользователя.
func (s *Service) Followers(ctx context.Context) ([]UserView, error) {
	const op = "service/Followers"

	v, err := s.current(op)
	if err != nil {
		return nil, err
	}

	return s.resolveUsers(ctx, v.Session, v.Session.Followers), nil
}

// VisitUser - профиль другого пользователя. Недоступный профиль (кроме 404)
// показывается пустым.
func (s *Service) VisitUser(ctx context.Context, email string) (VisitView, error) {
	const op = "service/VisitUser"

	v, err := s.current(op)
	if err != nil {
		return VisitView{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return VisitView{}, apperrors.New(apperrors.KindValidation, op, "email is required")
	}

	snap, err := s.api.FetchProfile(ctx, email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return VisitView{}, err
		}

		log.From(ctx).Warn("visit_profile_degraded",
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
	}

	visited := social.VisitedProfile(models.FallbackSummary(email), snap, v.Session)
	visited.IsFollowing = !visited.IsSelf && s.isFollowing(v.Session, email)
	unlocked := progress.UnlockedRewards(s.catalog.Collections(), snap.Watched)

	return VisitView{
		Visited:         visited,
		AvatarUI:        avatar.Resolve(s.mediaBase(), visited.Avatar, visited.Username, visited.Color, unlocked),
		History:         s.catalog.History(snap.Watched),
		Reviews:         s.catalog.Reviews(snap.Reviews),
		UnlockedRewards: unlocked,
	}, nil
}

func (s *Service) resolveUsers(ctx context.Context, viewer *models.Session, emails []string) []UserView {
	summaries := social.ResolveSummaries(ctx, s.api, emails, s.maxConc)

	out := make([]UserView, 0, len(summaries))
	for _, u := range summaries {
		out = append(out, s.userView(u, viewer))
	}

	return out
}

// isFollowing учитывает незавершённые оптимистичные переключения.
func (s *Service) isFollowing(viewer *models.Session, target string) bool {
	if next, ok := s.tracker.Pending(target); ok {
		return next
	}

	return social.IsFollowing(viewer, target)
}

func feedAction(it models.FeedItem) FeedAction {
	switch {
	case strings.TrimSpace(it.Review) != "":
		return FeedReviewed
	case it.Stars > 0:
		return FeedRated
	default:
		return FeedWatched
	}
}
