package service

import (
	"context"
	"log/slog"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/progress"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

// Catalog - фильмы каталога с признаком просмотра. Доступно и без входа.
func (s *Service) Catalog(ctx context.Context, query string) []MovieView {
	watched := watchedSet(s.rec.View().Profile.Watched)

	movies := s.catalog.Filter(query)
	out := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		out = append(out, s.movieView(m, watched))
	}

	return out
}

// Collections - подборки с прогрессом пользователя и состоянием уровней.
func (s *Service) Collections(ctx context.Context) []CollectionView {
	watched := s.rec.View().Profile.Watched

	cols := s.catalog.Collections()
	out := make([]CollectionView, 0, len(cols))
	for _, c := range cols {
		out = append(out, CollectionView{
			Collection: c,
			Progress:   progress.Progress(c, watched),
			Levels:     progress.LevelStates(c, watched),
		})
	}

	return out
}

// Shuffle выбирает случайный непросмотренный фильм (или любой, если
// просмотрено всё) и отмечает его просмотренным. Квоту проверяет сервер.
func (s *Service) Shuffle(ctx context.Context) (ShuffleResult, error) {
	const op = "service/Shuffle"

	v, err := s.current(op)
	if err != nil {
		return ShuffleResult{}, err
	}

	if s.catalog.Len() == 0 {
		return ShuffleResult{}, apperrors.New(apperrors.KindNotFound, op, "catalog is empty")
	}

	candidates := s.catalog.Unwatched(v.Profile.Watched)
	if len(candidates) == 0 {
		candidates = s.catalog.IDs()
	}

	id := candidates[s.intn(len(candidates))]
	movie, _ := s.catalog.Lookup(id)

	if err := s.api.RecordWatched(ctx, v.Session.Email, id); err != nil {
		if apperrors.KindOf(err) == apperrors.KindQuotaExceeded {
			log.From(ctx).Info("shuffle_quota_exceeded")
		}

		return ShuffleResult{}, err
	}

	log.From(ctx).Debug("shuffle_picked", slog.String("movie_id", id))

	after := s.resync(ctx)

	return ShuffleResult{
		MovieView: s.movieView(movie, watchedSet(append(after.Profile.Watched, id))),
		Energy:    after.Profile.Energy,
	}, nil
}
