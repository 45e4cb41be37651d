package social

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/pkg/log"
	"github.com/pribylovaa/sort-a-short/pkg/redact"
)

// DefaultMaxConcurrency - лимит параллельных запросов профиля.
const DefaultMaxConcurrency = 6

// ProfileFetcher - источник профилей (api.Client).
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, email string) (models.ProfileSnapshot, error)
}

// ResolveSummaries загружает карточки пользователей конкурентно.
//
// Ошибка одного элемента не прерывает пакет: элемент деградирует до
// models.FallbackSummary. Порядок результата совпадает с emails.
// При отмене ctx незавершённые элементы возвращаются как fallback.
func ResolveSummaries(ctx context.Context, f ProfileFetcher, emails []string, maxConc int) []models.UserSummary {
	if maxConc <= 0 {
		maxConc = DefaultMaxConcurrency
	}

	out := make([]models.UserSummary, len(emails))
	for i, e := range emails {
		out[i] = models.FallbackSummary(e)
	}

	lg := log.From(ctx)
	sem := make(chan struct{}, maxConc)
	var wg sync.WaitGroup

loop:
	for i, email := range emails {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()

			snap, err := f.FetchProfile(ctx, email)
			if err != nil {
				lg.Debug("summary_fallback",
					slog.String("email", redact.Email(email)),
					slog.String("err", err.Error()),
				)
				return
			}
			if ctx.Err() != nil {
				return
			}

			// Каждая горутина пишет только свой индекс.
			out[i] = summaryFrom(email, snap)
		}()
	}

	wg.Wait()

	return out
}

func summaryFrom(email string, snap models.ProfileSnapshot) models.UserSummary {
	s := models.FallbackSummary(email)
	if snap.Username != "" {
		s.Username = snap.Username
	}
	s.Avatar = snap.Avatar
	if snap.Color != "" {
		s.Color = snap.Color
	}

	return s
}
