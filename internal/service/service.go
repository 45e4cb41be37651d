// service - прикладной слой компаньон-сервиса: склеивает API-клиент,
// реконсилер профиля, каталог и чистые view-model пакеты (social, progress, avatar).
//
// Все изменяющие действия после успеха ресинхронизируют профиль
// (Reconciler.AfterMutation): их оптимистичный результат не окончателен до обновления.
package service

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/pribylovaa/sort-a-short/internal/catalog"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/metrics"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/reconciler"
	"github.com/pribylovaa/sort-a-short/internal/social"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

// API - операции REST API, которыми пользуется сервис (api.Client).
type API interface {
	SignUp(ctx context.Context, email, password string) error
	ConfirmSignUp(ctx context.Context, email, code string) error
	FetchProfile(ctx context.Context, email string) (models.ProfileSnapshot, error)
	SaveProfile(ctx context.Context, email, username string, avatar int, color string) (models.ProfileSnapshot, error)
	RecordWatched(ctx context.Context, email string, movieID models.MovieID) error
	SubmitRating(ctx context.Context, email string, r models.Rating) error
	SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error)
	Follow(ctx context.Context, self, target string) error
	Unfollow(ctx context.Context, self, target string) error
	FollowByCode(ctx context.Context, self, code string) (string, error)
	FetchSocialFeed(ctx context.Context, email string) ([]models.FeedItem, error)
	DevRefill(ctx context.Context, email string) error
}

// Reconciler - машина состояний профиля (reconciler.Reconciler).
type Reconciler interface {
	Start(ctx context.Context) (reconciler.View, error)
	Refresh(ctx context.Context) (reconciler.View, error)
	SignIn(ctx context.Context, email, password string) (reconciler.View, error)
	SignOut(ctx context.Context) error
	AfterMutation(ctx context.Context) (reconciler.View, error)
	PatchSession(ctx context.Context, p models.SessionPatch) error
	View() reconciler.View
}

type Service struct {
	api     API
	rec     Reconciler
	catalog *catalog.Catalog
	tracker *social.Tracker
	metrics *metrics.Metrics
	now     func() int64

	maxConc  int
	devTools bool
	intn     func(n int) int
}

type Option func(*Service)

// WithMaxConcurrency - лимит параллельных запросов профилей в списках подписок.
func WithMaxConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConc = n
		}
	}
}

// WithDevTools включает отладочные операции (пополнение энергии).
func WithDevTools(enabled bool) Option {
	return func(s *Service) { s.devTools = enabled }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRand подменяет источник случайности для Shuffle (тесты).
func WithRand(intn func(n int) int) Option {
	return func(s *Service) {
		if intn != nil {
			s.intn = intn
		}
	}
}

// WithClock подменяет часы (Unix-секунды) для проверки срока токена.
func WithClock(now func() int64) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New собирает сервис. cat == nil - пустой каталог.
func New(api API, rec Reconciler, cat *catalog.Catalog, opts ...Option) *Service {
	if cat == nil {
		cat = catalog.New(nil, nil, "")
	}

	s := &Service{
		api:     api,
		rec:     rec,
		catalog: cat,
		tracker: social.NewTracker(),
		maxConc: social.DefaultMaxConcurrency,
		intn:    rand.IntN,
		now:     unixNow,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// Start поднимает сохранённую сессию. Сбой обновления не мешает запуску
// (состояние Stale), фатален только сбой локального хранилища.
func (s *Service) Start(ctx context.Context) (SessionView, error) {
	v, err := s.rec.Start(ctx)
	if err != nil && apperrors.KindOf(err) == apperrors.KindInternal {
		return s.sessionView(v), err
	}

	if err != nil {
		log.From(ctx).Warn("startup_refresh_failed", slog.String("err", err.Error()))
	}

	return s.sessionView(v), nil
}

// current - снимок реконсилера с обязательной сессией.
func (s *Service) current(op string) (reconciler.View, error) {
	v := s.rec.View()
	if v.Session == nil {
		return v, apperrors.New(apperrors.KindAuth, op, "not signed in")
	}

	return v, nil
}

// resync - обновление после успешного изменяющего действия. Ошибка обновления
// не отменяет действие: состояние станет Stale, а ошибка попадёт в лог.
func (s *Service) resync(ctx context.Context) reconciler.View {
	v, err := s.rec.AfterMutation(ctx)
	if err != nil {
		log.From(ctx).Warn("refresh_after_mutation_failed",
			slog.String("kind", apperrors.KindOf(err).String()),
			slog.String("err", err.Error()),
		)
	}

	return v
}
