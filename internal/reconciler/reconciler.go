// reconciler - машина состояний синхронизации профиля.
//
// Состояния: Anonymous, Refreshing, Authenticated, Stale.
// Сервер авторитетен: успешное обновление перезаписывает рабочие списки
// (watched/reviews/following/followers) и оптимистичные локальные правки.
//
// Конкурентность: один Reconciler обслуживает все горутины view API.
// Сетевой вызов выполняется вне мьютекса; результат применяется под мьютексом
// только если поколение (gen) не сменилось и контекст вызывающего жив.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/metrics"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/session"
	"github.com/pribylovaa/sort-a-short/pkg/redact"
)

type State int

const (
	Anonymous State = iota
	Refreshing
	Authenticated
	Stale
)

func (s State) String() string {
	switch s {
	case Refreshing:
		return "refreshing"
	case Authenticated:
		return "authenticated"
	case Stale:
		return "stale"
	default:
		return "anonymous"
	}
}

// ErrSignInRejected - вход отклонён на шаге учётных данных (в отличие от
// сбоя обновления уже после входа). Прежняя сессия при этом не меняется.
var ErrSignInRejected = errors.New("sign in rejected")

// Gateway - часть API-клиента, нужная реконсилеру.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	FetchProfile(ctx context.Context, email string) (models.ProfileSnapshot, error)
}

// View - снимок состояния для чтения. Не разделяет память с реконсилером.
type View struct {
	State       State
	Session     *models.Session
	Profile     models.ProfileSnapshot
	LastError   error
	RefreshedAt time.Time
}

type Reconciler struct {
	gw      Gateway
	store   session.Store
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	keepStale bool

	mu          sync.Mutex
	state       State
	session     *models.Session
	working     models.ProfileSnapshot
	gen         uint64
	lastErr     error
	refreshedAt time.Time
}

type Option func(*Reconciler)

// WithKeepStaleHistory - при неудачном обновлении сохранять последние
// известные watched/reviews вместо пустых списков.
func WithKeepStaleHistory(keep bool) Option {
	return func(r *Reconciler) { r.keepStale = keep }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) {
		if l != nil {
			r.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Reconciler) { r.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

func New(gw Gateway, store session.Store, opts ...Option) *Reconciler {
	r := &Reconciler{
		gw:      gw,
		store:   store,
		log:     slog.Default(),
		now:     time.Now,
		working: models.DefaultProfile(),
	}

	for _, o := range opts {
		o(r)
	}

	r.metrics.SetReconcilerState(Anonymous.String())

	return r
}

// Start поднимает сохранённую сессию: нет сессии - Anonymous,
// иначе Refreshing и обновление профиля.
func (r *Reconciler) Start(ctx context.Context) (View, error) {
	const op = "reconciler/Start"

	s, err := r.store.Load(ctx)
	if err != nil {
		return r.View(), apperrors.Wrap(apperrors.KindInternal, op, fmt.Errorf("load session: %w", err))
	}

	r.mu.Lock()
	r.gen++
	r.session = s
	if s == nil {
		r.working = models.DefaultProfile()
		r.setState(Anonymous)
		r.mu.Unlock()

		r.log.Info("session_absent")

		return r.View(), nil
	}
	r.mu.Unlock()

	return r.Refresh(ctx)
}

// Refresh обновляет профиль с сервера.
//
// Результат отбрасывается (не применяется), если контекст отменён или за время
// запроса случились более новое обновление, вход или выход.
func (r *Reconciler) Refresh(ctx context.Context) (View, error) {
	const op = "reconciler/Refresh"

	r.mu.Lock()
	if r.session == nil {
		r.mu.Unlock()
		return r.View(), apperrors.New(apperrors.KindAuth, op, "not signed in")
	}

	r.gen++
	gen := r.gen
	prev := r.state
	email := r.session.Email
	r.setState(Refreshing)
	r.mu.Unlock()

	start := r.now()
	snap, fetchErr := r.gw.FetchProfile(ctx, email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx.Err() != nil {
		if r.gen == gen {
			r.setState(prev)
		}

		return r.viewLocked(), apperrors.Wrap(apperrors.KindNetwork, op, ctx.Err())
	}

	if r.gen != gen || r.session == nil || r.session.Email != email {
		r.log.Debug("refresh_discarded", slog.String("email", redact.Email(email)))
		return r.viewLocked(), nil
	}

	if fetchErr != nil {
		r.applyFailureLocked(fetchErr)

		r.log.Warn("refresh_failed",
			slog.String("email", redact.Email(email)),
			slog.String("kind", apperrors.KindOf(fetchErr).String()),
			slog.String("err", fetchErr.Error()),
		)

		return r.viewLocked(), fetchErr
	}

	r.applySnapshotLocked(ctx, snap)

	r.log.Debug("refresh_ok",
		slog.String("email", redact.Email(email)),
		slog.Int("watched", len(snap.Watched)),
		slog.Duration("dur", r.now().Sub(start)),
	)

	return r.viewLocked(), nil
}

// SignIn - вход (API-клиент сохраняет сессию) и немедленное обновление.
func (r *Reconciler) SignIn(ctx context.Context, email, password string) (View, error) {
	const op = "reconciler/SignIn"

	s, err := r.gw.SignIn(ctx, email, password)
	if err != nil {
		return r.View(), fmt.Errorf("%s: %w: %w", op, ErrSignInRejected, err)
	}

	r.mu.Lock()
	r.gen++
	r.session = s.Clone()
	r.working = models.DefaultProfile()
	r.lastErr = nil
	r.mu.Unlock()

	r.log.Info("signed_in", slog.String("email", redact.Email(s.Email)))

	return r.Refresh(ctx)
}

// SignOut очищает локальную сессию. Из любого состояния -> Anonymous,
// даже если очистка хранилища не удалась.
func (r *Reconciler) SignOut(ctx context.Context) error {
	err := r.gw.SignOut(ctx)

	r.mu.Lock()
	r.gen++
	r.session = nil
	r.working = models.DefaultProfile()
	r.lastErr = nil
	r.refreshedAt = time.Time{}
	r.setState(Anonymous)
	r.mu.Unlock()

	r.log.Info("signed_out")

	return err
}

// AfterMutation ресинхронизирует состояние после любого изменяющего действия.
func (r *Reconciler) AfterMutation(ctx context.Context) (View, error) {
	return r.Refresh(ctx)
}

// PatchSession применяет правку профиля к сессии сразу (до обновления с сервера).
func (r *Reconciler) PatchSession(ctx context.Context, p models.SessionPatch) error {
	const op = "reconciler/PatchSession"

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session == nil {
		return nil
	}

	r.session.Apply(p)

	if err := r.store.Patch(ctx, p); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, op, fmt.Errorf("patch session: %w", err))
	}

	return nil
}

// View возвращает глубокую копию текущего состояния.
func (r *Reconciler) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.viewLocked()
}

func (r *Reconciler) applySnapshotLocked(ctx context.Context, snap models.ProfileSnapshot) {
	var p models.SessionPatch
	if snap.Username != "" {
		p.Username = &snap.Username
	}
	if snap.Avatar > 0 {
		p.Avatar = &snap.Avatar
	}
	if snap.Color != "" && snap.Color != models.DefaultColor {
		p.Color = &snap.Color
	}

	r.session.Apply(p)
	if snap.FriendCode != "" {
		r.session.FriendCode = snap.FriendCode
	}
	r.session.Following = nonNil(snap.Following)
	r.session.Followers = nonNil(snap.Followers)

	// Хранилище локальное; запись под мьютексом сохраняет порядок применений.
	if err := r.store.Save(ctx, r.session); err != nil {
		r.log.Warn("session_save_failed", slog.String("err", err.Error()))
	}

	r.working = cloneSnapshot(snap)
	r.working.Username = r.session.Username
	r.working.Avatar = r.session.Avatar
	if r.session.Color != "" {
		r.working.Color = r.session.Color
	}

	r.lastErr = nil
	r.refreshedAt = r.now()
	r.setState(Authenticated)
}

func (r *Reconciler) applyFailureLocked(err error) {
	prev := r.working

	r.working = models.DefaultProfile()
	r.working.Username = r.session.Username
	r.working.Avatar = r.session.Avatar
	if r.session.Color != "" {
		r.working.Color = r.session.Color
	}
	r.working.FriendCode = r.session.FriendCode
	r.working.Following = nonNil(r.session.Following)
	r.working.Followers = nonNil(r.session.Followers)

	if r.keepStale {
		r.working.Watched = prev.Watched
		r.working.Reviews = prev.Reviews
		r.working.Energy = prev.Energy
	}

	r.lastErr = err
	r.setState(Stale)
}

func (r *Reconciler) viewLocked() View {
	return View{
		State:       r.state,
		Session:     r.session.Clone(),
		Profile:     cloneSnapshot(r.working),
		LastError:   r.lastErr,
		RefreshedAt: r.refreshedAt,
	}
}

func (r *Reconciler) setState(s State) {
	if r.state != s {
		r.log.Debug("reconciler_state", slog.String("from", r.state.String()), slog.String("to", s.String()))
	}

	r.state = s
	r.metrics.SetReconcilerState(s.String())
}

func cloneSnapshot(p models.ProfileSnapshot) models.ProfileSnapshot {
	out := p
	out.Watched = nonNil(slices.Clone(p.Watched))
	out.Reviews = slices.Clone(p.Reviews)
	if out.Reviews == nil {
		out.Reviews = []models.Review{}
	}
	out.Following = nonNil(slices.Clone(p.Following))
	out.Followers = nonNil(slices.Clone(p.Followers))

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return slices.Clone(s)
}
