package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/service"
)

// Service - операции прикладного слоя, доступные view API (service.Service).
type Service interface {
	Session() service.SessionView
	Refresh(ctx context.Context) (service.SessionView, error)
	SignUp(ctx context.Context, email, password string) error
	ConfirmSignUp(ctx context.Context, email, code string) error
	SignIn(ctx context.Context, email, password string) (service.SessionView, error)
	SignOut(ctx context.Context) (service.SessionView, error)

	Profile(ctx context.Context) (service.ProfileView, error)
	SaveProfile(ctx context.Context, in service.ProfileInput) (service.ProfileView, error)
	Rate(ctx context.Context, in service.RatingInput) (service.ProfileView, error)
	DevRefill(ctx context.Context) (service.ProfileView, error)

	Search(ctx context.Context, query string) ([]service.UserView, error)
	VisitUser(ctx context.Context, email string) (service.VisitView, error)
	Following(ctx context.Context) ([]service.UserView, error)
	Followers(ctx context.Context) ([]service.UserView, error)
	ToggleFollow(ctx context.Context, target string) (service.FollowResult, error)
	FollowByCode(ctx context.Context, code string) (service.FollowResult, error)
	Feed(ctx context.Context) ([]service.FeedEntry, error)

	Catalog(ctx context.Context, query string) []service.MovieView
	Collections(ctx context.Context) []service.CollectionView
	Shuffle(ctx context.Context) (service.ShuffleResult, error)
}

// Handlers - обработчики view API.
type Handlers struct {
	svc Service
}

func New(svc Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON - единый JSON-ответ. Ошибки пишутся через apperrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict - JSON-декодер без неизвестных полей.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	return dec.Decode(value)
}

func errInvalidBody() error {
	return apperrors.New(apperrors.KindValidation, "http/decode", "invalid request body")
}
