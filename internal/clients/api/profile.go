package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
)

// FetchProfile загружает профиль пользователя.
//
// Всегда возвращает пригодный снимок: при любой ошибке это models.DefaultProfile()
// вместе с классифицированной ошибкой, которую вызывающий может проигнорировать.
// Каждый запрос некэшируемый: _t строго возрастает, Cache-Control: no-cache.
func (c *Client) FetchProfile(ctx context.Context, email string) (models.ProfileSnapshot, error) {
	const op = "clients/api/FetchProfile"

	if strings.TrimSpace(email) == "" {
		return models.DefaultProfile(), apperrors.New(apperrors.KindValidation, op, "email is required")
	}

	var resp profileResponse
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/api/history",
		query:  url.Values{"email": {email}, "_t": {c.cacheBuster()}},
		header: http.Header{"Cache-Control": {"no-cache"}},
	}, &resp)
	if err != nil {
		return models.DefaultProfile(), err
	}

	return resp.toModel(), nil
}

// SaveProfile сохраняет имя, аватар и цвет. Отказ сервера (например, имя занято)
// возвращается как KindValidation с сообщением сервера дословно.
//
// Если сервер не вернул профиль в теле, снимок собирается из переданных полей.
func (c *Client) SaveProfile(ctx context.Context, email, username string, avatar int, color string) (models.ProfileSnapshot, error) {
	const op = "clients/api/SaveProfile"

	username = strings.TrimSpace(username)
	if username == "" {
		return models.ProfileSnapshot{}, apperrors.New(apperrors.KindValidation, op, "username is required")
	}
	if avatar < 0 {
		return models.ProfileSnapshot{}, apperrors.New(apperrors.KindValidation, op, "avatar must not be negative")
	}

	var resp profileResponse
	if err := c.do(ctx, call{
		op:      op,
		method:  http.MethodPost,
		path:    "/api/profile",
		body:    profileRequest{Email: email, Username: username, Avatar: avatar, Color: color},
		lenient: true,
	}, &resp); err != nil {
		return models.ProfileSnapshot{}, err
	}

	out := resp.toModel()
	if resp.Username == nil || out.Username == "" {
		out.Username = username
	}
	if out.Avatar == 0 {
		out.Avatar = avatar
	}
	if resp.Color == "" && color != "" {
		out.Color = color
	}

	return out, nil
}

// RecordWatched отмечает фильм просмотренным и тратит единицу энергии.
// HTTP 403 - KindQuotaExceeded ("no energy left"), а не сетевой сбой.
func (c *Client) RecordWatched(ctx context.Context, email string, movieID models.MovieID) error {
	const op = "clients/api/RecordWatched"

	if movieID == "" {
		return apperrors.New(apperrors.KindValidation, op, "movie id is required")
	}

	return c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/history",
		body:   historyRequest{Email: email, MovieID: movieID},
	}, nil)
}

// SubmitRating отправляет оценку 1..5 с необязательным текстом. Одна оценка на
// пару (пользователь, фильм) обеспечивается ключом на сервере.
func (c *Client) SubmitRating(ctx context.Context, email string, r models.Rating) error {
	const op = "clients/api/SubmitRating"

	if r.MovieID == "" {
		return apperrors.New(apperrors.KindValidation, op, "movie id is required")
	}
	if r.Stars < 1 || r.Stars > 5 {
		return apperrors.New(apperrors.KindValidation, op, "rating must be between 1 and 5")
	}

	return c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/rating",
		body: ratingRequest{
			Email:   email,
			MovieID: r.MovieID,
			Rating:  r.Stars,
			Review:  strings.TrimSpace(r.Review),
		},
	}, nil)
}

// DevRefill восстанавливает энергию (только для dev-стендов).
func (c *Client) DevRefill(ctx context.Context, email string) error {
	const op = "clients/api/DevRefill"

	return c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/dev/refill",
		body:   emailRequest{Email: email},
	}, nil)
}
