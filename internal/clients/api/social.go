package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
)

const (
	// MinSearchQuery - минимальная длина запроса поиска (в рунах).
	MinSearchQuery = 2
	// MinFriendCode - минимальная длина кода друга (цифры).
	MinFriendCode = 6

	actionFollow   = "follow"
	actionUnfollow = "unfollow"
)

// SearchUsers ищет пользователей по имени или коду. Запрос короче MinSearchQuery
// не отправляется. При ошибке возвращается пустой срез (ошибка - для логов).
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.UserSummary, error) {
	const op = "clients/api/SearchUsers"

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchQuery {
		return []models.UserSummary{}, nil
	}

	var resp []userSummaryDTO
	if err := c.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/api/users/search",
		query:  url.Values{"q": {query}},
	}, &resp); err != nil {
		return []models.UserSummary{}, err
	}

	out := make([]models.UserSummary, 0, len(resp))
	for _, u := range resp {
		if u.Email == "" {
			continue
		}
		out = append(out, u.toModel())
	}

	return out, nil
}

// Follow подписывает self на target. Повторная подписка не ошибка: ответ
// сервера "уже подписан" (409) считается успехом.
func (c *Client) Follow(ctx context.Context, self, target string) error {
	return c.follow(ctx, "clients/api/Follow", self, target, actionFollow)
}

// Unfollow отписывает self от target; "не подписан" (409) считается успехом.
func (c *Client) Unfollow(ctx context.Context, self, target string) error {
	return c.follow(ctx, "clients/api/Unfollow", self, target, actionUnfollow)
}

func (c *Client) follow(ctx context.Context, op, self, target, action string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return apperrors.New(apperrors.KindValidation, op, "target email is required")
	}
	if strings.EqualFold(self, target) {
		return apperrors.New(apperrors.KindValidation, op, "cannot follow yourself")
	}

	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/social/follow",
		body:   followRequest{Email: self, TargetEmail: target, Action: action},
	}, nil)
	if statusOf(err) == http.StatusConflict {
		return nil
	}

	return err
}

// FollowByCode находит пользователя по коду друга и подписывается на него.
// Код - не меньше MinFriendCode цифр. Любой не-2xx ответ - KindNotFound.
// Возвращает email найденного пользователя, если сервер его сообщил.
func (c *Client) FollowByCode(ctx context.Context, self, code string) (string, error) {
	const op = "clients/api/FollowByCode"

	code = strings.TrimPrefix(strings.TrimSpace(code), "#")
	if !validFriendCode(code) {
		return "", apperrors.New(apperrors.KindValidation, op, "invalid friend code")
	}

	var resp followResponse
	err := c.do(ctx, call{
		op:      op,
		method:  http.MethodPost,
		path:    "/api/social/follow",
		body:    followRequest{Email: self, FriendCode: code, Action: actionFollow},
		lenient: true,
	}, &resp)
	if err != nil {
		if st := statusOf(err); st != 0 && st != http.StatusUnauthorized {
			return "", &apperrors.Error{Kind: apperrors.KindNotFound, Op: op, Message: "user not found", Status: st}
		}
		return "", err
	}

	return resp.Email, nil
}

// FetchSocialFeed загружает ленту друзей. Порядок не гарантирован
// (см. social.SortFeed). При ошибке - пустой срез и ошибка для логов.
func (c *Client) FetchSocialFeed(ctx context.Context, email string) ([]models.FeedItem, error) {
	const op = "clients/api/FetchSocialFeed"

	var resp []feedItemDTO
	if err := c.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		path:   "/api/social/feed",
		query:  url.Values{"email": {email}},
	}, &resp); err != nil {
		return []models.FeedItem{}, err
	}

	out := make([]models.FeedItem, 0, len(resp))
	for _, f := range resp {
		out = append(out, f.toModel())
	}

	return out, nil
}

func validFriendCode(code string) bool {
	if len(code) < MinFriendCode {
		return false
	}

	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
