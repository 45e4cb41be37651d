package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
)

// SignUp регистрирует аккаунт. Подтверждение приходит кодом на почту.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	const op = "clients/api/SignUp"

	if err := requireCredentials(op, email, password); err != nil {
		return err
	}

	return c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/auth/signup",
		body:   credentialsRequest{Email: email, Password: password},
	}, nil)
}

// ConfirmSignUp подтверждает регистрацию кодом из письма.
func (c *Client) ConfirmSignUp(ctx context.Context, email, code string) error {
	const op = "clients/api/ConfirmSignUp"

	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" {
		return apperrors.New(apperrors.KindValidation, op, "email and code are required")
	}

	return c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/auth/confirm",
		body:   confirmRequest{Email: email, Code: strings.TrimSpace(code)},
	}, nil)
}

// SignIn выполняет вход и сохраняет новую сессию в локальное хранилище.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "clients/api/SignIn"

	if err := requireCredentials(op, email, password); err != nil {
		return nil, err
	}

	var resp signInResponse
	if err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   "/api/auth/signin",
		body:   credentialsRequest{Email: email, Password: password},
	}, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, apperrors.New(apperrors.KindNetwork, op, "empty token in sign-in response")
	}

	s := &models.Session{
		Token:          resp.Token,
		Email:          resp.Email,
		Following:      []string{},
		Followers:      []string{},
		TokenExpiresAt: tokenExpiry(resp.Token),
	}
	if s.Email == "" {
		s.Email = email
	}

	if err := c.store.Save(ctx, s); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, op, fmt.Errorf("save session: %w", err))
	}

	return s.Clone(), nil
}

// SignOut очищает только локальную сессию; сервер не вызывается.
func (c *Client) SignOut(ctx context.Context) error {
	const op = "clients/api/SignOut"

	if err := c.store.Clear(ctx); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, op, fmt.Errorf("clear session: %w", err))
	}

	return nil
}

func requireCredentials(op, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return apperrors.New(apperrors.KindValidation, op, "email and password are required")
	}

	return nil
}

// tokenExpiry читает exp из access token без проверки подписи: проверку
// выполняет провайдер идентичности. 0 - не JWT или exp нет.
func tokenExpiry(token string) int64 {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}

	return exp.Unix()
}
