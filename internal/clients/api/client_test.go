package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/sort-a-short/internal/clients/transport"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/session/file"
	"github.com/stretchr/testify/require"
)

// newTestClient поднимает фейковый апстрим и клиент поверх файлового хранилища.
func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *file.Store) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := file.New(filepath.Join(t.TempDir(), "session.json"))

	hc := &http.Client{Transport: transport.Chain(nil, transport.WithMetadata("test-agent"))}
	c, err := New(srv.URL, store, WithHTTPClient(hc))
	require.NoError(t, err)

	return c, store
}

func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(v))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		Subject:   "alice",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return tok
}

func TestNew_Validation(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "s.json"))

	_, err := New("ftp://x", store)
	require.Error(t, err)

	_, err = New("http://localhost:8080", nil)
	require.Error(t, err)

	c, err := New("http://localhost:8080/", store)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", c.baseURL.String())
}

func TestSignIn_PersistsSession(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signedToken(t, exp)

	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/signin", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var req credentialsRequest
		decodeBody(t, r, &req)
		require.Equal(t, "alice@mail.com", req.Email)
		require.Equal(t, "pw", req.Password)

		_ = json.NewEncoder(w).Encode(map[string]string{"token": tok, "email": "alice@mail.com"})
	})

	s, err := c.SignIn(context.Background(), "alice@mail.com", "pw")
	require.NoError(t, err)
	require.Equal(t, tok, s.Token)
	require.Equal(t, exp.Unix(), s.TokenExpiresAt)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestSignIn_BadCredentialsIsAuth(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "Incorrect username or password.")
	})

	_, err := c.SignIn(context.Background(), "alice@mail.com", "bad")
	require.ErrorIs(t, err, apperrors.ErrAuth)

	var e *apperrors.Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, "Incorrect username or password.", e.UserMessage())

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSignIn_ProviderOutageIsNetwork(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.SignIn(context.Background(), "alice@mail.com", "pw")
	require.ErrorIs(t, err, apperrors.ErrNetwork)
	require.NotErrorIs(t, err, apperrors.ErrAuth)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSignUp_PolicyViolationIsValidation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "An account with the given email already exists.")
	})

	err := c.SignUp(context.Background(), "alice@mail.com", "Secret1!")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Contains(t, err.Error(), "An account with the given email already exists.")
}

func TestSignUpAndConfirm(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/api/auth/confirm" {
			var req confirmRequest
			decodeBody(t, r, &req)
			require.Equal(t, "123456", req.Code)
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"body": "Invalid verification code provided"})
			return
		}
		_, _ = io.WriteString(w, `{"msg":"Criado"}`)
	})

	require.NoError(t, c.SignUp(context.Background(), "alice@mail.com", "Secret1!"))

	err := c.ConfirmSignUp(context.Background(), "alice@mail.com", " 123456 ")
	require.ErrorIs(t, err, apperrors.ErrAuth)
	require.Contains(t, err.Error(), "Invalid verification code provided")

	require.Equal(t, []string{"/api/auth/signup", "/api/auth/confirm"}, paths)

	require.ErrorIs(t, c.SignUp(context.Background(), "", "x"), apperrors.ErrValidation)
}

func TestSignOut_ClearsLocalOnly(t *testing.T) {
	called := false
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	require.NoError(t, store.Save(context.Background(), &models.Session{Email: "a@b.c"}))

	require.NoError(t, c.SignOut(context.Background()))
	require.False(t, called)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFetchProfile_OK(t *testing.T) {
	c, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/history", r.URL.Path)
		require.Equal(t, "alice+1@mail.com", r.URL.Query().Get("email"))
		require.NotEmpty(t, r.URL.Query().Get("_t"))
		require.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		_, _ = io.WriteString(w, `{
			"username":"alice","avatar":2.0,"color":"#0288d1","energy":1,"friend_code":"123456",
			"watched":["m1","m2"],
			"reviews":[{"movie_id":"m1","rating":4.0,"review":"ok","timestamp":"2024-05-01T10:00:00.123456"}],
			"following":["bob@mail.com"],"followers":[]
		}`)
	})
	require.NoError(t, store.Save(context.Background(), &models.Session{Email: "alice+1@mail.com", Token: "tok"}))

	p, err := c.FetchProfile(context.Background(), "alice+1@mail.com")
	require.NoError(t, err)

	require.Equal(t, "alice", p.Username)
	require.Equal(t, 2, p.Avatar)
	require.Equal(t, "#0288d1", p.Color)
	require.Equal(t, 1, p.Energy)
	require.Equal(t, []string{"m1", "m2"}, p.Watched)
	require.Len(t, p.Reviews, 1)
	require.Equal(t, 4, p.Reviews[0].Stars)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC), p.Reviews[0].Timestamp)
	require.Equal(t, []string{"bob@mail.com"}, p.Following)
	require.Equal(t, []string{}, p.Followers)
}

func TestFetchProfile_PartialBodyGetsDefaults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"watched":["m1"]}`)
	})

	p, err := c.FetchProfile(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Equal(t, models.DefaultColor, p.Color)
	require.Equal(t, models.DefaultEnergy, p.Energy)
	require.Equal(t, []models.Review{}, p.Reviews)
}

func TestFetchProfile_NetworkUnreachableReturnsDefault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url, file.New(filepath.Join(t.TempDir(), "s.json")))
	require.NoError(t, err)

	p, err := c.FetchProfile(context.Background(), "a@b.c")
	require.ErrorIs(t, err, apperrors.ErrNetwork)
	require.Equal(t, models.DefaultProfile(), p)
	require.Equal(t, []models.MovieID{}, p.Watched)
	require.Equal(t, []models.Review{}, p.Reviews)
}

func TestFetchProfile_UndecodableIsNetwork(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	p, err := c.FetchProfile(context.Background(), "a@b.c")
	require.ErrorIs(t, err, apperrors.ErrNetwork)
	require.Equal(t, models.DefaultProfile(), p)
}

func TestFetchProfile_CacheBusterStrictlyIncreasing(t *testing.T) {
	var mu sync.Mutex
	var seen []int64
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		v, err := strconv.ParseInt(r.URL.Query().Get("_t"), 10, 64)
		require.NoError(t, err)
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
		_, _ = io.WriteString(w, `{}`)
	})
	fixed := time.Unix(1700000000, 0)
	c.now = func() time.Time { return fixed }

	for i := 0; i < 3; i++ {
		_, err := c.FetchProfile(context.Background(), "a@b.c")
		require.NoError(t, err)
	}

	require.Len(t, seen, 3)
	require.Less(t, seen[0], seen[1])
	require.Less(t, seen[1], seen[2])
}

func TestRecordWatched_QuotaExceeded(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req historyRequest
		decodeBody(t, r, &req)
		require.Equal(t, "m1", req.MovieID)
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "Sem energia")
	})

	err := c.RecordWatched(context.Background(), "a@b.c", "m1")
	require.ErrorIs(t, err, apperrors.ErrQuotaExceeded)
	require.NotErrorIs(t, err, apperrors.ErrNetwork)
	require.Equal(t, apperrors.KindQuotaExceeded, apperrors.KindOf(err))
}

func TestRecordWatched_ServerErrorIsNetwork(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	require.ErrorIs(t, c.RecordWatched(context.Background(), "a@b.c", "m1"), apperrors.ErrNetwork)
}

func TestSaveProfile(t *testing.T) {
	t.Run("ok_plain_body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req profileRequest
			decodeBody(t, r, &req)
			require.Equal(t, profileRequest{Email: "a@b.c", Username: "neo", Avatar: 3, Color: "#7b1fa2"}, req)
			_, _ = io.WriteString(w, "Saved")
		})

		p, err := c.SaveProfile(context.Background(), "a@b.c", " neo ", 3, "#7b1fa2")
		require.NoError(t, err)
		require.Equal(t, "neo", p.Username)
		require.Equal(t, 3, p.Avatar)
		require.Equal(t, "#7b1fa2", p.Color)
	})

	t.Run("username_taken", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"body": "Nome de usuário já existe"})
		})

		_, err := c.SaveProfile(context.Background(), "a@b.c", "neo", 0, "")
		require.ErrorIs(t, err, apperrors.ErrValidation)

		var e *apperrors.Error
		require.ErrorAs(t, err, &e)
		require.Equal(t, "Nome de usuário já existe", e.UserMessage())
	})

	t.Run("empty_username", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { t.Error("must not be called") })
		_, err := c.SaveProfile(context.Background(), "a@b.c", "  ", 0, "")
		require.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestSubmitRating(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/rating", r.URL.Path)
		var req ratingRequest
		decodeBody(t, r, &req)
		require.Equal(t, ratingRequest{Email: "a@b.c", MovieID: "m1", Rating: 5, Review: "great"}, req)
		_, _ = io.WriteString(w, `{"status":"rating saved","new_average":4.5}`)
	})

	require.NoError(t, c.SubmitRating(context.Background(), "a@b.c", models.Rating{MovieID: "m1", Stars: 5, Review: " great "}))
	require.ErrorIs(t, c.SubmitRating(context.Background(), "a@b.c", models.Rating{MovieID: "m1", Stars: 0}), apperrors.ErrValidation)
	require.ErrorIs(t, c.SubmitRating(context.Background(), "a@b.c", models.Rating{MovieID: "m1", Stars: 6}), apperrors.ErrValidation)
}

func TestDevRefill(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dev/refill", r.URL.Path)
		var req emailRequest
		decodeBody(t, r, &req)
		require.Equal(t, "a@b.c", req.Email)
	})

	require.NoError(t, c.DevRefill(context.Background(), "a@b.c"))
}

func TestSearchUsers(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "ne o", r.URL.Query().Get("q"))
		_, _ = io.WriteString(w, `[{"email":"neo@m.io","username":"neo","avatar":"2"},{"email":"trin@m.io"},{"username":"ghost"}]`)
	})

	got, err := c.SearchUsers(context.Background(), "n")
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, 0, calls)

	got, err = c.SearchUsers(context.Background(), " ne o ")
	require.NoError(t, err)
	require.Equal(t, []models.UserSummary{
		{Email: "neo@m.io", Username: "neo", Avatar: 2, Color: "#333"},
		{Email: "trin@m.io", Username: "trin", Avatar: 0, Color: "#333"},
	}, got)
}

func TestSearchUsers_FailureIsEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	got, err := c.SearchUsers(context.Background(), "neo")
	require.Error(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFollowUnfollow(t *testing.T) {
	var reqs []followRequest
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req followRequest
		decodeBody(t, r, &req)
		reqs = append(reqs, req)
		if len(reqs) == 2 {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, "Already following")
		}
	})

	require.NoError(t, c.Follow(context.Background(), "a@b.c", "bob@b.c"))
	require.NoError(t, c.Follow(context.Background(), "a@b.c", "bob@b.c"), "duplicate follow must not fail")
	require.NoError(t, c.Unfollow(context.Background(), "a@b.c", "bob@b.c"))

	require.Equal(t, []followRequest{
		{Email: "a@b.c", TargetEmail: "bob@b.c", Action: "follow"},
		{Email: "a@b.c", TargetEmail: "bob@b.c", Action: "follow"},
		{Email: "a@b.c", TargetEmail: "bob@b.c", Action: "unfollow"},
	}, reqs)

	require.ErrorIs(t, c.Follow(context.Background(), "a@b.c", "A@b.c"), apperrors.ErrValidation)
}

func TestFollow_ServerErrorPropagates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	require.ErrorIs(t, c.Follow(context.Background(), "a@b.c", "bob@b.c"), apperrors.ErrNetwork)
}

func TestFollowByCode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req followRequest
		decodeBody(t, r, &req)
		require.Equal(t, "follow", req.Action)
		require.Empty(t, req.TargetEmail)

		if req.FriendCode == "654321" {
			_, _ = io.WriteString(w, `{"email":"bob@b.c"}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	})

	target, err := c.FollowByCode(context.Background(), "a@b.c", "#654321")
	require.NoError(t, err)
	require.Equal(t, "bob@b.c", target)

	_, err = c.FollowByCode(context.Background(), "a@b.c", "111111")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = c.FollowByCode(context.Background(), "a@b.c", "12345")
	require.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = c.FollowByCode(context.Background(), "a@b.c", "12a456")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFetchSocialFeed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "a@b.c", r.URL.Query().Get("email"))
		_, _ = io.WriteString(w, `[
			{"friend_email":"bob@b.c","username":"bob","avatar":1,"movie_id":"m1","rating":3.0,"review":"","timestamp":"2024-01-01T00:00:00Z"},
			{"friend_email":"eve@b.c","username":"eve","color":"#d32f2f","movie_id":"m2","rating":"5","timestamp":"2024-02-01T00:00:00"}
		]`)
	})

	feed, err := c.FetchSocialFeed(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, models.DefaultColor, feed[0].Color)
	require.Equal(t, 3, feed[0].Stars)
	require.Equal(t, 5, feed[1].Stars)
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feed[1].Timestamp)
}

func TestFetchSocialFeed_BadTimestampKeepsFeed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[
			{"friend_email":"bob@b.c","movie_id":"m1","rating":3,"timestamp":"yesterday"},
			{"friend_email":"eve@b.c","movie_id":"m2","rating":5,"timestamp":{"$date":1}},
			{"friend_email":"joe@b.c","movie_id":"m3","rating":4,"timestamp":1706745600}
		]`)
	})

	feed, err := c.FetchSocialFeed(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Len(t, feed, 3)
	require.True(t, feed[0].Timestamp.IsZero())
	require.True(t, feed[1].Timestamp.IsZero())
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feed[2].Timestamp)
}

func TestFetchSocialFeed_FailureIsEmpty(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	feed, err := c.FetchSocialFeed(context.Background(), "a@b.c")
	require.ErrorIs(t, err, apperrors.ErrNetwork)
	require.NotNil(t, feed)
	require.Empty(t, feed)
}

func TestServerMessage(t *testing.T) {
	tcs := []struct {
		in   string
		want string
	}{
		{``, ""},
		{`plain text`, "plain text"},
		{`{"body":"from body"}`, "from body"},
		{`{"message":"from message"}`, "from message"},
		{`{"error":"from error"}`, "from error"},
		{`{"other":1}`, ""},
		{`"quoted"`, "quoted"},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.want, serverMessage([]byte(tc.in)), tc.in)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	require.Equal(t, exp.Unix(), tokenExpiry(signedToken(t, exp)))
	require.Zero(t, tokenExpiry("opaque-token"))
}
