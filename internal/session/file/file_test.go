package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", "sortashort_session.json"))
}

func sample() *models.Session {
	return &models.Session{
		Token:     "tok",
		Email:     "alice@mail.com",
		Username:  "alice",
		Avatar:    2,
		Color:     "#303f9f",
		Following: []string{"bob@mail.com"},
		Followers: []string{},
	}
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Save(ctx, sample()))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sample(), got)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_Load_MissingIsNone(t *testing.T) {
	got, err := newStore(t).Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_Load_CorruptIsNone(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o700))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"email": "a@b`), 0o600))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_Save_Overwrites(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Save(ctx, sample()))

	next := &models.Session{Token: "t2", Email: "carol@mail.com", Following: []string{}, Followers: []string{}}
	require.NoError(t, s.Save(ctx, next))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, next, got)
}

func TestStore_Save_Nil(t *testing.T) {
	require.Error(t, newStore(t).Save(context.Background(), nil))
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Clear(ctx), "clearing an absent session is fine")

	require.NoError(t, s.Save(ctx, sample()))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_Patch(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Save(ctx, sample()))

	name := "alice2"
	require.NoError(t, s.Patch(ctx, models.SessionPatch{Username: &name}))

	got, err := s.Load(ctx)
	require.NoError(t, err)

	want := sample()
	want.Username = "alice2"
	require.Equal(t, want, got)
}

func TestStore_Patch_NoSessionIsNoop(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	avatar := 5
	require.NoError(t, s.Patch(ctx, models.SessionPatch{Avatar: &avatar}))

	_, err := os.Stat(s.Path())
	require.True(t, os.IsNotExist(err))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	p, err := DefaultPath("sortashort_session")
	require.NoError(t, err)
	require.Equal(t, "sortashort_session.json", filepath.Base(p))
	require.Equal(t, "sortashort", filepath.Base(filepath.Dir(p)))
}
