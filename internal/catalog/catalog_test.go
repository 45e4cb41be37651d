package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/config"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/stretchr/testify/require"
)

const shortsJSON = `{
  "Hair Love": {"titulo": "Hair Love", "ano": 2019, "diretor": "Matthew A. Cherry", "pais": "EUA", "genero": "Animação", "descricao": "d", "capaSeconds": "12.5"},
  "Piper": {"titulo": "Piper", "ano": "2016", "diretor": "Alan Barillaro", "pais": "EUA", "genero": "Animação", "descricao": "d"},
  "Bao": {"titulo": "Bao", "ano": 2018, "diretor": "Domee Shi", "pais": "EUA", "genero": "Animação", "descricao": "d", "detalhes": "long"}
}`

const collectionsJSON = `{
  "pixar": {"title": "Pixar", "desc": "Curtas da Pixar", "type": "studio", "allMovies": ["Piper", "Bao"],
            "levels": [{"required": 1, "rewards": [7]}, {"required": "2", "rewards": ["8", 9]}]},
  "misc": {"title": "Misc", "type": "festival", "allMovies": ["Hair Love"], "levels": []}
}`

func newSample(t *testing.T) *Catalog {
	t.Helper()

	movies, err := DecodeMovies([]byte(shortsJSON))
	require.NoError(t, err)
	cols, err := DecodeCollections([]byte(collectionsJSON))
	require.NoError(t, err)

	return New(movies, cols, "https://cdn.example/")
}

func TestDecode_FlexibleFields(t *testing.T) {
	c := newSample(t)

	m, ok := c.Lookup("Hair Love")
	require.True(t, ok)
	require.Equal(t, "2019", m.Year)
	require.Equal(t, 12.5, m.CoverSeconds)
	require.Equal(t, "Hair Love", m.ID)

	pixar, ok := c.Collection("pixar")
	require.True(t, ok)
	require.Equal(t, models.CollectionStudio, pixar.Type)
	require.Equal(t, []models.Level{
		{Required: 1, Rewards: []models.RewardID{"7"}},
		{Required: 2, Rewards: []models.RewardID{"8", "9"}},
	}, pixar.Levels)

	misc, _ := c.Collection("misc")
	require.Equal(t, models.CollectionOther, misc.Type)

	_, err := DecodeMovies([]byte(`[1,2]`))
	require.Error(t, err)
}

func TestCatalog_Filter(t *testing.T) {
	c := newSample(t)

	ids := func(ms []models.Movie) []string {
		out := make([]string, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	require.Equal(t, []string{"Bao", "Hair Love", "Piper"}, ids(c.Filter("")))
	require.Equal(t, []string{"Piper"}, ids(c.Filter("PIP")))
	require.Equal(t, []string{"Bao"}, ids(c.Filter("domee")))
	require.Empty(t, c.Filter("zzz"))
}

func TestCatalog_MediaURLs(t *testing.T) {
	c := newSample(t)

	require.Equal(t, "https://cdn.example/videos/hair_love/playlist.mpd", c.VideoURL("Hair Love"))
	require.Equal(t, "https://cdn.example/posters/Hair Love.jpg", c.PosterURL("Hair Love"))

	rel := New(nil, nil, "")
	require.Equal(t, "/videos/bao/playlist.mpd", rel.VideoURL("Bao"))
}

func TestCatalog_HistoryAndReviews(t *testing.T) {
	c := newSample(t)

	hist := c.History([]models.MovieID{"Piper", "gone", "Bao"})
	require.Len(t, hist, 2)
	require.Equal(t, "Bao", hist[0].ID)
	require.Equal(t, "Piper", hist[1].ID)

	revs := c.Reviews([]models.Review{{MovieID: "Bao", Stars: 5}, {MovieID: "gone", Stars: 1}, {MovieID: "Piper", Stars: 3}})
	require.Len(t, revs, 2)
	require.Equal(t, "Piper", revs[0].Title)
	require.Equal(t, 5, revs[1].Stars)
}

func TestCatalog_Unwatched(t *testing.T) {
	c := newSample(t)
	require.Equal(t, []models.MovieID{"Hair Love"}, c.Unwatched([]models.MovieID{"Bao", "Piper"}))
	require.Empty(t, c.Unwatched(c.IDs()))
}

func TestLoader_FileAndHTTP(t *testing.T) {
	dir := t.TempDir()
	shorts := filepath.Join(dir, "shorts.json")
	require.NoError(t, os.WriteFile(shorts, []byte(shortsJSON), 0o600))

	var gotT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collections.json", r.URL.Path)
		gotT = r.URL.Query().Get("t")
		_, _ = w.Write([]byte(collectionsJSON))
	}))
	defer srv.Close()

	l := &Loader{Now: func() time.Time { return time.UnixMilli(1700000000123) }}
	c, err := l.Load(context.Background(), config.CatalogConfig{
		CatalogURL:     shorts,
		CollectionsURL: srv.URL + "/collections.json",
		MediaBaseURL:   "https://cdn.example",
	})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Len(t, c.Collections(), 2)
	require.Equal(t, "1700000000123", gotT)
}

func TestLoader_Errors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	l := &Loader{}

	_, err := l.Read(context.Background(), srv.URL+"/shorts.json")
	require.ErrorContains(t, err, "status=404")

	_, err = l.Read(context.Background(), "s3://bucket/shorts.json")
	require.ErrorContains(t, err, "without s3 client")

	_, err = l.Read(context.Background(), "ftp://host/x")
	require.ErrorContains(t, err, "unsupported scheme")

	_, err = l.Read(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

type fakeS3 map[string][]byte

func (f fakeS3) Get(_ context.Context, bucket, key string) ([]byte, error) {
	if b, ok := f[bucket+"/"+key]; ok {
		return b, nil
	}
	return nil, ErrObjectNotFound
}

func TestLoader_S3Scheme(t *testing.T) {
	l := &Loader{S3: fakeS3{"sort-a-short/shorts.json": []byte(shortsJSON)}}

	data, err := l.Read(context.Background(), "s3://sort-a-short/shorts.json")
	require.NoError(t, err)
	require.JSONEq(t, shortsJSON, string(data))

	_, err = l.Read(context.Background(), "s3://sort-a-short/none.json")
	require.True(t, errors.Is(err, ErrObjectNotFound))

	require.True(t, NeedsS3(config.CatalogConfig{CatalogURL: "s3://b/k", CollectionsURL: "c.json"}))
	require.False(t, NeedsS3(config.CatalogConfig{CatalogURL: "a.json", CollectionsURL: "https://x/c.json"}))
}
