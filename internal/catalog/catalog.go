// catalog - статический каталог короткометражек и подборок (только чтение).
//
// shorts.json: объект id -> фильм; collections.json: объект id -> подборка.
// Медиа-пути строятся от MediaBaseURL: видео - DASH-манифест, постер - jpg.
package catalog

import (
	"maps"
	"slices"
	"strings"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// Catalog - неизменяемый после создания индекс фильмов и подборок.
// Безопасен для конкурентного чтения.
type Catalog struct {
	movies      map[models.MovieID]models.Movie
	ids         []models.MovieID
	collections []models.Collection
	mediaBase   string
}

// New строит каталог. ID фильмов и подборок берутся из ключей.
func New(movies map[models.MovieID]models.Movie, collections map[string]models.Collection, mediaBase string) *Catalog {
	c := &Catalog{
		movies:    make(map[models.MovieID]models.Movie, len(movies)),
		mediaBase: strings.TrimRight(mediaBase, "/"),
	}

	for id, m := range movies {
		m.ID = id
		c.movies[id] = m
	}
	c.ids = slices.Sorted(maps.Keys(c.movies))

	for _, id := range slices.Sorted(maps.Keys(collections)) {
		col := collections[id]
		col.ID = id
		c.collections = append(c.collections, col)
	}

	return c
}

func (c *Catalog) Len() int { return len(c.ids) }

// MediaBase - префикс медиа без завершающего "/".
func (c *Catalog) MediaBase() string { return c.mediaBase }

// IDs - все id по возрастанию (копия).
func (c *Catalog) IDs() []models.MovieID { return slices.Clone(c.ids) }

func (c *Catalog) Lookup(id models.MovieID) (models.Movie, bool) {
	m, ok := c.movies[id]
	return m, ok
}

// Filter - фильмы, в названии или у режиссёра которых есть query (без учёта
// регистра). Пустой запрос - весь каталог. Порядок - по id.
func (c *Catalog) Filter(query string) []models.Movie {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Movie, 0, len(c.ids))
	for _, id := range c.ids {
		m := c.movies[id]
		if q == "" ||
			strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Director), q) {
			out = append(out, m)
		}
	}

	return out
}

// Collections - подборки по id (копия).
func (c *Catalog) Collections() []models.Collection { return slices.Clone(c.collections) }

func (c *Catalog) Collection(id string) (models.Collection, bool) {
	for _, col := range c.collections {
		if col.ID == id {
			return col, true
		}
	}

	return models.Collection{}, false
}

// Slug - имя каталога видео: id в нижнем регистре, пробелы -> "_".
func Slug(id models.MovieID) string {
	return strings.ReplaceAll(strings.ToLower(id), " ", "_")
}

// VideoURL - DASH-манифест фильма.
func (c *Catalog) VideoURL(id models.MovieID) string {
	return c.mediaBase + "/videos/" + Slug(id) + "/playlist.mpd"
}

func (c *Catalog) PosterURL(id models.MovieID) string {
	return c.mediaBase + "/posters/" + id + ".jpg"
}

// History - просмотренные фильмы, новые сверху; неизвестные id отбрасываются.
func (c *Catalog) History(watched []models.MovieID) []models.Movie {
	out := make([]models.Movie, 0, len(watched))
	for i := len(watched) - 1; i >= 0; i-- {
		if m, ok := c.movies[watched[i]]; ok {
			out = append(out, m)
		}
	}

	return out
}

// ReviewEntry - отзыв с названием фильма.
type ReviewEntry struct {
	models.Review
	Title string `json:"title"`
}

// Reviews - отзывы с названиями, новые сверху; отзывы на неизвестные фильмы отбрасываются.
func (c *Catalog) Reviews(reviews []models.Review) []ReviewEntry {
	out := make([]ReviewEntry, 0, len(reviews))
	for i := len(reviews) - 1; i >= 0; i-- {
		r := reviews[i]
		if m, ok := c.movies[r.MovieID]; ok {
			out = append(out, ReviewEntry{Review: r, Title: m.Title})
		}
	}

	return out
}

// Unwatched - id фильмов, которых нет в watched, по возрастанию.
func (c *Catalog) Unwatched(watched []models.MovieID) []models.MovieID {
	seen := make(map[models.MovieID]struct{}, len(watched))
	for _, id := range watched {
		seen[id] = struct{}{}
	}

	out := make([]models.MovieID, 0, len(c.ids))
	for _, id := range c.ids {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
