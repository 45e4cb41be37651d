package social

import (
	"slices"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// SortFeed возвращает копию ленты, отсортированную по времени (новые сверху).
// Сортировка стабильная: порядок сервера сохраняется при равных метках.
func SortFeed(items []models.FeedItem) []models.FeedItem {
	out := slices.Clone(items)
	if out == nil {
		return []models.FeedItem{}
	}

	slices.SortStableFunc(out, func(a, b models.FeedItem) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return out
}
