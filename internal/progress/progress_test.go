package progress

import (
	"testing"

	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/stretchr/testify/require"
)

func sample() models.Collection {
	return models.Collection{
		ID:        "c1",
		AllMovies: []models.MovieID{"a", "b", "c", "d"},
		Levels: []models.Level{
			{Required: 2, Rewards: []models.RewardID{"r1"}},
			{Required: 4, Rewards: []models.RewardID{"r2"}},
		},
	}
}

func TestProgress_Scenario(t *testing.T) {
	c := sample()
	watched := []models.MovieID{"a", "c"}

	got := Progress(c, watched)
	require.Equal(t, Result{WatchedCount: 2, NextThreshold: 4, Percent: 50, IsComplete: false}, got)
	require.Equal(t, []models.RewardID{"r1"}, UnlockedRewards([]models.Collection{c}, watched))
}

func TestProgress_Table(t *testing.T) {
	tcs := []struct {
		name    string
		c       models.Collection
		watched []models.MovieID
		want    Result
	}{
		{
			name:    "nothing_watched",
			c:       sample(),
			watched: nil,
			want:    Result{WatchedCount: 0, NextThreshold: 2, Percent: 0},
		},
		{
			name:    "outside_movies_ignored_and_duplicates",
			c:       sample(),
			watched: []models.MovieID{"a", "a", "x", "y"},
			want:    Result{WatchedCount: 1, NextThreshold: 2, Percent: 50},
		},
		{
			name:    "complete",
			c:       sample(),
			watched: []models.MovieID{"d", "c", "b", "a"},
			want:    Result{WatchedCount: 4, NextThreshold: 4, Percent: 100, IsComplete: true},
		},
		{
			name: "unsorted_levels",
			c: models.Collection{
				AllMovies: []models.MovieID{"a", "b", "c", "d", "e"},
				Levels:    []models.Level{{Required: 5}, {Required: 1}, {Required: 3}},
			},
			watched: []models.MovieID{"a"},
			want:    Result{WatchedCount: 1, NextThreshold: 3, Percent: 100.0 / 3},
		},
		{
			name: "past_last_level_uses_total",
			c: models.Collection{
				AllMovies: []models.MovieID{"a", "b", "c", "d"},
				Levels:    []models.Level{{Required: 2}},
			},
			watched: []models.MovieID{"a", "b", "c"},
			want:    Result{WatchedCount: 3, NextThreshold: 4, Percent: 75},
		},
		{
			name:    "empty_collection",
			c:       models.Collection{},
			watched: []models.MovieID{"a"},
			want:    Result{},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(tc.c, tc.watched)
			require.Equal(t, tc.want.WatchedCount, got.WatchedCount)
			require.Equal(t, tc.want.NextThreshold, got.NextThreshold)
			require.InDelta(t, tc.want.Percent, got.Percent, 1e-9)
			require.Equal(t, tc.want.IsComplete, got.IsComplete)
		})
	}
}

func TestProgress_DoesNotMutateLevels(t *testing.T) {
	c := models.Collection{AllMovies: []models.MovieID{"a"}, Levels: []models.Level{{Required: 3}, {Required: 1}}}
	_ = Progress(c, nil)
	require.Equal(t, 3, c.Levels[0].Required)
}

// Свойства: WatchedCount равен размеру пересечения; IsComplete тогда и только
// тогда, когда просмотрено не меньше |AllMovies|.
func TestProgress_Properties(t *testing.T) {
	c := sample()
	subsets := [][]models.MovieID{{}, {"a"}, {"b", "d"}, {"a", "b", "c"}, {"a", "b", "c", "d", "z"}}

	for _, w := range subsets {
		inter := 0
		for _, id := range w {
			if id >= "a" && id <= "d" {
				inter++
			}
		}

		got := Progress(c, w)
		require.Equal(t, inter, got.WatchedCount)
		require.Equal(t, got.WatchedCount >= len(c.AllMovies), got.IsComplete)
	}
}

func TestUnlockedRewards_DedupAndIdempotent(t *testing.T) {
	cols := []models.Collection{
		sample(),
		{
			AllMovies: []models.MovieID{"a", "e"},
			Levels: []models.Level{
				{Required: 1, Rewards: []models.RewardID{"r1", "r3"}},
				{Required: 2, Rewards: []models.RewardID{"r4"}},
			},
		},
	}
	watched := []models.MovieID{"a", "b"}

	first := UnlockedRewards(cols, watched)
	require.Equal(t, []models.RewardID{"r1", "r3"}, first)
	require.Equal(t, first, UnlockedRewards(cols, watched))
	require.Empty(t, UnlockedRewards(nil, watched))
}

func TestLevelStates(t *testing.T) {
	got := LevelStates(sample(), []models.MovieID{"a", "b"})
	require.Len(t, got, 2)
	require.True(t, got[0].Unlocked)
	require.Equal(t, 2, got[0].Required)
	require.False(t, got[1].Unlocked)
}
