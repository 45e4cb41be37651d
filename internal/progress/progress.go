// progress - прогресс пользователя по подборкам. Прогресс только вычисляется
// из статического описания подборки и списка просмотренного, нигде не хранится.
package progress

import (
	"slices"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// Result - прогресс по одной подборке.
type Result struct {
	WatchedCount  int     `json:"watched_count"`
	NextThreshold int     `json:"next_threshold"`
	Percent       float64 `json:"percent"`
	IsComplete    bool    `json:"is_complete"`
}

// LevelState - уровень подборки с признаком открытия.
type LevelState struct {
	models.Level
	Unlocked bool `json:"unlocked"`
}

// Progress считает прогресс:
//   - WatchedCount = |AllMovies ∩ watched| (дубликаты не считаются);
//   - NextThreshold - наименьший Required > WatchedCount, иначе |AllMovies|;
//   - Percent = 100 для завершённой, иначе WatchedCount/NextThreshold*100 (0 при пороге 0);
//   - IsComplete = |AllMovies| > 0 && WatchedCount >= |AllMovies|.
func Progress(c models.Collection, watched []models.MovieID) Result {
	count := WatchedCount(c, watched)
	total := len(c.AllMovies)

	next := total
	for _, l := range sortedLevels(c.Levels) {
		if l.Required > count {
			next = l.Required
			break
		}
	}

	res := Result{
		WatchedCount:  count,
		NextThreshold: next,
		IsComplete:    total > 0 && count >= total,
	}

	switch {
	case res.IsComplete:
		res.Percent = 100
	case next > 0:
		res.Percent = float64(count) / float64(next) * 100
	}

	return res
}

// WatchedCount - число различных фильмов подборки среди просмотренных.
func WatchedCount(c models.Collection, watched []models.MovieID) int {
	seen := make(map[models.MovieID]struct{}, len(watched))
	for _, id := range watched {
		seen[id] = struct{}{}
	}

	count := 0
	counted := make(map[models.MovieID]struct{}, len(c.AllMovies))
	for _, id := range c.AllMovies {
		if _, ok := seen[id]; !ok {
			continue
		}
		if _, dup := counted[id]; dup {
			continue
		}
		counted[id] = struct{}{}
		count++
	}

	return count
}

// UnlockedRewards - объединение наград всех достигнутых уровней всех подборок.
// Без повторов, отсортировано для детерминированного вывода.
func UnlockedRewards(collections []models.Collection, watched []models.MovieID) []models.RewardID {
	set := make(map[models.RewardID]struct{})

	for _, c := range collections {
		count := WatchedCount(c, watched)
		for _, l := range c.Levels {
			if count < l.Required {
				continue
			}
			for _, r := range l.Rewards {
				set[r] = struct{}{}
			}
		}
	}

	out := make([]models.RewardID, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	slices.Sort(out)

	return out
}

// LevelStates - уровни по возрастанию порога с признаком открытия.
func LevelStates(c models.Collection, watched []models.MovieID) []LevelState {
	count := WatchedCount(c, watched)

	levels := sortedLevels(c.Levels)
	out := make([]LevelState, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelState{Level: l, Unlocked: count >= l.Required})
	}

	return out
}

// sortedLevels - копия уровней по возрастанию Required.
func sortedLevels(levels []models.Level) []models.Level {
	out := slices.Clone(levels)
	slices.SortStableFunc(out, func(a, b models.Level) int {
		return a.Required - b.Required
	})

	return out
}
