// social - производные данные социального графа для отображения.
// Функции этого файла чистые: без сети и без общего состояния.
package social

import (
	"slices"
	"strings"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// Counts - счётчики подписок профиля.
type Counts struct {
	Following int `json:"following_count"`
	Followers int `json:"followers_count"`
}

// IsFollowing - подписан ли владелец сессии на target.
func IsFollowing(s *models.Session, target string) bool {
	if s == nil {
		return false
	}

	return slices.Contains(s.Following, target)
}

func ViewCounts(p models.ProfileSnapshot) Counts {
	return Counts{Following: len(p.Following), Followers: len(p.Followers)}
}

// MergeSearchResults убирает из выдачи самого пользователя, сохраняя порядок сервера.
func MergeSearchResults(raw []models.UserSummary, self string) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(raw))
	for _, u := range raw {
		if strings.EqualFold(u.Email, self) {
			continue
		}
		out = append(out, u)
	}

	return out
}

// ToggleFollowOptimistic - состояние кнопки сразу после нажатия. Итог
// определяет Tracker.Settle по результату настоящего вызова.
func ToggleFollowOptimistic(current bool) bool {
	return !current
}

// Visited - профиль другого пользователя глазами владельца сессии.
type Visited struct {
	models.UserSummary
	Profile     models.ProfileSnapshot `json:"profile"`
	Counts      Counts                 `json:"counts"`
	IsSelf      bool                   `json:"is_self"`
	IsFollowing bool                   `json:"is_following"`
}

// VisitedProfile накладывает свежий снимок на карточку пользователя: имя,
// аватар и цвет из снимка важнее карточки, если заданы.
func VisitedProfile(summary models.UserSummary, snap models.ProfileSnapshot, viewer *models.Session) Visited {
	out := Visited{
		UserSummary: summary,
		Profile:     snap,
		Counts:      ViewCounts(snap),
		IsFollowing: IsFollowing(viewer, summary.Email),
	}

	if out.Username == "" {
		out.Username = models.LocalPart(summary.Email)
	}
	if snap.Username != "" {
		out.Username = snap.Username
	}
	if snap.Avatar > 0 {
		out.Avatar = snap.Avatar
	}
	if snap.Color != "" && snap.Color != models.DefaultColor {
		out.Color = snap.Color
	}
	if out.Color == "" {
		out.Color = models.DefaultColor
	}

	if viewer != nil && strings.EqualFold(viewer.Email, summary.Email) {
		out.IsSelf = true
		out.IsFollowing = false
	}

	return out
}
