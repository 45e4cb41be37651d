// avatar - правила отображения аватара пользователя.
//
// Аватар 1..Count (и открытые наградами номера) - картинка /avatars/<n>.png.
// 0 и неизвестные номера - буквенный аватар: первая буква имени на цвете пользователя.
package avatar

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// Count - число базовых аватаров, доступных всем.
const Count = 6

// Palette - цвета фона буквенного аватара.
var Palette = []string{
	"#d32f2f",
	"#7b1fa2",
	"#303f9f",
	"#0288d1",
	"#00796b",
	"#388e3c",
	"#fbc02d",
	"#f57c00",
	"#5d4037",
	"#455a64",
}

// UI - что показать на месте фото пользователя.
type UI struct {
	ImageURL string `json:"image_url,omitempty"`
	Letter   string `json:"letter,omitempty"`
	Color    string `json:"color"`
}

// Resolve выбирает картинку или букву. unlocked - номера, открытые наградами
// (см. progress.UnlockedRewards); base - префикс медиа ("" - относительные пути).
func Resolve(base string, id int, username, color string, unlocked []models.RewardID) UI {
	if color == "" {
		color = models.DefaultColor
	}

	if Allowed(id, unlocked) && id > 0 {
		return UI{ImageURL: ImageURL(base, strconv.Itoa(id)), Color: color}
	}

	return UI{Letter: Letter(username), Color: color}
}

// ImageURL - путь картинки аватара (для наград тоже).
func ImageURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/avatars/" + id + ".png"
}

// Letter - первая буква имени в верхнем регистре, "?" для пустого имени.
func Letter(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return "?"
	}

	r, _ := utf8.DecodeRuneInString(username)

	return string(unicode.ToUpper(r))
}

// Allowed - можно ли выбрать аватар id: 0 (буква), базовые 1..Count и открытые наградами.
func Allowed(id int, unlocked []models.RewardID) bool {
	if id >= 0 && id <= Count {
		return true
	}

	return slices.Contains(unlocked, strconv.Itoa(id))
}

// Choices - доступные для выбора номера картинок по возрастанию.
func Choices(unlocked []models.RewardID) []int {
	out := make([]int, 0, Count+len(unlocked))
	for i := 1; i <= Count; i++ {
		out = append(out, i)
	}

	for _, r := range unlocked {
		n, err := strconv.Atoi(r)
		if err != nil || n <= Count || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}

// NeedsColor - цвет не выбран (пустой или цвет по умолчанию).
func NeedsColor(color string) bool {
	return color == "" || color == models.DefaultColor
}

// PickColor - случайный цвет палитры.
func PickColor() string {
	return Palette[rand.IntN(len(Palette))]
}

// EnsureColor оставляет выбранный цвет или назначает случайный из палитры.
func EnsureColor(color string) string {
	if NeedsColor(color) {
		return PickColor()
	}

	return color
}
