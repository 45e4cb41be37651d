package models

import "time"

const (
	// DefaultColor - цвет фона буквенного аватара, когда цвет не выбран.
	DefaultColor = "#333"
	// DefaultEnergy - стартовый запас "энергии" (просмотров) у пользователя.
	DefaultEnergy = 3
)

// MovieID - ключ фильма в каталоге.
type MovieID = string

// Review - оценка пользователя в снимке профиля.
type Review struct {
	MovieID   MovieID   `json:"movie_id"`
	Stars     int       `json:"rating"`
	Text      string    `json:"review,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Rating - отправляемая пользователем оценка (1..5 звёзд, текст опционален).
type Rating struct {
	MovieID MovieID
	Stars   int
	Review  string
}

// ProfileSnapshot - серверное представление профиля на момент запроса.
// Watched и Reviews упорядочены хронологически.
type ProfileSnapshot struct {
	Username   string    `json:"username,omitempty"`
	Avatar     int       `json:"avatar"`
	Color      string    `json:"color"`
	FriendCode string    `json:"friend_code,omitempty"`
	Energy     int       `json:"energy"`
	Watched    []MovieID `json:"watched"`
	Reviews    []Review  `json:"reviews"`
	Following  []string  `json:"following"`
	Followers  []string  `json:"followers"`
}

// DefaultProfile - безопасный пустой снимок для состояния "данных пока нет".
func DefaultProfile() ProfileSnapshot {
	return ProfileSnapshot{
		Avatar:    0,
		Color:     DefaultColor,
		Energy:    DefaultEnergy,
		Watched:   []MovieID{},
		Reviews:   []Review{},
		Following: []string{},
		Followers: []string{},
	}
}
