package models

import "time"

// UserSummary - краткая карточка пользователя (поиск, списки подписок).
type UserSummary struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Color    string `json:"color"`
}

// FallbackSummary - карточка, собранная только из email.
func FallbackSummary(email string) UserSummary {
	return UserSummary{
		Email:    email,
		Username: LocalPart(email),
		Avatar:   0,
		Color:    DefaultColor,
	}
}

// FeedItem - событие ленты друзей (оценка/отзыв).
type FeedItem struct {
	FriendEmail string    `json:"friend_email"`
	Username    string    `json:"username"`
	Avatar      int       `json:"avatar"`
	Color       string    `json:"color"`
	MovieID     MovieID   `json:"movie_id"`
	Stars       int       `json:"rating"`
	Review      string    `json:"review,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
