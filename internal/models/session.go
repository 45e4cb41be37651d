// models содержит доменные типы клиентского ядра Sort a Short.
package models

import (
	"slices"
	"strings"
)

// Session - локально сохранённая запись вошедшего пользователя.
// Ключ идентичности - Email. Одновременно резидентна ровно одна сессия.
type Session struct {
	Token          string   `json:"token"`
	Email          string   `json:"email"`
	Username       string   `json:"username,omitempty"`
	Avatar         int      `json:"avatar"`
	Color          string   `json:"color,omitempty"`
	FriendCode     string   `json:"friend_code,omitempty"`
	Following      []string `json:"following"`
	Followers      []string `json:"followers"`
	TokenExpiresAt int64    `json:"token_expires_at,omitempty"` // Unix UTC, 0 - неизвестно
}

// SessionPatch - частичное изменение сессии; nil означает "поле не передано".
type SessionPatch struct {
	Username *string
	Avatar   *int
	Color    *string
}

// Clone возвращает глубокую копию (слайсы не разделяются).
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	out := *s
	out.Following = slices.Clone(s.Following)
	out.Followers = slices.Clone(s.Followers)
	return &out
}

// Apply применяет патч. Пустой цвет считается непереданным.
func (s *Session) Apply(p SessionPatch) {
	if p.Username != nil {
		s.Username = *p.Username
	}

	if p.Avatar != nil {
		s.Avatar = *p.Avatar
	}

	if p.Color != nil && *p.Color != "" {
		s.Color = *p.Color
	}
}

// DisplayName - имя пользователя или локальная часть email.
func (s *Session) DisplayName() string {
	if s.Username != "" {
		return s.Username
	}

	return LocalPart(s.Email)
}

// LocalPart возвращает часть email до "@".
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
