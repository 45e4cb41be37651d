package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// Запросы.

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type confirmRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type historyRequest struct {
	Email   string `json:"email"`
	MovieID string `json:"movie_id"`
}

type profileRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Avatar   int    `json:"avatar"`
	Color    string `json:"color"`
}

type ratingRequest struct {
	Email   string `json:"email"`
	MovieID string `json:"movie_id"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
}

type followRequest struct {
	Email       string `json:"email"`
	TargetEmail string `json:"target_email,omitempty"`
	FriendCode  string `json:"friend_code,omitempty"`
	Action      string `json:"action"`
}

type emailRequest struct {
	Email string `json:"email"`
}

// Ответы.

type signInResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type profileResponse struct {
	Username   *string     `json:"username"`
	Avatar     flexInt     `json:"avatar"`
	Color      string      `json:"color"`
	FriendCode string      `json:"friend_code"`
	Energy     *flexInt    `json:"energy"`
	Watched    []string    `json:"watched"`
	Reviews    []reviewDTO `json:"reviews"`
	Following  []string    `json:"following"`
	Followers  []string    `json:"followers"`
}

type reviewDTO struct {
	MovieID   string   `json:"movie_id"`
	Rating    flexInt  `json:"rating"`
	Review    string   `json:"review"`
	Timestamp flexTime `json:"timestamp"`
}

type userSummaryDTO struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Avatar   flexInt `json:"avatar"`
	Color    string  `json:"color"`
}

type feedItemDTO struct {
	FriendEmail string   `json:"friend_email"`
	Username    string   `json:"username"`
	Avatar      flexInt  `json:"avatar"`
	Color       string   `json:"color"`
	MovieID     string   `json:"movie_id"`
	Rating      flexInt  `json:"rating"`
	Review      string   `json:"review"`
	Timestamp   flexTime `json:"timestamp"`
}

type followResponse struct {
	Email string `json:"email"`
}

// Конвертеры в доменные типы.

func (p profileResponse) toModel() models.ProfileSnapshot {
	out := models.DefaultProfile()

	if p.Username != nil {
		out.Username = *p.Username
	}
	out.Avatar = int(p.Avatar)
	if p.Color != "" {
		out.Color = p.Color
	}
	out.FriendCode = p.FriendCode
	if p.Energy != nil {
		out.Energy = int(*p.Energy)
	}

	out.Watched = append(out.Watched, p.Watched...)
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, r.toModel())
	}
	out.Following = append(out.Following, p.Following...)
	out.Followers = append(out.Followers, p.Followers...)

	return out
}

func (r reviewDTO) toModel() models.Review {
	return models.Review{
		MovieID:   r.MovieID,
		Stars:     int(r.Rating),
		Text:      r.Review,
		Timestamp: time.Time(r.Timestamp),
	}
}

func (u userSummaryDTO) toModel() models.UserSummary {
	out := models.UserSummary{
		Email:    u.Email,
		Username: u.Username,
		Avatar:   int(u.Avatar),
		Color:    u.Color,
	}
	if out.Username == "" {
		out.Username = models.LocalPart(u.Email)
	}
	if out.Color == "" {
		out.Color = models.DefaultColor
	}

	return out
}

func (f feedItemDTO) toModel() models.FeedItem {
	color := f.Color
	if color == "" {
		color = models.DefaultColor
	}

	return models.FeedItem{
		FriendEmail: f.FriendEmail,
		Username:    f.Username,
		Avatar:      int(f.Avatar),
		Color:       color,
		MovieID:     f.MovieID,
		Stars:       int(f.Rating),
		Review:      f.Review,
		Timestamp:   time.Time(f.Timestamp),
	}
}

// flexInt принимает число (в т.ч. дробное, как отдаёт DynamoDB Decimal),
// числовую строку или null.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		b = []byte(s)
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("flexInt: %w", err)
	}

	*n = flexInt(math.Round(f))

	return nil
}

// flexTime принимает RFC 3339, "наивный" ISO 8601 без зоны (считается UTC)
// и Unix-секунды. Нераспознанное значение даёт нулевое время, а не ошибку:
// одна битая метка не должна ронять декодирование всей ленты.
type flexTime time.Time

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *flexTime) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*t = flexTime{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Unix-секунды числом.
		var sec float64
		if json.Unmarshal(b, &sec) != nil {
			*t = flexTime{}
			return nil
		}
		*t = flexTime(time.Unix(0, int64(sec*float64(time.Second))).UTC())
		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*t = flexTime{}
		return nil
	}

	if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*t = flexTime(v)
		return nil
	}

	for _, layout := range naiveLayouts {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = flexTime(v)
			return nil
		}
	}

	*t = flexTime{}
	return nil
}
