package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/avatar"
	"github.com/pribylovaa/sort-a-short/internal/catalog"
	apperrors "github.com/pribylovaa/sort-a-short/internal/errors"
	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/pribylovaa/sort-a-short/internal/progress"
	"github.com/pribylovaa/sort-a-short/internal/reconciler"
	"github.com/pribylovaa/sort-a-short/internal/social"
)

// Представления для view API. Токен наружу не отдаётся.

type SessionView struct {
	State          string    `json:"state"`
	SignedIn       bool      `json:"signed_in"`
	Email          string    `json:"email,omitempty"`
	Username       string    `json:"username,omitempty"`
	DisplayName    string    `json:"display_name,omitempty"`
	Avatar         int       `json:"avatar"`
	AvatarUI       avatar.UI `json:"avatar_ui"`
	Color          string    `json:"color,omitempty"`
	FriendCode     string    `json:"friend_code,omitempty"`
	TokenExpiresAt int64     `json:"token_expires_at,omitempty"`
	TokenExpired   bool      `json:"token_expired"`
	LastError      string    `json:"last_error,omitempty"`
	RefreshedAt    time.Time `json:"refreshed_at,omitzero"`
}

type UserView struct {
	models.UserSummary
	AvatarUI    avatar.UI `json:"avatar_ui"`
	IsFollowing bool      `json:"is_following"`
}

type ProfileView struct {
	SessionView
	Energy          int                   `json:"energy"`
	Counts          social.Counts         `json:"counts"`
	History         []models.Movie        `json:"history"`
	Reviews         []catalog.ReviewEntry `json:"reviews"`
	UnlockedRewards []models.RewardID     `json:"unlocked_rewards"`
	AvatarChoices   []int                 `json:"avatar_choices"`
	Following       []string              `json:"following"`
	Followers       []string              `json:"followers"`
}

type VisitView struct {
	social.Visited
	AvatarUI        avatar.UI             `json:"avatar_ui"`
	History         []models.Movie        `json:"history"`
	Reviews         []catalog.ReviewEntry `json:"reviews"`
	UnlockedRewards []models.RewardID     `json:"unlocked_rewards"`
}

type MovieView struct {
	models.Movie
	PosterURL string `json:"poster_url"`
	VideoURL  string `json:"video_url"`
	Watched   bool   `json:"watched"`
}

type CollectionView struct {
	models.Collection
	Progress progress.Result       `json:"progress"`
	Levels   []progress.LevelState `json:"level_states"`
}

// FeedAction - что сделал друг.
type FeedAction string

const (
	FeedReviewed FeedAction = "reviewed"
	FeedRated    FeedAction = "rated"
	FeedWatched  FeedAction = "watched"
)

type FeedEntry struct {
	models.FeedItem
	Title    string     `json:"title,omitempty"`
	Action   FeedAction `json:"action"`
	AvatarUI avatar.UI  `json:"avatar_ui"`
}

type ShuffleResult struct {
	MovieView
	Energy int `json:"energy"`
}

type FollowResult struct {
	Target    string `json:"target_email"`
	Following bool   `json:"following"`
	Reverted  bool   `json:"reverted"`
}

func unixNow() int64 { return time.Now().Unix() }

func (s *Service) sessionView(v reconciler.View) SessionView {
	out := SessionView{
		State:       v.State.String(),
		RefreshedAt: v.RefreshedAt,
	}
	if v.LastError != nil {
		out.LastError = userMessage(v.LastError)
	}

	sess := v.Session
	if sess == nil {
		out.AvatarUI = avatar.Resolve(s.mediaBase(), 0, "", "", nil)
		return out
	}

	unlocked := progress.UnlockedRewards(s.catalog.Collections(), v.Profile.Watched)

	out.SignedIn = true
	out.Email = sess.Email
	out.Username = sess.Username
	out.DisplayName = sess.DisplayName()
	out.Avatar = sess.Avatar
	out.Color = sess.Color
	out.AvatarUI = avatar.Resolve(s.mediaBase(), sess.Avatar, sess.DisplayName(), sess.Color, unlocked)
	out.FriendCode = sess.FriendCode
	out.TokenExpiresAt = sess.TokenExpiresAt
	out.TokenExpired = sess.TokenExpiresAt > 0 && sess.TokenExpiresAt <= s.now()

	return out
}

func (s *Service) movieView(m models.Movie, watched map[models.MovieID]struct{}) MovieView {
	_, seen := watched[m.ID]

	return MovieView{
		Movie:     m,
		PosterURL: s.catalog.PosterURL(m.ID),
		VideoURL:  s.catalog.VideoURL(m.ID),
		Watched:   seen,
	}
}

func (s *Service) userView(u models.UserSummary, viewer *models.Session) UserView {
	return UserView{
		UserSummary: u,
		AvatarUI:    avatar.Resolve(s.mediaBase(), u.Avatar, u.Username, u.Color, nil),
		IsFollowing: s.isFollowing(viewer, u.Email),
	}
}

func (s *Service) mediaBase() string { return s.catalog.MediaBase() }

// userMessage - безопасный текст ошибки для view API.
func userMessage(err error) string {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}

	return apperrors.KindOf(err).String()
}

func watchedSet(ids []models.MovieID) map[models.MovieID]struct{} {
	out := make(map[models.MovieID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}
