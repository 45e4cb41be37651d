package social

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/models"
	"github.com/stretchr/testify/require"
)

func TestIsFollowing(t *testing.T) {
	s := &models.Session{Email: "a@b.c", Following: []string{"bob@b.c"}}

	require.True(t, IsFollowing(s, "bob@b.c"))
	require.False(t, IsFollowing(s, "eve@b.c"))
	require.False(t, IsFollowing(nil, "bob@b.c"))
}

func TestViewCounts(t *testing.T) {
	p := models.ProfileSnapshot{Following: []string{"x", "y"}, Followers: []string{"z"}}
	require.Equal(t, Counts{Following: 2, Followers: 1}, ViewCounts(p))
	require.Equal(t, Counts{}, ViewCounts(models.DefaultProfile()))
}

func TestMergeSearchResults_DropsSelfKeepsOrder(t *testing.T) {
	raw := []models.UserSummary{{Email: "c@x"}, {Email: "Me@x"}, {Email: "a@x"}, {Email: "b@x"}}

	got := MergeSearchResults(raw, "me@x")
	require.Equal(t, []models.UserSummary{{Email: "c@x"}, {Email: "a@x"}, {Email: "b@x"}}, got)

	require.NotNil(t, MergeSearchResults(nil, "me@x"))
}

func TestToggleFollowOptimistic(t *testing.T) {
	require.True(t, ToggleFollowOptimistic(false))
	require.False(t, ToggleFollowOptimistic(true))
}

// Оптимистичное переключение с неудачным вызовом откатывается к исходному.
func TestTracker_RevertOnFailure(t *testing.T) {
	tr := NewTracker()

	id, next := tr.Begin("bob@b.c", false)
	require.True(t, next)

	pending, ok := tr.Pending("bob@b.c")
	require.True(t, ok)
	require.True(t, pending)

	final, ok := tr.Settle(id, errors.New("network down"))
	require.True(t, ok)
	require.False(t, final)

	_, ok = tr.Pending("bob@b.c")
	require.False(t, ok)
	require.Zero(t, tr.Len())
}

func TestTracker_ConfirmOnSuccess(t *testing.T) {
	tr := NewTracker()

	id, _ := tr.Begin("bob@b.c", true)
	final, ok := tr.Settle(id, nil)
	require.True(t, ok)
	require.False(t, final)

	_, ok = tr.Settle(id, nil)
	require.False(t, ok, "second settle of the same id is unknown")
}

func TestTracker_LatestOperationWins(t *testing.T) {
	tr := NewTracker()

	first, _ := tr.Begin("bob@b.c", false)
	second, _ := tr.Begin("bob@b.c", true)

	_, _ = tr.Settle(first, nil)

	pending, ok := tr.Pending("bob@b.c")
	require.True(t, ok, "older settle must not clear the newer pending op")
	require.False(t, pending)

	_, _ = tr.Settle(second, nil)
	require.Zero(t, tr.Len())
}

func TestSortFeed_DescendingStable(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []models.FeedItem{
		{MovieID: "old", Timestamp: t0},
		{MovieID: "new", Timestamp: t0.Add(2 * time.Hour)},
		{MovieID: "mid-1", Timestamp: t0.Add(time.Hour)},
		{MovieID: "mid-2", Timestamp: t0.Add(time.Hour)},
	}

	got := SortFeed(items)

	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.MovieID)
	}
	require.Equal(t, []string{"new", "mid-1", "mid-2", "old"}, ids)
	require.Equal(t, "old", items[0].MovieID, "input is not mutated")
	require.NotNil(t, SortFeed(nil))
}

func TestVisitedProfile(t *testing.T) {
	viewer := &models.Session{Email: "me@x", Following: []string{"bob@x"}}
	snap := models.ProfileSnapshot{Username: "Bobby", Avatar: 4, Color: "#333", Following: []string{"a"}, Followers: []string{"me@x", "c"}}

	v := VisitedProfile(models.UserSummary{Email: "bob@x", Color: "#d32f2f"}, snap, viewer)
	require.Equal(t, "Bobby", v.Username)
	require.Equal(t, 4, v.Avatar)
	require.Equal(t, "#d32f2f", v.Color, "default colour in snapshot does not override")
	require.Equal(t, Counts{Following: 1, Followers: 2}, v.Counts)
	require.True(t, v.IsFollowing)
	require.False(t, v.IsSelf)

	self := VisitedProfile(models.UserSummary{Email: "me@x"}, models.DefaultProfile(), viewer)
	require.True(t, self.IsSelf)
	require.Equal(t, "me", self.Username)
	require.Equal(t, models.DefaultColor, self.Color)
}

type fetcherFunc func(ctx context.Context, email string) (models.ProfileSnapshot, error)

func (f fetcherFunc) FetchProfile(ctx context.Context, email string) (models.ProfileSnapshot, error) {
	return f(ctx, email)
}

// Два параллельных запроса, один падает: успешный попадает в результат,
// упавший деградирует до fallback, пакет не прерывается.
func TestResolveSummaries_PartialFailureIsolated(t *testing.T) {
	f := fetcherFunc(func(_ context.Context, email string) (models.ProfileSnapshot, error) {
		if email == "bad@x.io" {
			return models.DefaultProfile(), errors.New("timeout")
		}
		p := models.DefaultProfile()
		p.Username = "Good"
		p.Avatar = 3
		p.Color = "#388e3c"
		return p, nil
	})

	got := ResolveSummaries(context.Background(), f, []string{"good@x.io", "bad@x.io"}, 2)
	require.Equal(t, []models.UserSummary{
		{Email: "good@x.io", Username: "Good", Avatar: 3, Color: "#388e3c"},
		{Email: "bad@x.io", Username: "bad", Avatar: 0, Color: "#333"},
	}, got)
}

func TestResolveSummaries_EmptyUsernameFallsBackToLocalPart(t *testing.T) {
	f := fetcherFunc(func(_ context.Context, email string) (models.ProfileSnapshot, error) {
		return models.DefaultProfile(), nil
	})

	got := ResolveSummaries(context.Background(), f, []string{"zoe@x.io"}, 1)
	require.Equal(t, "zoe", got[0].Username)
	require.Equal(t, "#333", got[0].Color)
}

func TestResolveSummaries_BoundedConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	f := fetcherFunc(func(_ context.Context, email string) (models.ProfileSnapshot, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return models.DefaultProfile(), nil
	})

	emails := []string{"a@x", "b@x", "c@x", "d@x", "e@x", "f@x", "g@x"}
	got := ResolveSummaries(context.Background(), f, emails, 3)

	require.Len(t, got, len(emails))
	for i, e := range emails {
		require.Equal(t, e, got[i].Email)
	}
	require.LessOrEqual(t, peak.Load(), int32(3))
}

func TestResolveSummaries_CancelledReturnsFallbacks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var once sync.Once
	f := fetcherFunc(func(ctx context.Context, email string) (models.ProfileSnapshot, error) {
		once.Do(cancel)
		<-ctx.Done()
		return models.DefaultProfile(), ctx.Err()
	})

	got := ResolveSummaries(ctx, f, []string{"a@x", "b@x", "c@x"}, 1)
	require.Equal(t, []models.UserSummary{
		models.FallbackSummary("a@x"),
		models.FallbackSummary("b@x"),
		models.FallbackSummary("c@x"),
	}, got)
}
