package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pathkeeper/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

func TestGetPutDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Put(ctx, "k", []byte(`{"a":1}`)))
	raw, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"a":1}`, string(raw))

	// Put is an upsert.
	require.NoError(t, store.Put(ctx, "k", []byte(`{"a":2}`)))
	raw, _, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":2}`, string(raw))

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}

func TestStatsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	unlocked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stats := model.UserStats{
		Level:           3,
		XP:              40,
		XPToNextLevel:   150,
		TotalXP:         340,
		QuestsCompleted: 7,
		CurrentStreak:   4,
		LongestStreak:   6,
		Achievements: []model.Achievement{
			{ID: "first-quest", Name: "First Steps", Icon: "🎯", UnlockedAt: unlocked, Rarity: model.RarityCommon},
		},
	}
	require.NoError(t, store.SaveStats(ctx, stats))

	got, err := store.LoadStats(ctx)
	require.NoError(t, err)
	require.Equal(t, stats.TotalXP, got.TotalXP)
	require.Equal(t, stats.QuestsCompleted, got.QuestsCompleted)
	require.Len(t, got.Achievements, 1)
	require.True(t, got.Achievements[0].UnlockedAt.Equal(unlocked))
}

func TestLoadStatsFreshWhenMissing(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.LoadStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Level)
	require.Zero(t, stats.TotalXP)
	require.NotNil(t, stats.Achievements)
	require.Empty(t, stats.Achievements)
}

func TestLoadStatsFreshWhenCorrupt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyStats, []byte(`{not json`)))

	stats, err := store.LoadStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Level)
	require.Zero(t, stats.TotalXP)
}

func TestLoadQuestsFreshWhenCorrupt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, KeyQuests, []byte(`[{"id":`)))

	quests, err := store.LoadQuests(ctx)
	require.NoError(t, err)
	require.NotNil(t, quests)
	require.Empty(t, quests)
}

func TestPathAbsentIsNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	path, err := store.LoadPath(ctx)
	require.NoError(t, err)
	require.Nil(t, path)

	saved := &model.LearningPath{
		Goal:       "learn piano",
		Milestones: []model.Milestone{{ID: "milestone-1", Title: "Foundation", Order: 1}},
	}
	require.NoError(t, store.SavePath(ctx, saved))

	path, err = store.LoadPath(ctx)
	require.NoError(t, err)
	require.NotNil(t, path)
	require.Equal(t, "learn piano", path.Goal)
	require.Len(t, path.Milestones, 1)
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess, err := store.LoadSession(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSession(ctx, &model.Session{Goal: "learn piano", CreatedAt: started}))

	sess, err = store.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "learn piano", sess.Goal)
	require.True(t, sess.CreatedAt.Equal(started))
}

func TestThemeDefaultsDark(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, "dark", theme)

	require.NoError(t, store.SaveTheme(ctx, "light"))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, "light", theme)

	// Anything but light normalizes to dark.
	require.NoError(t, store.SaveTheme(ctx, "banana"))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, "dark", theme)
}
