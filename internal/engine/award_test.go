package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pathkeeper/internal/model"
)

func TestAwardExperience(t *testing.T) {
	stats := NormalizeStats(model.UserStats{})
	require.Equal(t, 1, stats.Level)
	require.Equal(t, 150, stats.XPToNextLevel)

	stats, err := AwardExperience(stats, 150)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Level)
	require.Equal(t, 0, stats.XP)
	require.Equal(t, 150, stats.TotalXP)
	require.Equal(t, 1, stats.QuestsCompleted)
	require.Equal(t, 1, stats.CurrentStreak)
	require.Equal(t, 1, stats.LongestStreak)
}

func TestAwardExperienceMonotonic(t *testing.T) {
	stats := NormalizeStats(model.UserStats{})
	prevTotal := 0
	for _, gain := range []int{25, 50, 75, 100, 1, 300} {
		var err error
		stats, err = AwardExperience(stats, gain)
		require.NoError(t, err)
		require.Greater(t, stats.TotalXP, prevTotal)
		require.GreaterOrEqual(t, stats.LongestStreak, stats.CurrentStreak)
		prevTotal = stats.TotalXP
	}
	require.Equal(t, 6, stats.QuestsCompleted)
	require.Equal(t, 6, stats.CurrentStreak)
}

func TestAwardExperienceRejectsNonPositive(t *testing.T) {
	stats := NormalizeStats(model.UserStats{TotalXP: 100})
	for _, gain := range []int{0, -10} {
		got, err := AwardExperience(stats, gain)
		var verr ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, stats, got)
	}
}
