package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelThresholdBoundaries(t *testing.T) {
	require.Equal(t, 0, LevelThreshold(0))
	require.Equal(t, 0, LevelThreshold(1))
	require.Equal(t, 150, LevelThreshold(2))
	require.Equal(t, 300, LevelThreshold(3))
	require.Equal(t, 1350, LevelThreshold(10))
}

func TestDeriveLevel(t *testing.T) {
	cases := []struct {
		totalXP   int
		level     int
		xpInLevel int
		xpToNext  int
	}{
		{0, 1, 0, 150},
		{1, 1, 1, 149},
		{149, 1, 149, 1},
		{150, 2, 0, 150},
		{151, 2, 1, 149},
		{299, 2, 149, 1},
		{300, 3, 0, 150},
		{1000, 7, 100, 50},
	}
	for _, c := range cases {
		info := DeriveLevel(c.totalXP)
		require.Equal(t, c.level, info.Level, "totalXP=%d", c.totalXP)
		require.Equal(t, c.xpInLevel, info.XPInLevel, "totalXP=%d", c.totalXP)
		require.Equal(t, c.xpToNext, info.XPToNextLevel, "totalXP=%d", c.totalXP)
	}
}

func TestDeriveLevelProperties(t *testing.T) {
	for x := 0; x <= 5000; x++ {
		info := DeriveLevel(x)
		require.GreaterOrEqual(t, info.Level, 1)
		require.Equal(t, x, info.XPInLevel+LevelThreshold(info.Level))
		require.Positive(t, info.XPToNextLevel)
		require.LessOrEqual(t, info.XPInLevel, XPPerLevel-1)
	}
}

func TestDeriveLevelNegativeClamped(t *testing.T) {
	info := DeriveLevel(-42)
	require.Equal(t, 1, info.Level)
	require.Equal(t, 0, info.XPInLevel)
}

func TestLevelSpanDisplayOnly(t *testing.T) {
	// The widening span never feeds level derivation; it only sizes the
	// original progress bar.
	require.Equal(t, 100, LevelSpan(1))
	require.Equal(t, 250, LevelSpan(2))
	require.Equal(t, 400, LevelSpan(3))

	// Level-up still happens every 150 XP regardless of span.
	require.Equal(t, 2, DeriveLevel(150).Level)
	require.Equal(t, 3, DeriveLevel(300).Level)
}
