package engine

import (
	"pathkeeper/internal/model"
)

// AwardExperience applies one quest completion to the stats aggregate and
// returns the new value. TotalXP and QuestsCompleted only ever grow; every
// completion extends the streak (streaks have no time decay).
func AwardExperience(stats model.UserStats, xpGained int) (model.UserStats, error) {
	if xpGained <= 0 {
		return stats, ValidationError{Op: "award experience", Reason: "xp gained must be positive"}
	}

	stats.TotalXP += xpGained
	info := DeriveLevel(stats.TotalXP)
	stats.Level = info.Level
	stats.XP = info.XPInLevel
	stats.XPToNextLevel = info.XPToNextLevel

	stats.QuestsCompleted++
	stats.CurrentStreak++
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return stats, nil
}

// NormalizeStats re-derives the level display fields from TotalXP. Loaded
// snapshots pass through here so a stale or hand-edited level can never
// disagree with the leveling law.
func NormalizeStats(stats model.UserStats) model.UserStats {
	info := DeriveLevel(stats.TotalXP)
	stats.Level = info.Level
	stats.XP = info.XPInLevel
	stats.XPToNextLevel = info.XPToNextLevel
	if stats.LongestStreak < stats.CurrentStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	if stats.Achievements == nil {
		stats.Achievements = []model.Achievement{}
	}
	return stats
}
