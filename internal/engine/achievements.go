package engine

import (
	"fmt"
	"time"

	"pathkeeper/internal/model"
)

// quest-count milestones fire on exact thresholds, so each unlocks exactly
// once per session and never retroactively.
var questCountRules = []struct {
	Count  int
	ID     string
	Name   string
	Desc   string
	Icon   string
	Rarity model.Rarity
}{
	{1, "first-quest", "First Quest", "Complete your first quest", "🎯", model.RarityCommon},
	{5, "quest-warrior", "Quest Warrior", "Complete 5 quests", "⚔️", model.RarityRare},
	{10, "quest-master", "Quest Master", "Complete 10 quests", "🏆", model.RarityEpic},
}

// EvaluateAchievements runs the unlock rule table against the post-award
// stats. Rules are independent; several can fire on one completion event.
// The caller appends the result to UserStats.Achievements and persists.
func EvaluateAchievements(before, after model.UserStats, now time.Time) []model.Achievement {
	var unlocked []model.Achievement

	for _, r := range questCountRules {
		if after.QuestsCompleted == r.Count {
			unlocked = append(unlocked, model.Achievement{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Desc,
				Icon:        r.Icon,
				UnlockedAt:  now,
				Rarity:      r.Rarity,
			})
		}
	}

	if after.Level > before.Level {
		rarity := model.RarityRare
		if after.Level >= 5 {
			rarity = model.RarityEpic
		}
		unlocked = append(unlocked, model.Achievement{
			ID:          fmt.Sprintf("level-%d", after.Level),
			Name:        fmt.Sprintf("Level %d", after.Level),
			Description: fmt.Sprintf("Reach level %d", after.Level),
			Icon:        "⭐",
			UnlockedAt:  now,
			Rarity:      rarity,
		})
	}

	return unlocked
}

// appendAchievements adds newly unlocked achievements, skipping ids already
// present so a replayed event cannot double-unlock.
func appendAchievements(stats model.UserStats, unlocked []model.Achievement) (model.UserStats, []model.Achievement) {
	var added []model.Achievement
	for _, a := range unlocked {
		if stats.HasAchievement(a.ID) {
			continue
		}
		stats.Achievements = append(stats.Achievements, a)
		added = append(added, a)
	}
	return stats, added
}
