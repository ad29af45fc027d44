package mentor

import (
	"fmt"
	"strings"
	"time"

	"pathkeeper/internal/model"
)

// StarterQuests seeds the quest board for a freshly generated path. The set
// is deterministic for a goal so regenerating the same path yields the same
// starting board.
func StarterQuests(goal string, now time.Time) []model.Quest {
	goal = strings.TrimSpace(goal)
	week := now.Add(7 * 24 * time.Hour)

	progressZero := 0
	progressMax := 7

	return []model.Quest{
		{
			ID:          "starter-first-task",
			Title:       "Take the first step",
			Description: fmt.Sprintf("Complete the first task of your %q path.", goal),
			Type:        model.QuestLearning,
			Difficulty:  model.DifficultyEasy,
			XPReward:    50,
			Status:      model.QuestActive,
			CreatedAt:   now,
		},
		{
			ID:          "starter-daily-practice",
			Title:       "Practice every day",
			Description: "Log seven practice sessions this week.",
			Type:        model.QuestDaily,
			Difficulty:  model.DifficultyMedium,
			XPReward:    100,
			Status:      model.QuestActive,
			Progress:    &progressZero,
			MaxProgress: &progressMax,
			CreatedAt:   now,
			Deadline:    &week,
		},
		{
			ID:          "starter-weekly-review",
			Title:       "Weekly review",
			Description: "Review your milestones and adjust next week's plan.",
			Type:        model.QuestWeekly,
			Difficulty:  model.DifficultyEasy,
			XPReward:    75,
			Status:      model.QuestActive,
			CreatedAt:   now,
			Deadline:    &week,
		},
	}
}
