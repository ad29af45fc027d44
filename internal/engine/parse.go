package engine

import (
	"strings"

	"pathkeeper/internal/model"
)

// ParseQuestType parses user input to a QuestType.
// If input is empty or unrecognized, returns DefaultQuestType.
func ParseQuestType(input string) model.QuestType {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "daily":
		return model.QuestDaily
	case "weekly":
		return model.QuestWeekly
	case "learning":
		return model.QuestLearning
	case "habit":
		return model.QuestHabit
	default:
		return model.DefaultQuestType
	}
}

// ParseDifficulty parses user input to a Difficulty, defaulting to Medium.
func ParseDifficulty(input string) model.Difficulty {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "easy":
		return model.DifficultyEasy
	case "hard":
		return model.DifficultyHard
	case "medium", "":
		return model.DifficultyMedium
	default:
		return model.DifficultyMedium
	}
}
