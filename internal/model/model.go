package model

import "time"

type QuestType string

const (
	QuestDaily    QuestType = "daily"
	QuestWeekly   QuestType = "weekly"
	QuestLearning QuestType = "learning"
	QuestHabit    QuestType = "habit"
)

func (t QuestType) IsValid() bool {
	switch t {
	case QuestDaily, QuestWeekly, QuestLearning, QuestHabit:
		return true
	default:
		return false
	}
}

// DefaultQuestType is used when user input is missing/invalid.
const DefaultQuestType QuestType = QuestLearning

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
)

// Terminal reports whether the status is absorbing (completed/failed).
func (s QuestStatus) Terminal() bool {
	return s == QuestCompleted || s == QuestFailed
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Quest is a user-facing unit of gamified work with an XP reward.
// Progress/MaxProgress are optional paired counters; when MaxProgress is nil
// the quest completes only via an explicit action.
type Quest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        QuestType   `json:"type"`
	Difficulty  Difficulty  `json:"difficulty"`
	XPReward    int         `json:"xpReward"`
	Status      QuestStatus `json:"status"`
	Progress    *int        `json:"progress,omitempty"`
	MaxProgress *int        `json:"maxProgress,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Deadline    *time.Time  `json:"deadline,omitempty"`
}

// Task is an atomic, binary-completable unit owned by exactly one Milestone.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Tasks       []Task `json:"tasks"`
}

type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}

// LearningPath is the goal decomposition returned by the mentor service.
type LearningPath struct {
	Goal           string      `json:"goal"`
	Milestones     []Milestone `json:"milestones"`
	SuggestedTools []Tool      `json:"suggestedTools"`
}

// Achievement is append-only: once unlocked it is never removed or mutated.
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	Rarity      Rarity    `json:"rarity"`
}

// UserStats is the single per-session progression aggregate.
// XP is the in-level remainder (0 <= XP < XPToNextLevel); TotalXP and
// QuestsCompleted are monotonically non-decreasing.
type UserStats struct {
	Level           int           `json:"level"`
	XP              int           `json:"xp"`
	XPToNextLevel   int           `json:"xpToNextLevel"`
	TotalXP         int           `json:"totalXP"`
	QuestsCompleted int           `json:"questsCompleted"`
	CurrentStreak   int           `json:"currentStreak"`
	LongestStreak   int           `json:"longestStreak"`
	Achievements    []Achievement `json:"achievements"`
}

// HasAchievement reports whether an achievement id is already unlocked.
func (s UserStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Session is the lightweight profile snapshot (goal + when the journey began).
type Session struct {
	Goal      string    `json:"goal"`
	CreatedAt time.Time `json:"createdAt"`
}
