package mentor

import (
	"fmt"
	"strings"

	"pathkeeper/internal/model"
)

// FallbackPath builds a learning path locally when every generation endpoint
// fails. Fully deterministic for a given goal string: same input, same path,
// byte for byte.
func FallbackPath(goal string) *model.LearningPath {
	goal = strings.TrimSpace(goal)
	subject := goal
	if subject == "" {
		subject = "your goal"
	}

	milestones := []model.Milestone{
		{
			ID:          "milestone-1",
			Title:       "Foundation",
			Description: fmt.Sprintf("Build the fundamentals you need for %q.", subject),
			Order:       1,
			Tasks: []model.Task{
				{ID: "1-1", Title: "Research the basics", Description: fmt.Sprintf("Spend an hour reading introductory material about %s and write down the key terms.", subject)},
				{ID: "1-2", Title: "Gather learning resources", Description: "Pick one book, one course, and one community to follow for the next month."},
				{ID: "1-3", Title: "Set a weekly schedule", Description: "Block three practice sessions per week in your calendar and protect them."},
			},
		},
		{
			ID:          "milestone-2",
			Title:       "Practice",
			Description: "Turn knowledge into skill through regular, deliberate practice.",
			Order:       2,
			Tasks: []model.Task{
				{ID: "2-1", Title: "Complete a guided exercise", Description: "Work through one structured exercise from your chosen course or book."},
				{ID: "2-2", Title: "Practice daily for a week", Description: "Do at least 20 minutes of focused practice every day for seven days."},
				{ID: "2-3", Title: "Reflect on progress", Description: "Write a short reflection: what improved, what is still hard, what to try next."},
			},
		},
		{
			ID:          "milestone-3",
			Title:       "Apply & Showcase",
			Description: "Apply what you learned to something real and share it.",
			Order:       3,
			Tasks: []model.Task{
				{ID: "3-1", Title: "Start a small project", Description: fmt.Sprintf("Define a small, finishable project that uses %s end to end.", subject)},
				{ID: "3-2", Title: "Finish and polish it", Description: "Complete the project and fix the rough edges until you would show it to a friend."},
				{ID: "3-3", Title: "Share your work", Description: "Publish or present the result and ask one person for honest feedback."},
			},
		},
	}

	tools := []model.Tool{
		{ID: "tool-1", Name: "Notion", Category: "Organization", Description: "Plan milestones, collect notes, and track what you learn.", URL: "https://notion.so"},
		{ID: "tool-2", Name: "Anki", Category: "Memory", Description: "Spaced-repetition flashcards for the fundamentals.", URL: "https://apps.ankiweb.net"},
		{ID: "tool-3", Name: "Forest", Category: "Focus", Description: "Stay off your phone during practice sessions.", URL: "https://forestapp.cc"},
	}

	return &model.LearningPath{
		Goal:           goal,
		Milestones:     milestones,
		SuggestedTools: tools,
	}
}
