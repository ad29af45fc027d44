package mentor

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pathkeeper/internal/model"
)

func TestRespondKeywordFamilies(t *testing.T) {
	r := NewResponder(1)

	cases := []struct {
		question string
		wantSub  string
	}{
		{"My goal is to learn piano", "personalized quest"},
		{"I want to get fit", "personalized quest"},
		{"I'm stuck on this chapter", "smaller, manageable steps"},
		{"Why is this so HARD?", "smaller, manageable steps"},
		{"I procrastinate all day", "micro-habit"},
		{"I have no motivation", "micro-habit"},
		{"How do I stay productive?", "Pomodoro"},
		{"I can't focus", "Pomodoro"},
	}
	for _, tc := range cases {
		got := r.Respond(tc.question)
		require.Containsf(t, got, tc.wantSub, "question %q", tc.question)
	}
}

func TestRespondDefaultPoolPinned(t *testing.T) {
	r := NewResponderWithPick(func(n int) int {
		require.Equal(t, len(defaultResponses), n)
		return 2
	})
	got := r.Respond("tell me about the weather")
	require.Equal(t, defaultResponses[2], got)
}

func TestRespondSeededIsStable(t *testing.T) {
	a := NewResponder(42).Respond("random chatter")
	b := NewResponder(42).Respond("random chatter")
	require.Equal(t, a, b)
	require.True(t, contains(defaultResponses, a))
}

func contains(pool []string, s string) bool {
	for _, p := range pool {
		if strings.EqualFold(p, s) {
			return true
		}
	}
	return false
}

func TestStarterQuestsAreDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := StarterQuests("learn piano", now)
	b := StarterQuests("learn piano", now)
	require.Equal(t, a, b)
	require.Len(t, a, 3)
	for _, q := range a {
		require.NotEmpty(t, q.ID)
		require.Equal(t, model.QuestActive, q.Status)
		require.Positive(t, q.XPReward)
	}

	// The daily quest ships with an empty 0/7 counter and a week deadline.
	daily := a[1]
	require.NotNil(t, daily.Progress)
	require.Zero(t, *daily.Progress)
	require.Equal(t, 7, *daily.MaxProgress)
	require.NotNil(t, daily.Deadline)
	require.True(t, daily.Deadline.Equal(now.Add(7*24*time.Hour)))
}
