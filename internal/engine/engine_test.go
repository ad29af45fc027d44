package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pathkeeper/internal/model"
	"pathkeeper/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewService(storage.New(db)).WithClock(func() time.Time { return fixed })
}

func addActiveQuest(t *testing.T, svc *Service, xp, maxProgress int) *model.Quest {
	t.Helper()
	q, err := svc.AddQuest(context.Background(), AddQuestInput{
		Title:       "Read a chapter",
		Type:        model.QuestLearning,
		Difficulty:  model.DifficultyEasy,
		XPReward:    xp,
		MaxProgress: maxProgress,
	})
	require.NoError(t, err)
	return q
}

func TestCompleteQuestScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q := addActiveQuest(t, svc, 150, 0)

	res, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)
	require.Equal(t, 150, res.XPAwarded)
	require.Equal(t, 1, res.LevelBefore)
	require.Equal(t, 2, res.LevelAfter)
	require.True(t, res.LevelUp)
	require.ElementsMatch(t, []string{"first-quest", "level-2"}, achievementIDs(res.Unlocked))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Level)
	require.Equal(t, 0, stats.XP)
	require.Equal(t, 150, stats.TotalXP)
	require.Equal(t, 1, stats.QuestsCompleted)
	require.True(t, stats.HasAchievement("first-quest"))
	require.True(t, stats.HasAchievement("level-2"))
}

func TestCompleteQuestRejectsTerminalStates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q := addActiveQuest(t, svc, 50, 0)
	_, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)

	// Completed is absorbing: a second completion changes nothing.
	_, err = svc.CompleteQuest(ctx, q.ID)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 50, stats.TotalXP)
	require.Equal(t, 1, stats.QuestsCompleted)

	failed := addActiveQuest(t, svc, 50, 0)
	_, err = svc.FailQuest(ctx, failed.ID)
	require.NoError(t, err)
	_, err = svc.CompleteQuest(ctx, failed.ID)
	require.ErrorAs(t, err, &verr)
	_, err = svc.FailQuest(ctx, failed.ID)
	require.ErrorAs(t, err, &verr)
}

func TestCompleteQuestNotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CompleteQuest(context.Background(), "nope")
	var nferr NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestUpdateQuestProgressClampsAndAwardsOnce(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	q := addActiveQuest(t, svc, 100, 5)

	res, err := svc.UpdateQuestProgress(ctx, q.ID, 3)
	require.NoError(t, err)
	require.Nil(t, res.Completed)
	require.Equal(t, 3, *res.Quest.Progress)

	// No XP before the counter fills.
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalXP)

	// Overshoot clamps to max and completes exactly once.
	res, err = svc.UpdateQuestProgress(ctx, q.ID, 99)
	require.NoError(t, err)
	require.NotNil(t, res.Completed)
	require.Equal(t, 5, *res.Quest.Progress)
	require.Equal(t, model.QuestCompleted, res.Quest.Status)
	require.Equal(t, 100, res.Completed.XPAwarded)

	// The quest is settled; further updates are rejected and no second
	// award can happen.
	_, err = svc.UpdateQuestProgress(ctx, q.ID, 1)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 100, stats.TotalXP)
	require.Equal(t, 1, stats.QuestsCompleted)
}

func TestUpdateQuestProgressRequiresCounter(t *testing.T) {
	svc := newTestService(t)
	q := addActiveQuest(t, svc, 100, 0)
	_, err := svc.UpdateQuestProgress(context.Background(), q.ID, 1)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestStreaksGrowAcrossCompletions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		q := addActiveQuest(t, svc, 30, 0)
		_, err := svc.CompleteQuest(ctx, q.ID)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, stats.CurrentStreak)
	require.Equal(t, 5, stats.LongestStreak)
	require.True(t, stats.HasAchievement("quest-warrior"))
}

func testPath() model.LearningPath {
	return model.LearningPath{
		Goal: "learn piano",
		Milestones: []model.Milestone{
			{
				ID: "milestone-1", Title: "Foundation", Order: 1,
				Tasks: []model.Task{
					{ID: "1-1", Title: "a"},
					{ID: "1-2", Title: "b"},
					{ID: "1-3", Title: "c"},
					{ID: "1-4", Title: "d"},
				},
			},
			{
				ID: "milestone-2", Title: "Practice", Order: 2,
				Tasks: []model.Task{
					{ID: "2-1", Title: "e"},
					{ID: "2-2", Title: "f"},
				},
			},
		},
		SuggestedTools: []model.Tool{
			{ID: "tool-1", Name: "Anki", Category: "Memory"},
		},
	}
}

func TestToggleTaskRollup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SetLearningPath(ctx, testPath()))

	res, err := svc.ToggleTask(ctx, "milestone-1", "1-1")
	require.NoError(t, err)
	require.True(t, res.Task.Completed)
	require.Equal(t, 25, res.MilestonePercent)
	require.Equal(t, 17, res.OverallPercent) // 1/6 → 16.67 rounds to 17

	res, err = svc.ToggleTask(ctx, "milestone-1", "1-2")
	require.NoError(t, err)
	require.Equal(t, 50, res.MilestonePercent)
	require.Equal(t, 33, res.OverallPercent)

	// Toggling back down recomputes.
	res, err = svc.ToggleTask(ctx, "milestone-1", "1-2")
	require.NoError(t, err)
	require.False(t, res.Task.Completed)
	require.Equal(t, 25, res.MilestonePercent)

	// Toggling a task never touches XP.
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalXP)
}

func TestToggleTaskUnknownIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SetLearningPath(ctx, testPath()))

	var nferr NotFoundError
	_, err := svc.ToggleTask(ctx, "milestone-1", "9-9")
	require.ErrorAs(t, err, &nferr)
	_, err = svc.ToggleTask(ctx, "milestone-9", "1-1")
	require.ErrorAs(t, err, &nferr)
}

func TestMilestonePercentEdgeCases(t *testing.T) {
	require.Equal(t, 0, MilestonePercent(model.Milestone{}))
	m := model.Milestone{Tasks: []model.Task{
		{Completed: true}, {Completed: true}, {}, {},
	}}
	require.Equal(t, 50, MilestonePercent(m))
	require.Equal(t, 0, OverallPercent(nil))
}

func TestToolLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.SetLearningPath(ctx, testPath()))

	adopted, err := svc.AdoptTool(ctx, "tool-1")
	require.NoError(t, err)
	require.Equal(t, "Anki", adopted.Name)
	require.False(t, adopted.IsCustom)

	// Adopting twice is rejected.
	_, err = svc.AdoptTool(ctx, "tool-1")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	custom, err := svc.AddCustomTool(ctx, CustomToolInput{Name: "Metronome", Description: "Keep time"})
	require.NoError(t, err)
	require.True(t, custom.IsCustom)
	require.Equal(t, "General", custom.Category)

	tools, err := svc.Tools(ctx)
	require.NoError(t, err)
	require.Len(t, tools, 2)

	require.NoError(t, svc.RemoveTool(ctx, adopted.ID))
	tools, err = svc.Tools(ctx)
	require.NoError(t, err)
	require.Len(t, tools, 1)

	var nferr NotFoundError
	require.ErrorAs(t, svc.RemoveTool(ctx, "gone"), &nferr)
}

func TestStartSessionValidatesGoal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartSession(ctx, "   ")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	sess, err := svc.StartSession(ctx, "  learn piano  ")
	require.NoError(t, err)
	require.Equal(t, "learn piano", sess.Goal)

	loaded, err := svc.Session(ctx)
	require.NoError(t, err)
	require.Equal(t, sess.Goal, loaded.Goal)
}

func TestAddQuestValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var verr ValidationError
	_, err := svc.AddQuest(ctx, AddQuestInput{Title: "  ", XPReward: 10})
	require.ErrorAs(t, err, &verr)
	_, err = svc.AddQuest(ctx, AddQuestInput{Title: "x", XPReward: 0})
	require.ErrorAs(t, err, &verr)
	_, err = svc.AddQuest(ctx, AddQuestInput{Title: "x", XPReward: 10, MaxProgress: -1})
	require.ErrorAs(t, err, &verr)

	q, err := svc.AddQuest(ctx, AddQuestInput{Title: "x", Type: "bogus", Difficulty: "bogus", XPReward: 10})
	require.NoError(t, err)
	require.Equal(t, model.DefaultQuestType, q.Type)
	require.Equal(t, model.DifficultyMedium, q.Difficulty)
	require.NotEmpty(t, q.ID)
}
