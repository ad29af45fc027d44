package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pathkeeper/internal/model"
)

type AddQuestInput struct {
	Title       string
	Description string
	Type        model.QuestType
	Difficulty  model.Difficulty
	XPReward    int
	MaxProgress int // 0 means no progress counter
	Deadline    *time.Time
}

// CompleteResult reports what a single completion event did: the XP award,
// any level-up, and the achievements it unlocked.
type CompleteResult struct {
	Quest       model.Quest
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Unlocked    []model.Achievement
	Stats       model.UserStats
}

// ProgressResult is the outcome of a progress update. Completed is non-nil
// when reaching MaxProgress auto-completed the quest.
type ProgressResult struct {
	Quest     model.Quest
	Completed *CompleteResult
}

func (s *Service) ListQuests(ctx context.Context) ([]model.Quest, error) {
	return s.store.LoadQuests(ctx)
}

func (s *Service) AddQuest(ctx context.Context, in AddQuestInput) (*model.Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if !in.Type.IsValid() {
		in.Type = model.DefaultQuestType
	}
	if !in.Difficulty.IsValid() {
		in.Difficulty = model.DifficultyMedium
	}
	if in.XPReward <= 0 {
		return nil, ValidationError{Op: "add quest", Reason: "xp reward must be positive"}
	}
	if in.MaxProgress < 0 {
		return nil, ValidationError{Op: "add quest", Reason: "max progress cannot be negative"}
	}

	q := model.Quest{
		ID:          uuid.NewString(),
		Title:       title,
		Description: in.Description,
		Type:        in.Type,
		Difficulty:  in.Difficulty,
		XPReward:    in.XPReward,
		Status:      model.QuestActive,
		CreatedAt:   s.now().UTC(),
		Deadline:    in.Deadline,
	}
	if in.MaxProgress > 0 {
		zero := 0
		max := in.MaxProgress
		q.Progress = &zero
		q.MaxProgress = &max
	}

	quests, err := s.store.LoadQuests(ctx)
	if err != nil {
		return nil, err
	}
	quests = append(quests, q)
	if err := s.store.SaveQuests(ctx, quests); err != nil {
		return nil, err
	}
	return &q, nil
}

// AddQuests appends pre-built quests (e.g. starter quests for a new goal).
func (s *Service) AddQuests(ctx context.Context, batch []model.Quest) error {
	if len(batch) == 0 {
		return nil
	}
	quests, err := s.store.LoadQuests(ctx)
	if err != nil {
		return err
	}
	quests = append(quests, batch...)
	return s.store.SaveQuests(ctx, quests)
}

// CompleteQuest transitions active → completed and awards the quest's XP
// exactly once. Completed/failed quests are immutable, so a second call is
// rejected with a ValidationError and changes nothing.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*CompleteResult, error) {
	quests, err := s.store.LoadQuests(ctx)
	if err != nil {
		return nil, err
	}
	idx := findQuest(quests, id)
	if idx < 0 {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	if quests[idx].Status != model.QuestActive {
		return nil, ValidationError{Op: "complete quest", Reason: "quest is " + string(quests[idx].Status)}
	}

	quests[idx].Status = model.QuestCompleted
	if quests[idx].MaxProgress != nil {
		full := *quests[idx].MaxProgress
		quests[idx].Progress = &full
	}
	res, err := s.settleCompletion(ctx, quests[idx])
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveQuests(ctx, quests); err != nil {
		return nil, err
	}
	return res, nil
}

// UpdateQuestProgress clamps newProgress into [0, MaxProgress] and, when the
// counter fills, auto-completes the quest with a single XP award.
func (s *Service) UpdateQuestProgress(ctx context.Context, id string, newProgress int) (*ProgressResult, error) {
	quests, err := s.store.LoadQuests(ctx)
	if err != nil {
		return nil, err
	}
	idx := findQuest(quests, id)
	if idx < 0 {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	q := &quests[idx]
	if q.Status != model.QuestActive {
		return nil, ValidationError{Op: "update progress", Reason: "quest is " + string(q.Status)}
	}
	if q.MaxProgress == nil {
		return nil, ValidationError{Op: "update progress", Reason: "quest has no progress counter"}
	}

	if newProgress < 0 {
		newProgress = 0
	}
	if newProgress > *q.MaxProgress {
		newProgress = *q.MaxProgress
	}
	q.Progress = &newProgress

	out := &ProgressResult{}
	if newProgress >= *q.MaxProgress {
		q.Status = model.QuestCompleted
		res, err := s.settleCompletion(ctx, *q)
		if err != nil {
			return nil, err
		}
		out.Completed = res
	}
	if err := s.store.SaveQuests(ctx, quests); err != nil {
		return nil, err
	}
	out.Quest = *q
	return out, nil
}

// FailQuest transitions active → failed. Reserved surface: nothing drives it
// automatically, but the terminal state exists in the model.
func (s *Service) FailQuest(ctx context.Context, id string) (*model.Quest, error) {
	quests, err := s.store.LoadQuests(ctx)
	if err != nil {
		return nil, err
	}
	idx := findQuest(quests, id)
	if idx < 0 {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	if quests[idx].Status != model.QuestActive {
		return nil, ValidationError{Op: "fail quest", Reason: "quest is " + string(quests[idx].Status)}
	}
	quests[idx].Status = model.QuestFailed
	if err := s.store.SaveQuests(ctx, quests); err != nil {
		return nil, err
	}
	q := quests[idx]
	return &q, nil
}

// settleCompletion awards XP for one completed quest, evaluates the
// achievement rules, and persists the stats aggregate.
func (s *Service) settleCompletion(ctx context.Context, q model.Quest) (*CompleteResult, error) {
	before, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	after, err := AwardExperience(before, q.XPReward)
	if err != nil {
		return nil, err
	}
	unlocked := EvaluateAchievements(before, after, s.now().UTC())
	after, added := appendAchievements(after, unlocked)
	if err := s.store.SaveStats(ctx, after); err != nil {
		return nil, err
	}
	return &CompleteResult{
		Quest:       q,
		XPAwarded:   q.XPReward,
		LevelBefore: before.Level,
		LevelAfter:  after.Level,
		LevelUp:     after.Level > before.Level,
		Unlocked:    added,
		Stats:       after,
	}, nil
}

func findQuest(quests []model.Quest, id string) int {
	for i := range quests {
		if quests[i].ID == id {
			return i
		}
	}
	return -1
}
