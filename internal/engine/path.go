package engine

import (
	"context"
	"math"

	"pathkeeper/internal/model"
)

// ToggleResult reports the flipped task and the recomputed roll-ups.
type ToggleResult struct {
	MilestoneID      string
	Task             model.Task
	MilestonePercent int
	OverallPercent   int
}

func (s *Service) LearningPath(ctx context.Context) (*model.LearningPath, error) {
	return s.store.LoadPath(ctx)
}

// SetLearningPath replaces the whole path aggregate. Tasks are only ever
// created here; they live and die with the path.
func (s *Service) SetLearningPath(ctx context.Context, path model.LearningPath) error {
	if path.Goal == "" {
		return ValidationError{Op: "set path", Reason: "goal is required"}
	}
	if len(path.Milestones) == 0 {
		return ValidationError{Op: "set path", Reason: "path has no milestones"}
	}
	return s.store.SavePath(ctx, &path)
}

// ToggleTask flips exactly one task's completed flag. Tasks carry no XP and
// trigger no achievement evaluation; only the percentages change.
func (s *Service) ToggleTask(ctx context.Context, milestoneID, taskID string) (*ToggleResult, error) {
	path, err := s.store.LoadPath(ctx)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, ValidationError{Op: "toggle task", Reason: "no learning path yet"}
	}

	var toggled *model.Task
	for mi := range path.Milestones {
		m := &path.Milestones[mi]
		if m.ID != milestoneID {
			continue
		}
		for ti := range m.Tasks {
			if m.Tasks[ti].ID == taskID {
				m.Tasks[ti].Completed = !m.Tasks[ti].Completed
				toggled = &m.Tasks[ti]
				break
			}
		}
		if toggled == nil {
			return nil, NotFoundError{Kind: "task", ID: taskID}
		}
		if err := s.store.SavePath(ctx, path); err != nil {
			return nil, err
		}
		return &ToggleResult{
			MilestoneID:      milestoneID,
			Task:             *toggled,
			MilestonePercent: MilestonePercent(*m),
			OverallPercent:   OverallPercent(path.Milestones),
		}, nil
	}
	return nil, NotFoundError{Kind: "milestone", ID: milestoneID}
}

// MilestonePercent is round(100 * completed / total); zero tasks is 0%.
func MilestonePercent(m model.Milestone) int {
	return percent(countCompleted(m.Tasks), len(m.Tasks))
}

// OverallPercent rolls up completion across every milestone's tasks.
func OverallPercent(milestones []model.Milestone) int {
	done, total := 0, 0
	for _, m := range milestones {
		done += countCompleted(m.Tasks)
		total += len(m.Tasks)
	}
	return percent(done, total)
}

func countCompleted(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}
