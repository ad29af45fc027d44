package mentor

import (
	"fmt"
	"sort"
	"strings"

	"pathkeeper/internal/model"
)

// NormalizePath fills in everything a generation backend may omit: missing
// milestone/task/tool ids are synthesized (milestone-{n}, {m}-{t}, tool-{n}),
// orders default to position, tasks start incomplete, and categories default
// to General. Milestones come out sorted by order.
func NormalizePath(goal string, path *model.LearningPath) *model.LearningPath {
	path.Goal = strings.TrimSpace(goal)

	for mi := range path.Milestones {
		m := &path.Milestones[mi]
		if m.ID == "" {
			m.ID = fmt.Sprintf("milestone-%d", mi+1)
		}
		if m.Order <= 0 {
			m.Order = mi + 1
		}
		for ti := range m.Tasks {
			t := &m.Tasks[ti]
			if t.ID == "" {
				t.ID = fmt.Sprintf("%d-%d", mi+1, ti+1)
			}
			t.Completed = false
		}
	}
	sort.SliceStable(path.Milestones, func(i, j int) bool {
		return path.Milestones[i].Order < path.Milestones[j].Order
	})

	for i := range path.SuggestedTools {
		tool := &path.SuggestedTools[i]
		if tool.ID == "" {
			tool.ID = fmt.Sprintf("tool-%d", i+1)
		}
		if tool.Category == "" {
			tool.Category = "General"
		}
		tool.IsCustom = false
	}
	return path
}

// ValidatePath rejects responses that decoded but are unusable.
func ValidatePath(path *model.LearningPath) error {
	if len(path.Milestones) == 0 {
		return fmt.Errorf("path has no milestones")
	}
	for _, m := range path.Milestones {
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("milestone %q has no title", m.ID)
		}
	}
	return nil
}
