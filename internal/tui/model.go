package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/model"
	"pathkeeper/internal/ui"
)

type dashboardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	stats  model.UserStats
	quests []model.Quest
	path   *model.LearningPath

	expanded map[string]bool
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	stats  model.UserStats
	quests []model.Quest
	path   *model.LearningPath
	err    error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type toggledMsg struct {
	res *engine.ToggleResult
	err error
}

func newDashboardModel(ctx context.Context, svc *engine.Service) dashboardModel {
	return dashboardModel{
		ctx:      ctx,
		svc:      svc,
		expanded: map[string]bool{},
		loading:  true,
		lastLog:  "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.svc.Stats(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.ListQuests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		path, err := m.svc.LearningPath(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{stats: stats, quests: quests, path: path}
	}
}

func (m dashboardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m dashboardModel) toggleCmd(milestoneID, taskID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(m.ctx, milestoneID, taskID)
		return toggledMsg{res: res, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.quests = msg.quests
		m.path = msg.path
		// Default-expand every milestone on first load.
		if m.path != nil {
			for _, ms := range m.path.Milestones {
				if _, seen := m.expanded[ms.ID]; !seen {
					m.expanded[ms.ID] = true
				}
			}
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %q: +%d XP (level %d → %d)", msg.res.Quest.Title, msg.res.XPAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		for _, a := range msg.res.Unlocked {
			m.lastLog += fmt.Sprintf("  %s %s", a.Icon, a.Name)
		}
		return m, m.loadCmd()
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Milestone %d%%, path %d%% complete.", msg.res.MilestonePercent, msg.res.OverallPercent)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.rows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.kind == rowMilestone {
				m.expanded[row.id] = !m.expanded[row.id]
			}
			return m, nil
		case "c", " ":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			switch row.kind {
			case rowQuest:
				if row.done {
					m.lastLog = "Quest already settled."
					return m, nil
				}
				m.lastLog = "Completing quest…"
				return m, m.completeCmd(row.id)
			case rowTask:
				return m, m.toggleCmd(row.milestoneID, row.id)
			default:
				m.lastLog = "Select a quest or task."
				return m, nil
			}
		}
	}
	return m, nil
}

type rowKind int

const (
	rowHeading rowKind = iota
	rowQuest
	rowMilestone
	rowTask
)

type row struct {
	kind        rowKind
	id          string
	milestoneID string
	label       string
	done        bool
}

func (m dashboardModel) rows() []row {
	var out []row

	out = append(out, row{kind: rowHeading, label: ui.IconQuest + " Quests"})
	if len(m.quests) == 0 {
		out = append(out, row{kind: rowHeading, label: "  (no quests yet — set a goal)"})
	}
	for _, q := range m.quests {
		label := fmt.Sprintf("  %s %s (+%d XP)", ui.CheckMark(q.Status == model.QuestCompleted), q.Title, q.XPReward)
		if q.Progress != nil && q.MaxProgress != nil {
			label += fmt.Sprintf(" %d/%d", *q.Progress, *q.MaxProgress)
		}
		out = append(out, row{kind: rowQuest, id: q.ID, label: label, done: q.Status.Terminal()})
	}

	if m.path != nil {
		out = append(out, row{kind: rowHeading, label: ""})
		out = append(out, row{kind: rowHeading, label: fmt.Sprintf("%s Path: %s (%d%%)", ui.IconPath, m.path.Goal, engine.OverallPercent(m.path.Milestones))})
		for _, ms := range m.path.Milestones {
			marker := "▸"
			if m.expanded[ms.ID] {
				marker = "▾"
			}
			out = append(out, row{
				kind:  rowMilestone,
				id:    ms.ID,
				label: fmt.Sprintf("  %s %d. %s (%d%%)", marker, ms.Order, ms.Title, engine.MilestonePercent(ms)),
			})
			if !m.expanded[ms.ID] {
				continue
			}
			for _, t := range ms.Tasks {
				out = append(out, row{
					kind:        rowTask,
					id:          t.ID,
					milestoneID: ms.ID,
					label:       fmt.Sprintf("      %s %s", ui.CheckMark(t.Completed), t.Title),
					done:        t.Completed,
				})
			}
		}
	}
	return out
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + ui.Muted.Render(m.lastLog) + "\n"

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	if m.loading {
		return "Path Keeper — loading…"
	}
	bar := ui.Bar(m.stats.XP, engine.XPPerLevel, 30)
	return fmt.Sprintf("Path Keeper | Level %d | XP %d/%d %s | Total %d",
		m.stats.Level, m.stats.XP, engine.XPPerLevel, bar, m.stats.TotalXP)
}

func (m dashboardModel) renderSidebar() string {
	lines := []string{"Stats"}
	lines = append(lines, fmt.Sprintf("- Quests done: %d", m.stats.QuestsCompleted))
	lines = append(lines, fmt.Sprintf("- Streak: %d (best %d)", m.stats.CurrentStreak, m.stats.LongestStreak))
	lines = append(lines, fmt.Sprintf("- Achievements: %d", len(m.stats.Achievements)))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- enter: expand milestone")
	lines = append(lines, "- c/space: complete/toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	rows := m.rows()
	sel := m.selected
	if sel >= len(rows) {
		sel = len(rows) - 1
	}
	var out []string
	for i, r := range rows {
		line := r.label
		if i == sel && r.kind != rowHeading {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s[:w]
	}
	return s + strings.Repeat(" ", w-len(s))
}
