package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pathkeeper/internal/model"
)

// Path Keeper theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPath    = "🧭"
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconTool    = "🛠️"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconStreak  = "🔥"
	IconTarget  = "🎯"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status model.QuestStatus) string {
	switch status {
	case model.QuestCompleted:
		return Good.Render("completed")
	case model.QuestFailed:
		return Bad.Render("failed")
	case model.QuestActive:
		return H2.Render("active")
	default:
		return Muted.Render(string(status))
	}
}

func DifficultyText(d model.Difficulty) string {
	switch d {
	case model.DifficultyEasy:
		return Good.Render("Easy")
	case model.DifficultyMedium:
		return Warn.Render("Medium")
	case model.DifficultyHard:
		return Bad.Render("Hard")
	default:
		return Muted.Render(string(d))
	}
}

func RarityText(r model.Rarity) string {
	switch r {
	case model.RarityCommon:
		return Muted.Render("common")
	case model.RarityRare:
		return H2.Render("rare")
	case model.RarityEpic:
		return Title.Render("epic")
	case model.RarityLegendary:
		return Gold.Render("legendary")
	default:
		return Muted.Render(string(r))
	}
}

// Bar renders a fixed-width progress bar like [██████····] for XP and
// milestone percentages.
func Bar(value, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	filled := value * width / max
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

func CheckMark(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
