package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show level, XP, streaks, and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Keeper Status"))
			if sess, err := svc.Session(ctx); err == nil && sess != nil {
				fmt.Fprintln(out, ui.LabelValue("Goal", sess.Goal))
			}
			fmt.Fprintln(out, ui.LabelValue("Level", stats.Level))
			fmt.Fprintf(out, "%s %s %d/%d %s\n",
				ui.Key.Render("XP:"), ui.Bar(stats.XP, engine.XPPerLevel, 24),
				stats.XP, engine.XPPerLevel,
				ui.Muted.Render(fmt.Sprintf("(%d to level %d)", stats.XPToNextLevel, stats.Level+1)))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("   level span %d XP", engine.LevelSpan(stats.Level))))
			fmt.Fprintln(out, ui.LabelValue("Total XP", stats.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Quests completed", stats.QuestsCompleted))
			fmt.Fprintf(out, "%s %d %s\n", ui.Key.Render("Streak:"), stats.CurrentStreak, ui.Muted.Render(fmt.Sprintf("(best %d) %s", stats.LongestStreak, ui.IconStreak)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			if len(stats.Achievements) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (none yet — complete a quest!)"))
				return nil
			}
			sorted := make([]int, len(stats.Achievements))
			for i := range sorted {
				sorted[i] = i
			}
			sort.SliceStable(sorted, func(i, j int) bool {
				return stats.Achievements[sorted[i]].UnlockedAt.Before(stats.Achievements[sorted[j]].UnlockedAt)
			})
			for _, i := range sorted {
				a := stats.Achievements[i]
				fmt.Fprintf(out, "  %s %s (%s) — %s %s\n",
					a.Icon, ui.Gold.Render(a.Name), ui.RarityText(a.Rarity), a.Description,
					ui.Muted.Render(a.UnlockedAt.Format("2006-01-02")))
			}
			return nil
		},
	}

	return cmd
}
