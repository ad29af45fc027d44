package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/ui"
)

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the learning path and milestone progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := svc.LearningPath(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if path == nil {
				fmt.Fprintln(out, ui.Muted.Render("No learning path yet. Start with `pk goal <text>`."))
				return nil
			}

			overall := engine.OverallPercent(path.Milestones)
			fmt.Fprintln(out, ui.Heading(ui.IconPath, "Learning Path"))
			fmt.Fprintln(out, ui.LabelValue("Goal", path.Goal))
			fmt.Fprintf(out, "%s %s %d%%\n\n", ui.Key.Render("Overall:"), ui.Bar(overall, 100, 24), overall)

			for _, m := range path.Milestones {
				pct := engine.MilestonePercent(m)
				fmt.Fprintf(out, "%s %d. %s %s %d%%\n", ui.H2.Render("▸"), m.Order, ui.H2.Render(m.Title), ui.Bar(pct, 100, 12), pct)
				if m.Description != "" {
					fmt.Fprintf(out, "   %s\n", ui.Muted.Render(m.Description))
				}
				for _, t := range m.Tasks {
					fmt.Fprintf(out, "   %s %s  %s\n", ui.CheckMark(t.Completed), t.Title, ui.Muted.Render("("+m.ID+" "+t.ID+")"))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	return cmd
}
