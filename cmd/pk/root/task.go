package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pathkeeper/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task <milestone-id> <task-id>",
		Short: "Toggle a path task complete/incomplete",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("milestone id and task id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ToggleTask(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			state := "reopened"
			if res.Task.Completed {
				state = "completed"
			}
			fmt.Fprintf(out, "%s %s %s\n", ui.IconDone, res.Task.Title, ui.Muted.Render(state))
			fmt.Fprintf(out, "%s %s %d%%   %s %s %d%%\n",
				ui.Key.Render("Milestone:"), ui.Bar(res.MilestonePercent, 100, 12), res.MilestonePercent,
				ui.Key.Render("Overall:"), ui.Bar(res.OverallPercent, 100, 12), res.OverallPercent)
			return nil
		},
	}

	return cmd
}
