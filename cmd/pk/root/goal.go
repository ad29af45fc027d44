package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/mentor"
	"pathkeeper/internal/ui"
)

func newGoalCmd() *cobra.Command {
	var offline bool
	var endpoints []string

	cmd := &cobra.Command{
		Use:   "goal <text>",
		Short: "Set your goal and generate a learning path",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("goal text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			goal := strings.TrimSpace(strings.Join(args, " "))

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err := svc.StartSession(ctx, goal)
			if err != nil {
				return err
			}

			log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
				w.Out = os.Stderr
			})).Level(zerolog.WarnLevel).With().Timestamp().Logger()

			path := mentor.FallbackPath(sess.Goal)
			usedFallback := true
			if !offline {
				client := mentor.NewClient(resolveEndpoints(endpoints), log)
				path, usedFallback = client.GenerateOrFallback(ctx, sess.Goal)
			}

			if err := svc.SetLearningPath(ctx, *path); err != nil {
				return err
			}
			if err := svc.AddQuests(ctx, mentor.StarterQuests(sess.Goal, sess.CreatedAt)); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPath, "Your Learning Path"))
			fmt.Fprintln(out, ui.LabelValue("Goal", path.Goal))
			if usedFallback && !offline {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Mentor service unreachable — using a locally generated path."))
			}
			fmt.Fprintln(out, "")
			for _, m := range path.Milestones {
				fmt.Fprintf(out, "%s %d. %s — %s\n", ui.H2.Render("▸"), m.Order, ui.H2.Render(m.Title), ui.Muted.Render(m.Description))
				for _, t := range m.Tasks {
					fmt.Fprintf(out, "    %s %s  %s\n", ui.CheckMark(t.Completed), t.Title, ui.Muted.Render("("+t.ID+")"))
				}
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconTool+" Suggested tools"))
			for _, tool := range path.SuggestedTools {
				fmt.Fprintf(out, "  - %s (%s): %s\n", ui.Key.Render(tool.Name), tool.Category, tool.Description)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("Starter quests added — see `pk quest list`."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the mentor service and build the path locally")
	cmd.Flags().StringSliceVar(&endpoints, "endpoint", nil, "Generation endpoint override (repeatable, tried in order)")

	return cmd
}

func resolveEndpoints(flagEndpoints []string) []string {
	if len(flagEndpoints) > 0 {
		return flagEndpoints
	}
	if env := os.Getenv("MENTOR_ENDPOINTS"); env != "" {
		var out []string
		for _, e := range strings.Split(env, ",") {
			if e = strings.TrimSpace(e); e != "" {
				out = append(out, e)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// questStatusLine is shared by quest list/done output.
func questStatusLine(res *engine.CompleteResult) string {
	line := fmt.Sprintf("%s +%d XP", ui.IconBolt, res.XPAwarded)
	if res.LevelUp {
		line += "  " + ui.BadgeLevelUp + fmt.Sprintf(" → level %d", res.LevelAfter)
	}
	return line
}
