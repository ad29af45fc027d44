package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/model"
	"pathkeeper/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage quests",
	}

	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestListCmd(),
		newQuestDoneCmd(),
		newQuestProgressCmd(),
		newQuestFailCmd(),
	)

	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var questType string
	var difficulty string
	var xp int
	var maxProgress int
	var deadlineDays int
	var desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			in := engine.AddQuestInput{
				Title:       args[0],
				Description: desc,
				Type:        engine.ParseQuestType(questType),
				Difficulty:  engine.ParseDifficulty(difficulty),
				XPReward:    xp,
				MaxProgress: maxProgress,
			}
			if deadlineDays > 0 {
				d := time.Now().UTC().AddDate(0, 0, deadlineDays)
				in.Deadline = &d
			}

			q, err := svc.AddQuest(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added quest %s (%s, %s, +%d XP)\n",
				ui.IconQuest, ui.Key.Render(q.Title), q.Type, ui.DifficultyText(q.Difficulty), q.XPReward)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+q.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&questType, "type", "t", "learning", "Quest type (daily|weekly|learning|habit)")
	cmd.Flags().StringVarP(&difficulty, "diff", "d", "medium", "Difficulty (easy|medium|hard)")
	cmd.Flags().IntVar(&xp, "xp", 50, "XP reward")
	cmd.Flags().IntVar(&maxProgress, "max-progress", 0, "Progress target (0 for none)")
	cmd.Flags().IntVar(&deadlineDays, "deadline", 0, "Deadline in days from now (0 for none)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")

	return cmd
}

func newQuestListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.ListQuests(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No quests yet. Set a goal or `pk quest add`."))
				return nil
			}

			printGroup := func(heading string, status model.QuestStatus) {
				printed := false
				for _, q := range quests {
					if q.Status != status {
						continue
					}
					if !printed {
						fmt.Fprintln(out, ui.H2.Render(heading))
						printed = true
					}
					line := fmt.Sprintf("  %s %s [%s, %s, +%d XP]", ui.StatusText(q.Status), q.Title, q.Type, ui.DifficultyText(q.Difficulty), q.XPReward)
					if q.Progress != nil && q.MaxProgress != nil {
						line += fmt.Sprintf(" %d/%d", *q.Progress, *q.MaxProgress)
					}
					if q.Deadline != nil {
						line += ui.Muted.Render(" due " + q.Deadline.Format("2006-01-02"))
					}
					fmt.Fprintln(out, line)
					fmt.Fprintln(out, ui.Muted.Render("    id: "+q.ID))
				}
				if printed {
					fmt.Fprintln(out, "")
				}
			}

			printGroup(ui.IconTarget+" Active", model.QuestActive)
			printGroup(ui.IconTrophy+" Completed", model.QuestCompleted)
			printGroup(ui.IconError+" Failed", model.QuestFailed)
			return nil
		},
	}

	return cmd
}

func newQuestDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a quest and collect its XP",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
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

			res, err := svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			printCompletion(cmd, res)
			return nil
		},
	}

	return cmd
}

func newQuestProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <id> <value>",
		Short: "Update a quest's progress counter",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("quest id and progress value are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("progress value must be an integer")
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

			value, _ := strconv.Atoi(args[1])
			res, err := svc.UpdateQuestProgress(ctx, args[0], value)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Completed != nil {
				printCompletion(cmd, res.Completed)
				return nil
			}
			fmt.Fprintf(out, "%s %s: %d/%d\n", ui.IconTarget, res.Quest.Title, *res.Quest.Progress, *res.Quest.MaxProgress)
			return nil
		},
	}

	return cmd
}

func newQuestFailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fail <id>",
		Short: "Mark a quest failed",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required")
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

			q, err := svc.FailQuest(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s marked %s\n", ui.IconWarn, q.Title, ui.StatusText(q.Status))
			return nil
		},
	}

	return cmd
}

func printCompletion(cmd *cobra.Command, res *engine.CompleteResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Quest completed: %s\n", ui.IconDone, ui.Key.Render(res.Quest.Title))
	fmt.Fprintln(out, questStatusLine(res))
	for _, a := range res.Unlocked {
		fmt.Fprintf(out, "%s Achievement unlocked: %s %s (%s)\n", ui.IconTrophy, a.Icon, ui.Gold.Render(a.Name), ui.RarityText(a.Rarity))
	}
}
