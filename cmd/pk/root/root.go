package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pathkeeper/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "pk",
	Short:         "Path Keeper — local-first AI mentor and quest tracker",
	Long:          "Path Keeper turns a goal into a learning path of milestones and tasks, then tracks your progress with quests, XP, levels, streaks, and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newGoalCmd(),
		newPathCmd(),
		newTaskCmd(),
		newQuestCmd(),
		newToolsCmd(),
		newStatsCmd(),
		newAskCmd(),
		newThemeCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
