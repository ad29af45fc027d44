package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pathkeeper/internal/engine"
	"pathkeeper/internal/ui"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Manage your tool list",
	}

	cmd.AddCommand(
		newToolsListCmd(),
		newToolsAdoptCmd(),
		newToolsAddCmd(),
		newToolsRemoveCmd(),
	)

	return cmd
}

func newToolsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tools and the suggested ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			tools, err := svc.Tools(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTool, "My Tools"))
			if len(tools) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (empty — adopt a suggested tool or add your own)"))
			}
			for _, t := range tools {
				custom := ""
				if t.IsCustom {
					custom = ui.Muted.Render(" (custom)")
				}
				fmt.Fprintf(out, "  - %s [%s]%s: %s\n", ui.Key.Render(t.Name), t.Category, custom, t.Description)
				fmt.Fprintln(out, ui.Muted.Render("    id: "+t.ID))
			}

			path, err := svc.LearningPath(ctx)
			if err != nil {
				return err
			}
			if path != nil && len(path.SuggestedTools) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Suggested by your mentor"))
				for _, t := range path.SuggestedTools {
					fmt.Fprintf(out, "  - %s [%s]: %s %s\n", t.Name, t.Category, t.Description, ui.Muted.Render("(id: "+t.ID+")"))
				}
			}
			return nil
		},
	}

	return cmd
}

func newToolsAdoptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adopt <tool-id>",
		Short: "Copy a suggested tool into your list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("tool id is required")
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

			tool, err := svc.AdoptTool(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s to your tools.\n", ui.IconDone, ui.Key.Render(tool.Name))
			return nil
		},
	}

	return cmd
}

func newToolsAddCmd() *cobra.Command {
	var category string
	var desc string
	var url string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom tool",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("tool name is required")
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

			tool, err := svc.AddCustomTool(ctx, engine.CustomToolInput{
				Name:        args[0],
				Category:    category,
				Description: desc,
				URL:         url,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added custom tool %s [%s].\n", ui.IconDone, ui.Key.Render(tool.Name), tool.Category)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "General", "Tool category")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&url, "url", "", "URL")

	return cmd
}

func newToolsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <tool-id>",
		Short: "Remove a tool from your list",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("tool id is required")
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

			if err := svc.RemoveTool(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Tool removed.\n", ui.IconDone)
			return nil
		},
	}

	return cmd
}
