package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pathkeeper/internal/ui"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the theme preference",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one argument")
			}
			if len(args) == 1 && args[0] != "dark" && args[0] != "light" {
				return errors.New("theme must be dark or light")
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

			store := svc.Store()
			if len(args) == 1 {
				if err := store.SaveTheme(ctx, args[0]); err != nil {
					return err
				}
			}
			theme, err := store.Theme(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", theme))
			return nil
		},
	}

	return cmd
}
