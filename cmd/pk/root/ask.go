package root

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pathkeeper/internal/mentor"
	"pathkeeper/internal/ui"
)

func newAskCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask your mentor for advice",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("question is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			responder := mentor.NewResponder(seed)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSparkle, responder.Respond(question))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Response selection seed (0 for random)")

	return cmd
}
