package root

import (
	"github.com/spf13/cobra"

	"pathkeeper/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the path-generation HTTP service",
		Long:  "Serves POST /api/functions/v1/generate-learning-path, forwarding goals to an OpenAI-compatible model and reshaping the reply into a learning path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}

	return cmd
}
