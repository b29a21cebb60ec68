package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizzy",
		Short: "Quiz-taking and quiz-administration backend",
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSeedCmd())
	return cmd
}
