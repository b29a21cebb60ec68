package cli

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"quizzy-backend/internal/config"
	"quizzy-backend/internal/store"
)

// NewSeedCmd builds the CLI subcommand that (re)initializes the data file
// with the default document.
func NewSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Initialize the data file with the default document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			if force {
				if err := os.Remove(cfg.DataFile); err != nil && !os.IsNotExist(err) {
					return err
				}
			}

			st := store.New(cfg.DataFile, time.Duration(cfg.StoreTimeoutSeconds)*time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			doc, err := st.Load(ctx)
			if err != nil {
				return err
			}

			log.Printf("✓ Data file ready at %s (%d questions, %d quizzes, %d users)",
				cfg.DataFile, len(doc.Questions), len(doc.Quizzes), len(doc.Users))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing data file")
	return cmd
}
