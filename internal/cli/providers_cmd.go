package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danharves/certsched/internal/cli/formatter"
	"github.com/danharves/certsched/internal/domain"
)

func newProvidersCmd(app *App) *cobra.Command {
	var course string

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List known training providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var providers []domain.ProviderCandidate
			var err error
			if course != "" {
				providers, err = app.Providers.ListByCourse(ctx, course)
			} else {
				providers, err = app.Providers.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProviders(providers))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Only providers offering this course")
	return cmd
}
