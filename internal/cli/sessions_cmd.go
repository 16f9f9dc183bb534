package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danharves/certsched/internal/cli/formatter"
	"github.com/danharves/certsched/internal/domain"
)

func newSessionsCmd(app *App) *cobra.Command {
	var license string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List scheduled training sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var sessions []domain.ExistingSession
			var err error
			if license != "" {
				sessions, err = app.Sessions.ListByLicense(ctx, license)
			} else {
				sessions, err = app.Sessions.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&license, "license", "", "Only sessions for this license")
	return cmd
}
