package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danharves/certsched/internal/cli/formatter"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON scheduling snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatImportResult(result))
			return nil
		},
	}
	return cmd
}
