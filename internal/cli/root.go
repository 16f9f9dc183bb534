package cli

import (
	"github.com/spf13/cobra"

	"github.com/danharves/certsched/internal/repository"
	"github.com/danharves/certsched/internal/service"
)

// App holds references to the services and read repositories used by CLI
// commands.
type App struct {
	Recommend service.RecommendService
	Grouping  service.GroupingService
	Import    service.ImportService
	Providers repository.ProviderRepo
	Sessions  repository.SessionRepo
}

// NewRootCmd creates the top-level "certsched" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "certsched",
		Short: "Training provider recommendations and certification grouping",
	}

	root.AddCommand(
		newRecommendCmd(app),
		newGroupsCmd(app),
		newImportCmd(app),
		newProvidersCmd(app),
		newSessionsCmd(app),
	)

	return root
}
