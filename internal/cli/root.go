package cli

import (
	"log/slog"

	"github.com/alexanderramin/compass/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog  service.CatalogService
	Diagnose service.DiagnoseService
	History  service.HistoryService
	Advisor  service.AdvisorService
	Wizard   service.WizardService
	Profile  service.ProfileService

	// HTTPAddr is the default listen address for `compass serve`.
	HTTPAddr string
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal. The wizard and the
	// advisor chat refuse to start without one.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "compass" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "compass",
		Short:         "Strategy diagnostic and tool recommender",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDiagnoseCmd(app),
		newWizardCmd(app),
		newToolsCmd(app),
		newChallengesCmd(app),
		newPlansCmd(app),
		newPlanCmd(app),
		newHistoryCmd(app),
		newAdvisorCmd(app),
		newServeCmd(app),
		newMCPCmd(app),
	)

	return root
}
