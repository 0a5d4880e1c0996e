package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/httpapi"
	"github.com/alexanderramin/compass/internal/mcptools"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API (Pro plan and above)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Catalog.RequireFeature(ctx, domain.FeatureAPI); err != nil {
				return err
			}
			if addr == "" {
				addr = app.HTTPAddr
			}

			router := httpapi.NewRouter(httpapi.Deps{
				Catalog:  app.Catalog,
				Diagnose: app.Diagnose,
				Advisor:  app.Advisor,
			}, app.logger())
			return httpapi.Serve(ctx, addr, router, app.logger())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from COMPASS_HTTP_ADDR)")
	return cmd
}

func newMCPCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve compass tools over MCP stdio (Enterprise plan)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.RequireFeature(context.Background(), domain.FeatureMCP); err != nil {
				return err
			}
			s := mcptools.New(mcptools.Deps{
				Catalog:  app.Catalog,
				Diagnose: app.Diagnose,
				Advisor:  app.Advisor,
			})
			return mcptools.ServeStdio(s)
		},
	}
}
