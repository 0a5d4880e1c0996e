package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/spf13/cobra"
)

func newToolsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Browse the strategy tool catalog",
	}
	cmd.AddCommand(newToolsListCmd(app), newToolsShowCmd(app))
	return cmd
}

func newToolsListCmd(app *App) *cobra.Command {
	var (
		category string
		plan     planFlag
		all      bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tools available on your plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tools, err := app.Catalog.ListTools(ctx, service.ToolFilter{
				Category: domain.ToolCategory(category),
				Plan:     plan.Plan(),
				All:      all,
			})
			if err != nil {
				return err
			}

			current, err := app.Profile.EffectivePlan(ctx, plan.Plan())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToolList(tools, current))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only tools in this category")
	cmd.Flags().Var(&plan, "plan", "list for this plan instead of the profile plan")
	cmd.Flags().BoolVar(&all, "all", false, "include tools your plan cannot open")

	return cmd
}

func newToolsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tool, err := app.Catalog.GetTool(ctx, args[0])
			if err != nil {
				return err
			}
			current, err := app.Profile.EffectivePlan(ctx, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatToolDetail(tool, current))
			return nil
		},
	}
}

func newChallengesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "challenges",
		Short: "List the challenge categories the diagnostic understands",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChallenges(app.Catalog.Challenges()))
			return nil
		},
	}
}

func newPlansCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Show pricing tiers and the features they unlock",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := app.Profile.EffectivePlan(context.Background(), nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlans(app.Catalog.Plans(), current))
			return nil
		},
	}
}
