package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show or change your subscription plan",
	}
	cmd.AddCommand(newPlanShowCmd(app), newPlanSetCmd(app), newPlanIndustryCmd(app))
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile and the plan in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			effective, err := app.Profile.EffectivePlan(ctx, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p, effective))
			return nil
		},
	}
}

func newPlanSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set PLAN",
		Short:     "Change the stored plan (Free, Starter, Pro, Enterprise)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"Free", "Starter", "Pro", "Enterprise"},
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := domain.ParsePlan(args[0])
			if err != nil {
				return err
			}
			p, err := app.Profile.SetPlan(context.Background(), plan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan set to %s\n", formatter.PlanBadge(p.Plan))
			return nil
		},
	}
}

func newPlanIndustryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "industry NAME",
		Short: "Set the industry the advisor tailors its notes to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}
			p.Industry = strings.ToLower(strings.TrimSpace(args[0]))
			if err := app.Profile.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Industry set to %s\n", p.Industry)
			return nil
		},
	}
}
