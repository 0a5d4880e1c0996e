package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAdvisorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advisor",
		Short: "Ask the strategy advisor",
	}
	cmd.AddCommand(newAdvisorAskCmd(app), newAdvisorChatCmd(app))
	return cmd
}

func newAdvisorAskCmd(app *App) *cobra.Command {
	var (
		industry string
		plan     planFlag
	)

	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Ask one question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := newAdvisorRequest(strings.Join(args, " "), industry)
			req.Plan = plan.Plan()
			resp, err := app.Advisor.Ask(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdvisorReply(resp))
			return nil
		},
	}
	cmd.Flags().StringVar(&industry, "industry", "", "industry for the closing note (defaults to the profile)")
	cmd.Flags().Var(&plan, "plan", "ask as if on this plan")
	return cmd
}

func newAdvisorChatCmd(app *App) *cobra.Command {
	var industry string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive advisor conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("chat needs an interactive terminal; use `compass advisor ask` instead")
			}
			m := newAdvisorChat(app.Advisor, industry)
			_, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&industry, "industry", "", "industry for the closing notes (defaults to the profile)")
	return cmd
}

func newAdvisorRequest(message, industry string) app.AdvisorRequest {
	return app.AdvisorRequest{Message: message, Industry: industry}
}
