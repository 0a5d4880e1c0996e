package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDiagnoseCmd(app *App) *cobra.Command {
	var (
		challenge string
		also      []string
		urgency   string
		scope     string
		answers   []string
		plan      planFlag
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Score the catalog for a challenge and recommend tools",
		Long: `Runs a one-shot diagnosis. Capability answers are optional; unanswered
questions count as "developing" (score 2).

  compass diagnose --challenge growth-stagnation --urgency important --scope function \
    --answer data-maturity=developing --answer strategy-clarity=established --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAnswers(answers)
			if err != nil {
				return err
			}

			req := newDiagnoseRequest(challenge, urgency, scope)
			req.AlsoChallengeIDs = also
			req.Answers = parsed
			req.Plan = plan.Plan()
			req.Save = save

			resp, err := app.Diagnose.Diagnose(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDiagnosis(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&challenge, "challenge", "", "primary challenge id (see compass challenges)")
	cmd.Flags().StringArrayVar(&also, "also", nil, "additional challenge id (repeatable)")
	cmd.Flags().StringVar(&urgency, "urgency", "", "crisis, urgent, important, or exploratory")
	cmd.Flags().StringVar(&scope, "scope", "", "enterprise, business-unit, function, or initiative")
	cmd.Flags().StringArrayVar(&answers, "answer", nil, "capability answer as question=option (repeatable)")
	cmd.Flags().Var(&plan, "plan", "score as if on this plan instead of the profile plan")
	cmd.Flags().BoolVar(&save, "save", false, "save the result to history")
	_ = cmd.MarkFlagRequired("challenge")
	_ = cmd.MarkFlagRequired("urgency")
	_ = cmd.MarkFlagRequired("scope")

	return cmd
}

// newDiagnoseRequest lives outside the command builder, where the app
// parameter shadows the package name.
func newDiagnoseRequest(challenge, urgency, scope string) app.DiagnoseRequest {
	return app.NewDiagnoseRequest(challenge, urgency, scope)
}
