package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/alexanderramin/compass/internal/domain"
	"github.com/spf13/cobra"
)

func newWizardCmd(app *App) *cobra.Command {
	var restart bool

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Walk through the diagnostic step by step",
		Long: `Asks for challenges, urgency, scope, and capability maturity, then runs the
diagnosis. Answers are saved as you go; run the wizard again to pick up where
you left off, or pass --restart to start over.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("the wizard needs an interactive terminal; use `compass diagnose` instead")
			}
			return runWizard(context.Background(), app, huhPrompter{}, cmd.OutOrStdout(), restart)
		},
	}
	cmd.Flags().BoolVar(&restart, "restart", false, "abandon the active session and start a new one")

	cmd.AddCommand(newWizardStatusCmd(app), newWizardResetCmd(app))
	return cmd
}

func newWizardStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active wizard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Wizard.Resume(context.Background())
			if isNoActiveSession(err) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No active wizard session."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSession(s, len(app.Catalog.Questions())))
			return nil
		},
	}
}

func newWizardResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Abandon the active wizard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := app.Wizard.Resume(ctx)
			if isNoActiveSession(err) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No active wizard session."))
				return nil
			}
			if err != nil {
				return err
			}
			if err := app.Wizard.Reset(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Abandoned session %s\n", formatter.TruncID(s.ID))
			return nil
		},
	}
}

// runWizard drives a session to completion, asking only the steps that are
// still unanswered. Aborting a prompt leaves the session open for later.
func runWizard(ctx context.Context, app *App, p wizardPrompter, out io.Writer, restart bool) error {
	s, err := app.Wizard.Start(ctx, restart)
	if err != nil {
		return err
	}
	questions := app.Catalog.Questions()

loop:
	for {
		switch s.NextStep(len(questions)) {
		case domain.StepChallenge:
			ids, err := p.MultiSelect("What is holding the business back?",
				"Pick one or more; the first is treated as primary.", challengeChoices(app.Catalog.Challenges()))
			if err != nil {
				return wizardPaused(out, err)
			}
			if s, err = app.Wizard.SelectChallenges(ctx, s.ID, ids); err != nil {
				return err
			}

		case domain.StepUrgency:
			id, err := p.Select("How urgent is it?", "", urgencyChoices(app.Catalog.Urgencies()))
			if err != nil {
				return wizardPaused(out, err)
			}
			if s, err = app.Wizard.SetUrgency(ctx, s.ID, id); err != nil {
				return err
			}

		case domain.StepScope:
			id, err := p.Select("Where does the problem sit?", "", scopeChoices(app.Catalog.Scopes()))
			if err != nil {
				return wizardPaused(out, err)
			}
			if s, err = app.Wizard.SetScope(ctx, s.ID, id); err != nil {
				return err
			}

		case domain.StepCapability:
			q, ok := nextQuestion(questions, s.Answers)
			if !ok {
				// Stale answers from an older question set fill the count.
				break loop
			}
			progress := fmt.Sprintf("Capability %d of %d", answeredCount(questions, s.Answers)+1, len(questions))
			opt, err := p.Select(q.Prompt, progress, optionChoices(q))
			if err != nil {
				return wizardPaused(out, err)
			}
			if s, err = app.Wizard.Answer(ctx, s.ID, q.ID, opt); err != nil {
				return err
			}

		default:
			break loop
		}
	}

	run, err := p.Confirm("Run the diagnosis now?")
	if err != nil {
		return wizardPaused(out, err)
	}
	if !run {
		fmt.Fprintln(out, formatter.Dim("Answers saved. Run `compass wizard` to finish later."))
		return nil
	}

	resp, err := app.Wizard.Complete(ctx, s.ID)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatDiagnosis(resp))
	return nil
}

func wizardPaused(out io.Writer, err error) error {
	if errors.Is(err, errWizardAborted) {
		fmt.Fprintln(out, formatter.Dim("Wizard paused. Run `compass wizard` to resume."))
		return nil
	}
	return err
}

func isNoActiveSession(err error) bool {
	code, _ := app.CodeOf(err)
	return code == app.ErrNoActiveSession
}

func answeredCount(questions []domain.CapabilityQuestion, answers map[string]string) int {
	n := 0
	for _, q := range questions {
		if _, ok := answers[q.ID]; ok {
			n++
		}
	}
	return n
}

// nextQuestion returns the first question without an answer.
func nextQuestion(questions []domain.CapabilityQuestion, answers map[string]string) (domain.CapabilityQuestion, bool) {
	for _, q := range questions {
		if _, ok := answers[q.ID]; !ok {
			return q, true
		}
	}
	return domain.CapabilityQuestion{}, false
}

func challengeChoices(challenges []domain.ChallengeCategory) []choice {
	out := make([]choice, len(challenges))
	for i, c := range challenges {
		out[i] = choice{Label: c.Title, Value: c.ID}
	}
	return out
}

func urgencyChoices(levels []domain.UrgencyLevel) []choice {
	out := make([]choice, len(levels))
	for i, u := range levels {
		out[i] = choice{Label: u.Title + " - " + u.Description, Value: u.ID}
	}
	return out
}

func scopeChoices(scopes []domain.ScopeLevel) []choice {
	out := make([]choice, len(scopes))
	for i, s := range scopes {
		out[i] = choice{Label: s.Title + " - " + s.Description, Value: s.ID}
	}
	return out
}

func optionChoices(q domain.CapabilityQuestion) []choice {
	out := make([]choice, len(q.Options))
	for i, o := range q.Options {
		out[i] = choice{Label: o.Label, Value: o.ID}
	}
	return out
}
