package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers wizard prompts from fixed values and records the
// titles it was asked.
type scriptedPrompter struct {
	challenges []string
	urgency    string
	scope      string
	option     string
	confirm    bool
	// abortAt makes the prompt with this title return errWizardAborted.
	abortAt string
	asked   []string
}

func (p *scriptedPrompter) MultiSelect(title, _ string, _ []choice) ([]string, error) {
	p.asked = append(p.asked, title)
	if title == p.abortAt {
		return nil, errWizardAborted
	}
	return p.challenges, nil
}

func (p *scriptedPrompter) Select(title, _ string, options []choice) (string, error) {
	p.asked = append(p.asked, title)
	if title == p.abortAt {
		return "", errWizardAborted
	}
	switch title {
	case "How urgent is it?":
		return p.urgency, nil
	case "Where does the problem sit?":
		return p.scope, nil
	}
	return p.option, nil
}

func (p *scriptedPrompter) Confirm(title string) (bool, error) {
	p.asked = append(p.asked, title)
	if title == p.abortAt {
		return false, errWizardAborted
	}
	return p.confirm, nil
}

func newScript() *scriptedPrompter {
	return &scriptedPrompter{
		challenges: []string{"growth-stagnation"},
		urgency:    "important",
		scope:      "function",
		option:     "developing",
		confirm:    true,
	}
}

func TestRunWizard_FullFlow(t *testing.T) {
	a := testApp(t, domain.PlanFree)
	p := newScript()
	var out bytes.Buffer

	require.NoError(t, runWizard(context.Background(), a, p, &out, false))

	assert.Contains(t, out.String(), "DIAGNOSIS")
	assert.Contains(t, out.String(), "Growth Levers Map")
	assert.Contains(t, out.String(), "2.00")
	// challenge, urgency, scope, four capability questions, confirm
	assert.Len(t, p.asked, 8)

	_, err := a.Wizard.Resume(context.Background())
	assert.True(t, isNoActiveSession(err), "completed session should not stay active")
}

func TestRunWizard_AbortKeepsProgress(t *testing.T) {
	a := testApp(t, domain.PlanFree)
	ctx := context.Background()

	p := newScript()
	p.abortAt = "Where does the problem sit?"
	var out bytes.Buffer
	require.NoError(t, runWizard(ctx, a, p, &out, false))
	assert.Contains(t, out.String(), "Wizard paused")

	s, err := a.Wizard.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"growth-stagnation"}, s.ChallengeIDs)
	assert.Equal(t, "important", s.UrgencyID)
	assert.Empty(t, s.ScopeID)

	// Resuming asks only what is left.
	p = newScript()
	out.Reset()
	require.NoError(t, runWizard(ctx, a, p, &out, false))
	assert.Equal(t, "Where does the problem sit?", p.asked[0])
	assert.Contains(t, out.String(), "DIAGNOSIS")
}

func TestRunWizard_RestartDiscardsAnswers(t *testing.T) {
	a := testApp(t, domain.PlanFree)
	ctx := context.Background()

	p := newScript()
	p.abortAt = "How urgent is it?"
	require.NoError(t, runWizard(ctx, a, p, &bytes.Buffer{}, false))

	p = newScript()
	p.confirm = false
	var out bytes.Buffer
	require.NoError(t, runWizard(ctx, a, p, &out, true))
	assert.Equal(t, "What is holding the business back?", p.asked[0])
	assert.Contains(t, out.String(), "Answers saved")

	s, err := a.Wizard.Resume(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, s.NextStep(len(a.Catalog.Questions())))
}

func TestRunWizard_InvalidSelectionSurfaces(t *testing.T) {
	a := testApp(t, domain.PlanFree)
	p := newScript()
	p.urgency = "someday"

	err := runWizard(context.Background(), a, p, &bytes.Buffer{}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_URGENCY")
}

func TestRunWizard_PrompterFailure(t *testing.T) {
	a := testApp(t, domain.PlanFree)
	boom := errors.New("tty closed")

	err := runWizard(context.Background(), a, failingPrompter{err: boom}, &bytes.Buffer{}, false)
	require.ErrorIs(t, err, boom)
}

type failingPrompter struct{ err error }

func (f failingPrompter) MultiSelect(string, string, []choice) ([]string, error) { return nil, f.err }
func (f failingPrompter) Select(string, string, []choice) (string, error)        { return "", f.err }
func (f failingPrompter) Confirm(string) (bool, error)                           { return false, f.err }

func TestWizardCmd_NeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t, domain.PlanFree), "wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestWizardStatusAndReset(t *testing.T) {
	a := testApp(t, domain.PlanFree)

	out, err := executeCmd(t, a, "wizard", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No active wizard session.")

	p := newScript()
	p.abortAt = "How urgent is it?"
	require.NoError(t, runWizard(context.Background(), a, p, &bytes.Buffer{}, false))

	out, err = executeCmd(t, a, "wizard", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "● active")
	assert.Contains(t, out, "growth-stagnation")
	assert.Contains(t, out, "Next step: urgency")

	out, err = executeCmd(t, a, "wizard", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Abandoned session")

	out, err = executeCmd(t, a, "wizard", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No active wizard session.")
}
