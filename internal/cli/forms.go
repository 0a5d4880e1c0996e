package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/compass/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// compassHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func compassHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// choice is one selectable option of a wizard prompt.
type choice struct {
	Label string
	Value string
}

// wizardPrompter asks the wizard's questions. The huh implementation drives
// the terminal; tests script the answers.
type wizardPrompter interface {
	MultiSelect(title, description string, options []choice) ([]string, error)
	Select(title, description string, options []choice) (string, error)
	Confirm(title string) (bool, error)
}

// errWizardAborted is returned by a prompter when the user leaves the form.
var errWizardAborted = errors.New("wizard aborted")

type huhPrompter struct{}

func (huhPrompter) MultiSelect(title, description string, options []choice) ([]string, error) {
	var selected []string
	field := huh.NewMultiSelect[string]().
		Title(title).
		Description(description).
		Options(huhOptions(options)...).
		Validate(func(v []string) error {
			if len(v) == 0 {
				return fmt.Errorf("select at least one")
			}
			return nil
		}).
		Value(&selected)
	if err := runForm(field); err != nil {
		return nil, err
	}
	return selected, nil
}

func (huhPrompter) Select(title, description string, options []choice) (string, error) {
	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(huhOptions(options)...).
		Value(&selected)
	if err := runForm(field); err != nil {
		return "", err
	}
	return selected, nil
}

func (huhPrompter) Confirm(title string) (bool, error) {
	confirmed := true
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("Later").
		Value(&confirmed)
	if err := runForm(field); err != nil {
		return false, err
	}
	return confirmed, nil
}

func runForm(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(compassHuhTheme()).
		WithShowHelp(false).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return errWizardAborted
	}
	return err
}

func huhOptions(options []choice) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		out = append(out, huh.NewOption(o.Label, o.Value))
	}
	return out
}
