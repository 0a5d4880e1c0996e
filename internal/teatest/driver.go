// Package teatest drives bubbletea models synchronously in tests.
//
// Messages go straight to Update and every returned Cmd is run and fed back
// until the model settles, so no tea.Program or terminal is needed.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds Cmd chains so a model that keeps scheduling work cannot
// hang a test.
const maxDepth = 100

// cmdTimeout separates instant Cmds from timer-driven ones such as the
// textinput cursor blink, which are dropped.
const cmdTimeout = 10 * time.Millisecond

// Driver wraps a model under test.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quitting is set once a Cmd yields tea.QuitMsg.
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{t: t, Model: model}
}

// Init runs the model's Init Cmd.
func (d *Driver) Init() {
	d.t.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send passes msg through Update and drains the result. It is a no-op after
// the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	next, cmd := d.Model.Update(msg)
	d.Model = next
	d.drain(cmd, 0)
}

// Press sends a non-rune key such as tea.KeyEnter or tea.KeyEsc.
func (d *Driver) Press(k tea.KeyType) {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Type sends s one rune at a time, as a user typing would.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Submit types s and presses enter.
func (d *Driver) Submit(s string) {
	d.t.Helper()
	d.Type(s)
	d.Press(tea.KeyEnter)
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: stopped draining at depth %d", maxDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		next, cmd := d.Model.Update(msg)
		d.Model = next
		d.drain(cmd, depth+1)
	}
}

func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the cursor package's unexported blink messages.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
