package client

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/gemcontent/contentgem-client/pkg/client/dto"
)

var watchHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF88")).Background(lipgloss.Color("#444444"))

// GenerationWatcher is a bubbletea model that follows one generation
// session in the terminal: it polls the status at the configured delay and
// renders the progress until the session reaches a terminal state.
type GenerationWatcher struct {
	viewport    viewport.Model
	messages    []string
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
	loader      spinner.Model
	client      Client
	ctx         context.Context
	cancel      func()
	sessionID   string
	opts        WaitOptions
	inProgress  atomic.Bool
	finalStatus atomic.Pointer[watchOutcome]
}

type watchOutcome struct {
	status *dto.GenerationStatus
	err    error
}

// NewGenerationWatcher starts polling immediately; run the returned model
// with tea.NewProgram. The final outcome is available via Outcome once the
// program quits.
func NewGenerationWatcher(ctx context.Context, c Client, sessionID string, opts WaitOptions) *GenerationWatcher {
	vp := viewport.New(120, 16)
	vp.SetContent(fmt.Sprintf("Watching generation session %s (Ctrl^C to stop watching)...", sessionID))

	loader := spinner.New(
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		spinner.WithSpinner(spinner.Dot),
	)
	ctx, cancel := context.WithCancel(ctx)
	w := &GenerationWatcher{
		viewport:    vp,
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3333")),
		loader:      loader,
		client:      c,
		ctx:         ctx,
		cancel:      cancel,
		sessionID:   sessionID,
		opts:        opts,
	}

	w.inProgress.Store(true)
	go w.follow()
	w.displaySpinner()
	return w
}

func (w *GenerationWatcher) follow() {
	defer w.cancel()
	defer w.inProgress.Store(false)

	for attempt := 1; attempt <= w.opts.MaxAttempts; attempt++ {
		if w.ctx.Err() != nil {
			return
		}
		status, err := w.client.CheckGenerationStatus(w.ctx, w.sessionID)
		if err != nil {
			if isTransient(err) && attempt < w.opts.MaxAttempts {
				w.appendMessage(w.errorStyle.Render("poll failed: ") + err.Error())
			} else {
				w.finish(&watchOutcome{err: err})
				return
			}
		} else if status.IsTerminal() {
			if status.IsFailed() {
				w.appendMessage(w.errorStyle.Render("failed: ") + status.Error)
			} else {
				w.appendMessage(w.statusStyle.Render("completed: ") + status.BlogTopic)
			}
			w.finish(&watchOutcome{status: status})
			return
		} else {
			w.appendMessage(w.statusStyle.Render("status: ") + w.describe(status.State, status.StepName, status.Progress))
			if err := sleepWithContext(w.ctx, w.opts.Delay); err != nil {
				return
			}
		}
	}
	w.finish(&watchOutcome{err: errors.Errorf("generation still pending after %d polls", w.opts.MaxAttempts)})
}

func (w *GenerationWatcher) describe(state dto.State, stepName string, progress *int) string {
	desc := string(state)
	if stepName != "" {
		desc += fmt.Sprintf(" (%s)", stepName)
	}
	if progress != nil {
		desc += fmt.Sprintf(", %d%%", lo.FromPtr(progress))
	}
	return desc
}

func (w *GenerationWatcher) finish(outcome *watchOutcome) {
	w.finalStatus.Store(outcome)
}

// Outcome returns the terminal status or the failure that stopped the watch.
func (w *GenerationWatcher) Outcome() (*dto.GenerationStatus, error) {
	out := w.finalStatus.Load()
	if out == nil {
		return nil, errors.Errorf("watch was interrupted before the session finished")
	}
	return out.status, out.err
}

func (w *GenerationWatcher) displaySpinner() {
	go func() {
		for w.inProgress.Load() {
			time.Sleep(50 * time.Millisecond)
			w.Update(w.loader.Tick())
		}
		// one more tick so Update observes the cancelled context and quits
		w.Update(w.loader.Tick())
	}()
}

func (w *GenerationWatcher) appendMessage(msg string) {
	w.messages = append(w.messages, msg)
	if len(w.messages) > 12 {
		w.messages = w.messages[1:]
	}
	w.viewport.SetContent(strings.Join(w.messages, "\n"))
	w.viewport.GotoBottom()
}

func (w *GenerationWatcher) Init() tea.Cmd {
	return w.loader.Tick
}

func (w *GenerationWatcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var vpCmd tea.Cmd
	w.viewport, vpCmd = w.viewport.Update(msg)

	if w.ctx.Err() != nil {
		return w, tea.Quit
	}
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		w.loader, cmd = w.loader.Update(msg)
		return w, cmd
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			w.cancel()
			return w, tea.Quit
		}
	}
	return w, vpCmd
}

func (w *GenerationWatcher) View() string {
	header := watchHeaderStyle.Render("SessionID: " + w.sessionID)
	footer := ""
	if w.inProgress.Load() {
		footer = w.loader.View() + lo.Ternary(w.opts.Delay > 0, fmt.Sprintf(" polling every %s", w.opts.Delay), " polling")
	}
	return header + fmt.Sprintf("\n\n%s\n\n%s", w.viewport.View(), footer) + "\n"
}
