package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Step is one unit of work shown behind a spinner. Run must not write state
// shared with the caller; its value is returned through Results.
type Step struct {
	Label string
	Run   func(ctx context.Context) any
}

type stepDoneMsg struct {
	index int
	value any
}

// LoaderModel shows a spinner while steps run in order.
type LoaderModel struct {
	ctx     context.Context
	steps   []Step
	results []any
	current int
	spinner spinner.Model
}

// NewLoaderModel constructs a loader for the steps. Steps receive ctx.
func NewLoaderModel(ctx context.Context, steps []Step) *LoaderModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return &LoaderModel{
		ctx:     ctx,
		steps:   steps,
		results: make([]any, len(steps)),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init implements tea.Model.
func (m *LoaderModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, m.run(0))
}

// Update implements tea.Model.
func (m *LoaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		if m.Done() || msg.index != m.current {
			return m, nil
		}
		m.results[msg.index] = msg.value
		m.current++
		if m.current >= len(m.steps) {
			return m, tea.Quit
		}
		return m, m.run(m.current)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Done reports whether every step finished.
func (m *LoaderModel) Done() bool {
	return m.current >= len(m.steps)
}

// Results returns the value of each finished step, in step order. Steps that
// did not finish have a nil value.
func (m *LoaderModel) Results() []any {
	return m.results
}

func (m *LoaderModel) run(i int) tea.Cmd {
	step := m.steps[i]
	ctx := m.ctx
	return func() tea.Msg {
		var value any
		if step.Run != nil {
			value = step.Run(ctx)
		}
		return stepDoneMsg{index: i, value: value}
	}
}

// View implements tea.Model.
func (m *LoaderModel) View() string {
	if m.Done() {
		return ""
	}
	return m.spinner.View() + " " + m.steps[m.current].Label + "\n"
}

// RunSteps runs steps in order without a spinner and returns their values.
// It stops early once ctx is cancelled.
func RunSteps(ctx context.Context, steps []Step) []any {
	results := make([]any, len(steps))
	for i, step := range steps {
		if ctx.Err() != nil {
			break
		}
		if step.Run != nil {
			results[i] = step.Run(ctx)
		}
	}
	return results
}
