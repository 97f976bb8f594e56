// Package tui provides the Bubble Tea interfaces.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/folio/internal/corpus"
	"github.com/verte-zerg/folio/internal/display"
	"github.com/verte-zerg/folio/internal/typing"
)

type phase int

const (
	phaseReady phase = iota
	phaseRunning
	phaseDone
)

const (
	reasonTimeUp    = "Time up!"
	reasonCompleted = "Text completed!"
)

type tickMsg struct {
	id int
}

// TypingOptions configures a typing test run.
type TypingOptions struct {
	Duration  int // seconds
	LineWidth int
	Texts     []string
	Picker    *corpus.Picker
	Formatter *display.Formatter
	Clock     typing.Clock
}

// TypingModel implements the Bubble Tea typing test.
type TypingModel struct {
	opts TypingOptions

	engine    *typing.Engine
	phase     phase
	remaining int
	runID     int

	result      typing.Result
	hasResult   bool
	reason      string
	interrupted bool

	width  int
	height int
}

// NewTypingModel constructs a typing test model waiting for the user to start.
func NewTypingModel(opts TypingOptions) *TypingModel {
	if opts.LineWidth <= 0 {
		opts.LineWidth = typing.DefaultLineWidth
	}
	if len(opts.Texts) == 0 {
		opts.Texts = corpus.Builtin
	}
	if opts.Picker == nil {
		opts.Picker = corpus.NewPicker()
	}
	if opts.Clock == nil {
		opts.Clock = typing.SystemClock
	}
	m := &TypingModel{opts: opts}
	m.engine = m.newEngine()
	return m
}

// Init implements tea.Model.
func (m *TypingModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TypingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.phase == phaseRunning {
				m.interrupted = true
			}
			return m, tea.Quit
		}
		switch m.phase {
		case phaseReady:
			return m, m.updateReady(msg)
		case phaseRunning:
			return m, m.updateRunning(msg)
		default:
			return m, m.updateDone(msg)
		}
	default:
		return m, nil
	}
}

func (m *TypingModel) updateReady(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter:
		return m.begin()
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		return tea.Quit
	}
	return nil
}

func (m *TypingModel) updateRunning(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.interrupted = true
		return tea.Quit
	case tea.KeyBackspace, tea.KeyDelete:
		m.engine.RemoveChar()
	case tea.KeySpace:
		m.handleRunes([]rune{' '})
	case tea.KeyRunes:
		if msg.Paste {
			return nil
		}
		m.handleRunes(msg.Runes)
	}
	return nil
}

func (m *TypingModel) updateDone(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEnter || msg.String() == "r":
		m.engine = m.newEngine()
		return m.begin()
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		return tea.Quit
	}
	return nil
}

func (m *TypingModel) handleRunes(runes []rune) {
	for _, r := range runes {
		if m.engine.AddChar(r) {
			m.finish(reasonCompleted)
			return
		}
	}
}

func (m *TypingModel) handleTick(msg tickMsg) tea.Cmd {
	if msg.id != m.runID || m.phase != phaseRunning {
		return nil
	}
	m.remaining--
	if m.remaining <= 0 {
		m.remaining = 0
		m.finish(reasonTimeUp)
		return nil
	}
	return tick(m.runID)
}

func (m *TypingModel) begin() tea.Cmd {
	m.runID++
	m.phase = phaseRunning
	m.remaining = m.opts.Duration
	m.reason = ""
	m.interrupted = false
	m.engine.Start()
	if !m.engine.Active() {
		m.finish(reasonCompleted)
		return nil
	}
	return tick(m.runID)
}

// finish ends the current run once; the engine keeps later calls stable.
func (m *TypingModel) finish(reason string) {
	if m.phase != phaseRunning {
		return
	}
	m.result = m.engine.Finish()
	m.hasResult = true
	m.reason = reason
	m.phase = phaseDone
}

func (m *TypingModel) newEngine() *typing.Engine {
	text := m.opts.Picker.Pick(m.opts.Texts)
	return typing.NewEngine(text, typing.WithClock(m.opts.Clock))
}

func tick(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Result returns the last finished result.
func (m *TypingModel) Result() (typing.Result, bool) {
	return m.result, m.hasResult
}

// Reason explains why the last test ended.
func (m *TypingModel) Reason() string {
	return m.reason
}

// Interrupted reports whether the user aborted a running test.
func (m *TypingModel) Interrupted() bool {
	return m.interrupted
}

// View implements tea.Model.
func (m *TypingModel) View() string {
	var content string
	switch m.phase {
	case phaseReady:
		content = m.viewReady()
	case phaseRunning:
		content = m.viewRunning()
	default:
		content = m.viewDone()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *TypingModel) viewReady() string {
	f := m.opts.Formatter
	return f.Box(strings.Join([]string{
		fmt.Sprintf("⌨️ Typing Test - %d seconds", m.opts.Duration),
		"",
		"Instructions:",
		"• Type the text as accurately as possible",
		"• Press Esc or Ctrl+C to exit at any time",
		"• Results will be shown at the end",
		"",
		"Press Enter to start...",
	}, "\n"), "🚀 Ready to Start?")
}

func (m *TypingModel) viewRunning() string {
	f := m.opts.Formatter
	return strings.Join([]string{
		f.Header("Typing Test"),
		f.KeyValue("Time Remaining", fmt.Sprintf("%ds", m.remaining)),
		f.Separator(),
		f.TypingLines(m.engine.Lines(m.opts.LineWidth)),
		"",
		f.TypingProgress(m.engine.Progress()),
		"",
		f.Dim("Type the text above. Press Esc to stop."),
	}, "\n")
}

func (m *TypingModel) viewDone() string {
	f := m.opts.Formatter
	return strings.Join([]string{
		f.Header("Test Complete!"),
		f.Info(m.reason),
		f.TypingResults(m.result),
		f.Notes(typing.Assess(m.result)),
		"",
		f.Dim("Enter: try again · q: quit"),
	}, "\n")
}
