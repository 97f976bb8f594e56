package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/folio/internal/display"
	"github.com/verte-zerg/folio/internal/model"
)

// Opener opens a URL outside the terminal.
type Opener func(url string) error

type openedMsg struct {
	url string
	err error
}

// WorksModel browses projects in a table with a detail view.
type WorksModel struct {
	works     []model.Work
	table     table.Model
	formatter *display.Formatter
	open      Opener

	detail *model.Work
	status string
}

// NewWorksModel constructs the works browser.
func NewWorksModel(works []model.Work, formatter *display.Formatter, open Opener) *WorksModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Project", Width: 28},
		{Title: "Year", Width: 6},
		{Title: "Category", Width: 18},
		{Title: "Status", Width: 14},
	}
	rows := make([]table.Row, 0, len(works))
	for i, w := range works {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			w.Title,
			strconv.Itoa(w.Year),
			w.Category,
			display.StatusIcon(w.Status) + " " + w.Status,
		})
	}
	height := len(rows) + 1
	if height > 15 {
		height = 15
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	return &WorksModel{works: works, table: t, formatter: formatter, open: open}
}

// Init implements tea.Model.
func (m *WorksModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *WorksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.err != nil {
			m.status = m.formatter.Error("Could not open " + msg.url + ": " + msg.err.Error())
		} else {
			m.status = m.formatter.Success("Opened " + msg.url)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "backspace":
			if m.detail != nil {
				m.detail = nil
				m.status = ""
				return m, nil
			}
			if msg.String() == "esc" {
				return m, tea.Quit
			}
			return m, nil
		case "enter":
			if w, ok := m.selected(); ok {
				m.detail = &w
				m.status = ""
			}
			return m, nil
		case "o":
			w, ok := m.selected()
			if m.detail != nil {
				w, ok = *m.detail, true
			}
			if !ok || w.URL == "" || m.open == nil {
				return m, nil
			}
			return m, m.openURL(w.URL)
		}
	}
	if m.detail != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *WorksModel) selected() (model.Work, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.works) {
		return model.Work{}, false
	}
	return m.works[i], true
}

func (m *WorksModel) openURL(url string) tea.Cmd {
	open := m.open
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

// View implements tea.Model.
func (m *WorksModel) View() string {
	f := m.formatter
	var b strings.Builder
	if m.detail != nil {
		b.WriteString(f.WorkDetails(*m.detail))
		b.WriteString("\n")
		b.WriteString(f.Dim("o: open link · esc: back · q: quit"))
	} else {
		b.WriteString(f.Header("💼 Featured Works"))
		b.WriteString("\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(f.Dim("↑/↓: move · enter: details · o: open link · q: quit"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	return b.String()
}
