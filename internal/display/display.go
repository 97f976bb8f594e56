// Package display renders portfolio and typing output for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const (
	keyPadding      = 20
	separatorLength = 50
)

var (
	colorGreen  = lipgloss.Color("#52C41A")
	colorRed    = lipgloss.Color("#FF4D4F")
	colorYellow = lipgloss.Color("#FAAD14")
	colorBlue   = lipgloss.Color("#1890FF")
	colorCyan   = lipgloss.Color("#13C2C2")
	colorGray   = lipgloss.Color("#8C8C8C")
	colorWhite  = lipgloss.Color("#F0F0F0")
	colorBlack  = lipgloss.Color("#141414")
	colorAccent = lipgloss.Color("#C89A3A")
)

// Formatter renders styled text for one output stream.
type Formatter struct {
	r *lipgloss.Renderer
	// markCursor draws the cursor with glyphs when styles render as plain text.
	markCursor bool

	success   lipgloss.Style
	failure   lipgloss.Style
	warning   lipgloss.Style
	info      lipgloss.Style
	highlight lipgloss.Style
	dim       lipgloss.Style
	bold      lipgloss.Style
	title     lipgloss.Style
	box       lipgloss.Style
	header    lipgloss.Style

	correct   lipgloss.Style
	incorrect lipgloss.Style
	current   lipgloss.Style
	pending   lipgloss.Style
}

// New returns a Formatter for w. With color disabled every style renders as plain text.
func New(w io.Writer, color bool) *Formatter {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Formatter{
		r:          r,
		markCursor: r.ColorProfile() == termenv.Ascii,
		success:    r.NewStyle().Foreground(colorGreen),
		failure:    r.NewStyle().Foreground(colorRed),
		warning:    r.NewStyle().Foreground(colorYellow),
		info:       r.NewStyle().Foreground(colorBlue),
		highlight:  r.NewStyle().Foreground(colorCyan),
		dim:        r.NewStyle().Foreground(colorGray),
		bold:       r.NewStyle().Bold(true),
		title:      r.NewStyle().Bold(true).Underline(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(colorCyan).
			Padding(1, 2).
			Margin(1, 1),
		header: r.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Border(lipgloss.DoubleBorder(), true).
			BorderForeground(colorAccent).
			Padding(0, 3),
		correct:   r.NewStyle().Foreground(colorGreen),
		incorrect: r.NewStyle().Foreground(colorRed),
		current:   r.NewStyle().Background(colorWhite).Foreground(colorBlack),
		pending:   r.NewStyle().Foreground(colorGray),
	}
}

// Success formats a success message.
func (f *Formatter) Success(msg string) string {
	return f.success.Render("✓ " + msg)
}

// Error formats an error message.
func (f *Formatter) Error(msg string) string {
	return f.failure.Render("✗ " + msg)
}

// Warning formats a warning message.
func (f *Formatter) Warning(msg string) string {
	return f.warning.Render("⚠ " + msg)
}

// Info formats an informational message.
func (f *Formatter) Info(msg string) string {
	return f.info.Render("ℹ " + msg)
}

// Highlight emphasizes text, typically URLs.
func (f *Formatter) Highlight(s string) string {
	return f.highlight.Render(s)
}

// Dim renders secondary text.
func (f *Formatter) Dim(s string) string {
	return f.dim.Render(s)
}

// Bold renders strong text.
func (f *Formatter) Bold(s string) string {
	return f.bold.Render(s)
}

// Box frames content with a rounded border and an optional title line.
func (f *Formatter) Box(content, title string) string {
	if title != "" {
		content = f.bold.Render(title) + "\n\n" + content
	}
	return f.box.Render(content)
}

// Header renders a banner.
func (f *Formatter) Header(text string) string {
	return f.header.Render(strings.ToUpper(text))
}

// KeyValue renders an aligned "key : value" line.
func (f *Formatter) KeyValue(key, value string) string {
	return f.highlight.Render(padRight(key, keyPadding)) + " : " + value
}

// Section renders a titled block.
func (f *Formatter) Section(title, content string) string {
	return strings.Join([]string{f.title.Render(title), "", content, ""}, "\n")
}

// List renders items as a bulleted or numbered list.
func (f *Formatter) List(items []string, numbered bool) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		bullet := "•"
		if numbered {
			bullet = fmt.Sprintf("%d.", i+1)
		}
		lines = append(lines, "  "+f.highlight.Render(bullet)+" "+item)
	}
	return strings.Join(lines, "\n")
}

// Separator renders a horizontal rule.
func (f *Formatter) Separator() string {
	return f.dim.Render(strings.Repeat("─", separatorLength))
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
