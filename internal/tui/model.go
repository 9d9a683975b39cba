package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nguyentantai21042004/tube-digest/internal/processor"
)

const (
	defaultWidth  = 80
	outputHeight  = 12
	titleText     = "YouTube Script Summarizer"
	inputLabel    = "Enter YouTube video URL:"
	outputLabel   = "Summarized text"
	processingMsg = "Processing..."
)

// summaryDone carries the rendered outcome of one pipeline run.
type summaryDone struct {
	text string
}

// Model is the single-screen summarizer form.
type Model struct {
	ctx    context.Context
	proc   processor.Processor
	styles *Styles

	input   textinput.Model
	spinner spinner.Model
	output  viewport.Model

	running bool
	warning string
	result  string
	width   int
}

var _ tea.Model = (*Model)(nil)

// New creates the form. Runs use ctx, so canceling it aborts an in-flight summary.
func New(ctx context.Context, proc processor.Processor) *Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.CharLimit = 2048
	ti.Width = defaultWidth - 4
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	s := DefaultStyles()
	sp.Style = s.Spinner

	return &Model{
		ctx:     ctx,
		proc:    proc,
		styles:  s,
		input:   ti,
		spinner: sp,
		output:  viewport.New(defaultWidth-4, outputHeight),
		width:   defaultWidth,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(titleText))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		m.output.Width = max(msg.Width-4, 10)
		m.setOutput(m.result)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.running {
				return m, nil
			}
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
		if m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case summaryDone:
		m.running = false
		m.setOutput(msg.text)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(titleText))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render(inputLabel))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString(m.spinner.View() + " " + processingMsg)
	case m.warning != "":
		b.WriteString(m.styles.Warning.Render(m.warning))
	}
	b.WriteString("\n\n")

	if m.result != "" {
		b.WriteString(m.styles.Label.Render(outputLabel))
		b.WriteString("\n")
		b.WriteString(m.styles.Output.Render(m.output.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("enter: summarize • pgup/pgdn: scroll • esc: quit"))
	return b.String()
}

// Running reports whether a summary is in flight.
func (m *Model) Running() bool { return m.running }

// Warning returns the current input warning, if any.
func (m *Model) Warning() string { return m.warning }

// Result returns the text shown in the output area.
func (m *Model) Result() string { return m.result }

func (m *Model) submit() tea.Cmd {
	rawURL := strings.TrimSpace(m.input.Value())
	if rawURL == "" {
		m.warning = processor.BlankURLWarning
		return nil
	}

	m.warning = ""
	m.running = true
	return tea.Batch(m.spinner.Tick, m.summarize(rawURL))
}

func (m *Model) summarize(rawURL string) tea.Cmd {
	ctx, proc := m.ctx, m.proc
	return func() tea.Msg {
		res, err := proc.Summarize(ctx, rawURL)
		return summaryDone{text: processor.Render(res, err)}
	}
}

func (m *Model) setOutput(text string) {
	m.result = text
	m.output.SetContent(lipgloss.NewStyle().Width(m.output.Width).Render(text))
	m.output.GotoTop()
}
