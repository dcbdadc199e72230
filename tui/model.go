// Package tui is the terminal form for route queries: two city fields and
// a result area showing the BFS and DFS answers side by side.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/citypath/finder"
	"github.com/katalvlaran/citypath/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Width(14)
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	resultStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

const (
	fieldSource = iota
	fieldDestination
	fieldCount
)

// Querier answers route queries. *finder.Finder satisfies it.
type Querier interface {
	FindPath(ctx context.Context, algo finder.Algorithm, source, destination string) (*finder.Result, error)
	Compare(ctx context.Context, source, destination string) ([]*finder.Result, error)
}

// resultMsg carries a finished query back into Update.
type resultMsg struct {
	results []*finder.Result
	err     error
}

// Model is the bubbletea model of the query form.
type Model struct {
	ctx     context.Context
	querier Querier
	algos   []finder.Algorithm

	inputs  [fieldCount]textinput.Model
	focus   int
	spinner spinner.Model
	busy    bool

	results []*finder.Result
	err     error
}

// New returns a form bound to q that runs algos on every calculation, or
// every algorithm when algos is empty. ctx bounds every query the form runs.
// City names are passed to q exactly as typed.
func New(ctx context.Context, q Querier, algos ...finder.Algorithm) Model {
	if len(algos) == 0 {
		algos = finder.Algorithms()
	}
	m := Model{ctx: ctx, querier: q, algos: algos}
	for i, p := range []string{"Adana", "Mersin"} {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 64
		ti.Width = 32
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldSource].Focus()
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if m.focus < fieldCount-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m.calculate()
		case "ctrl+s":
			return m.calculate()
		}

	case resultMsg:
		m.busy = false
		m.results, m.err = msg.results, msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("City route finder"))
	b.WriteString("\n\n")

	for i, label := range []string{"Source:", "Destination:"} {
		l := labelStyle.Render(label)
		if i == m.focus {
			l = focusStyle.Inherit(labelStyle).Render(label)
		}
		b.WriteString(l + m.inputs[i].View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " calculating...\n")
	case m.err != nil:
		b.WriteString(resultStyle.Render(errorStyle.Render("Error: "+m.err.Error())) + "\n")
	case m.results != nil:
		var out strings.Builder
		_ = report.Write(&out, m.results)
		b.WriteString(resultStyle.Render(strings.TrimRight(out.String(), "\n")) + "\n")
	}

	b.WriteString(subtleStyle.Render("\ntab: next field • enter/ctrl+s: calculate • esc: quit"))

	return b.String()
}

// Results returns the last successful answer, if any.
func (m Model) Results() []*finder.Result { return m.results }

// Err returns the last query error, if any.
func (m Model) Err() error { return m.err }

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i

	return m.inputs[i].Focus()
}

func (m Model) calculate() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	src := m.inputs[fieldSource].Value()
	dst := m.inputs[fieldDestination].Value()

	m.busy = true
	m.results, m.err = nil, nil
	q, ctx, algos := m.querier, m.ctx, m.algos

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		res, err := query(ctx, q, algos, src, dst)
		return resultMsg{results: res, err: err}
	})
}

// query runs a single algorithm directly and several through Compare.
func query(ctx context.Context, q Querier, algos []finder.Algorithm, src, dst string) ([]*finder.Result, error) {
	if len(algos) != 1 {
		return q.Compare(ctx, src, dst)
	}
	res, err := q.FindPath(ctx, algos[0], src, dst)
	if err != nil {
		return nil, err
	}

	return []*finder.Result{res}, nil
}

// Run opens the form on the terminal and blocks until the user quits.
func Run(ctx context.Context, q Querier, algos []finder.Algorithm, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, q, algos...), opts...).Run()

	return err
}
