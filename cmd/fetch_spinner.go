package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fetchDoneMsg struct {
	value any
	err   error
}

type fetchSpinnerModel struct {
	spinner spinner.Model
	label   string
	fetch   tea.Cmd
	result  fetchDoneMsg
	done    bool
}

func newFetchSpinnerModel(label string, fetch tea.Cmd) fetchSpinnerModel {
	return fetchSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("36"))),
		),
		label: label,
		fetch: fetch,
	}
}

func (m fetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m fetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg:
		m.done = true
		m.result = msg
		return m, tea.Quit
	}
	return m, nil
}

func (m fetchSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// fetch runs load behind a spinner on output, or directly when quiet is set
// so JSON output stays clean.
func fetch[T any](ctx context.Context, output io.Writer, quiet bool, label string, load func(context.Context) (T, error)) (T, error) {
	if quiet {
		return load(ctx)
	}

	p := tea.NewProgram(
		newFetchSpinnerModel(label, func() tea.Msg {
			value, err := load(ctx)
			return fetchDoneMsg{value: value, err: err}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	var zero T
	finalModel, err := p.Run()
	if err != nil {
		return zero, err
	}

	model, ok := finalModel.(fetchSpinnerModel)
	if !ok {
		return zero, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}
	if model.result.err != nil {
		return zero, model.result.err
	}

	value, _ := model.result.value.(T)
	return value, nil
}
