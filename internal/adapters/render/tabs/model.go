package tabs

import (
	"errors"
	"io"

	"github.com/bnema/tabboard/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	snapshot application.Snapshot
	renderer *Renderer
	showHelp bool
	output   string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.renderer.Page(m.snapshot, m.showHelp)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render draws the active view of snapshot once and returns it as a string.
func Render(snapshot application.Snapshot, opts RenderOptions) (string, error) {
	renderer, err := NewRenderer(opts)
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(
		model{snapshot: snapshot, renderer: renderer, showHelp: opts.ShowHelp},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
