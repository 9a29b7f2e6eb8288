// Package tui runs the interactive tabbed session. Key presses are turned
// into domain events and dispatched through the application service; the
// screen is always redrawn from the resulting snapshot.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/tabboard/internal/adapters/render/tabs"
	"github.com/bnema/tabboard/internal/application"
	"github.com/bnema/tabboard/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	chromeHeight  = 9
	minViewHeight = 3
)

type Model struct {
	ctx      context.Context
	service  *application.Service
	renderer *tabs.Renderer
	input    textinput.Model
	viewport viewport.Model
	snapshot application.Snapshot
	recorded []domain.Event
	ready    bool
	err      error
}

func New(ctx context.Context, service *application.Service, locale tabs.Locale) (Model, error) {
	renderer, err := tabs.NewRenderer(tabs.RenderOptions{Locale: locale})
	if err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	m := Model{
		ctx:      ctx,
		service:  service,
		renderer: renderer,
		input:    input,
		snapshot: service.Snapshot(),
	}
	m.syncInput()

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.snapshot.ActiveView

	switch key := msg.String(); key {
	case keyQuit, keyEscape:
		return m, tea.Quit
	case keyNextView:
		return m.dispatch(domain.SelectView(active.Next()))
	case keyPrevView:
		return m.dispatch(domain.SelectView(active.Prev()))
	case keySend:
		event, ok := domain.Send(active)
		if !ok {
			return m, nil
		}
		return m.dispatch(event)
	default:
		if view, ok := jumpKeys[key]; ok {
			return m.dispatch(domain.SelectView(view))
		}
	}

	if active == domain.ViewProfile {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}

	event, _ := domain.EditDraft(active, m.input.Value())
	next, dispatchCmd := m.dispatch(event)
	return next, tea.Batch(cmd, dispatchCmd)
}

func (m Model) dispatch(event domain.Event) (Model, tea.Cmd) {
	previous := m.snapshot

	snapshot, err := m.service.Dispatch(m.ctx, event)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.snapshot = snapshot
	m.recorded = append(m.recorded, event)

	if event.Type != domain.EventEditBoardDraft && event.Type != domain.EventEditChatDraft {
		m.syncInput()
	}
	if previous.ActiveView != snapshot.ActiveView || len(previous.Messages(snapshot.ActiveView)) != len(snapshot.Messages(snapshot.ActiveView)) {
		m.refreshViewport()
	}

	return m, nil
}

// syncInput loads the active thread's draft into the text input so switching
// tabs never leaks text between threads.
func (m *Model) syncInput() {
	view := m.snapshot.ActiveView
	m.input.SetValue(m.snapshot.Draft(view))
	m.input.CursorEnd()
	m.input.Placeholder = m.renderer.Labels().Placeholder(view)
}

func (m *Model) resize(width, height int) {
	viewHeight := height - chromeHeight
	if viewHeight < minViewHeight {
		viewHeight = minViewHeight
	}

	if !m.ready {
		m.viewport = viewport.New(width, viewHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewHeight
	}
	m.input.Width = width - 12
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderer.Messages(m.snapshot.Messages(m.snapshot.ActiveView)))
	m.viewport.GotoBottom()
}

func (m Model) View() string {
	labels := m.renderer.Labels()
	active := m.snapshot.ActiveView

	sections := []string{m.renderer.TabBar(active)}
	if active == domain.ViewProfile {
		sections = append(sections, m.renderer.Profile(m.snapshot))
	} else {
		body := m.renderer.Messages(m.snapshot.Messages(active))
		if m.ready {
			body = m.viewport.View()
		}
		sections = append(sections,
			labels.ViewTitle(active),
			body,
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), "  ", "["+labels.Send+"]"),
		)
	}
	sections = append(sections, "", labels.Help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) Snapshot() application.Snapshot {
	return m.snapshot
}

// Recorded returns every event dispatched during the run, in order.
func (m Model) Recorded() []domain.Event {
	return append([]domain.Event(nil), m.recorded...)
}

func (m Model) Err() error {
	return m.err
}

// Run drives the program on the given terminal streams until the user quits.
func Run(ctx context.Context, service *application.Service, locale tabs.Locale, in io.Reader, out io.Writer) (Model, error) {
	m, err := New(ctx, service, locale)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Model{}, err
	}

	result, ok := finalModel.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected final tui model type %T", finalModel)
	}

	return result, result.err
}
