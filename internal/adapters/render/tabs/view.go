package tabs

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tabboard/internal/application"
	"github.com/bnema/tabboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const startedAtLayout = "2006-01-02 15:04"

type RenderOptions struct {
	Locale   Locale
	Width    int
	ShowHelp bool
}

// Renderer draws the pieces of the tabbed page. The interactive UI reuses it
// so both outputs stay identical.
type Renderer struct {
	labels Labels
	styles styles
	width  int
}

func NewRenderer(opts RenderOptions) (*Renderer, error) {
	labels, err := LabelsFor(opts.Locale)
	if err != nil {
		return nil, err
	}

	return &Renderer{labels: labels, styles: newStyles(), width: opts.Width}, nil
}

func (r *Renderer) Labels() Labels {
	return r.labels
}

func (r *Renderer) Page(snapshot application.Snapshot, showHelp bool) string {
	sections := []string{r.TabBar(snapshot.ActiveView)}

	switch snapshot.ActiveView {
	case domain.ViewProfile:
		sections = append(sections, r.Profile(snapshot))
	default:
		sections = append(sections,
			r.styles.title.Render(r.labels.ViewTitle(snapshot.ActiveView)),
			r.Messages(snapshot.Messages(snapshot.ActiveView)),
			r.Composer(snapshot.ActiveView, snapshot.Draft(snapshot.ActiveView)),
		)
	}

	if showHelp {
		sections = append(sections, r.styles.help.Render(r.labels.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) TabBar(active domain.View) string {
	tabs := make([]string, 0, len(domain.Views()))
	for _, view := range domain.Views() {
		label := r.labels.ViewTitle(view)
		if view == active {
			tabs = append(tabs, r.styles.activeTab.Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, r.styles.tab.Render(" "+label+" "))
	}

	return r.styles.nav.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (r *Renderer) Messages(messages []domain.Message) string {
	if len(messages) == 0 {
		return r.styles.empty.Render(r.labels.EmptyThread)
	}

	cards := make([]string, 0, len(messages))
	for _, msg := range messages {
		cards = append(cards, r.card(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (r *Renderer) card(msg domain.Message) string {
	style := r.styles.card
	if r.width > 4 {
		style = style.Width(r.width - 2)
	}

	return style.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.author.Render(sanitizeForTerminal(msg.Author)+":"),
		r.styles.content.Render(sanitizeForTerminal(msg.Content)),
	))
}

// Composer shows the pending draft, or the placeholder when there is none.
func (r *Renderer) Composer(view domain.View, draft string) string {
	text := r.styles.placeholder.Render(r.labels.Placeholder(view))
	if draft != "" {
		text = sanitizeForTerminal(draft)
	}

	return r.styles.composer.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		"> ",
		text,
		"  ",
		r.styles.send.Render(r.labels.Send),
	))
}

func (r *Renderer) Profile(snapshot application.Snapshot) string {
	details := lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.profileKey.Render(fmt.Sprintf("%s: %s", r.labels.DisplayName, sanitizeForTerminal(snapshot.DisplayName))),
		r.styles.profileMeta.Render(fmt.Sprintf("%s: %s", r.labels.SessionID, snapshot.SessionID)),
		r.styles.profileMeta.Render(fmt.Sprintf("%s: %s", r.labels.StartedAt, formatStartedAt(snapshot.StartedAt))),
		r.styles.profileMeta.Render(r.labels.MoreInfo),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.title.Render(r.labels.Profile),
		lipgloss.JoinHorizontal(lipgloss.Top, r.styles.avatar.Render(""), "  ", details),
	)
}

func formatStartedAt(startedAt time.Time) string {
	if startedAt.IsZero() {
		return "unknown"
	}
	return startedAt.Format(startedAtLayout)
}

func sanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, value)
}
