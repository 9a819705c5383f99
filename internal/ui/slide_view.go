package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/deck"
	"slidedeck/internal/session"
)

// SlideView renders the slide under the cursor.
type SlideView struct {
	session *session.Session
	stats   *statDisplay
	width   int
	height  int
}

// Ensure SlideView implements View.
var _ View = (*SlideView)(nil)

// NewSlideView creates a view over s that reads animated statistics from stats.
func NewSlideView(s *session.Session, stats *statDisplay) *SlideView {
	return &SlideView{session: s, stats: stats, width: defaultWidth, height: defaultHeight - headerHeight - footerHeight}
}

// Init implements View.
func (v *SlideView) Init() tea.Cmd { return nil }

// Update implements View. The slide area only tracks its size; navigation
// goes through the session.
func (v *SlideView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = msg.Width
		v.height = max(msg.Height-headerHeight-footerHeight, 1)
	}
	return v, nil
}

// View implements View.
func (v *SlideView) View() string {
	idx := v.session.Cursor().Index()
	slide := v.session.Deck().Slide(idx)
	contentWidth := max(v.width-8, 20)

	var parts []string
	parts = append(parts, Styles.Title.Width(contentWidth).Align(lipgloss.Center).Render(slide.Title))
	if slide.Subtitle != "" {
		parts = append(parts, Styles.Subtitle.Width(contentWidth).Align(lipgloss.Center).Render(slide.Subtitle))
	}
	if len(slide.Stats) > 0 {
		parts = append(parts, "", v.renderStats(idx, slide.Stats, contentWidth))
	}
	if len(slide.Body) > 0 {
		parts = append(parts, "", renderBody(slide.Body, contentWidth))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	placed := lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
	// Place does not shrink content taller than the area; the footer and
	// mouse hit-testing rely on the body being exactly v.height lines.
	return lipgloss.NewStyle().
		Height(v.height).MaxHeight(v.height).
		MaxWidth(v.width).
		Render(placed)
}

func (v *SlideView) renderStats(slideIdx int, stats []deck.Stat, width int) string {
	cards := make([]string, len(stats))
	cardWidth := max(min(width/len(stats)-4, 28), 12)
	for i, st := range stats {
		text := v.stats.Text(session.StatKey(slideIdx, i), st.Value)
		body := lipgloss.JoinVertical(lipgloss.Center,
			Styles.StatValue.Render(text),
			Styles.StatLabel.Width(cardWidth).Align(lipgloss.Center).Render(st.Label),
		)
		cards[i] = Styles.StatCard.Render(body)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if lipgloss.Width(row) <= width {
		return row
	}
	// Too narrow for one row: stack the cards.
	return lipgloss.JoinVertical(lipgloss.Center, cards...)
}

func renderBody(lines []string, width int) string {
	bullet := Styles.Bullet.Render("•") + " "
	style := Styles.Body.Width(width - 2)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = lipgloss.JoinHorizontal(lipgloss.Top, bullet, style.Render(l))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// renderNavRow draws "‹  ● ○ ○  ›" with the controls dimmed at the bounds.
func renderNavRow(c *deck.Cursor) string {
	var b strings.Builder
	index, total := c.Index(), c.Total()
	prev, next := Styles.Control, Styles.Control
	if c.IsFirst() {
		prev = Styles.Disabled
	}
	if c.IsLast() {
		next = Styles.Disabled
	}
	b.WriteString(prev.Render("‹"))
	b.WriteString("  ")
	for i := range total {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == index {
			b.WriteString(Styles.DotActive.Render("●"))
		} else {
			b.WriteString(Styles.DotInactive.Render("○"))
		}
	}
	b.WriteString("  ")
	b.WriteString(next.Render("›"))
	return b.String()
}
