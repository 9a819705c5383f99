package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/deck"
	"slidedeck/internal/easing"
	"slidedeck/internal/input"
	"slidedeck/internal/session"
	"slidedeck/internal/ui/textutil"
)

// Config configures the presenter.
type Config struct {
	Deck             *deck.Deck
	Autoplay         bool          // start autoplay on launch
	AutoplayInterval time.Duration // 0 = input.DefaultInterval
	EasingDuration   time.Duration // 0 = easing.DefaultDuration
	Clock            easing.Clock  // nil = wall clock
}

// AppModel is the root model. It owns the session and switches between the
// slide view and the overview, with overlays (notes, help) on top.
type AppModel struct {
	Mode       Mode
	Session    *session.Session
	Slides     *SlideView
	Overview   *OverviewView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Progress   progress.Model

	stats    *statDisplay
	frames   *frameScheduler
	timers   *tickTimer
	pointer  pointerTracker
	autoplay bool
	width    int
	height   int
}

// Ensure AppModel receives slide changes.
var _ deck.Observer = (*AppModel)(nil)

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model for cfg.Deck.
func NewAppModel(cfg Config) (*AppModel, error) {
	if cfg.Deck == nil {
		return nil, &deck.ConfigurationError{Field: "deck", Reason: "deck is required"}
	}
	a := &AppModel{
		Mode:     ModeSlides,
		stats:    newStatDisplay(),
		frames:   &frameScheduler{},
		timers:   &tickTimer{},
		autoplay: cfg.Autoplay,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	s, err := session.New(cfg.Deck, session.Options{
		Clock:            cfg.Clock,
		Scheduler:        a.frames,
		Sink:             a.stats,
		Timer:            a.timers,
		Observers:        []deck.Observer{a},
		AutoplayInterval: cfg.AutoplayInterval,
		EasingDuration:   cfg.EasingDuration,
	})
	if err != nil {
		return nil, err
	}
	a.Session = s
	a.Slides = NewSlideView(s, a.stats)
	a.Overview = NewOverviewView(cfg.Deck)
	a.KeyHandler = NewKeyHandler(newPresenterKeybinds())
	a.Progress = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	a.Progress.Width = defaultWidth - 4
	return a, nil
}

func newPresenterKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("left", dispatch(input.KeyLeft()), "prev", ModeSlides)
	reg.BindWithDesc("h", dispatch(input.KeyLeft()), "prev", ModeSlides)
	reg.BindWithDesc("right", dispatch(input.KeyRight()), "next", ModeSlides)
	reg.BindWithDesc("l", dispatch(input.KeyRight()), "next", ModeSlides)
	for i := 1; i <= 9; i++ {
		reg.BindWithDesc(string(rune('0'+i)), dispatch(input.Dot(i-1)), "jump", ModeSlides)
	}
	reg.BindWithDesc("SPC", dispatch(input.ToggleAutoplay()), "autoplay", ModeSlides)
	reg.BindWithDesc("esc", dispatch(input.StopAutoplay()), "stop", ModeSlides)
	reg.BindWithDesc("home", func() tea.Msg { return ResetMsg{} }, "first", ModeSlides)
	reg.BindWithDesc("n", func() tea.Msg { return ShowNotesMsg{} }, "notes", ModeSlides)
	reg.BindWithDesc("o", func() tea.Msg { return ShowOverviewMsg{} }, "overview")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "help")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// OnSlideChanged implements deck.Observer. The newly visible slide's
// statistics start counting up and the overview follows the cursor.
func (a *AppModel) OnSlideChanged(index, _ int) {
	a.Overview.Select(index)
	a.revealStats()
}

// revealStats animates the current slide's statistics. Animations that
// start show their zero value until the first frame arrives.
func (a *AppModel) revealStats() {
	a.Session.RevealStats()
	idx := a.Session.Cursor().Index()
	for i, st := range a.Session.CurrentSlide().Stats {
		k := session.StatKey(idx, i)
		if _, shown := a.stats.text[k]; !shown && a.Session.Animator().Animated(k) {
			a.stats.text[k] = easing.FormatValue(0, easing.DetectFormat(st.Value))
		}
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.revealStats()
	if a.autoplay {
		a.Session.Dispatch(input.ToggleAutoplay())
	}
	return a.pendingCmds(nil)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, a.pendingCmds(cmd)
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Progress.Width = max(msg.Width-4, 10)
		a.Slides.Update(msg)
		a.Overview.Update(msg)
		return nil
	case frameMsg:
		a.frames.run(time.Time(msg))
		return nil
	case autoplayTickMsg:
		a.Session.Dispatch(input.Tick(msg.gen))
		return nil
	case DispatchMsg:
		a.Session.Dispatch(msg.Event)
		return nil
	case jumpFromOverviewMsg:
		a.Mode = ModeSlides
		a.Session.Dispatch(msg.event)
		return nil
	case ShowOverviewMsg:
		if a.Mode == ModeOverview {
			a.Mode = ModeSlides
		} else {
			a.Mode = ModeOverview
			a.Overview.Select(a.Session.Cursor().Index())
		}
		return nil
	case ShowNotesMsg:
		idx := a.Session.Cursor().Index()
		a.Overlays.Push(newNotesOverlay(idx+1, a.Session.CurrentSlide().Notes, a.width))
		return nil
	case ShowHelpMsg:
		a.Overlays.Push(newHelpOverlay(a.KeyHandler.Registry, a.Mode))
		return nil
	case DismissOverlayMsg:
		a.Overlays.Pop()
		return nil
	case ResetMsg:
		a.Session.Reset()
		return nil
	case tea.MouseMsg:
		a.handleMouse(msg)
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(k) {
			return func() tea.Msg { return DismissOverlayMsg{} }
		}
		if k == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}
	if a.Mode == ModeOverview && k == "esc" {
		a.Mode = ModeSlides
		return nil
	}
	if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
		return cmd
	}
	if a.Mode == ModeOverview {
		_, cmd := a.Overview.Update(msg)
		return cmd
	}
	return nil
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) {
	if a.Mode != ModeSlides || a.Overlays.Len() > 0 {
		// Controls are hidden; a press still counts as user interaction.
		if msg.Action == tea.MouseActionPress {
			a.Session.Dispatch(input.PointerOutside())
		}
		return
	}
	nav := newNavLayout(a.width, a.height, a.Session.Deck().SlideCount())
	for _, ev := range a.pointer.handle(msg, nav) {
		a.Session.Dispatch(ev)
	}
}

// pendingCmds batches cmd with frame and autoplay ticks armed during this update.
func (a *appModelAdapter) pendingCmds(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd, a.frames.cmd()}
	cmds = append(cmds, a.timers.cmds()...)
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	bodyHeight := max(a.height-headerHeight-footerHeight, 1)

	var body string
	if top, ok := a.Overlays.Peek(); ok {
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, top.View.View())
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).MaxWidth(a.width).Render(body)
	} else if a.Mode == ModeOverview {
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(a.Overview.View())
	} else {
		body = a.Slides.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		a.renderFooter(),
	)
}

func (a *appModelAdapter) renderHeader() string {
	c := a.Session.Cursor()
	right := Styles.Counter.Render(itoaPair(c.Index()+1, c.Total()))
	if a.Session.Autoplay().Running() {
		right = Styles.Playing.Render("▶ autoplay") + "  " + right
	}
	title := textutil.Truncate(a.Session.Deck().Title(), max(a.width/2, 10))
	line := textutil.SpreadLine(Styles.Hint.Render(title), right, a.width)
	return line + "\n"
}

func (a *appModelAdapter) renderFooter() string {
	c := a.Session.Cursor()
	center := lipgloss.NewStyle().Width(a.width).Align(lipgloss.Center)

	h := help.New()
	h.Width = a.width
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))

	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(renderNavRow(c)),
		center.Render(a.Progress.ViewAs(a.Session.Progress())),
		h.ShortHelpView(NewKeyMap(a.KeyHandler.Registry, a.Mode).ShortHelp()),
	)
}

func itoaPair(n, total int) string {
	return strconv.Itoa(n) + " / " + strconv.Itoa(total)
}
