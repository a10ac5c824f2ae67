package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/foliodev/folio/internal/config"
	"github.com/foliodev/folio/internal/content"
	"github.com/foliodev/folio/internal/logger"
	"github.com/foliodev/folio/internal/particles"
	"github.com/foliodev/folio/internal/theme"
	"github.com/foliodev/folio/internal/ui"
)

// contentTimeout bounds the single experience fetch.
const contentTimeout = 10 * time.Second

// Model is the Bubble Tea model for the portfolio page. Every component
// owns its own state here; the only shared timing is the frame tick.
type Model struct {
	cfg    *config.Config
	store  *theme.Store
	loader *content.Loader
	log    logger.Logger

	th      theme.Theme
	palette theme.Palette
	st      styles

	viewport viewport.Model
	field    *particles.Field
	nav      nav
	titles   map[string]string

	width  int
	height int
	ready  bool

	// Timeline load state: loading until one of entries/contentErr is
	// set; the rendered body swaps atomically on either.
	loading    bool
	entries    []content.Entry
	contentErr error

	sections []Section
	layout   []layoutSection

	revealed      map[string]bool
	reducedMotion bool
	quitting      bool

	scrolling    bool
	scrollTarget int
}

// NewModel constructs the page model. The persisted theme is read once
// here and only changes on explicit toggle.
func NewModel(cfg *config.Config, store *theme.Store) Model {
	th := store.Load()
	reduced := cfg.UI.ReducedMotion

	m := Model{
		cfg:           cfg,
		store:         store,
		loader:        content.NewLoader(contentTimeout),
		log:           logger.NewEnvLogger("[tui]"),
		th:            th,
		palette:       theme.PaletteFor(th),
		st:            newStyles(theme.PaletteFor(th)),
		nav:           newNav(0),
		loading:       true,
		revealed:      make(map[string]bool),
		reducedMotion: reduced,
	}

	m.titles = map[string]string{
		sectionAbout:      "About",
		sectionExpertise:  "Expertise",
		sectionPress:      "Press",
		sectionGames:      "Games",
		sectionExperience: "Experience",
		sectionContact:    "Contact",
	}

	if reduced {
		// Entrance animations are skipped entirely: everything starts
		// revealed and no frames are ever scheduled.
		for _, id := range append([]string{sectionHero}, navSections...) {
			m.revealed[id] = true
		}
	}

	return m
}

// Init starts the content load and, unless reduced motion is preferred,
// the frame loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadContentCmd()}
	if !m.reducedMotion {
		cmds = append(cmds, m.tickCmd())
	}
	return tea.Batch(cmds...)
}

// tickCmd schedules the next animation frame.
func (m Model) tickCmd() tea.Cmd {
	fps := m.cfg.UI.FPS
	if fps < 1 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadContentCmd fetches the experience document once.
func (m Model) loadContentCmd() tea.Cmd {
	source := m.cfg.Content.Experience
	loader := m.loader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), contentTimeout)
		defer cancel()

		doc, err := loader.Fetch(ctx, source)
		if err != nil {
			return contentFailedMsg{err: err}
		}
		return contentLoadedMsg{doc: doc}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		return m.handleTick()

	case contentLoadedMsg:
		m.loading = false
		m.entries = msg.doc.Experience
		m.contentErr = nil
		m.rebuild()
		return m, nil

	case contentFailedMsg:
		m.loading = false
		m.contentErr = msg.err
		m.log.Error("timeline load failed: %v", msg.err)
		m.rebuild()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. An open nav overlay captures all
// keys: selection picks a link, anything else is "clicking outside".
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.nav.isOpen() {
		switch key {
		case "j", "down":
			m.nav.moveCursor(1)
		case "k", "up":
			m.nav.moveCursor(-1)
		case "enter":
			id := m.nav.selected()
			m.startScrollTo(id)
		default:
			m.nav.close()
		}
		return m, nil
	}

	switch key {
	case "m":
		m.nav.toggle()

	case "t":
		m.toggleTheme()

	case "j", "down":
		m.setOffset(m.viewport.YOffset + 1)

	case "k", "up":
		m.setOffset(m.viewport.YOffset - 1)

	case "pgdown", " ", "f":
		m.setOffset(m.viewport.YOffset + m.viewport.Height)

	case "pgup", "b":
		m.setOffset(m.viewport.YOffset - m.viewport.Height)

	case "g", "home":
		m.setOffset(0)

	case "G", "end":
		m.setOffset(m.contentHeight())

	case "1", "2", "3", "4", "5", "6":
		idx := int(key[0] - '1')
		if idx < len(navSections) {
			m.startScrollTo(navSections[idx])
		}
	}

	return m, nil
}

// handleResize resets dimensions and regenerates the particle field at
// the new size. No point state survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	viewHeight := msg.Height - headerHeight - footerHeight
	if viewHeight < 1 {
		viewHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, viewHeight)
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewHeight
	}

	canvasWidth := msg.Width - 1
	if canvasWidth < 10 {
		canvasWidth = 10
	}
	if m.field == nil {
		m.field = particles.NewField(particles.Config{
			NodeCount:      m.cfg.UI.NodeCount,
			MaxDistance:    m.cfg.UI.MaxDistance,
			MouseInfluence: m.cfg.UI.MouseInfluence,
		}, float64(canvasWidth), heroHeight-1, time.Now().UnixNano())
	} else {
		m.field.Resize(float64(canvasWidth), heroHeight-1)
	}

	m.nav.setWidth(msg.Width)
	m.rebuild()
	m.updateScrollState()
	return m, nil
}

// handleMouse maps pointer motion over the hero canvas into field
// influence, scrolls on wheel input, and treats a click with the nav
// open as clicking outside the panel.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.setOffset(m.viewport.YOffset - 3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.setOffset(m.viewport.YOffset + 3)
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && m.nav.isOpen() {
		m.nav.close()
		return m, nil
	}

	if msg.Action == tea.MouseActionMotion && m.field != nil && !m.reducedMotion {
		contentRow := msg.Y - headerHeight + m.viewport.YOffset
		if contentRow >= 0 && contentRow < heroHeight {
			m.field.SetPointer(float64(msg.X), float64(contentRow))
		} else {
			// Leaving the canvas drops the influence immediately but
			// keeps whatever velocity the attraction imparted.
			m.field.ClearPointer()
		}
	}

	return m, nil
}

// handleTick advances one animation frame and schedules the next one.
// After quit, or under reduced motion, no further frame is scheduled.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.reducedMotion {
		return m, nil
	}

	if m.field != nil {
		m.field.Step()
	}

	if m.scrolling {
		next, done := scrollStep(m.viewport.YOffset, m.scrollTarget)
		m.viewport.SetYOffset(next)
		m.scrolling = !done
	}

	m.rebuild()
	m.updateScrollState()
	return m, m.tickCmd()
}

// toggleTheme flips the preference, persists it, and re-applies the
// palette. Persist failures are logged but the session still flips.
func (m *Model) toggleTheme() {
	next, err := m.store.Toggle()
	if err != nil {
		m.log.Warn("theme persist failed: %v", err)
	}
	m.th = next
	m.palette = theme.PaletteFor(next)
	m.st = newStyles(m.palette)
	m.rebuild()
}

// startScrollTo begins an animated scroll to the section. Unknown IDs
// consume the navigation without moving, preserving the original
// dangling-target behavior. Under reduced motion the jump is immediate.
func (m *Model) startScrollTo(id string) {
	target, ok := scrollTargetFor(m.layout, id, m.contentHeight(), m.viewport.Height)
	if !ok {
		return
	}

	if m.reducedMotion {
		m.setOffset(target)
		return
	}
	m.scrollTarget = target
	m.scrolling = true
}

// setOffset moves the viewport directly and refreshes derived state.
func (m *Model) setOffset(offset int) {
	m.viewport.SetYOffset(offset)
	m.scrolling = false
	m.updateScrollState()
}

// updateScrollState recomputes everything derived from the offset:
// active nav link, entrance reveals, and (implicitly) the progress bar
// rendered from the same numbers in View.
func (m *Model) updateScrollState() {
	offset := m.viewport.YOffset
	m.nav.setActive(activeSection(m.layout, offset))

	changed := false
	for _, s := range m.layout {
		if m.revealed[s.ID] {
			continue
		}
		if revealedFraction(s, offset, m.viewport.Height) >= revealThreshold {
			// One-way: a revealed section never hides again.
			m.revealed[s.ID] = true
			changed = true
		}
	}
	if changed {
		m.rebuild()
	}
}

// rebuild re-renders the page content and lays sections out again,
// preserving the scroll offset.
func (m *Model) rebuild() {
	if !m.ready {
		return
	}

	renderer := content.NewRenderer(m.palette, m.viewport.Width)
	var timeline string
	switch {
	case m.loading:
		timeline = renderer.Loading()
	case m.contentErr != nil:
		timeline = renderer.Error(m.contentErr)
	default:
		timeline = renderer.Timeline(m.entries)
	}

	var canvas string
	if m.field != nil {
		canvas = particles.RenderFrame(m.field, m.palette)
	}
	hero := renderHero(canvas, m.cfg, m.st)

	m.sections = buildSections(m.cfg, m.st, m.palette, m.viewport.Width, hero, timeline)

	offset := m.viewport.YOffset
	body, layout := assemble(m.sections, m.st, func(id string) bool {
		return m.revealed[id]
	})
	m.layout = layout
	m.viewport.SetContent(body)
	m.viewport.SetYOffset(offset)
}

// contentHeight returns the total content height in rows.
func (m Model) contentHeight() int {
	if len(m.layout) == 0 {
		return 0
	}
	last := m.layout[len(m.layout)-1]
	return last.Top + last.Height
}

// View renders header, page, and footer. An open nav overlay replaces
// the page area.
func (m Model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	header := m.renderHeader()

	page := m.viewport.View()
	if m.nav.isOpen() {
		page = lipgloss.Place(m.viewport.Width, m.viewport.Height,
			lipgloss.Center, lipgloss.Center,
			m.nav.renderOverlay(m.st, m.titles))
	}

	return header + "\n" + page + "\n" + m.renderFooter()
}

// renderHeader renders the name row and either the inline nav bar or
// the overlay hint, depending on width.
func (m Model) renderHeader() string {
	name := m.st.name.Render(m.cfg.Profile.Name)
	if m.cfg.Profile.Title != "" {
		name += m.st.muted.Render("  "+ui.SymbolNavDot+" ") + m.st.title.Render(m.cfg.Profile.Title)
	}

	var navRow string
	if m.width >= navBreakpoint {
		navRow = m.nav.renderBar(m.st, m.titles)
	} else {
		navRow = m.st.muted.Render("m menu")
	}

	return name + "\n" + navRow
}

// renderFooter renders the scroll progress bar and the key help line.
func (m Model) renderFooter() string {
	percent := scrollPercent(m.viewport.YOffset, m.contentHeight(), m.viewport.Height)

	barWidth := m.width - 6
	if barWidth < 10 {
		barWidth = 10
	}
	bar := ui.RenderBar(percent, ui.ScrollBarConfig(barWidth))

	help := m.st.footer.Render("j/k scroll  1-6 jump  t theme  m menu  q quit")
	return bar + "\n" + help
}
