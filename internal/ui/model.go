package ui

import (
	"context"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"swipeshow/internal/config"
	"swipeshow/internal/cycler"
	"swipeshow/internal/deck"
	"swipeshow/internal/domain"
	"swipeshow/internal/eventbus"
	"swipeshow/internal/gesture"
	"swipeshow/internal/timing"
	"swipeshow/internal/ui/views"
)

// rows taken by the header, the controls and the footer
const chromeRows = 3

// sampleKey registers the built-in deck, which has no path
const sampleKey = "sample"

type pressKind int

const (
	pressNone pressKind = iota
	pressSlide
	pressControl
)

// press tracks the left mouse button between press and release
type press struct {
	kind pressKind
	x    int
}

// Model represents the UI state
type Model struct {
	bus eventbus.EventBus
	cfg config.Config

	deck     *domain.Deck
	deckKey  string
	deckGen  int
	registry *gesture.Registry[string, domain.Slide]
	carousel *gesture.Carousel[domain.Slide]
	loop     *timing.Loop
	strip    *Strip

	styles       *views.Styles
	controls     *views.Controls
	keys         keyMap
	help         help.Model
	helpRenderer *HelpRenderer
	pager        *PagerOps

	width  int
	height int

	press            press
	hovering         bool
	loading          bool
	inPagerMode      bool
	resumeAfterPager bool
	status           string
	statusErr        bool

	ctx     context.Context
	cancel  context.CancelFunc
	changes <-chan struct{}
	closed  bool
}

// NewModel creates a UI model showing d. A nil bus disables event publishing.
func NewModel(bus eventbus.EventBus, cfg config.Config, d *domain.Deck) *Model {
	if d == nil {
		d = deck.Sample()
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		bus:          bus,
		cfg:          cfg,
		deck:         d,
		deckKey:      keyFor(d),
		registry:     gesture.NewRegistry[string, domain.Slide](),
		loop:         timing.NewLoop(),
		strip:        NewStrip(),
		styles:       views.NewStyles(),
		keys:         newKeyMap(),
		help:         help.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
		ctx:          ctx,
		cancel:       cancel,
	}
	m.controls = views.NewControls(m.styles)
	m.keys.setNavigationEnabled(cfg.Keys)
	m.loading = deck.Pending(d) > 0

	m.mountCarousel(clampIndex(cfg.Initial, d.Len()))
	m.publish(eventbus.DeckLoadedEvent{Path: d.Path, Slides: d.Len()})

	if cfg.Watch && d.Path != "" {
		changes, err := deck.Watch(ctx, d.Path)
		if err != nil {
			m.setError(err)
		} else {
			m.changes = changes
		}
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Carousel returns the carousel currently on screen
func (m *Model) Carousel() *gesture.Carousel[domain.Slide] {
	return m.carousel
}

// Deck returns the deck currently on screen
func (m *Model) Deck() *domain.Deck {
	return m.deck
}

func keyFor(d *domain.Deck) string {
	if d.Path == "" {
		return sampleKey
	}
	if abs, err := filepath.Abs(d.Path); err == nil {
		return abs
	}
	return d.Path
}

// mountCarousel creates the carousel for the current deck, or reuses the one
// already registered for it
func (m *Model) mountCarousel(initial int) {
	var c *gesture.Carousel[domain.Slide]

	c, created, err := m.registry.LookupOrCreate(m.deckKey, func() (*gesture.Carousel[domain.Slide], error) {
		gc := config.Gesture[domain.Slide](m.cfg)
		gc.Scheduler = m.loop
		gc.Initial = initial
		if m.loading {
			off := false
			gc.Autostart = &off
		}
		gc.OnActivate = func(a cycler.Activation[domain.Slide]) { m.onActivate(c, a) }
		gc.OnStart = func() { m.onStart(c) }
		gc.OnPause = func() { m.onPause(c) }
		gc.OnDispose = func() { m.onDispose(c) }

		c = gesture.New(m.deck.Slides, m.viewportWidth, m.strip, gc)
		return c, nil
	})
	if err != nil {
		m.setError(fmt.Errorf("failed to create carousel: %w", err))
		return
	}

	m.carousel = c
	if !created {
		return
	}

	log.Printf("Carousel: created %s for %s with %d slides", c.ID(), m.deckKey, c.Len())
	if m.loading {
		c.Disable()
	}
	// the initial activation ran inside gesture.New, before the id was known
	if c.Len() > 0 {
		idx := c.Current()
		m.publish(eventbus.SlideActivatedEvent{CarouselID: c.ID(), Index: idx, Title: m.deck.Slides[idx].Title})
	}
	if c.IsStarted() {
		m.publish(eventbus.SlideshowStartedEvent{CarouselID: c.ID()})
	}
}

// clampIndex keeps i inside [0, n-1], or 0 for an empty deck
func clampIndex(i, n int) int {
	return min(max(i, 0), max(n-1, 0))
}

func (m *Model) viewportWidth() float64 {
	return float64(m.width)
}

func (m *Model) onActivate(c *gesture.Carousel[domain.Slide], a cycler.Activation[domain.Slide]) {
	if c == nil {
		return
	}
	m.publish(eventbus.SlideActivatedEvent{
		CarouselID:    c.ID(),
		Index:         a.Index,
		Title:         a.Current.Title,
		PreviousIndex: a.PreviousIndex,
		HasPrevious:   a.HasPrevious,
	})
}

func (m *Model) onStart(c *gesture.Carousel[domain.Slide]) {
	if c == nil {
		return
	}
	m.publish(eventbus.SlideshowStartedEvent{CarouselID: c.ID()})
}

func (m *Model) onPause(c *gesture.Carousel[domain.Slide]) {
	if c == nil {
		return
	}
	m.publish(eventbus.SlideshowPausedEvent{CarouselID: c.ID()})
}

func (m *Model) onDispose(c *gesture.Carousel[domain.Slide]) {
	if c == nil {
		return
	}
	log.Printf("Carousel: disposed %s", c.ID())
	m.publish(eventbus.CarouselDisposedEvent{CarouselID: c.ID()})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	log.Printf("Error: %v", err)
	m.status = err.Error()
	m.statusErr = true
	m.publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loop.Listen()}
	if m.loading {
		cmds = append(cmds, m.loadAssets())
	}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	// every handler may have started a strip transition
	return m, tea.Batch(cmd, m.strip.Kick())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.carousel.HandleResize()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case timing.FireMsg:
		m.loop.Deliver(msg)
		return m.loop.Listen()

	case frameMsg:
		return m.strip.Update(msg)

	case assetsLoadedMsg:
		m.handleAssets(msg)

	case deckLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return nil
		}
		return m.replaceDeck(msg.deck)

	case deckChangedMsg:
		log.Printf("Deck: %s changed on disk", m.deck.Path)
		return tea.Batch(m.reload(), waitForChange(m.changes))

	case pagerClosedMsg:
		m.inPagerMode = false
		if m.resumeAfterPager {
			m.resumeAfterPager = false
			m.carousel.Start()
		}
		if msg.err != nil {
			m.setError(fmt.Errorf("pager: %w", msg.err))
		}
	}

	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.openPager(m.helpRenderer.RenderHelpContent(m.keys))

	case key.Matches(msg, m.keys.Open):
		if m.deck.Len() == 0 {
			return nil
		}
		idx := m.carousel.Current()
		return m.openPager(m.helpRenderer.RenderSlideContent(m.deck.Title, idx, m.deck.Len(), m.deck.Slides[idx]))

	case key.Matches(msg, m.keys.Reload):
		return m.reload()

	case key.Matches(msg, m.keys.Previous):
		m.carousel.Previous()

	case key.Matches(msg, m.keys.Next):
		m.carousel.Next()

	case key.Matches(msg, m.keys.Jump):
		if len(msg.Runes) == 1 {
			n := int(msg.Runes[0] - '1')
			if n < m.carousel.Len() {
				m.carousel.GoTo(n)
			}
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.carousel.IsStarted() {
			m.carousel.Pause()
		} else {
			m.carousel.Start()
		}
	}

	m.status = ""
	return nil
}

// slide rows are 1 .. height-chromeRows, the controls sit right below
func (m *Model) onSlides(y int) bool {
	return y >= 1 && y <= m.height-chromeRows
}

func (m *Model) controlsRow() int {
	return m.height - chromeRows + 1
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.trackHover(msg.Y)

	x := float64(msg.X)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelLeft:
			m.carousel.Previous()
		case tea.MouseButtonWheelRight:
			m.carousel.Next()
		case tea.MouseButtonLeft:
			switch {
			case m.onSlides(msg.Y):
				m.press = press{kind: pressSlide, x: msg.X}
				m.carousel.DragStart(gesture.At(x, gesture.SourceMouse))
			case msg.Y == m.controlsRow():
				m.press = press{kind: pressControl, x: msg.X}
			}
		}

	case tea.MouseActionMotion:
		switch m.press.kind {
		case pressSlide:
			m.carousel.DragMove(gesture.At(x, gesture.SourceMouse))
		case pressControl:
			if msg.X == m.press.x {
				return
			}
			// a press on the controls that moves becomes a drag
			m.carousel.DragStart(gesture.PointerEvent{
				X:         float64(m.press.x),
				HasX:      true,
				Source:    gesture.SourceMouse,
				OnControl: true,
			})
			m.press.kind = pressSlide
			m.carousel.DragMove(gesture.At(x, gesture.SourceMouse))
		}

	case tea.MouseActionRelease:
		switch m.press.kind {
		case pressSlide:
			m.carousel.DragEnd(gesture.At(x, gesture.SourceMouse))
		case pressControl:
			m.click(msg.X)
		}
		m.press = press{}
	}
}

func (m *Model) trackHover(y int) {
	over := m.onSlides(y) || y == m.controlsRow()
	if over == m.hovering {
		return
	}
	m.hovering = over
	if over {
		m.carousel.HoverEnter()
	} else {
		m.carousel.HoverLeave()
	}
}

func (m *Model) click(x int) {
	m.controls.Update(m.carousel.Len(), m.carousel.Current(), m.width)
	switch hit, idx := m.controls.HitTest(x); hit {
	case views.HitPrevious:
		m.carousel.Previous()
	case views.HitNext:
		m.carousel.Next()
	case views.HitDot:
		m.carousel.GoTo(idx)
	}
}

func (m *Model) openPager(content string) tea.Cmd {
	if m.pager.program == nil {
		m.setError(errNoProgram)
		return nil
	}

	m.resumeAfterPager = m.carousel.IsStarted()
	if m.resumeAfterPager {
		m.carousel.Pause()
	}
	m.inPagerMode = true

	pager := m.pager
	return func() tea.Msg {
		return pagerClosedMsg{err: pager.ShowInPager(content)}
	}
}

func (m *Model) loadAssets() tea.Cmd {
	ctx, d, gen := m.ctx, m.deck, m.deckGen
	return func() tea.Msg {
		loaded, err := deck.LoadAssets(ctx, d)
		return assetsLoadedMsg{gen: gen, deck: loaded, err: err}
	}
}

func (m *Model) handleAssets(msg assetsLoadedMsg) {
	if msg.gen != m.deckGen {
		return
	}
	if msg.deck == nil {
		m.setError(fmt.Errorf("failed to load slides: %w", msg.err))
		return
	}

	failed := 0
	for _, s := range msg.deck.Slides {
		if s.Error != "" {
			failed++
		}
	}
	// the carousel shares this backing array, so update it in place
	copy(m.deck.Slides, msg.deck.Slides)
	m.loading = false
	m.publish(eventbus.AssetsLoadedEvent{Path: m.deck.Path, Loaded: len(m.deck.Slides) - failed, Failed: failed})

	m.carousel.Enable()
	if m.cfg.Autostart && m.cfg.Interval > 0 {
		m.carousel.Start()
	}
	if msg.err != nil {
		m.setError(msg.err)
	}
}

func (m *Model) reload() tea.Cmd {
	if m.deck.Path == "" {
		m.setStatus("showing the built-in deck, nothing to reload")
		return nil
	}
	path := m.deck.Path
	return func() tea.Msg {
		d, err := deck.Load(path)
		return deckLoadedMsg{deck: d, err: err}
	}
}

// replaceDeck swaps in a freshly loaded deck with a new carousel
func (m *Model) replaceDeck(d *domain.Deck) tea.Cmd {
	initial := 0
	if m.carousel != nil {
		initial = clampIndex(m.carousel.Current(), d.Len())
	}

	m.registry.Remove(m.deckKey)
	m.press = press{}
	m.hovering = false

	m.deck = d
	m.deckKey = keyFor(d)
	m.deckGen++
	m.loading = deck.Pending(d) > 0
	m.mountCarousel(initial)
	m.carousel.HandleResize()

	m.setStatus(fmt.Sprintf("reloaded %s", filepath.Base(d.Path)))
	m.publish(eventbus.DeckReloadedEvent{Path: d.Path})
	m.publish(eventbus.DeckLoadedEvent{Path: d.Path, Slides: d.Len()})

	if m.loading {
		return m.loadAssets()
	}
	return nil
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return deckChangedMsg{}
	}
}

// Close disposes every carousel and stops timers and the watcher. It is
// safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.cancel()
	m.registry.Close()
	m.loop.Close()
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	slideH := max(m.height-chromeRows, 1)
	m.controls.Update(m.carousel.Len(), m.carousel.Current(), m.width)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSlides(m.width, slideH),
		m.controls.Render(),
		m.renderFooter(),
	)
}

func (m *Model) renderSlides(width, height int) string {
	slideW := int(m.strip.width)
	if slideW <= 0 {
		slideW = width
	}

	// only the slides overlapping the window are drawn
	offset := m.strip.CurrentOffset()
	first := int(math.Floor(-offset / float64(slideW)))
	frames := make([]string, len(m.deck.Slides))
	for i := first; i <= first+1; i++ {
		if i >= 0 && i < len(frames) {
			frames[i] = views.RenderSlide(m.styles, m.deck.Slides[i], slideW, height)
		}
	}
	return views.RenderStrip(frames, width, height, offset)
}

// Playback returns a snapshot of what the slideshow is doing
func (m *Model) Playback() domain.PlaybackState {
	return domain.PlaybackState{
		Index:    m.carousel.Current(),
		Total:    m.carousel.Len(),
		Playing:  m.carousel.IsStarted(),
		Hovered:  m.carousel.HoverPaused(),
		Dragging: m.carousel.State() == gesture.Dragging,
		Loading:  m.loading,
		Disabled: m.carousel.Disabled(),
	}
}

func (m *Model) renderHeader() string {
	title := m.deck.Title
	if title == "" && m.deck.Path != "" {
		title = filepath.Base(m.deck.Path)
	}
	left := m.styles.Title.Render(title)

	p := m.Playback()
	var state string
	switch {
	case p.Dragging:
		state = m.styles.StatusPaused.Render("dragging")
	case p.Loading:
		state = m.styles.StatusLoading.Render("loading")
	case p.Hovered:
		state = m.styles.StatusPaused.Render("⏸ hover")
	case p.Playing:
		state = m.styles.StatusPlaying.Render("▶ playing")
	default:
		state = m.styles.StatusPaused.Render("⏸ paused")
	}

	counter := "0/0"
	if p.Total > 0 {
		counter = fmt.Sprintf("%d/%d", p.Index+1, p.Total)
	}
	right := m.styles.Counter.Render(counter) + "  " + state

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderFooter() string {
	switch {
	case m.status != "" && m.statusErr:
		return m.styles.StatusError.Render(m.status)
	case m.status != "":
		return m.styles.StatusLoading.Render(m.status)
	case m.loading:
		return m.styles.StatusLoading.Render(fmt.Sprintf("loading %d slides...", deck.Pending(m.deck)))
	}
	return m.help.View(m.keys)
}
