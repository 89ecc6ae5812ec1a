package app

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/omni/internal/browse"
	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/history"
	"github.com/ryan-rushton/omni/internal/home"
	"github.com/ryan-rushton/omni/internal/location"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/registry"
	"github.com/ryan-rushton/omni/internal/results"
	"github.com/ryan-rushton/omni/internal/search"
	"github.com/ryan-rushton/omni/internal/styles"
)

// chrome is the rows used by the breadcrumb, search box and banner.
const chrome = 6

// Options wires the controller to its collaborators. Catalog, Port and
// History are required.
type Options struct {
	Catalog *catalog.Catalog
	Port    location.Port
	History *history.Recent
	Logger  *slog.Logger
	Version string
	// CheckUpdate, if set, runs once at startup and may yield an
	// UpdateAvailableMsg.
	CheckUpdate tea.Cmd
}

type focus int

const (
	focusView focus = iota
	focusSearch
)

// Model is the top-level application model. It owns the navigation state,
// the search query and the recent-search history, and decides which view is
// on screen.
type Model struct {
	catalog     *catalog.Catalog
	resolver    *location.Resolver
	port        location.Port
	history     *history.Recent
	logger      *slog.Logger
	version     string
	checkUpdate tea.Cmd

	state     location.State
	current   tea.Model
	input     textinput.Model
	focus     focus
	results   results.Model
	recentIdx int

	tokens      chan string
	done        chan struct{}
	unsubscribe func()
	stop        func()
	update      string
	windowSize  tea.WindowSizeMsg
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Placeholder = "Search tools... (/ or ctrl+f)"
	ti.Prompt = "⌕ "
	ti.Width = 50

	m := Model{
		catalog:     opts.Catalog,
		resolver:    location.NewResolver(opts.Catalog, logger),
		port:        opts.Port,
		history:     opts.History,
		logger:      logger,
		version:     opts.Version,
		checkUpdate: opts.CheckUpdate,
		input:       ti,
		recentIdx:   -1,
		tokens:      make(chan string, 1),
		done:        make(chan struct{}),
	}
	done := m.done
	m.stop = sync.OnceFunc(func() { close(done) })

	// Subscribers run synchronously inside the port, so hand tokens to the
	// program through a channel instead of touching the model. The message
	// only wakes the program, which then reads the port itself, so a wake-up
	// already pending makes this one redundant.
	tokens := m.tokens
	m.unsubscribe = opts.Port.Subscribe(func(token string) {
		select {
		case tokens <- token:
		default:
			logger.Debug("location change coalesced", "token", token)
		}
	})

	m.state = m.resolver.Resolve(opts.Port.Current())
	m.current = m.view(m.state, location.Home())
	return m
}

// Close detaches the model from its location port and releases a pending
// listener.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.stop != nil {
		m.stop()
	}
}

// State is the current navigation state.
func (m Model) State() location.State {
	return m.state
}

// Query is the raw text of the search box.
func (m Model) Query() string {
	return m.input.Value()
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.current.Init(), m.listen()}
	if m.checkUpdate != nil {
		cmds = append(cmds, m.checkUpdate)
	}
	return tea.Batch(cmds...)
}

// listen waits for the next change notification from the port. It yields
// nil once the model is closed.
func (m Model) listen() tea.Cmd {
	tokens, done := m.tokens, m.done
	return func() tea.Msg {
		select {
		case token := <-tokens:
			return messages.LocationChangedMsg{Token: token}
		case <-done:
			return nil
		}
	}
}

func (m Model) searching() bool {
	return search.Active(m.input.Value())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowSize = msg
		m.input.Width = max(20, msg.Width-12)
		sized := m.viewSize()
		m.results = m.results.WithHeight(sized.Height)
		var cmd tea.Cmd
		m.current, cmd = m.current.Update(sized)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case messages.HomeMsg:
		m = m.clearSearch()
		return m.navigate(location.Home())

	case messages.CategorySelectedMsg:
		m = m.clearSearch()
		return m.navigate(location.Category(msg.Category))

	case messages.ToolSelectedMsg:
		t, ok := m.catalog.FindByID(msg.ID)
		if !ok {
			m.logger.Warn("selected unknown tool", "id", msg.ID)
			return m, nil
		}
		if q := strings.TrimSpace(m.input.Value()); q != "" {
			if err := m.history.Record(q); err != nil {
				m.logger.Warn("recording recent search", "error", err)
			}
		}
		m = m.clearSearch()
		return m.navigate(location.Tool(t))

	case messages.BackMsg:
		if m.searching() {
			return m.clearSearch(), nil
		}
		switch m.state.Kind {
		case location.KindTool:
			return m.navigate(location.Category(m.state.Category))
		case location.KindCategory:
			return m.navigate(location.Home())
		}
		return m, nil

	case messages.LocationChangedMsg:
		// The token may be stale by now. The port holds the latest one.
		next := m.listen()
		var cmd tea.Cmd
		m, cmd = m.sync()
		return m, tea.Batch(next, cmd)

	case messages.UpdateAvailableMsg:
		m.update = msg.Tag
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	cmds = append(cmds, cmd)
	if m.focus == focusSearch {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+f":
		return m.focusInput()
	case "alt+left":
		return m.walk(func(n location.Navigator) bool { return n.Back() })
	case "alt+right":
		return m.walk(func(n location.Navigator) bool { return n.Forward() })
	}

	if m.focus == focusSearch {
		return m.searchKey(key)
	}

	if m.searching() {
		if key.String() == "/" {
			return m.focusInput()
		}
		r, cmd := m.results.Update(key)
		m.results = r.(results.Model)
		return m, cmd
	}

	if key.String() == "/" && m.state.Kind != location.KindTool {
		return m.focusInput()
	}

	var cmd tea.Cmd
	m.current, cmd = m.current.Update(key)
	return m, cmd
}

func (m Model) searchKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		return m.clearSearch(), nil
	case "ctrl+r":
		recent := m.history.List()
		if len(recent) == 0 {
			return m, nil
		}
		m.recentIdx = (m.recentIdx + 1) % len(recent)
		m.input.SetValue(recent[m.recentIdx])
		m.input.CursorEnd()
		return m.refresh(), nil
	case "enter", "down", "up", "tab":
		m.focus = focusView
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	m.recentIdx = -1
	return m.refresh(), cmd
}

func (m Model) focusInput() (tea.Model, tea.Cmd) {
	m.focus = focusSearch
	cmd := m.input.Focus()
	return m, cmd
}

// refresh recomputes the results for the current query.
func (m Model) refresh() Model {
	q := m.input.Value()
	if !search.Active(q) {
		return m
	}
	m.results = results.New(q, search.Search(m.catalog, q), m.history.List()).
		WithHeight(m.viewSize().Height)
	return m
}

func (m Model) clearSearch() Model {
	m.input.Reset()
	m.input.Blur()
	m.focus = focusView
	m.recentIdx = -1
	return m
}

// navigate publishes the token for s and re-derives the state from the
// port. The port's token is the only source of navigation state.
func (m Model) navigate(s location.State) (Model, tea.Cmd) {
	m.port.Set(m.resolver.Encode(s))
	return m.sync()
}

func (m Model) sync() (Model, tea.Cmd) {
	return m.show(m.resolver.Resolve(m.port.Current()))
}

// show switches to s without touching the port. Re-showing the current
// state keeps the existing view.
func (m Model) show(s location.State) (Model, tea.Cmd) {
	if s == m.state {
		return m, nil
	}
	prev := m.state
	m.state = s
	m.current = m.view(s, prev)
	sized := m.viewSize()
	return m, tea.Batch(m.current.Init(), func() tea.Msg { return sized })
}

// walk moves through the port's visit history, if it keeps one.
func (m Model) walk(step func(location.Navigator) bool) (tea.Model, tea.Cmd) {
	nav, ok := m.port.(location.Navigator)
	if !ok || !step(nav) {
		return m, nil
	}
	return m.sync()
}

// view builds the screen for s. prev positions the cursor when moving up a
// level.
func (m Model) view(s location.State, prev location.State) tea.Model {
	switch s.Kind {
	case location.KindTool:
		t, _ := m.catalog.FindByID(s.ToolID)
		if v := registry.For(t); v != nil {
			return v
		}
		m.logger.Error("no renderer for tool", "id", t.ID, "renderer", t.Renderer)
	case location.KindCategory:
		b := browse.New(m.catalog, s.Category)
		if prev.Kind == location.KindTool {
			b = b.Select(prev.ToolID)
		}
		return b
	}
	h := home.New(m.catalog, m.version)
	if prev.Kind != location.KindHome {
		h = h.Select(prev.Category)
	}
	return h
}

func (m Model) viewSize() tea.WindowSizeMsg {
	if m.windowSize.Height == 0 {
		return m.windowSize
	}
	return tea.WindowSizeMsg{Width: m.windowSize.Width, Height: max(0, m.windowSize.Height-chrome)}
}

// Breadcrumb is the trail from Home to what is on screen.
func (m Model) Breadcrumb() []string {
	crumbs := []string{"Home"}
	if m.searching() {
		return append(crumbs, "Search Results")
	}
	switch m.state.Kind {
	case location.KindCategory:
		crumbs = append(crumbs, m.state.Category.Label())
	case location.KindTool:
		crumbs = append(crumbs, m.state.Category.Label())
		if t, ok := m.catalog.FindByID(m.state.ToolID); ok {
			crumbs = append(crumbs, t.Name)
		}
	}
	return crumbs
}

func (m Model) View() string {
	var b strings.Builder

	if m.update != "" {
		b.WriteString(styles.UpdateBanner.Render("Update available: "+m.update+". Run 'omni update' to install.") + "\n")
	}

	crumbs := m.Breadcrumb()
	rendered := make([]string, len(crumbs))
	for i, c := range crumbs {
		if i == len(crumbs)-1 {
			rendered[i] = styles.CurrentCrumb.Render(c)
		} else {
			rendered[i] = styles.Crumb.Render(c)
		}
	}
	b.WriteString(strings.Join(rendered, styles.Crumb.Render(" › ")) + "\n")

	box := styles.SearchBox
	if m.focus == focusSearch {
		box = styles.SearchBoxFocused
	}
	b.WriteString(box.Render(m.input.View()) + "\n")

	if m.focus == focusSearch && !m.searching() {
		if recent := m.history.List(); len(recent) > 0 {
			chips := []string{styles.Dimmed.Render("recent (ctrl+r):")}
			for _, r := range recent {
				chips = append(chips, styles.Chip.Render(r))
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, chips...) + "\n")
		}
	}

	if m.searching() {
		b.WriteString(m.results.View())
	} else {
		b.WriteString(m.current.View())
	}
	return b.String()
}
