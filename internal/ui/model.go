package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"faceoff/internal/card"
	"faceoff/internal/config"
	"faceoff/internal/engine"
)

type State int

const (
	StateLoading State = iota
	StateSetup
	StateComparing
	StateResults
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateSetup:
		return "Setup"
	case StateComparing:
		return "Comparing"
	case StateResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Engine is the comparison engine surface this layer drives. The engine
// owns item storage, pairing strategy and scoring; this layer treats all
// of its calls as infallible.
type Engine interface {
	Load() error
	Items() []string
	PushItem(text string)
	HasOngoingComparison() bool
	StartComparison()
	ResetComparison()
	NextComparison() *engine.Comparison
	TrackResult(winner, loser string)
	Scores() []engine.ScoreEntry
}

// Model drives setup, pairwise voting and the ranked results view. It is
// the only stateful part of the UI; cards are rendered fresh on demand.
type Model struct {
	state  State
	width  int
	height int
	styles Styles
	keys   KeyMap

	eng     Engine
	factory card.Factory

	cfg        *config.Config
	themeIndex int

	input   textinput.Model
	spinner spinner.Model
	ticket  *ticketForm

	itemTitles []string

	current     *engine.Comparison
	leftRegion  string
	rightRegion string

	ranked      []engine.ScoreEntry
	resultViews []string

	statusMessage string
	err           error
}

type engineReadyMsg struct {
	err error
}

// startRequestedMsg is the programmatic equivalent of pressing start.
type startRequestedMsg struct{}

func NewModel(eng Engine, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = &config.Config{}
	}

	themeNames := GetThemeNames()
	themeName := cfg.Theme
	themeIndex := -1

	for i, name := range themeNames {
		if name == themeName {
			themeIndex = i
			break
		}
	}
	if themeIndex == -1 {
		themeName = "default"
		for i, name := range themeNames {
			if name == themeName {
				themeIndex = i
				break
			}
		}
	}

	theme := Themes[themeName]

	input := textinput.New()
	input.Placeholder = "type an item, empty input starts the round"
	input.CharLimit = 256
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))

	return &Model{
		state:      StateLoading,
		styles:     NewStyles(theme),
		keys:       DefaultKeyMap(),
		eng:        eng,
		factory:    card.NewFactory(NewStyleSheet(theme)),
		cfg:        cfg,
		themeIndex: themeIndex,
		input:      input,
		spinner:    s,
	}
}

// Err reports the fatal error that terminated the program, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initEngine())
}

// initEngine performs the one-time asynchronous engine initialization.
// Until it completes, key presses have no observable effect.
func (m *Model) initEngine() tea.Cmd {
	return func() tea.Msg {
		return engineReadyMsg{err: m.eng.Load()}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.rerender()

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case engineReadyMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("session not restored: %v", msg.err)
		}
		m.enterSetup()
		return m, textinput.Blink

	case startRequestedMsg:
		return m, m.startComparison()
	}

	if m.state == StateSetup && m.ticket != nil {
		return m.updateTicketForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}

	if m.state == StateSetup {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateLoading:
		if keyMatches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		return m, nil
	case StateSetup:
		return m.handleSetupKeys(msg)
	case StateComparing:
		return m.handleComparingKeys(msg)
	case StateResults:
		return m.handleResultsKeys(msg)
	}
	return m, nil
}

// Setup

func (m *Model) enterSetup() {
	m.state = StateSetup
	m.current = nil
	m.input.SetValue("")
	m.input.Focus()
	m.refreshItemList()
}

// refreshItemList rebuilds the setup item list. An ongoing comparison gets
// the fresh-start framing: nothing listed, engine state untouched.
func (m *Model) refreshItemList() {
	if m.eng.HasOngoingComparison() {
		m.itemTitles = nil
		return
	}

	items := m.eng.Items()
	titles := make([]string, 0, len(items))
	for _, raw := range items {
		titles = append(titles, card.DecodeTitle(raw))
	}
	m.itemTitles = titles
}

func (m *Model) handleSetupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.Submit):
		return m, m.handleSetupSubmit()
	case keyMatches(msg, m.keys.Ticket):
		m.ticket = newTicketForm()
		return m, m.ticket.Init()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSetupSubmit is the single submit handler behind the two setup
// intents: a non-empty input adds an item, an empty input finishes setup.
func (m *Model) handleSetupSubmit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m.submitFinishSetup()
	}
	m.submitAddItem(text)
	return nil
}

// submitAddItem clears and refocuses the input, pushes the text into the
// engine as a new item and refreshes the displayed list.
func (m *Model) submitAddItem(text string) {
	m.input.SetValue("")
	m.input.Focus()
	m.eng.PushItem(text)
	m.refreshItemList()
}

// submitFinishSetup reinterprets an empty add as "I'm done": it re-renders
// the list in its minimal framing and triggers the start action, without
// itself starting the comparison.
func (m *Model) submitFinishSetup() tea.Cmd {
	m.itemTitles = nil
	return func() tea.Msg {
		return startRequestedMsg{}
	}
}

func (m *Model) updateTicketForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.ticket.Update(msg)

	switch m.ticket.State() {
	case huh.StateCompleted:
		payload, err := m.ticket.payload()
		if err != nil {
			m.statusMessage = fmt.Sprintf("could not add ticket: %v", err)
		} else {
			m.eng.PushItem(payload)
			m.refreshItemList()
		}
		m.ticket = nil
		return m, textinput.Blink
	case huh.StateAborted:
		m.ticket = nil
		return m, textinput.Blink
	}

	return m, cmd
}

// Comparing

// startComparison begins a fresh run, discarding an in-progress one first:
// setup always starts over.
func (m *Model) startComparison() tea.Cmd {
	if m.eng.HasOngoingComparison() {
		m.eng.ResetComparison()
	}
	m.eng.StartComparison()
	m.state = StateComparing
	m.statusMessage = ""
	return m.advance()
}

// advance asks the engine for the next comparison. A pair replaces both
// display regions; exhaustion clears them and reveals the results in the
// same transition.
func (m *Model) advance() tea.Cmd {
	next := m.eng.NextComparison()
	if next == nil {
		m.current = nil
		m.leftRegion = ""
		m.rightRegion = ""
		return m.enterResults()
	}

	m.current = next
	return m.renderCurrent()
}

// renderCurrent renders the current pair into the display regions, both
// sides live and votable.
func (m *Model) renderCurrent() tea.Cmd {
	if m.current == nil {
		return nil
	}

	left, err := m.factory.RenderItem(m.current.Left, false)
	if err != nil {
		return m.fail(err)
	}
	right, err := m.factory.RenderItem(m.current.Right, false)
	if err != nil {
		return m.fail(err)
	}

	m.leftRegion = left.Render(m.cardWidth())
	m.rightRegion = right.Render(m.cardWidth())
	return nil
}

func (m *Model) handleComparingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.VoteLeft):
		return m, m.vote(true)
	case keyMatches(msg, m.keys.VoteRight):
		return m, m.vote(false)
	case keyMatches(msg, m.keys.CycleTheme):
		return m, m.cycleTheme()
	}
	return m, nil
}

// vote records the chosen side as the winner and advances. Without a
// current comparison the press is a no-op; this guards against stale input
// after the comparison set has been exhausted.
func (m *Model) vote(leftWins bool) tea.Cmd {
	if m.current == nil {
		return nil
	}

	winner, loser := m.current.Left, m.current.Right
	if !leftWins {
		winner, loser = loser, winner
	}
	m.eng.TrackResult(winner, loser)
	return m.advance()
}

// Results

// enterResults fetches the final scores, sorts them by score descending
// (ties keep engine order) and renders every item vote-hidden.
func (m *Model) enterResults() tea.Cmd {
	scores := m.eng.Scores()
	ranked := make([]engine.ScoreEntry, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	views := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		view, err := m.factory.RenderItem(entry.Item, true)
		if err != nil {
			return m.fail(err)
		}
		views = append(views, view.Render(m.cardWidth()))
	}

	m.ranked = ranked
	m.resultViews = views
	m.state = StateResults
	return nil
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case keyMatches(msg, m.keys.Copy):
		if err := clipboard.WriteAll(m.resultsText()); err != nil {
			m.statusMessage = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.statusMessage = "results copied to clipboard"
		}
		return m, nil
	case keyMatches(msg, m.keys.NewRound):
		m.enterSetup()
		return m, textinput.Blink
	case keyMatches(msg, m.keys.CycleTheme):
		return m, m.cycleTheme()
	}
	return m, nil
}

// resultsText is the plain-text ranking used for the clipboard export.
func (m *Model) resultsText() string {
	var b strings.Builder
	for i, entry := range m.ranked {
		fmt.Fprintf(&b, "%d. %s (%d points)\n", i+1, card.DecodeTitle(entry.Item), entry.Score)
	}
	return b.String()
}

// Shared

// fail terminates the program; render contract violations have no
// recovery path.
func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	return tea.Quit
}

func (m *Model) cycleTheme() tea.Cmd {
	themeNames := GetThemeNames()
	m.themeIndex = (m.themeIndex + 1) % len(themeNames)
	newTheme := themeNames[m.themeIndex]

	theme := Themes[newTheme]
	m.styles = NewStyles(theme)
	m.factory = card.NewFactory(NewStyleSheet(theme))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))

	if m.cfg != nil {
		m.cfg.Theme = newTheme
		_ = m.cfg.Save()
	}

	return m.rerender()
}

// rerender redraws the cached card regions after a theme or size change.
// Cards carry no state, so redrawing is always a fresh render.
func (m *Model) rerender() tea.Cmd {
	switch m.state {
	case StateComparing:
		return m.renderCurrent()
	case StateResults:
		return m.enterResults()
	}
	return nil
}

func (m *Model) cardWidth() int {
	width := (m.width - 8) / 2
	if width < 28 {
		width = 28
	}
	if width > 48 {
		width = 48
	}
	return width
}

func keyMatches(msg tea.KeyMsg, target key.Binding) bool {
	for _, k := range target.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}
