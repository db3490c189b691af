package bubbletea

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatcards"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the conversation. It shows one
// MessageCard per message, in order, and only keeps cards realized while
// they are on screen or within Config.Retain items of it.
type Model struct {
	// Viewport clips the rendered cards to the screen. Exported for test access.
	Viewport viewport.Model
	// Help renders the key hints in the status line.
	Help help.Model

	keys     KeyMap
	styles   Styles
	messages []chatcards.Message
	cards    map[int]*MessageCard // realized cards keyed by message index

	focus      int // index of focused card (-1 = none)
	offset     int // index of the first visible card
	lineOffset int // rows of the card at offset scrolled above the screen
	width      int
	height     int
	dark       bool
	animate    bool
	retain     int
	log        *slog.Logger
	ready      bool
}

// Rows one wheel notch scrolls inside a card taller than the screen.
const wheelLines = 3

// New creates a conversation Model over messages. The slice is copied.
func New(messages []chatcards.Message, theme chatcards.Theme, cfg Config) Model {
	msgs := make([]chatcards.Message, len(messages))
	copy(msgs, messages)

	focus := -1
	if len(msgs) > 0 {
		focus = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return Model{
		Help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   NewStyles(theme),
		messages: msgs,
		cards:    make(map[int]*MessageCard),
		focus:    focus,
		dark:     cfg.Dark,
		animate:  !cfg.NoAnimation,
		retain:   max(0, cfg.Retain),
		log:      logger,
	}
}

// Len returns the number of messages in the conversation.
func (m Model) Len() int { return len(m.messages) }

// Focus returns the index of the focused card, or -1 when there are none.
func (m Model) Focus() int { return m.focus }

// Dark reports the display-mode signal the model currently renders with.
func (m Model) Dark() bool { return m.dark }

// Card returns the realized card for message i, or nil if it is not realized.
func (m Model) Card(i int) *MessageCard { return m.cards[i] }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ToggleMsg:
		return m.toggle(m.focus)

	case FrameMsg:
		for _, c := range m.cards {
			if c.ID() == msg.ID {
				_, cmd := c.Update(msg)
				return m.ensureVisible().refresh(), cmd
			}
		}
		return m, nil

	case DisplayModeMsg:
		m.dark = msg.Dark
		m.log.Debug("display mode changed", "dark", m.dark)
		return m.refresh(), nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	vpHeight := m.viewportHeight()

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m.ensureVisible().refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		return m.toggle(m.focus)
	case key.Matches(msg, m.keys.Mode):
		dark := !m.dark
		return m, func() tea.Msg { return DisplayModeMsg{Dark: dark} }
	case key.Matches(msg, m.keys.Up):
		if m.focusScrolled() {
			m = m.scrollWithin(-1)
		} else {
			m = m.setFocus(m.focus - 1)
		}
	case key.Matches(msg, m.keys.Down):
		if m.focusOverflows() {
			m = m.scrollWithin(1)
		} else {
			m = m.setFocus(m.focus + 1)
		}
	case key.Matches(msg, m.keys.PageUp):
		if m.focusScrolled() {
			m = m.scrollWithin(-m.Viewport.Height)
		} else {
			m = m.setFocus(m.focus - m.pageSize())
		}
	case key.Matches(msg, m.keys.PageDown):
		if m.focusOverflows() {
			m = m.scrollWithin(m.Viewport.Height)
		} else {
			m = m.setFocus(m.focus + m.pageSize())
		}
	case key.Matches(msg, m.keys.Top):
		m = m.setFocus(0)
	case key.Matches(msg, m.keys.Bottom):
		m = m.setFocus(len(m.messages) - 1)
	case key.Matches(msg, m.keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		if m.ready {
			m.Viewport.Height = m.viewportHeight()
		}
		m = m.ensureVisible()
	default:
		return m, nil
	}
	return m.refresh(), nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		i := m.cardAt(msg.Y)
		if i < 0 {
			return m, nil
		}
		m.focus = i
		return m.toggle(i)
	case tea.MouseButtonWheelUp:
		if m.lineOffset > 0 {
			m = m.scrollWithin(-wheelLines)
		} else {
			m = m.scroll(-1)
		}
	case tea.MouseButtonWheelDown:
		if m.topOverflows() {
			m = m.scrollWithin(wheelLines)
		} else {
			m = m.scroll(1)
		}
	default:
		return m, nil
	}
	return m.refresh(), nil
}

func (m Model) toggle(i int) (Model, tea.Cmd) {
	if i < 0 || i >= len(m.messages) {
		return m, nil
	}
	c := m.card(i)
	_, cmd := c.Update(ToggleMsg{})
	m.log.Debug("card toggled", "index", i, "id", c.ID(), "expanded", c.Expanded())
	return m.ensureVisible().refresh(), cmd
}

func (m Model) setFocus(i int) Model {
	if len(m.messages) == 0 {
		return m
	}
	m.focus = max(0, min(i, len(m.messages)-1))
	return m.ensureVisible()
}

// ensureVisible scrolls so the focused card starts on screen and, when it
// fits, ends on screen too. A focused card taller than the screen keeps
// the rows it has been scrolled by.
func (m Model) ensureVisible() Model {
	if !m.ready || m.focus < 0 {
		return m
	}
	if m.focus < m.offset {
		m.offset = m.focus
		m.lineOffset = 0
		return m
	}
	m = m.clampLineOffset()
	used := m.measure(m.offset) - m.lineOffset
	for i := m.offset + 1; i <= m.focus; i++ {
		used += m.measure(i)
	}
	for used > m.Viewport.Height && m.offset < m.focus {
		used -= m.measure(m.offset) - m.lineOffset
		m.offset++
		m.lineOffset = 0
	}
	return m
}

// scroll moves the top of the screen by whole cards.
func (m Model) scroll(delta int) Model {
	offset := max(0, min(m.offset+delta, m.maxOffset()))
	if offset != m.offset {
		m.offset = offset
		m.lineOffset = 0
	}
	return m
}

// scrollWithin moves the screen by rows inside the card at offset, never
// past the point where its last row sits on the bottom row.
func (m Model) scrollWithin(delta int) Model {
	m.lineOffset += delta
	return m.clampLineOffset()
}

func (m Model) clampLineOffset() Model {
	if len(m.messages) == 0 {
		m.lineOffset = 0
		return m
	}
	m.lineOffset = max(0, min(m.lineOffset, m.measure(m.offset)-m.Viewport.Height))
	return m
}

// topOverflows reports whether the card at offset still has rows below
// the bottom of the screen.
func (m Model) topOverflows() bool {
	return len(m.messages) > 0 && m.measure(m.offset)-m.lineOffset > m.Viewport.Height
}

// focusOverflows reports whether the focused card is the top card and
// runs past the bottom of the screen.
func (m Model) focusOverflows() bool {
	return m.focus >= 0 && m.focus == m.offset && m.topOverflows()
}

// focusScrolled reports whether the focused card is the top card and its
// first rows are scrolled off screen.
func (m Model) focusScrolled() bool {
	return m.focus >= 0 && m.focus == m.offset && m.lineOffset > 0
}

// maxOffset is the first index from which the remaining cards fill the
// viewport without running out.
func (m Model) maxOffset() int {
	n := len(m.messages)
	used := 0
	for i := n - 1; i >= 0; i-- {
		used += m.measure(i)
		if used > m.Viewport.Height {
			return min(i+1, n-1)
		}
	}
	return 0
}

func (m Model) pageSize() int {
	first, last := m.visibleRange()
	return max(1, last-first)
}

// visibleRange returns the indices of the first and last card that are at
// least partly on screen. last < first when there are no messages.
func (m Model) visibleRange() (int, int) {
	if len(m.messages) == 0 {
		return 0, -1
	}
	last := m.offset
	used := -m.lineOffset
	for i := m.offset; i < len(m.messages); i++ {
		used += m.measure(i)
		last = i
		if used >= m.Viewport.Height {
			break
		}
	}
	return m.offset, last
}

// cardAt returns the index of the card drawn on screen row y, or -1.
func (m Model) cardAt(y int) int {
	if y < 0 || y >= m.Viewport.Height {
		return -1
	}
	used := -m.lineOffset
	for i := m.offset; i < len(m.messages); i++ {
		used += m.measure(i)
		if y < used {
			return i
		}
	}
	return -1
}

// measure returns the rendered height of card i. Cards that are not
// realized would first appear collapsed.
func (m Model) measure(i int) int {
	c, ok := m.cards[i]
	if !ok {
		return collapsedHeight
	}
	return lipgloss.Height(c.View(m.renderContext(i)))
}

// card returns the realized card for message i, realizing it if needed.
func (m Model) card(i int) *MessageCard {
	if c, ok := m.cards[i]; ok {
		return c
	}
	c := NewMessageCard(m.messages[i], m.styles, m.animate)
	m.cards[i] = c
	return c
}

// realize keeps exactly the cards in [first-retain, last+retain] realized.
// Dropped cards lose their state.
func (m Model) realize(first, last int) Model {
	lo := max(0, first-m.retain)
	hi := min(len(m.messages)-1, last+m.retain)

	created, dropped := 0, 0
	for i := lo; i <= hi; i++ {
		if _, ok := m.cards[i]; !ok {
			m.card(i)
			created++
		}
	}
	for i := range m.cards {
		if i < lo || i > hi {
			delete(m.cards, i)
			dropped++
		}
	}
	if created > 0 || dropped > 0 {
		m.log.Debug("realized window changed", "from", lo, "to", hi, "created", created, "dropped", dropped)
	}
	return m
}

// refresh realizes the visible window and re-renders it into the viewport.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m = m.clampLineOffset()
	first, last := m.visibleRange()
	m = m.realize(first, last)

	if len(m.messages) == 0 {
		m.Viewport.SetContent(m.styles.Muted.Render("No messages."))
		return m
	}

	views := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		views = append(views, m.card(i).View(m.renderContext(i)))
	}
	m.Viewport.SetContent(strings.Join(views, "\n"))
	m.Viewport.SetYOffset(m.lineOffset)
	return m
}

func (m Model) renderContext(i int) RenderContext {
	return RenderContext{
		Width:   m.Viewport.Width,
		Dark:    m.dark,
		Focused: i == m.focus,
	}
}

func (m Model) viewportHeight() int {
	return max(1, m.height-lipgloss.Height(m.statusLine()))
}

func (m Model) statusLine() string {
	pos := "0/0"
	if len(m.messages) > 0 {
		pos = fmt.Sprintf("%d/%d", m.focus+1, len(m.messages))
	}
	mode := "light mode"
	if m.dark {
		mode = "dark mode"
	}
	prefix := m.styles.Muted.Render(pos+" · "+mode) + "  "

	h := m.Help
	h.Width = max(1, m.width-lipgloss.Width(prefix))
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, h.View(m.keys))
}
