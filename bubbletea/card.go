package bubbletea

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/chatcards"
	"github.com/rivo/uniseg"
)

const (
	// Horizontal space a card spends on its frame: border and padding on
	// both sides.
	cardChrome = 4

	// Rows of a collapsed card: top border, header, one body line, bottom
	// border.
	collapsedHeight = 4
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// RenderContext carries the inputs a card receives from its container on
// every render. Dark is the externally owned display-mode signal.
type RenderContext struct {
	Width   int
	Dark    bool
	Focused bool
}

// MessageCard renders one Message as an avatar, an author label and a body
// label. Its only state is whether the body is expanded.
type MessageCard struct {
	id       int
	tag      int
	msg      chatcards.Message
	avatar   string
	expanded bool
	animate  bool
	anim     expandAnim
	styles   Styles
	wrap     wrapCache
}

// NewMessageCard creates a collapsed MessageCard. When animate is false the
// fill and the body height jump to their targets instead of easing.
func NewMessageCard(msg chatcards.Message, styles Styles, animate bool) *MessageCard {
	return &MessageCard{
		id:      nextID(),
		msg:     msg,
		avatar:  avatarText(msg.Author),
		animate: animate,
		anim:    newSurfaceAnim(),
		styles:  styles,
	}
}

// ID returns the card's instance ID. IDs are never reused, so a card that
// is dropped and created again gets a new one.
func (c *MessageCard) ID() int { return c.id }

// Message returns the message the card renders.
func (c *MessageCard) Message() chatcards.Message { return c.msg }

// Expanded reports whether the body is shown in full.
func (c *MessageCard) Expanded() bool { return c.expanded }

// Animating reports whether the card is still easing toward its target.
func (c *MessageCard) Animating() bool { return !c.anim.settled() }

func (c *MessageCard) Update(msg tea.Msg) (*MessageCard, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		c.expanded = !c.expanded
		c.tag++
		c.anim.target = 0
		if c.expanded {
			c.anim.target = 1
		}
		if !c.animate {
			c.anim.snap()
			return c, nil
		}
		return c, c.nextFrame()
	case FrameMsg:
		if msg.ID != c.id || msg.tag != c.tag {
			return c, nil
		}
		if c.anim.step() {
			return c, nil
		}
		return c, c.nextFrame()
	}
	return c, nil
}

func (c *MessageCard) nextFrame() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag}
	})
}

// BodyLines returns the body lines visible at the given card width: one
// clamped line when collapsed, every wrapped line when expanded. While the
// animation runs the number of lines follows its progress, and the last
// visible line is clamped over whatever is still hidden.
func (c *MessageCard) BodyLines(width int) []string {
	w := c.textWidth(width)
	if !c.expanded && c.anim.settled() {
		return []string{clampLine(c.msg.Body, w)}
	}

	lines, ok := c.wrap.get(w)
	if !ok {
		lines = wrap(c.msg.Body, w)
		c.wrap.set(w, lines)
	}

	n := 1 + int(math.Round(c.anim.progress()*float64(len(lines)-1)))
	if n >= len(lines) {
		return lines
	}
	shown := make([]string, n)
	copy(shown, lines[:n-1])
	shown[n-1] = clampLine(strings.Join(lines[n-1:], " "), w)
	return shown
}

func (c *MessageCard) View(rc RenderContext) string {
	width := max(rc.Width, minCardWidth(c.avatar))
	textW := c.textWidth(width)
	bg := c.styles.Surface(rc.Dark, c.anim.progress())
	fill := lipgloss.NewStyle().Background(bg)

	author := c.styles.Author.Background(bg).Width(textW).Render(clampLine(c.msg.Author, textW))
	header := c.styles.Avatar.Background(bg).Render(c.avatar) + fill.Render(" ") + author

	indent := fill.Render(strings.Repeat(" ", ansi.StringWidth(c.avatar)+1))
	body := c.styles.Body(rc.Dark).Background(bg).Width(textW)

	lines := []string{header}
	for _, l := range c.BodyLines(width) {
		lines = append(lines, indent+body.Render(l))
	}

	border := c.styles.IdleBorder
	if rc.Focused {
		border = c.styles.FocusBorder
	}
	return c.styles.Card.
		BorderForeground(border).
		BorderBackground(bg).
		Background(bg).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// textWidth is the width available to the author and body labels.
func (c *MessageCard) textWidth(width int) int {
	return max(1, width-cardChrome-ansi.StringWidth(c.avatar)-1)
}

func minCardWidth(avatar string) int {
	return cardChrome + ansi.StringWidth(avatar) + 2
}

// avatarText draws the author's initial inside a round frame.
func avatarText(author string) string {
	g := uniseg.NewGraphemes(strings.TrimSpace(author))
	if !g.Next() {
		return "(?)"
	}
	return "(" + strings.ToUpper(g.Str()) + ")"
}
