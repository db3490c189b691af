package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	bt "github.com/fwojciec/chatcards/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits on one line", "hello world", 20, []string{"hello world"}},
		{"breaks between words", "hello world", 5, []string{"hello", "world"}},
		{"collapses runs of spaces", "a   b", 10, []string{"a b"}},
		{"keeps explicit newlines", "a\nb", 10, []string{"a", "b"}},
		{"keeps blank lines", "a\n\nb", 10, []string{"a", "", "b"}},
		{"splits long words", "abcdefgh", 4, []string{"abcd", "efgh"}},
		{"splits long word after short one", "ab cdefghij", 4, []string{"ab", "cdef", "ghij"}},
		{"empty text", "", 10, []string{""}},
		{"non-positive width only splits newlines", "a b\nc", 0, []string{"a b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bt.Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_LinesFitWidth(t *testing.T) {
	t.Parallel()

	text := "Long messages are clamped to a single line while collapsed, so the list stays easy to scan. 日本語のテキストも折り返されます。 ❤️❤️❤️ ☺️☺️ 👍🏽👍🏽"
	for _, width := range []int{5, 12, 33} {
		for _, line := range bt.Wrap(text, width) {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d line %q", width, line)
		}
	}
}

func TestClampLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", bt.ClampLine("a  b\nc", 10))
	assert.Equal(t, "short", bt.ClampLine("short", 10))

	clamped := bt.ClampLine(longBody, 10)
	assert.True(t, strings.HasSuffix(clamped, "…"))
	assert.LessOrEqual(t, lipgloss.Width(clamped), 10)

	emoji := bt.ClampLine(strings.Repeat("❤️", 20), 10)
	assert.True(t, strings.HasSuffix(emoji, "…"))
	assert.LessOrEqual(t, lipgloss.Width(emoji), 10)
}

func TestAvatarText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(A)", bt.AvatarText("alice"))
	assert.Equal(t, "(B)", bt.AvatarText("  Bob"))
	assert.Equal(t, "(?)", bt.AvatarText(""))
	assert.Equal(t, "(?)", bt.AvatarText("   "))
}
