package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "simple wrap",
			text:     "hello world",
			width:    5,
			expected: []string{"hello", "world"},
		},
		{
			name:     "no wrap needed",
			text:     "hello",
			width:    10,
			expected: []string{"hello"},
		},
		{
			name:     "multiple wraps",
			text:     "this is a long text that needs wrapping",
			width:    10,
			expected: []string{"this is a", "long text", "that needs", "wrapping"},
		},
		{
			name:     "empty string",
			text:     "",
			width:    10,
			expected: nil,
		},
		{
			name:     "single word longer than width",
			text:     "supercalifragilistic",
			width:    10,
			expected: []string{"supercalifragilistic"},
		},
		{
			name:     "multiple spaces",
			text:     "hello    world",
			width:    20,
			expected: []string{"hello world"},
		},
		{
			name:     "styled words measured by visible width",
			text:     "\x1b[33mhello\x1b[39m \x1b[36mworld\x1b[39m",
			width:    12,
			expected: []string{"\x1b[33mhello\x1b[39m \x1b[36mworld\x1b[39m"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Wrap(tt.text, tt.width)
			assert.EqualValues(t, tt.expected, result, "wrapped text mismatch for input %q with width %d", tt.text, tt.width)
		})
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	t.Run("no escape sequences", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "a", "--verbose", "build|b [options] <target>"} {
			assert.Equal(t, len(s), Width(s), "input %q", s)
		}
	})
	t.Run("canonical sequences discount five columns each", func(t *testing.T) {
		t.Parallel()
		plain := "deploy"
		for k := 0; k <= 6; k++ {
			var b strings.Builder
			for i := 0; i < k; i++ {
				if i%2 == 0 {
					b.WriteString("\x1b[33m")
				} else {
					b.WriteString("\x1b[39m")
				}
			}
			b.WriteString(plain)
			s := b.String()
			assert.Equal(t, len(s)-5*k, Width(s), "k=%d", k)
		}
	})
	t.Run("reset and compound sequences", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 3, Width("\x1b[0mapp\x1b[0m"))
		assert.Equal(t, 3, Width("\x1b[1;33mapp\x1b[0m"))
	})
	t.Run("malformed sequence is counted", func(t *testing.T) {
		t.Parallel()
		// Not an SGR sequence, so every byte is treated as visible text.
		s := "\x1b[33xapp"
		assert.Equal(t, Width(s), Width(Strip(s)))
		assert.Greater(t, Width(s), 3)
	})
	t.Run("wide runes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 4, Width("\x1b[32m日本\x1b[39m"))
	})
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	got := PadRight("\x1b[36m--verbose\x1b[39m", 12)
	require.Equal(t, 12, Width(got))
	assert.True(t, strings.HasSuffix(got, "\x1b[39m   "))

	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}

func TestIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  a\n  b", Indent("a\nb", 2))
	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", 2))
}
