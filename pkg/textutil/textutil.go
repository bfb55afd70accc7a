// Package textutil measures, pads and wraps terminal text that may carry ANSI styling.
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// sgrPattern matches a Select Graphic Rendition escape, e.g. "\x1b[33m" or "\x1b[1;33m".
var sgrPattern = regexp.MustCompile(`\x1b\[\d+(?:;\d+)*m`)

// Strip removes all SGR escape sequences from s.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return sgrPattern.ReplaceAllString(s, "")
}

// Width returns the number of terminal columns s occupies. Escape sequences do not count toward
// the width, so a term styled with any number of sequences measures the same as its plain text.
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// PadRight appends spaces to s until it occupies width visible columns. Strings that are already
// wide enough are returned unchanged.
func PadRight(s string, width int) string {
	n := width - Width(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// Wrap splits text into lines no wider than width visible columns, breaking on whitespace. A word
// wider than width is kept on its own line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines         []string
		currentLine   []string
		currentLength int
	)
	for _, word := range words {
		wordWidth := Width(word)
		if currentLength+wordWidth+1 > width {
			if len(currentLine) > 0 {
				lines = append(lines, strings.Join(currentLine, " "))
				currentLine = []string{word}
				currentLength = wordWidth
			} else {
				lines = append(lines, word)
			}
			continue
		}
		currentLine = append(currentLine, word)
		if currentLength == 0 {
			currentLength = wordWidth
		} else {
			currentLength += wordWidth + 1
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}
	return lines
}

// Indent prefixes every non-empty line of s with n spaces.
func Indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
