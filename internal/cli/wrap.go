package cli

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapIndent wraps text to width display columns. Continuation lines are
// prefixed with indent, which counts toward the width.
func wrapIndent(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if width <= 0 {
		return strings.Join(words, " ")
	}
	indentWidth := runewidth.StringWidth(indent)
	var b strings.Builder
	lineWidth := 0
	for i, word := range words {
		wordWidth := runewidth.StringWidth(word)
		switch {
		case i == 0:
			lineWidth = wordWidth
		case lineWidth+1+wordWidth > width:
			b.WriteString("\n" + indent)
			lineWidth = indentWidth + wordWidth
		default:
			b.WriteByte(' ')
			lineWidth += 1 + wordWidth
		}
		b.WriteString(word)
	}
	return b.String()
}
