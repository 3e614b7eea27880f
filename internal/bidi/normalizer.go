// Package bidi repairs lines of extracted text whose right-to-left words were
// emitted in visual rather than logical order.
package bidi

import (
	"strings"
	"unicode"
	"unicode/utf8"

	xbidi "golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// LogicalOrderMark (U+200F RIGHT-TO-LEFT MARK) prefixes every line Normalize
// rewrites. A line that starts with a directional mark is treated as already
// being in logical order.
const LogicalOrderMark = '\u200f'

// IsScriptRune reports whether r is a right-to-left letter.
func IsScriptRune(r rune) bool {
	if r < 0x0590 {
		return false
	}
	p, _ := xbidi.LookupRune(r)
	switch p.Class() {
	case xbidi.R, xbidi.AL:
		return true
	default:
		return false
	}
}

// IsMark reports whether r is an invisible directional formatting character.
func IsMark(r rune) bool {
	switch r {
	case '\u200e', '\u200f', '\u061c',
		'\u202a', '\u202b', '\u202c', '\u202d', '\u202e',
		'\u2066', '\u2067', '\u2068', '\u2069':
		return true
	default:
		return false
	}
}

// StripMarks removes directional formatting characters from s.
func StripMarks(s string) string {
	if !strings.ContainsFunc(s, IsMark) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if IsMark(r) {
			return -1
		}
		return r
	}, s)
}

// IsReversed reports whether line looks like it was rendered in visual order:
// a right-to-left letter touching a colon, or two or more separate runs of
// right-to-left letters. The check is deliberately permissive.
func IsReversed(line string) bool {
	if r, _ := utf8.DecodeRuneInString(line); IsMark(r) {
		return false
	}

	rs := []rune(line)
	runs := 0
	inRun := false
	for i, r := range rs {
		if IsScriptRune(r) {
			if !inRun {
				runs++
				if runs >= 2 {
					return true
				}
			}
			inRun = true
			continue
		}
		if unicode.Is(unicode.Mn, r) {
			// points belong to the run they sit in
			continue
		}
		inRun = false
		if r != ':' {
			continue
		}
		if i+1 < len(rs) && IsScriptRune(rs[i+1]) {
			return true
		}
		// letters, optional spaces, then the colon
		for j := i - 1; j >= 0; j-- {
			if unicode.IsSpace(rs[j]) || unicode.Is(unicode.Mn, rs[j]) {
				continue
			}
			if IsScriptRune(rs[j]) {
				return true
			}
			break
		}
	}
	return false
}

// ReverseLine rewrites a visually ordered line into logical order: token order
// is reversed, and the characters of every token holding a right-to-left
// letter are reversed. Tokens without such letters keep their content.
func ReverseLine(line string) string {
	tokens := strings.Fields(line)
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	for i, tok := range tokens {
		if strings.ContainsFunc(tok, IsScriptRune) {
			tokens[i] = reverseClusters(tok)
		}
	}
	return strings.Join(tokens, " ")
}

// reverseClusters reverses s while keeping combining marks after their base.
func reverseClusters(s string) string {
	var clusters []string
	start := 0
	for i, r := range s {
		if i > 0 && !unicode.Is(unicode.Mn, r) {
			clusters = append(clusters, s[start:i])
			start = i
		}
	}
	clusters = append(clusters, s[start:])

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}

// Normalize canonicalises line endings and Unicode composition, then rewrites
// every line IsReversed flags. Rewritten lines carry LogicalOrderMark so that
// normalizing the output again changes nothing.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = norm.NFC.String(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if IsReversed(line) {
			lines[i] = string(LogicalOrderMark) + ReverseLine(line)
		}
	}
	return strings.Join(lines, "\n")
}

// ReversedLines returns the indexes of the lines of text that IsReversed flags.
func ReversedLines(text string) []int {
	var idx []int
	for i, line := range strings.Split(text, "\n") {
		if IsReversed(line) {
			idx = append(idx, i)
		}
	}
	return idx
}
