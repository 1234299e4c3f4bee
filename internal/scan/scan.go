// Package scan holds the lexical primitives used to pull documentation out of
// source text without parsing it: a delimiter-balanced scope scanner, a literal
// token locator and a delimited value extractor.
//
// None of the primitives understand comments or string literals. A brace in a
// comment counts like any other brace.
package scan

import "strings"

// NotFound is returned by the locators when a marker is absent.
const NotFound = -1

// Quote is the default delimiter for StringValue.
const Quote = `"`

// ScopedText returns the text from offset up to and including the close
// delimiter that brings the scope level from level down to zero. If the text
// runs out first, everything from offset on is returned.
func ScopedText(text string, offset int, open, close byte, level int) string {
	if offset < 0 || offset >= len(text) {
		return ""
	}
	depth := level
	for i := offset; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			depth--
		}
		if depth == 0 {
			return text[offset : i+1]
		}
	}
	return text[offset:]
}

// FindToken returns the offset just past the first occurrence of marker at
// or after from, or NotFound.
func FindToken(text, marker string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		return NotFound
	}
	i := strings.Index(text[from:], marker)
	if i < 0 {
		return NotFound
	}
	return from + i + len(marker)
}

// StringValue returns the text between the first start delimiter at or after
// pos and the next end delimiter following it. The returned offset is the
// position of the end delimiter. When either delimiter is missing, pos is
// returned unchanged with ok set to false.
func StringValue(text string, pos int, start, end string) (newPos int, value string, ok bool) {
	if pos < 0 || pos > len(text) {
		return pos, "", false
	}
	s := strings.Index(text[pos:], start)
	if s < 0 {
		return pos, "", false
	}
	vs := pos + s + len(start)
	e := strings.Index(text[vs:], end)
	if e < 0 {
		return pos, "", false
	}
	ve := vs + e
	return ve, text[vs:ve], true
}
