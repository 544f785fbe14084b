package charset

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanedText returns text with all characters unsupported by the character
// set replaced: either with the same letter without accent (A instead of Ă),
// with characters of similar meaning ((c) instead of ©), with a space for
// unsupported whitespace, or with a dot. Runs of consecutive dot fallbacks
// collapse into a single dot.
//
// Letters built from a base code point plus a combining mark are recognized
// and converted to the precomposed form.
//
// The second return value reports whether unsupported characters were
// replaced. If the result would be empty, "" is returned.
func CleanedText(text string, cs CharacterSet) (string, bool) {
	return cleanText(text, cs, false)
}

// CleanedAndTrimmedText behaves like CleanedText and additionally removes
// leading and trailing whitespace and collapses consecutive spaces into one.
// Trimming alone does not count as a replacement.
func CleanedAndTrimmedText(text string, cs CharacterSet) (string, bool) {
	return cleanText(text, cs, true)
}

func cleanText(text string, cs CharacterSet, trimWhitespace bool) (string, bool) {
	if text == "" {
		return "", false
	}

	replaced := false
	if !IsValidText(text, cs) {
		// Precomposing may already fix accents built from two code points.
		if !norm.NFC.IsNormalString(text) {
			text = norm.NFC.String(text)
		}
		if !IsValidText(text, cs) {
			text = replaceCharacters(text, cs)
			replaced = true
		}
	}

	if trimWhitespace {
		text = spacesCleaned(text)
	}
	return text, replaced
}

func replaceCharacters(text string, cs CharacterSet) string {
	var sb strings.Builder
	inFallback := false
	for _, r := range text {
		switch {
		case cs.Contains(r):
			sb.WriteRune(r)
			inFallback = false
		case replaceRune(r, cs, &sb):
			inFallback = false
		case !inFallback:
			sb.WriteByte('.')
			inFallback = true
		}
	}
	return sb.String()
}

// replaceRune appends a replacement for the unsupported rune r to sb and
// reports whether one was found.
func replaceRune(r rune, cs CharacterSet, sb *strings.Builder) bool {
	if unicode.IsSpace(r) {
		sb.WriteByte(' ')
		return true
	}

	// precomputed single-character replacements
	pos := sort.Search(len(quickReplacementsFrom), func(i int) bool {
		return quickReplacementsFrom[i] >= r
	})
	if pos < len(quickReplacementsFrom) && quickReplacementsFrom[pos] == r {
		sb.WriteRune(quickReplacementsTo[pos])
		return true
	}

	if s, ok := decomposedString(r, cs, norm.NFD); ok {
		sb.WriteString(s)
		return true
	}
	if s, ok := decomposedString(r, cs, norm.NFKD); ok {
		sb.WriteString(s)
		return true
	}

	if s, ok := additionalReplacements[r]; ok {
		sb.WriteString(s)
		return true
	}

	return false
}

// decomposedString decomposes r under the given normalization form and
// reports whether the decomposition is usable: all code points valid, or
// valid except for a trailing combining diacritical mark (dropped) or a
// fraction slash (replaced with '/').
func decomposedString(r rune, cs CharacterSet, form norm.Form) (string, bool) {
	decomposed := []rune(form.String(string(r)))

	hasFractionSlash := false
	for i, d := range decomposed {
		if cs.Contains(d) {
			continue
		}
		if i == len(decomposed)-1 && d >= 0x0300 && d <= 0x036f {
			return string(decomposed[:i]), true
		}
		if d == '⁄' {
			hasFractionSlash = true
		} else {
			return "", false
		}
	}

	s := string(decomposed)
	if hasFractionSlash {
		s = strings.ReplaceAll(s, "⁄", "/")
	}
	return s, true
}

// spacesCleaned trims leading and trailing whitespace and collapses runs of
// spaces into a single space.
func spacesCleaned(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "  ") {
		return text
	}
	var sb strings.Builder
	lastWasSpace := false
	for _, r := range text {
		if r == ' ' {
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
		} else {
			lastWasSpace = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
