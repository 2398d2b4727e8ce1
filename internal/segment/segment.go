// Package segment splits cleaned answer text into candidate sentences.
package segment

import (
	"regexp"
	"strings"
)

var titleLineRe = regexp.MustCompile(`^Title:[^\n]*\n?`)

// Split segments text into trimmed sentences ending in terminal punctuation,
// dropping fragments shorter than minLen. A leading "Title: ..." header line
// is stripped first. Pure function of its input.
func Split(text string, minLen int) []string {
	text = titleLineRe.ReplaceAllString(strings.TrimSpace(text), "")

	var sentences []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Swallow runs of terminal punctuation ("?!", "...").
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}
		if end+1 < len(runes) && !isSpace(runes[end+1]) {
			i = end
			continue // mid-token, e.g. a decimal point or URL
		}
		if falseBoundary(runes, start, i, end) {
			i = end
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if len(sentence) >= minLen {
			sentences = append(sentences, sentence)
		}
		i = end
		start = end + 1
	}

	// Trailing text without terminal punctuation is a fragment; drop it.
	return sentences
}

// falseBoundary reports whether the terminator at term is an abbreviation,
// enumeration marker, or initialism rather than a sentence end. start is the
// beginning of the current sentence, end the last terminal rune.
func falseBoundary(runes []rune, start, term, end int) bool {
	if runes[term] != '.' {
		return false
	}

	// Preceding token: a single capital letter ("J.") or a short
	// enumeration number ("1.", "12.").
	tok := precedingToken(runes, start, term)
	if len(tok) == 1 && tok[0] >= 'A' && tok[0] <= 'Z' {
		return true
	}
	if len(tok) >= 1 && len(tok) <= 2 && allDigits(tok) {
		return true
	}

	// Lookahead: the next token continues an initialism ("R.") or starts a
	// list/decimal continuation ("3. ..." / "2)").
	next := followingToken(runes, end+1)
	if len(next) == 2 && next[0] >= 'A' && next[0] <= 'Z' && next[1] == '.' {
		return true
	}
	if len(next) >= 2 && allDigits(next[:len(next)-1]) &&
		(next[len(next)-1] == '.' || next[len(next)-1] == ')') {
		return true
	}
	return false
}

func precedingToken(runes []rune, start, term int) []rune {
	i := term
	for i > start && !isSpace(runes[i-1]) {
		i--
	}
	return runes[i:term]
}

func followingToken(runes []rune, from int) []rune {
	i := from
	for i < len(runes) && isSpace(runes[i]) {
		i++
	}
	j := i
	for j < len(runes) && !isSpace(runes[j]) {
		j++
	}
	return runes[i:j]
}

func allDigits(tok []rune) bool {
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(tok) > 0
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' }
