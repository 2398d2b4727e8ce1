// Package sanitize gates captured text between the answer-ready detector
// and the event extractor: it cleans known header noise and rejects blobs
// that are UI chrome, script content, or an echoed prompt rather than a
// real answer.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/runnerr0/timeliner/internal/config"
)

var (
	headerRe     = regexp.MustCompile(`(?i)^historical context and summary[^\n(]*(\(\s*~?\d+\s*words?\s*\))?[^\n]*\n?`)
	whitespaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
	dashReplacer = strings.NewReplacer("—", "-", "–", "-", "‒", "-", " ", " ")
)

// Sanitizer validates and cleans captured answer text.
type Sanitizer struct {
	cfg     config.SanitizeConfig
	markers []string
}

// New creates a Sanitizer from config. Marker matching is case-insensitive.
func New(cfg config.SanitizeConfig) *Sanitizer {
	markers := make([]string, len(cfg.ChromeMarkers))
	for i, m := range cfg.ChromeMarkers {
		markers[i] = strings.ToLower(m)
	}
	return &Sanitizer{cfg: cfg, markers: markers}
}

// Clean strips the known answer header and normalizes whitespace and dash
// characters. It does not judge acceptability; see IsAcceptable.
func (s *Sanitizer) Clean(raw string) string {
	text := strings.TrimSpace(raw)
	text = headerRe.ReplaceAllString(text, "")
	text = dashReplacer.Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// IsAcceptable reports whether candidate text looks like a real answer:
// long enough, not the not-found sentinel, and free of chrome markers.
// Rejection is expected and frequent during observation; it is not an error.
func (s *Sanitizer) IsAcceptable(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.EqualFold(trimmed, s.cfg.NotFoundSentinel) {
		return false
	}
	if len(trimmed) < s.cfg.MinChars {
		return false
	}
	if len(strings.Fields(trimmed)) < s.cfg.MinWords {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, marker := range s.markers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}
