// Package dates recognizes calendar references in free text and resolves
// them to a display label plus a numeric year used only for ordering.
package dates

import (
	"regexp"
	"strconv"
	"strings"
)

// Unknown is the sentinel year for text with no recognizable date. The
// undated-vs-dated ordering policy belongs to the caller, not this package.
const Unknown = 0

// Century midpoint offsets: "19th century" resolves to 1850, "early" and
// "late" shift the resolved year within the century. Tuned constants, not
// derived values.
const (
	CenturyEarlyOffset = 25
	CenturyMidOffset   = 50
	CenturyLateOffset  = 75
)

// Match is a recognized calendar reference.
type Match struct {
	Label string // human-readable form, as it appeared in the text
	Year  int    // resolved year, used only for sorting
}

// Normalizer resolves calendar references within sentences.
type Normalizer struct {
	minYear int
	maxYear int
	noise   map[int]struct{}
}

// NewNormalizer creates a Normalizer accepting years in [minYear, maxYear],
// excluding the given noise years (host-UI false positives).
func NewNormalizer(minYear, maxYear int, noiseYears []int) *Normalizer {
	noise := make(map[int]struct{}, len(noiseYears))
	for _, y := range noiseYears {
		noise[y] = struct{}{}
	}
	return &Normalizer{minYear: minYear, maxYear: maxYear, noise: noise}
}

var (
	longDateRe = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+(\d{4})\b`)
	centuryRe  = regexp.MustCompile(`(?i)\b(?:(early|mid|late)[-\s])?(\d{1,2})(?:st|nd|rd|th)\s+century\b`)
	digitRunRe = regexp.MustCompile(`\d+`)
)

// candidate pairs a resolved reference with its position in the sentence.
type candidate struct {
	match Match
	pos   int
}

// Normalize scans a sentence for calendar references and returns the one
// with the earliest resolved year. Returns ok=false when the sentence has
// no acceptable reference.
func (n *Normalizer) Normalize(sentence string) (Match, bool) {
	var cands []candidate

	// Long-form dates first; their spans mask the bare-year pass so the
	// trailing year is not matched twice with a worse label.
	masked := make(map[int]bool)
	for _, loc := range longDateRe.FindAllStringSubmatchIndex(sentence, -1) {
		year, err := strconv.Atoi(sentence[loc[4]:loc[5]])
		if err != nil || !n.acceptYear(year) {
			continue
		}
		for i := loc[0]; i < loc[1]; i++ {
			masked[i] = true
		}
		cands = append(cands, candidate{
			match: Match{Label: sentence[loc[0]:loc[1]], Year: year},
			pos:   loc[0],
		})
	}

	for _, loc := range centuryRe.FindAllStringSubmatchIndex(sentence, -1) {
		ordinal, err := strconv.Atoi(sentence[loc[4]:loc[5]])
		if err != nil || ordinal < 1 || ordinal > 21 {
			continue
		}
		offset := CenturyMidOffset
		if loc[2] >= 0 {
			switch strings.ToLower(sentence[loc[2]:loc[3]]) {
			case "early":
				offset = CenturyEarlyOffset
			case "late":
				offset = CenturyLateOffset
			}
		}
		year := (ordinal-1)*100 + offset
		if !n.acceptYear(year) {
			continue
		}
		cands = append(cands, candidate{
			match: Match{Label: sentence[loc[0]:loc[1]], Year: year},
			pos:   loc[0],
		})
	}

	// Bare four-digit years, bounded by non-digits, outside long-date spans.
	for _, loc := range digitRunRe.FindAllStringIndex(sentence, -1) {
		if loc[1]-loc[0] != 4 || masked[loc[0]] {
			continue
		}
		year, err := strconv.Atoi(sentence[loc[0]:loc[1]])
		if err != nil || !n.acceptYear(year) {
			continue
		}
		cands = append(cands, candidate{
			match: Match{Label: sentence[loc[0]:loc[1]], Year: year},
			pos:   loc[0],
		})
	}

	if len(cands) == 0 {
		return Match{Year: Unknown}, false
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.match.Year < best.match.Year ||
			(c.match.Year == best.match.Year && c.pos < best.pos) {
			best = c
		}
	}
	return best.match, true
}

// HasFutureYear reports whether the sentence contains a four-digit number
// beyond the accepted year range, a strong signal of UI noise.
func (n *Normalizer) HasFutureYear(sentence string) bool {
	for _, loc := range digitRunRe.FindAllStringIndex(sentence, -1) {
		if loc[1]-loc[0] != 4 {
			continue
		}
		year, err := strconv.Atoi(sentence[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		if year > n.maxYear && year < 3000 {
			return true
		}
	}
	return false
}

func (n *Normalizer) acceptYear(year int) bool {
	if year < n.minYear || year > n.maxYear {
		return false
	}
	_, noisy := n.noise[year]
	return !noisy
}
