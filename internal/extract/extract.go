// Package extract turns a cleaned free-text summary into a bounded,
// chronologically ordered list of timeline events.
//
// The pipeline is heuristic and best-effort: segment the text into
// sentences, drop host-UI noise, classify each sentence as dated or undated
// via the dates normalizer, score undated sentences by topical salience,
// deduplicate, rank, and truncate. Extract is a pure function of its input
// and never returns an empty slice.
package extract

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/dates"
	"github.com/runnerr0/timeliner/internal/segment"
)

// FallbackLabel is the date label of the single event emitted when no
// qualifying sentence survives the pipeline.
const FallbackLabel = "Summary"

// Event is one entry on the rendered timeline. Both fields are non-empty
// after construction; sorting metadata never appears here.
type Event struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Extractor runs the text-to-events pipeline.
type Extractor struct {
	cfg      config.ExtractConfig
	norm     *dates.Normalizer
	deny     []string
	keywords []string
}

// New creates an Extractor. maxYear is pinned at construction so Extract
// stays deterministic within a run.
func New(cfg config.ExtractConfig) *Extractor {
	keywords := make([]string, len(cfg.SalienceKeywords))
	for i, k := range cfg.SalienceKeywords {
		keywords[i] = strings.ToLower(k)
	}
	return &Extractor{
		cfg:      cfg,
		norm:     dates.NewNormalizer(cfg.MinYear, time.Now().Year(), cfg.NoiseYears),
		deny:     cfg.SentenceDenylist,
		keywords: keywords,
	}
}

// scored pairs an event with its private sort key. The key is computed
// alongside the public record and discarded after ordering.
type scored struct {
	event Event
	dated bool
	year  int
	score int
}

// Extract parses cleaned text into at most MaxTotalEvents events: up to
// MaxDatedEvents dated ones plus the highest-salience undated sentences.
// Undated events sort before all dated events; dated events sort by
// resolved year ascending. For empty or degenerate input a single fallback
// event is returned, so the result is never empty.
func (e *Extractor) Extract(text string) []Event {
	var dated, undated []scored
	seen := make(map[string]bool)

	for _, sentence := range segment.Split(text, e.cfg.MinSentenceLen) {
		if e.denied(sentence) || e.norm.HasFutureYear(sentence) {
			continue
		}

		if m, ok := e.norm.Normalize(sentence); ok {
			key := strconv.Itoa(m.Year) + "|" + sentence
			if seen[key] || len(dated) >= e.cfg.MaxDatedEvents {
				continue
			}
			seen[key] = true
			dated = append(dated, scored{
				event: Event{Date: m.Label, Description: sentence},
				dated: true,
				year:  m.Year,
			})
			continue
		}

		undated = append(undated, scored{
			event: Event{Description: sentence},
			score: e.salience(sentence),
		})
	}

	// Highest-salience undated sentences fill the remaining capacity,
	// labeled sequentially in selection order.
	sort.SliceStable(undated, func(i, j int) bool {
		return undated[i].score > undated[j].score
	})
	capacity := e.cfg.MaxTotalEvents - len(dated)
	if capacity > len(undated) {
		capacity = len(undated)
	}
	events := make([]scored, 0, len(dated)+capacity)
	for i := 0; i < capacity; i++ {
		undated[i].event.Date = "Event " + strconv.Itoa(i+1)
		events = append(events, undated[i])
	}
	events = append(events, dated...)

	// Undated-first, then dated by resolved year ascending. Stable, so
	// equal years keep scan order.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].dated != events[j].dated {
			return !events[i].dated
		}
		return events[i].year < events[j].year
	})

	if len(events) == 0 {
		return []Event{e.fallback(text)}
	}

	out := make([]Event, len(events))
	for i, s := range events {
		out[i] = s.event
	}
	return out
}

// fallback wraps a bounded prefix of the input into a single event so the
// caller always has something to render.
func (e *Extractor) fallback(text string) Event {
	desc := strings.TrimSpace(text)
	if len(desc) > e.cfg.FallbackMaxChars {
		desc = strings.TrimSpace(desc[:e.cfg.FallbackMaxChars])
	}
	if desc == "" {
		desc = "No summary text was captured."
	}
	return Event{Date: FallbackLabel, Description: desc}
}

// denied reports whether a sentence matches the host-UI noise denylist.
func (e *Extractor) denied(sentence string) bool {
	for _, marker := range e.deny {
		if strings.Contains(sentence, marker) {
			return true
		}
	}
	return false
}

// salience scores an undated sentence: its length plus a fixed weight per
// distinct lexicon keyword it mentions.
func (e *Extractor) salience(sentence string) int {
	lower := strings.ToLower(sentence)
	score := len(sentence)
	for _, kw := range e.keywords {
		if strings.Contains(lower, kw) {
			score += e.cfg.KeywordWeight
		}
	}
	return score
}
