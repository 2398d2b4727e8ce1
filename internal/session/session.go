// Package session scopes one logical query: the pending prompt, its
// delivery into the host page, and the duplicate-notification debounce
// state that used to live in ambient globals. One Session per query means
// overlapping queries cannot corrupt each other's state.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/runnerr0/timeliner/internal/config"
)

// PendingQuery is a prompt awaiting delivery into the host page, tied to
// the page that spawned it and the tab that will display the answer. It is
// consumed exactly once on successful delivery.
type PendingQuery struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`
	SourceURL   string    `json:"source_url"`
	QueryTabID  string    `json:"query_tab_id"`
	AnswerTabID string    `json:"answer_tab_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPendingQuery creates a PendingQuery for the given prompt and source.
func NewPendingQuery(prompt, sourceURL string) *PendingQuery {
	return &PendingQuery{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		SourceURL: sourceURL,
		CreatedAt: time.Now(),
	}
}

// Session carries the per-query debounce state. Not safe for concurrent
// use; a session belongs to the single goroutine driving its query.
type Session struct {
	Query *PendingQuery

	window       time.Duration
	lastSummary  string
	lastAccepted time.Time
	now          func() time.Time
}

// NewSession creates a Session for one query.
func NewSession(q *PendingQuery, cfg config.SessionConfig) *Session {
	return &Session{Query: q, window: cfg.DuplicateWindow(), now: time.Now}
}

// Accept reports whether a captured summary should be processed. A summary
// identical to the last accepted one within the coalescing window is a
// re-entrant duplicate notification and is ignored.
func (s *Session) Accept(summary string) bool {
	now := s.now()
	if summary == s.lastSummary && now.Sub(s.lastAccepted) < s.window {
		return false
	}
	s.lastSummary = summary
	s.lastAccepted = now
	return true
}
