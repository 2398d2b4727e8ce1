package storage

import "errors"

// State keys for one query cycle. Every key is write-once-read-once: the
// producer writes it, the consumer takes (reads and deletes) it.
const (
	KeyQuery       = "query"
	KeyQueryTabID  = "queryTabId"
	KeyAnswerTabID = "answerTabId"
	KeyTimeline    = "timelineEvents"
	KeySourceURL   = "sourceUrl"
)

// ErrQueryPending is returned when a query is stored while another is
// still awaiting delivery. At most one query is in flight at a time.
var ErrQueryPending = errors.New("storage: a pending query already exists")

// ErrNoQuery is returned when no pending query is stored.
var ErrNoQuery = errors.New("storage: no pending query")

// ErrNoTimeline is returned when no extracted timeline is stored.
var ErrNoTimeline = errors.New("storage: no stored timeline")
