package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/session"
)

func TestStatusEmptyState(t *testing.T) {
	store := testStore(t)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "test"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, testConfig(), "/tmp/test.db"))
	})

	assert.Contains(t, out, "Timeliner Status")
	assert.Contains(t, out, "Pending query: none")
	assert.Contains(t, out, "Timeline:      none")
}

func TestStatusWithPendingState(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	q := session.NewPendingQuery("p", "https://example.com/x")
	require.NoError(t, store.PutQuery(ctx, q))
	require.NoError(t, store.PutTimeline(ctx, []extract.Event{{Date: "1848", Description: "d"}}, "u"))

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "test"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, testConfig(), "/tmp/test.db"))
	})

	assert.Contains(t, out, "Pending query: "+q.ID)
	assert.Contains(t, out, "stored, awaiting render")
}

func TestStatusJSON(t *testing.T) {
	store := testStore(t)

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "1.0.0"}
	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, testConfig(), "/tmp/test.db"))
	})

	var parsed statusJSON
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "1.0.0", parsed.Version)
	assert.Equal(t, "/tmp/test.db", parsed.DatabasePath)
	assert.False(t, parsed.HasTimeline)
	assert.Equal(t, 2, parsed.StabilityThreshold)
}
