package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/storage"
)

func TestRenderStoredTimeline(t *testing.T) {
	store := testStore(t)
	cfg := testConfig()

	events := []extract.Event{
		{Date: "1848", Description: "The treaty was signed in 1848 ending the war."},
	}
	require.NoError(t, store.PutTimeline(context.Background(), events, "https://example.com/town"))

	output := filepath.Join(t.TempDir(), "timeline.html")
	cmd := &RenderCommand{Output: output, globals: &GlobalFlags{}}

	out := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store, cfg))
	})
	assert.Contains(t, out, "Rendered 1 event(s)")

	html, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>1848</strong>")
	assert.Contains(t, string(html), "https://example.com/town")

	// The stored timeline was consumed by rendering.
	_, _, err = store.TakeTimeline(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoTimeline)
}

func TestRenderWithoutTimelineFails(t *testing.T) {
	cmd := &RenderCommand{Output: filepath.Join(t.TempDir(), "t.html"), globals: &GlobalFlags{}}
	err := cmd.executeWithStore(testStore(t), testConfig())
	assert.Error(t, err)
}

func TestRenderFromEventsFile(t *testing.T) {
	events := []extract.Event{
		{Date: "Event 1", Description: "An undated but salient note about the community."},
		{Date: "1901", Description: "The mill was rebuilt in 1901 after the fire."},
	}
	data, err := json.Marshal(events)
	require.NoError(t, err)

	input := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(input, data, 0644))

	got, err := readEventsFile(input)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	_, err = readEventsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
