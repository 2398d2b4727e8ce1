package timeline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/extract"
)

func testRenderer() *Renderer {
	return New(config.DefaultConfig().Render)
}

func TestRenderProducesEventMarkup(t *testing.T) {
	r := testRenderer()

	events := []extract.Event{
		{Date: "1848", Description: "The treaty was signed in 1848 ending the war."},
		{Date: "19th century", Description: "Trade expanded during the 19th century."},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, events, "https://example.com/town"))

	out := buf.String()
	assert.Contains(t, out, `<strong>1848</strong>`)
	assert.Contains(t, out, "Trade expanded during the 19th century.")
	assert.Contains(t, out, "https://example.com/town")
	assert.Equal(t, 2, strings.Count(out, `class="timeline-event"`))
}

func TestRenderPreservesEventOrder(t *testing.T) {
	r := testRenderer()

	events := []extract.Event{
		{Date: "Event 1", Description: "An undated but salient observation about the town."},
		{Date: "1754", Description: "Settlers first arrived in 1754."},
		{Date: "1901", Description: "The mill was rebuilt in 1901."},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, events, ""))

	out := buf.String()
	assert.Less(t, strings.Index(out, "Event 1"), strings.Index(out, "1754"))
	assert.Less(t, strings.Index(out, "1754"), strings.Index(out, "1901"))
}

func TestRenderEscapesMarkup(t *testing.T) {
	r := testRenderer()

	events := []extract.Event{
		{Date: "1848", Description: `The "Great <Treaty>" was signed.`},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, events, ""))
	assert.NotContains(t, buf.String(), "<Treaty>")
}

func TestRenderRejectsEmptyInput(t *testing.T) {
	r := testRenderer()

	var buf bytes.Buffer
	err := r.Render(&buf, nil, "")
	assert.ErrorIs(t, err, ErrNoEvents)
	assert.Zero(t, buf.Len())
}
