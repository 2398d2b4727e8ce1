package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorFilename(t *testing.T) {
	assert.Equal(t, "response-content-markdown.txt", SelectorFilename(".response-content-markdown"))
	assert.Equal(t, "message-bubble.txt", SelectorFilename("message-bubble"))
	assert.Equal(t, "div-chat-reply.txt", SelectorFilename("div.chat Reply"))
}

func TestFileSourceReadCandidates(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(dir, []string{"answer", "reply"})

	// No snapshots yet: containers not rendered.
	text, err := src.ReadCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "answer.txt"), []byte("First container text.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reply.txt"), []byte("Second container text."), 0644))

	text, err = src.ReadCandidates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "First container text.\nSecond container text.", text)
}

func TestFileSourceMutations(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(dir, []string{"answer"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	muts, err := src.Mutations(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "answer.txt"), []byte("streamed chunk"), 0644))

	select {
	case <-muts:
	case <-time.After(2 * time.Second):
		t.Fatal("no mutation notification for snapshot write")
	}

	// Cancellation closes the stream; drain any buffered notification.
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-muts:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("mutation stream did not close on cancel")
		}
	}
}
