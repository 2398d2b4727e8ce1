package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minLen = 25

func TestSplitBasicSentences(t *testing.T) {
	text := "The settlement grew quickly around the harbor. Fishing sustained the town for decades. Railroads changed everything later on."

	got := Split(text, minLen)
	require.Len(t, got, 3)
	assert.Equal(t, "The settlement grew quickly around the harbor.", got[0])
	assert.Equal(t, "Fishing sustained the town for decades.", got[1])
	assert.Equal(t, "Railroads changed everything later on.", got[2])
}

func TestSplitStripsTitleHeader(t *testing.T) {
	text := "Title: Harbor Town History\nThe settlement grew quickly around the harbor. Fishing sustained the town for decades."

	got := Split(text, minLen)
	require.Len(t, got, 2)
	assert.NotContains(t, got[0], "Title:")
}

func TestSplitDropsShortFragments(t *testing.T) {
	text := "Hi. The settlement grew quickly around the harbor. Yes."

	got := Split(text, minLen)
	require.Len(t, got, 1)
	assert.Equal(t, "The settlement grew quickly around the harbor.", got[0])
}

func TestSplitKeepsTerminalPunctuation(t *testing.T) {
	got := Split("Why did the port decline so suddenly after the war? Nobody agreed on a single cause for it.", minLen)
	require.Len(t, got, 2)
	assert.Equal(t, "Why did the port decline so suddenly after the war?", got[0])
}

func TestSplitDoesNotBreakOnInitials(t *testing.T) {
	text := "The historian J. R. Whitfield documented the flood of the lower district. His account survives in the archive today."

	got := Split(text, minLen)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "J. R. Whitfield")
}

func TestSplitDoesNotBreakOnDecimals(t *testing.T) {
	text := "The canal stretched 3.5 miles through the marshland and beyond. Its locks were rebuilt twice over the years."

	got := Split(text, minLen)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "3.5 miles")
}

func TestSplitDoesNotBreakOnEnumeration(t *testing.T) {
	text := "The council listed its priorities as 1. drainage and 2. paving for the district streets going forward."

	got := Split(text, minLen)
	require.Len(t, got, 1)
}

func TestSplitDropsTrailingFragment(t *testing.T) {
	text := "The settlement grew quickly around the harbor. And then the unfinished thought trails off without punctuation"

	got := Split(text, minLen)
	require.Len(t, got, 1)
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split("", minLen))
	assert.Empty(t, Split("   \n ", minLen))
}

func TestSplitIsPure(t *testing.T) {
	text := "Title: X\nThe settlement grew quickly around the harbor. Fishing sustained the town for decades."
	first := Split(text, minLen)
	second := Split(text, minLen)
	assert.Equal(t, first, second)
}
