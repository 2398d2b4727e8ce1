package watch

// tracker counts consecutive identical observations of candidate text. The
// host chat UI streams tokens with no completion signal, so text that stops
// changing across observations is the only available proxy for "done".
type tracker struct {
	last   string
	stable int
}

// observe records one candidate reading and returns the current run of
// consecutive identical observations. A changed reading resets the run.
func (t *tracker) observe(text string) int {
	if text == t.last {
		t.stable++
	} else {
		t.last = text
		t.stable = 1
	}
	return t.stable
}

// reset clears the tracker for a fresh observation round.
func (t *tracker) reset() {
	t.last = ""
	t.stable = 0
}
