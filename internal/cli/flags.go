package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// SubmitCommand — store a pending query for the host chat page.
type SubmitCommand struct {
	Prompt     string `long:"prompt" description:"Prompt text to deliver (required unless --prompt-file)"`
	PromptFile string `long:"prompt-file" description:"Read the prompt from a file"`
	SourceURL  string `long:"source-url" description:"URL of the page the selection came from (required)"`
	QueryTab   string `long:"query-tab" description:"Identifier of the originating tab"`
	AnswerTab  string `long:"answer-tab" description:"Identifier of the host tab that will show the answer"`

	globals *GlobalFlags
	version string
}

// DeliverCommand — deliver the pending prompt into the host page input.
type DeliverCommand struct {
	Dir string `long:"dir" description:"Host snapshot directory; the prompt is written to prompt.txt inside it (required)"`

	globals *GlobalFlags
	version string
}

// WatchCommand — wait for the answer to stabilize, extract, store events.
type WatchCommand struct {
	Dir       string `long:"dir" description:"Host snapshot directory to observe (required)"`
	SourceURL string `long:"source-url" description:"Override the source URL recorded with the timeline"`
	Render    string `long:"render" description:"Also render the timeline HTML to this path"`

	globals *GlobalFlags
	version string
}

// ExtractCommand — parse a text blob into timeline events.
type ExtractCommand struct {
	Input string `long:"input" description:"Read summary text from a file instead of stdin"`

	globals *GlobalFlags
	version string
}

// RenderCommand — render stored or given events as the timeline document.
type RenderCommand struct {
	Input  string `long:"input" description:"Read events from a JSON file instead of the stored timeline"`
	Output string `long:"output" description:"Output HTML path (default from config)"`

	globals *GlobalFlags
	version string
}

// StatusCommand — show configuration summary and query-cycle state.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
