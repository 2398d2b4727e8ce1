package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Submit  *SubmitCommand
	Deliver *DeliverCommand
	Watch   *WatchCommand
	Extract *ExtractCommand
	Render  *RenderCommand
	Status  *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "timeliner"
	parser.LongDescription = "Turn a chat assistant's free-text history answer into a dated timeline infographic."

	cmds := &commands{
		Submit:  &SubmitCommand{globals: &globals, version: version},
		Deliver: &DeliverCommand{globals: &globals, version: version},
		Watch:   &WatchCommand{globals: &globals, version: version},
		Extract: &ExtractCommand{globals: &globals, version: version},
		Render:  &RenderCommand{globals: &globals, version: version},
		Status:  &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("submit", "Queue a prompt for the host chat page", "Store a pending query to be delivered into the host chat page's input.", cmds.Submit)
	parser.AddCommand("deliver", "Deliver the pending prompt", "Deliver the pending query into the host page's input control, retrying until it appears.", cmds.Deliver)
	parser.AddCommand("watch", "Wait for the answer and extract events", "Watch the host snapshot directory until the answer stabilizes, then extract and store timeline events.", cmds.Watch)
	parser.AddCommand("extract", "Extract timeline events from text", "Parse a summary text blob into dated timeline events.", cmds.Extract)
	parser.AddCommand("render", "Render the timeline artifact", "Render stored (or given) timeline events as the timeline HTML document.", cmds.Render)
	parser.AddCommand("status", "Show pipeline state", "Show configuration summary and the current query-cycle state.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the Timeliner CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("timeliner %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
