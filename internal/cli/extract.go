package cli

import (
	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/extract"
	"github.com/runnerr0/timeliner/internal/sanitize"
)

// Execute implements the go-flags Commander interface for ExtractCommand.
func (c *ExtractCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	text, err := readInput(c.Input)
	if err != nil {
		return err
	}

	return c.executeWithText(cfg, text)
}

// executeWithText runs extraction on the given text (used by tests).
func (c *ExtractCommand) executeWithText(cfg *config.Config, text string) error {
	cleaned := sanitize.New(cfg.Sanitize).Clean(text)
	events := extract.New(cfg.Extract).Extract(cleaned)

	asJSON := c.globals != nil && c.globals.JSON
	return printEvents(events, "", asJSON)
}
