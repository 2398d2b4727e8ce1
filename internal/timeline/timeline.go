// Package timeline turns extracted events into the visual timeline
// document. Rasterizing that document into an image is owned by an
// external Exporter collaborator; this package only renders the markup.
package timeline

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/runnerr0/timeliner/internal/config"
	"github.com/runnerr0/timeliner/internal/extract"
)

// ErrNoEvents is returned when there is nothing to render. Callers that go
// through the extractor never hit it; direct JSON input can.
var ErrNoEvents = errors.New("timeline: no events to render")

// Exporter rasterizes a rendered timeline document into an image file.
// A failed export must be returned so the caller can clean up its surface.
type Exporter interface {
	Export(ctx context.Context, htmlPath string) (imagePath string, err error)
}

// Renderer writes the timeline HTML artifact.
type Renderer struct {
	cfg  config.RenderConfig
	tmpl *template.Template
}

// New creates a Renderer.
func New(cfg config.RenderConfig) *Renderer {
	return &Renderer{
		cfg:  cfg,
		tmpl: template.Must(template.New("timeline").Parse(timelineTemplate)),
	}
}

// Render writes the timeline document for the given events. Event order is
// preserved exactly as extracted; chronology is the extractor's contract.
func (r *Renderer) Render(w io.Writer, events []extract.Event, sourceURL string) error {
	if len(events) == 0 {
		return ErrNoEvents
	}

	data := struct {
		Title     string
		SourceURL string
		Events    []extract.Event
	}{
		Title:     r.cfg.Title,
		SourceURL: sourceURL,
		Events:    events,
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering timeline: %w", err)
	}
	return nil
}

const timelineTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { margin: 0; font-family: Arial, sans-serif; }
  #timeline {
    padding: 32px;
    background: linear-gradient(135deg, #1e3c72, #2a5298);
    color: #fff;
  }
  .timeline-container { border-left: 3px solid #fff; padding-left: 24px; }
  .timeline-event { position: relative; margin-bottom: 24px; }
  .timeline-circle {
    position: absolute; left: -33px; top: 4px;
    width: 14px; height: 14px; border-radius: 50%;
    background: #ffd166;
  }
  .timeline-event strong { font-size: 1.1em; }
  .timeline-event p { margin: 4px 0 0; }
  .timeline-source { margin-top: 16px; font-size: 0.8em; opacity: 0.7; }
</style>
</head>
<body>
<div id="timeline">
  <h1>{{.Title}}</h1>
  <div class="timeline-container">
{{- range .Events}}
    <div class="timeline-event">
      <div class="timeline-circle"></div>
      <strong>{{.Date}}</strong>
      <p>{{.Description}}</p>
    </div>
{{- end}}
  </div>
{{- if .SourceURL}}
  <div class="timeline-source">Source: {{.SourceURL}}</div>
{{- end}}
</div>
</body>
</html>
`
