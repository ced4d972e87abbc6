// Package render provides Sink implementations for report output:
// a markdown writer, a PNG rasterizer, and a fan-out combinator.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/evscope-org/evscope/report"
)

// ============================================================================
// MARKDOWN SINK — Text verbatim, charts as fenced JSON spec blocks
// ============================================================================

// MarkdownSink writes the report as a single markdown document.
type MarkdownSink struct {
	w io.Writer
}

// NewMarkdown creates a sink writing markdown to w.
func NewMarkdown(w io.Writer) *MarkdownSink {
	return &MarkdownSink{w: w}
}

// Text writes a markdown block followed by a blank line.
func (s *MarkdownSink) Text(markdown string) error {
	_, err := fmt.Fprintf(s.w, "%s\n\n", markdown)
	return err
}

// Chart writes the chart specification as an indented JSON fence,
// led by the chart title.
func (s *MarkdownSink) Chart(cfg *report.ChartConfig) error {
	spec, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal chart spec: %w", err)
	}
	_, err = fmt.Fprintf(s.w, "**%s**\n\n```json\n%s\n```\n\n", cfg.Title, spec)
	return err
}
