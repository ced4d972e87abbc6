package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evscope-org/evscope/report"
)

func TestMarkdownSinkText(t *testing.T) {
	var buf strings.Builder
	sink := NewMarkdown(&buf)

	require.NoError(t, sink.Text("# Title"))
	require.NoError(t, sink.Text("body"))
	assert.Equal(t, "# Title\n\nbody\n\n", buf.String())
}

func TestMarkdownSinkChart(t *testing.T) {
	var buf strings.Builder
	sink := NewMarkdown(&buf)

	require.NoError(t, sink.Chart(&report.ChartConfig{
		Kind:  report.KindBar,
		Title: "Top 15 Cities for EVs",
	}))

	out := buf.String()
	assert.Contains(t, out, "**Top 15 Cities for EVs**")
	assert.Contains(t, out, "```json")
	assert.Contains(t, out, `"kind": "bar"`)
}

type failingSink struct{}

func (failingSink) Text(string) error               { return errors.New("broken pipe") }
func (failingSink) Chart(*report.ChartConfig) error { return errors.New("broken pipe") }

type countingSink struct {
	texts, charts int
}

func (s *countingSink) Text(string) error               { s.texts++; return nil }
func (s *countingSink) Chart(*report.ChartConfig) error { s.charts++; return nil }

func TestMultiSinkFansOut(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	sink := Multi(a, b)

	require.NoError(t, sink.Text("hello"))
	require.NoError(t, sink.Chart(&report.ChartConfig{Kind: report.KindPie}))

	assert.Equal(t, 1, a.texts)
	assert.Equal(t, 1, b.texts)
	assert.Equal(t, 1, a.charts)
	assert.Equal(t, 1, b.charts)
}

func TestMultiSinkPropagatesFirstError(t *testing.T) {
	late := &countingSink{}
	sink := Multi(failingSink{}, late)

	assert.Error(t, sink.Text("x"))
	assert.Equal(t, 0, late.texts, "fan-out stops at the first error")
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "msrp_by_ev_type", slug("MSRP by EV Type"))
	assert.Equal(t, "bev_vs_phev_share", slug("BEV vs PHEV Share"))
}
