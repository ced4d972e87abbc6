package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/evscope-org/evscope/report"
)

// ============================================================================
// PNG SINK — Rasterizes chart specs into image files
// ============================================================================
// Bar, hbar, histogram, pie, line, and scatter_geo kinds rasterize via
// go-chart; hbar charts rasterize with vertical bars (go-chart has no
// horizontal orientation) and scatter_geo as a plain lon/lat scatter
// without basemap tiles. Box plots have no go-chart counterpart and
// fall back to a JSON spec file, so no chart is ever dropped.
// ============================================================================

// PNGSink writes one numbered file per chart into a directory.
// Text blocks are ignored — pair it with a MarkdownSink via Multi.
type PNGSink struct {
	dir string
	seq int
}

// NewPNG creates a sink writing chart images into dir.
func NewPNG(dir string) *PNGSink {
	return &PNGSink{dir: dir}
}

// Text is a no-op for the image sink.
func (s *PNGSink) Text(string) error { return nil }

// Chart rasterizes the spec, or writes it as JSON when the kind has no
// raster form.
func (s *PNGSink) Chart(cfg *report.ChartConfig) error {
	s.seq++
	base := filepath.Join(s.dir, fmt.Sprintf("%02d_%s", s.seq, slug(cfg.Title)))

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	switch cfg.Kind {
	case report.KindBar, report.KindHBar, report.KindHistogram:
		return s.renderBars(cfg, base+".png")
	case report.KindPie:
		return s.renderPie(cfg, base+".png")
	case report.KindLine:
		return s.renderLine(cfg, base+".png")
	case report.KindScatterGeo:
		return s.renderGeo(cfg, base+".png")
	default:
		return s.writeSpec(cfg, base+".json")
	}
}

func (s *PNGSink) renderBars(cfg *report.ChartConfig, path string) error {
	bars := make([]chart.Value, 0)
	if cfg.Kind == report.KindHistogram {
		for _, b := range cfg.Bins {
			bars = append(bars, chart.Value{
				Label: fmt.Sprintf("%.0f–%.0f", b.Lo, b.Hi),
				Value: float64(b.Count),
			})
		}
	} else {
		for _, series := range cfg.Series {
			for _, p := range series.Data {
				bars = append(bars, chart.Value{Label: p.Label, Value: p.Value})
			}
		}
	}
	if len(bars) == 0 {
		return nil
	}

	graph := chart.BarChart{
		Title:    cfg.Title,
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}
	return s.renderTo(path, func(w *os.File) error { return graph.Render(chart.PNG, w) })
}

func (s *PNGSink) renderPie(cfg *report.ChartConfig, path string) error {
	values := make([]chart.Value, 0)
	for _, series := range cfg.Series {
		for _, p := range series.Data {
			values = append(values, chart.Value{Label: p.Label, Value: p.Value})
		}
	}
	if len(values) == 0 {
		return nil
	}

	graph := chart.PieChart{
		Title:  cfg.Title,
		Width:  512,
		Height: 512,
		Values: values,
	}
	return s.renderTo(path, func(w *os.File) error { return graph.Render(chart.PNG, w) })
}

func (s *PNGSink) renderLine(cfg *report.ChartConfig, path string) error {
	series := make([]chart.Series, 0, len(cfg.Series))
	for _, cs := range cfg.Series {
		xs := make([]float64, len(cs.Data))
		ys := make([]float64, len(cs.Data))
		for i, p := range cs.Data {
			xs[i] = float64(i)
			ys[i] = p.Value
		}
		style := chart.Style{StrokeWidth: 2}
		if cfg.Markers {
			style.DotWidth = 4
		}
		series = append(series, chart.ContinuousSeries{
			Name:    cs.Name,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}

	graph := chart.Chart{
		Title:  cfg.Title,
		Width:  1024,
		Height: 512,
		Series: series,
	}
	return s.renderTo(path, func(w *os.File) error { return graph.Render(chart.PNG, w) })
}

func (s *PNGSink) renderGeo(cfg *report.ChartConfig, path string) error {
	if cfg.Geo == nil || len(cfg.Geo.Points) == 0 {
		return nil
	}

	xs := make([]float64, len(cfg.Geo.Points))
	ys := make([]float64, len(cfg.Geo.Points))
	for i, p := range cfg.Geo.Points {
		xs[i] = p.Lon
		ys[i] = p.Lat
	}

	dotColor := drawing.ColorFromHex(strings.TrimPrefix(cfg.Geo.Color, "#"))
	graph := chart.Chart{
		Title:  cfg.Title,
		Width:  1024,
		Height: 768,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Registrations",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    2,
					DotColor:    dotColor,
				},
			},
		},
	}
	return s.renderTo(path, func(w *os.File) error { return graph.Render(chart.PNG, w) })
}

func (s *PNGSink) writeSpec(cfg *report.ChartConfig, path string) error {
	spec, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal chart spec: %w", err)
	}
	return os.WriteFile(path, spec, 0o644)
}

func (s *PNGSink) renderTo(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	return nil
}

// slug converts a chart title into a safe file name fragment.
func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '/':
			b.WriteRune('_')
		}
	}
	return b.String()
}
