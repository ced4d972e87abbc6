package report

import "github.com/evscope-org/evscope/dataset"

// ============================================================================
// REPORT TYPES — Render-ready chart specifications + the Sink contract
// ============================================================================
// ChartConfig is the contract between builders and render sinks.
// Exactly one of Series, Bins, Boxes, or Geo carries the data,
// depending on Kind.
// ============================================================================

// Chart kinds emitted by the builders.
const (
	KindBar        = "bar"
	KindHBar       = "hbar"
	KindPie        = "pie"
	KindHistogram  = "histogram"
	KindBox        = "box"
	KindLine       = "line"
	KindScatterGeo = "scatter_geo"
)

// ChartConfig defines how to render one chart.
type ChartConfig struct {
	Kind       string        `json:"kind"`
	Title      string        `json:"title"`
	XLabel     string        `json:"xLabel,omitempty"`
	YLabel     string        `json:"yLabel,omitempty"`
	Series     []ChartSeries `json:"series,omitempty"`
	Bins       []dataset.Bin `json:"bins,omitempty"`
	Boxes      []BoxSeries   `json:"boxes,omitempty"`
	Geo        *GeoConfig    `json:"geo,omitempty"`
	Markers    bool          `json:"markers,omitempty"`
	ShowLegend bool          `json:"showLegend"`
}

// ChartSeries is one data series.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single labelled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BoxSeries is one box-plot group with its underlying points.
type BoxSeries struct {
	Label  string           `json:"label"`
	Stats  dataset.BoxStats `json:"stats"`
	Points []float64        `json:"points"`
}

// GeoConfig is a geographic scatter specification.
type GeoConfig struct {
	Points    []GeoPoint `json:"points"`
	CenterLon float64    `json:"centerLon"`
	CenterLat float64    `json:"centerLat"`
	Zoom      float64    `json:"zoom"`
	Basemap   string     `json:"basemap"`
	Color     string     `json:"color"`
}

// GeoPoint is one mapped vehicle with hover context.
type GeoPoint struct {
	Lon   float64           `json:"lon"`
	Lat   float64           `json:"lat"`
	Hover map[string]string `json:"hover,omitempty"`
}

// ============================================================================
// SINK — The rendering collaborator
// ============================================================================

// Sink receives report output. Implementations render markdown text
// blocks and chart specifications; both are fire-and-forget from the
// builders' perspective, but write failures propagate and abort the
// run.
type Sink interface {
	Text(markdown string) error
	Chart(cfg *ChartConfig) error
}
