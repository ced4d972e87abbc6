package report

import (
	"context"
	"fmt"
	"log"

	"github.com/evscope-org/evscope/dataset"
	"github.com/evscope-org/evscope/source"
)

// ============================================================================
// RUNNER — Sequences the report
// ============================================================================
// Pipeline: load raw frame → normalize → title → eight builders in a
// fixed order. No builder depends on another's output. Source and sink
// errors abort the run; everything else degrades to text inside the
// builders.
// ============================================================================

// ReportTitle is the top-level heading of every run.
const ReportTitle = "# Washington State Electric Vehicle Population Explorer"

// Option configures a Runner via functional options.
type Option func(*config)

type config struct {
	SampleSeed    int64
	SampleCap     int
	TopN          int
	HistogramBins int
}

// WithSampleSeed sets the seed for the map builder's deterministic
// sampling. Default 42.
func WithSampleSeed(seed int64) Option {
	return func(c *config) { c.SampleSeed = seed }
}

// WithSampleCap caps the number of points on the map. Default 5000.
func WithSampleCap(n int) Option {
	return func(c *config) { c.SampleCap = n }
}

// WithTopN sets the ranking size for the top-N bar charts. Default 15.
func WithTopN(n int) Option {
	return func(c *config) { c.TopN = n }
}

// WithHistogramBins sets the electric range histogram bin count.
// Default 40.
func WithHistogramBins(n int) Option {
	return func(c *config) { c.HistogramBins = n }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		SampleSeed:    42,
		SampleCap:     5000,
		TopN:          15,
		HistogramBins: 40,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Runner drives one report run end to end.
type Runner struct {
	src  source.Source
	sink Sink
	name string
	cfg  *config
}

// NewRunner creates a Runner for the named dataset. The source and
// sink handles are explicit — the Runner holds no ambient state.
func NewRunner(src source.Source, sink Sink, name string, opts ...Option) *Runner {
	return &Runner{
		src:  src,
		sink: sink,
		name: name,
		cfg:  applyOptions(opts),
	}
}

// Run executes the full report: load, normalize, title, then every
// chart section in order.
func (r *Runner) Run(ctx context.Context) error {
	raw, err := r.src.GetTable(ctx, r.name)
	if err != nil {
		return fmt.Errorf("load dataset %q: %w", r.name, err)
	}
	log.Printf("🔧 evscope: loaded %d rows, %d columns from %q", raw.Len(), len(raw.Columns()), r.name)

	ds := dataset.Normalize(raw)
	log.Printf("🔧 evscope: normalized to %d canonical columns", len(ds.Columns()))

	if err := r.sink.Text(ReportTitle); err != nil {
		return err
	}

	sections := []func() error{
		func() error { return MapChart(ds, r.sink, r.cfg.SampleCap, r.cfg.SampleSeed) },
		func() error { return TopMakesModels(ds, r.sink, r.cfg.TopN) },
		func() error { return TypeShare(ds, r.sink) },
		func() error { return RangeDistribution(ds, r.sink, r.cfg.HistogramBins) },
		func() error { return TopCities(ds, r.sink, r.cfg.TopN) },
		func() error { return TopCounties(ds, r.sink, r.cfg.TopN) },
		func() error { return PriceByType(ds, r.sink) },
		func() error { return YearlyTrend(ds, r.sink) },
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
	}

	log.Printf("📊 evscope: report complete for %q", r.name)
	return nil
}
