// Package evscope generates a descriptive report over the Washington
// State electric vehicle population dataset.
//
// Usage:
//
//	import (
//	    "github.com/evscope-org/evscope/render"
//	    "github.com/evscope-org/evscope/report"
//	    "github.com/evscope-org/evscope/source"
//	)
//
//	src := source.CSVFile("data/electric_vehicles.csv")
//	sink := render.NewMarkdown(os.Stdout)
//	runner := report.NewRunner(src, sink, "electric_vehicles")
//	err := runner.Run(ctx)
//
// The pipeline is a single synchronous pass: load a raw tabular frame,
// normalize columns to canonical names (decoding WKT point geometry
// into longitude/latitude), then emit a fixed sequence of chart
// sections. Builders never fail on data quality — missing columns and
// empty aggregates degrade to explanatory text. Only source and sink
// errors abort a run.
package evscope
