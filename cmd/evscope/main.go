package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/evscope-org/evscope/render"
	"github.com/evscope-org/evscope/report"
	"github.com/evscope-org/evscope/source"
)

// ============================================================================
// EVSCOPE CLI — Washington EV population report generator
// ============================================================================

const version = "0.1.0"

// The public view ID of the WA EV population dataset on data.wa.gov.
const defaultDataset = "f6w7-q2d2"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to a CSV or .xlsx dataset file")
	socrataDomain := flag.String("socrata", "", "Socrata portal domain to fetch from (e.g. data.wa.gov)")
	datasetName := flag.String("dataset", defaultDataset, "Dataset name (Socrata view ID, or file stem with --dir)")
	dirPath := flag.String("dir", "", "Directory of CSV datasets resolved by --dataset")
	outFile := flag.String("out", "", "Write the markdown report to a file instead of stdout")
	pngDir := flag.String("png", "", "Also rasterize charts as PNG files into this directory")
	seed := flag.Int64("seed", 42, "Sampling seed for the registration map")
	quiet := flag.Bool("quiet", false, "Suppress progress logging")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `evscope — Washington EV population report generator

Usage:
  evscope --file electric_vehicles.csv
  evscope --file registrations.xlsx --out report.md --png charts/
  evscope --socrata data.wa.gov --dataset f6w7-q2d2 --out report.md
  evscope --dir data/ --dataset electric_vehicles

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  SOCRATA_APP_TOKEN    Optional app token for --socrata (also read from .env)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("evscope %s\n", version)
		os.Exit(0)
	}

	if *quiet {
		log.SetOutput(io.Discard)
	}

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	// ── Source ────────────────────────────────────────────────────────────
	var src source.Source
	switch {
	case *filePath != "" && strings.HasSuffix(strings.ToLower(*filePath), ".xlsx"):
		src = source.Excel(*filePath)
	case *filePath != "":
		src = source.CSVFile(*filePath)
	case *dirPath != "":
		src = source.CSVDir(*dirPath)
	case *socrataDomain != "":
		src = source.Socrata(*socrataDomain, os.Getenv("SOCRATA_APP_TOKEN"))
	default:
		fmt.Fprintln(os.Stderr, "Error: one of --file, --dir, or --socrata is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Sink ──────────────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	var sink report.Sink = render.NewMarkdown(writer)
	if *pngDir != "" {
		sink = render.Multi(sink, render.NewPNG(*pngDir))
	}

	// ── Run ───────────────────────────────────────────────────────────────
	runID := uuid.NewString()[:8]
	log.Printf("🔧 evscope %s: run %s, dataset %q", version, runID, *datasetName)

	runner := report.NewRunner(src, sink, *datasetName, report.WithSampleSeed(*seed))
	if err := runner.Run(context.Background()); err != nil {
		fatalf("Report failed: %v", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
