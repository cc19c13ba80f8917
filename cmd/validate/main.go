// Command validate runs the normalization pipeline over a feed document on
// disk and reports what would happen in production: structural validity,
// timestamp conversion, per-station outcomes, and price filtering. With -out
// it also writes the normalized collection as JSON.
//
// Usage:
//
//	go run ./cmd/validate -feed data/feed.json
//	go run ./cmd/validate -feed data/feed.json -out normalized.json -brands brands.yaml
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/refuelradar/fuel-feed-etl/internal/domain"
)

func main() {
	feedPath := flag.String("feed", "", "path to a raw feed JSON document")
	outPath := flag.String("out", "", "optional output path for normalized JSON")
	brandsPath := flag.String("brands", "", "optional YAML brand-table extension file")
	rejectEmpty := flag.Bool("reject-empty-brand", false, "treat present-but-empty brand strings as invalid")
	fixedClock := flag.String("processed-at", "", "fixed RFC 3339 processing time for reproducible output")
	flag.Parse()

	if *feedPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*feedPath, *outPath, *brandsPath, *rejectEmpty, *fixedClock); code != 0 {
		os.Exit(code)
	}
}

func run(feedPath, outPath, brandsPath string, rejectEmpty bool, fixedClock string) int {
	if fixedClock != "" {
		at, err := time.Parse(time.RFC3339, fixedClock)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: invalid -processed-at: %v\n", err)
			return 1
		}
		domain.SetClock(clockwork.NewFakeClockAt(at))
		defer domain.SetClock(nil)
	}

	data, err := os.ReadFile(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read feed: %v\n", err)
		return 1
	}

	if err := domain.CheckStructure(data); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL structure: %v\n", err)
		return 1
	}
	fmt.Println("ok   structure: envelope decodable, stations non-empty")

	var extensions map[string]string
	if brandsPath != "" {
		extensions, err = domain.LoadBrandExtensions(brandsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
			return 1
		}
		fmt.Printf("ok   brand table: %d extension entries\n", len(extensions))
	}

	var opts []domain.NormalizerOption
	if rejectEmpty {
		opts = append(opts, domain.WithEmptyBrandRejection())
	}
	normalizer := domain.NewNormalizer(domain.NewBrandTable(extensions), opts...)
	processor := domain.NewProcessor(normalizer, slog.New(slog.NewTextHandler(os.Stderr, nil)), 1)

	result, err := processor.Process(context.Background(), data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL process: %v\n", err)
		return 1
	}

	stats := result.Stats
	fmt.Printf("ok   timestamp: %s\n", stats.LastUpdated)
	fmt.Printf("ok   stations: %d raw, %d normalized, %d skipped\n",
		stats.Stations, stats.Normalized, stats.Skipped)
	fmt.Printf("ok   prices: %d retained\n", stats.PricesRetained)

	if outPath == "" {
		return 0
	}

	out, err := json.MarshalIndent(map[string]any{"stations": result.Stations}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: serialize output: %v\n", err)
		return 1
	}
	if err := os.WriteFile(outPath, append(out, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: write output: %v\n", err)
		return 1
	}
	fmt.Printf("ok   wrote %s\n", outPath)
	return 0
}
