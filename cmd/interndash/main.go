package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"interndash/internal"
	"interndash/internal/cache"
	"interndash/internal/config"
	"interndash/internal/logging"
	"interndash/internal/pipeline"
	filesource "interndash/internal/source/file"
	sheetsconnector "interndash/internal/source/sheets"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "sheet:fetch":
		records, err := fetchRecords(cfg)
		must(err)
		printSummary(records)
	case "grid:import":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "grid file (.csv, .xlsx, .html)")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		grid, err := filesource.ParseGridFile(*input)
		must(err)
		records := pipeline.MaterializeRecords(pipeline.NormalizeGrid(grid))
		printSummary(records)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "optional grid file; defaults to the configured sheet")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}

		var records []internal.ListingRecord
		if strings.TrimSpace(*input) != "" {
			grid, err := filesource.ParseGridFile(*input)
			must(err)
			records = pipeline.MaterializeRecords(pipeline.NormalizeGrid(grid))
		} else {
			fetched, err := fetchRecords(cfg)
			must(err)
			records = fetched
		}
		must(pipeline.ExportRecordsToXLSX(records, *out))
		fmt.Printf("exported %d listings to %s\n", len(records), *out)
	default:
		usage()
		os.Exit(1)
	}
}

func fetchRecords(cfg config.Config) ([]internal.ListingRecord, error) {
	ctx := context.Background()
	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	connector, err := sheetsconnector.NewConnector(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc := pipeline.NewService(connector, cache.New(time.Duration(cfg.CacheTTLSec)*time.Second), cfg.SourceKey(), log)
	return svc.Records(ctx)
}

func printSummary(records []internal.ListingRecord) {
	fmt.Printf("%d listings\n", len(records))
	for i, rec := range records {
		fmt.Printf("%3d  %s / %s  締切=%s\n", i+1, rec.Company, rec.Title, orDash(rec.Deadline))
	}
}

func orDash(d internal.Date) string {
	if !d.Valid {
		return "-"
	}
	return d.String()
}

func usage() {
	fmt.Println("usage: interndash <command>")
	fmt.Println("commands:")
	fmt.Println("  sheet:fetch")
	fmt.Println("  grid:import --input=listings.csv|.xlsx|.html")
	fmt.Println("  export:xlsx --out=./out/listings.xlsx [--input=...]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
