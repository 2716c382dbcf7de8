package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTrendsResults writes a trends report to w, dispatching on the configured output format.
func WriteTrendsResults(w io.Writer, result schema.TrendsResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSVResultsForTrends(w, result); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeParquetResultsForTrends(w, result); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeTrendsTable(w, result, cfg, duration); err != nil {
			return fmt.Errorf("error writing trends table output: %w", err)
		}
	}
	return nil
}

// writeTrendsTable prints the report in a left-aligned table, most recent bucket first.
func writeTrendsTable(w io.Writer, result schema.TrendsResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header(schema.TrendsHeaders)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	colored := shouldColor(w, cfg)
	pct := func(s string, changed, total int) string {
		if colored {
			return contract.ColorizePercent(s, changed, total)
		}
		return s
	}

	var data [][]string
	for _, r := range result.Rows {
		data = append(data, []string{
			r.Since.Format(schema.DateFormat),
			r.Until.Format(schema.DateFormat),
			humanize.Comma(int64(r.Commits)),
			humanize.Comma(int64(r.FilesInRepo)),
			humanize.Comma(int64(r.FilesChanged)),
			pct(r.PctFilesChanged, r.FilesChanged, r.FilesInRepo),
			humanize.Comma(int64(r.LinesInRepo)),
			humanize.Comma(int64(r.LinesChanged)),
			pct(r.PctLinesChanged, r.LinesChanged, r.LinesInRepo),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Trends report completed in %v with %d %s buckets.\n", duration.Round(time.Millisecond), len(result.Rows), result.Period)
	return err
}
