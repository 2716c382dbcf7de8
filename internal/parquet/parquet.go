// Package parquet provides data structures and functions for exporting trends
// reports to Parquet using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/gitcount/schema"
	"github.com/parquet-go/parquet-go"
)

// TrendRow is the Parquet representation of one report row.
type TrendRow struct {
	// Since is the inclusive start of the bucket
	Since time.Time `parquet:"since,snappy"`

	// Until is the exclusive end of the bucket
	Until time.Time `parquet:"until,snappy"`

	// Period is the bucket size used for the report
	Period string `parquet:"period,dict,snappy"`

	Commits      int64 `parquet:"commits,snappy"`
	FilesInRepo  int64 `parquet:"files_in_repo,snappy"`
	FilesChanged int64 `parquet:"files_changed,snappy"`
	LinesInRepo  int64 `parquet:"lines_in_repo,snappy"`
	LinesChanged int64 `parquet:"lines_changed,snappy"`

	// PctFilesChanged and PctLinesChanged keep the report's formatted percentages
	PctFilesChanged string `parquet:"pct_files_changed,snappy"`
	PctLinesChanged string `parquet:"pct_lines_changed,snappy"`
}

// ConvertTrendsResult converts a trends report into Parquet rows.
func ConvertTrendsResult(result schema.TrendsResult) []TrendRow {
	rows := make([]TrendRow, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, TrendRow{
			Since:           r.Since,
			Until:           r.Until,
			Period:          string(result.Period),
			Commits:         int64(r.Commits),
			FilesInRepo:     int64(r.FilesInRepo),
			FilesChanged:    int64(r.FilesChanged),
			LinesInRepo:     int64(r.LinesInRepo),
			LinesChanged:    int64(r.LinesChanged),
			PctFilesChanged: r.PctFilesChanged,
			PctLinesChanged: r.PctLinesChanged,
		})
	}
	return rows
}

// WriteTrendRows writes the rows as a single Parquet file to w.
func WriteTrendRows(w io.Writer, rows []TrendRow) error {
	// The schema is derived from the TrendRow struct tags
	writer := parquet.NewGenericWriter[TrendRow](w)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the row group and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
