package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/huangsam/gitcount/internal/parquet"
	"github.com/huangsam/gitcount/schema"
)

// trendsCSVHeader mirrors the table columns with machine-friendly names.
var trendsCSVHeader = []string{
	"since",
	"until",
	"commits",
	"files_in_repo",
	"files_changed",
	"pct_files_changed",
	"lines_in_repo",
	"lines_changed",
	"pct_lines_changed",
}

// writeCSVResultsForTrends writes the report rows as CSV.
func writeCSVResultsForTrends(w io.Writer, result schema.TrendsResult) error {
	return writeCSVWithHeader(w, trendsCSVHeader, func(cw *csv.Writer) error {
		for _, r := range result.Rows {
			row := []string{
				r.Since.Format(schema.DateFormat),
				r.Until.Format(schema.DateFormat),
				strconv.Itoa(r.Commits),
				strconv.Itoa(r.FilesInRepo),
				strconv.Itoa(r.FilesChanged),
				r.PctFilesChanged,
				strconv.Itoa(r.LinesInRepo),
				strconv.Itoa(r.LinesChanged),
				r.PctLinesChanged,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeParquetResultsForTrends writes the report rows as a Parquet file.
func writeParquetResultsForTrends(w io.Writer, result schema.TrendsResult) error {
	return parquet.WriteTrendRows(w, parquet.ConvertTrendsResult(result))
}
