package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteBucketsResults writes bucket boundaries to w, dispatching on the configured output format.
func WriteBucketsResults(w io.Writer, buckets []schema.Bucket, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, buckets)
	case schema.CSVOut:
		return writeCSVWithHeader(w, []string{"index", "since", "until"}, func(cw *csv.Writer) error {
			for i, b := range buckets {
				if err := cw.Write([]string{strconv.Itoa(i + 1), b.Since.Format(schema.DateFormat), b.Until.Format(schema.DateFormat)}); err != nil {
					return err
				}
			}
			return nil
		})
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for buckets")
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Since", "Until"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	var data [][]string
	for i, b := range buckets {
		data = append(data, []string{strconv.Itoa(i + 1), b.Since.Format(schema.DateFormat), b.Until.Format(schema.DateFormat)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
