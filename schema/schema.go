// Package schema has the data model shared across gitcount.
package schema

import "time"

// Bucket is a half-open interval [Since, Until) of calendar dates.
type Bucket struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// StatTriple is the normalized content of one shortstat summary line.
type StatTriple struct {
	Files      int `json:"files"`
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

// ReportRow holds the statistics of one bucket.
type ReportRow struct {
	Since           time.Time `json:"since"`
	Until           time.Time `json:"until"`
	Commits         int       `json:"commits"`
	FilesInRepo     int       `json:"files_in_repo"`
	FilesChanged    int       `json:"files_changed"`
	PctFilesChanged string    `json:"pct_files_changed"`
	LinesInRepo     int       `json:"lines_in_repo"`
	LinesChanged    int       `json:"lines_changed"`
	PctLinesChanged string    `json:"pct_lines_changed"`
}

// TrendsResult holds the report rows, most recent bucket first, along with
// the effective bucketing parameters.
type TrendsResult struct {
	Period   Period      `json:"period"`
	FirstDay FirstDay    `json:"first_day"`
	Number   int         `json:"number"`
	Rows     []ReportRow `json:"rows"`
}

// TrendsHeaders are the column titles of a trends table.
var TrendsHeaders = []string{
	"Since",
	"Until",
	"# commits",
	"# files in repo",
	"# files changed",
	"% files changed",
	"# lines in repo",
	"# lines changed",
	"% lines changed",
}
