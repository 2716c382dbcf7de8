package schema

// Custom string types for type safety.
type (
	// Period represents the size of a report bucket.
	Period string

	// FirstDay represents the day a weekly bucket starts on.
	FirstDay string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All periods supported.
const (
	DailyPeriod   Period = "daily"
	WeeklyPeriod  Period = "weekly" // default
	MonthlyPeriod Period = "monthly"
	YearlyPeriod  Period = "yearly"
)

// All first-day-of-week conventions supported.
const (
	MondayFirst   FirstDay = "monday" // default
	SundayFirst   FirstDay = "sunday"
	SaturdayFirst FirstDay = "saturday"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// AllPeriods returns a list of all supported periods.
var AllPeriods = []Period{DailyPeriod, WeeklyPeriod, MonthlyPeriod, YearlyPeriod}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// BucketDateFormat is how bucket bounds are handed to git.
const BucketDateFormat = "2006-01-02 00:00:00"

// DateFormat is how bucket bounds are displayed.
const DateFormat = "2006-01-02"
