// Package period partitions time into the contiguous buckets of a trends report.
package period

import (
	"fmt"
	"slices"
	"time"

	"github.com/huangsam/gitcount/schema"
)

// Bucketer walks backward from today, one bucket per call to Next.
// Each bucket's Until equals the previous bucket's Since.
type Bucketer struct {
	period    schema.Period
	until     time.Time
	remaining int
}

// NewBucketer creates a Bucketer that yields number buckets ending at the
// bucket containing today. Only the calendar date of today is used.
func NewBucketer(p schema.Period, first schema.FirstDay, number int, today time.Time) (*Bucketer, error) {
	if !slices.Contains(schema.AllPeriods, p) {
		return nil, fmt.Errorf("%w: unknown period %q", schema.ErrInvalidConfiguration, p)
	}
	if _, err := firstDayShift(first); err != nil {
		return nil, err
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: number must be a positive integer (received %d)", schema.ErrInvalidConfiguration, number)
	}
	until, err := InitialUntil(p, first, today)
	if err != nil {
		return nil, err
	}
	return &Bucketer{period: p, until: until, remaining: number}, nil
}

// Next returns the next bucket, most recent first, and false once all
// buckets have been produced.
func (b *Bucketer) Next() (schema.Bucket, bool) {
	if b.remaining <= 0 {
		return schema.Bucket{}, false
	}
	since := previousBound(b.period, b.until)
	bucket := schema.Bucket{Since: since, Until: b.until}
	b.until = since
	b.remaining--
	return bucket, true
}

// Remaining reports how many buckets are left.
func (b *Bucketer) Remaining() int {
	return b.remaining
}

// Buckets collects every bucket of a Bucketer configuration.
func Buckets(p schema.Period, first schema.FirstDay, number int, today time.Time) ([]schema.Bucket, error) {
	b, err := NewBucketer(p, first, number, today)
	if err != nil {
		return nil, err
	}
	buckets := make([]schema.Bucket, 0, number)
	for bucket, ok := b.Next(); ok; bucket, ok = b.Next() {
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// InitialUntil returns the exclusive upper bound of the most recent bucket.
//
//   - daily: tomorrow
//   - weekly: the next week start after today's Monday-anchored week,
//     moved back one day for sunday and two for saturday
//   - monthly: the first day of next month
//   - yearly: January 1 of next year
func InitialUntil(p schema.Period, first schema.FirstDay, today time.Time) (time.Time, error) {
	d := dateOf(today)
	switch p {
	case schema.DailyPeriod:
		return d.AddDate(0, 0, 1), nil
	case schema.WeeklyPeriod:
		shift, err := firstDayShift(first)
		if err != nil {
			return time.Time{}, err
		}
		return d.AddDate(0, 0, 7-isoWeekday(d)-shift), nil
	case schema.MonthlyPeriod:
		return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC), nil
	case schema.YearlyPeriod:
		return time.Date(d.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown period %q", schema.ErrInvalidConfiguration, p)
}

// previousBound returns the Since of the bucket ending at until.
func previousBound(p schema.Period, until time.Time) time.Time {
	switch p {
	case schema.DailyPeriod:
		return until.AddDate(0, 0, -1)
	case schema.MonthlyPeriod:
		// time.Date normalizes month 0 to December of the previous year.
		return time.Date(until.Year(), until.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	case schema.YearlyPeriod:
		return time.Date(until.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // WeeklyPeriod
		return until.AddDate(0, 0, -7)
	}
}

func firstDayShift(first schema.FirstDay) (int, error) {
	switch first {
	case schema.MondayFirst, "":
		return 0, nil
	case schema.SundayFirst:
		return 1, nil
	case schema.SaturdayFirst:
		return 2, nil
	}
	return 0, fmt.Errorf("%w: unknown first day %q", schema.ErrInvalidConfiguration, first)
}

// isoWeekday returns the weekday with Monday as 0 and Sunday as 6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// dateOf drops the clock and location of t, keeping its calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
