package agg

import (
	"fmt"
	"strings"

	"github.com/huangsam/gitcount/schema"
)

// LogOptions are the caller-controlled git log filters of one query.
// The zero value filters nothing.
type LogOptions struct {
	Author   string
	Since    string
	Until    string
	All      bool
	NoMerges bool
}

// WithWindow returns a copy of the options bounded to a bucket.
func (o LogOptions) WithWindow(b schema.Bucket) LogOptions {
	o.Since = b.Since.Format(schema.BucketDateFormat)
	o.Until = b.Until.Format(schema.BucketDateFormat)
	return o
}

// Args translates the options into git arguments.
func (o LogOptions) Args() []string {
	return renderOptions(o.options())
}

func (o LogOptions) options() []option {
	return []option{
		{name: "all", value: o.All},
		{name: "author", value: o.Author},
		{name: "no_merges", value: o.NoMerges},
		{name: "since", value: o.Since},
		{name: "until", value: o.Until},
	}
}

// option is a named flag whose value is a bool (presence) or a string (valued).
type option struct {
	name  string
	value any
}

// renderOptions turns options into flags. True booleans become --name,
// non-empty strings become --name=value and underscores become hyphens.
// False and empty options are omitted.
func renderOptions(opts []option) []string {
	var args []string
	for _, opt := range opts {
		flag := "--" + strings.ReplaceAll(opt.name, "_", "-")
		switch v := opt.value.(type) {
		case bool:
			if v {
				args = append(args, flag)
			}
		case string:
			if v != "" {
				args = append(args, flag+"="+v)
			}
		case int:
			if v > 0 {
				args = append(args, fmt.Sprintf("%s=%d", flag, v))
			}
		}
	}
	return args
}

// logTemplate holds the git log options owned by the query adapter. They
// select the output shape of a query and never come from callers.
type logTemplate struct {
	oneline   bool
	reverse   bool
	maxCount  int
	format    string
	shortstat bool
}

func (t logTemplate) args() []string {
	return renderOptions([]option{
		{name: "oneline", value: t.oneline},
		{name: "reverse", value: t.reverse},
		{name: "max_count", value: t.maxCount},
		{name: "format", value: t.format},
		{name: "shortstat", value: t.shortstat},
	})
}
