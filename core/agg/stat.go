// Package agg turns git log output into the counts a trends report needs.
package agg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/huangsam/gitcount/schema"
)

// StatKind classifies a shortstat summary line.
//
// The grammar is zero to three digit groups plus an optional "(+)" or "(-)"
// tag that disambiguates the two-group case:
//
//	3 files changed, 10 insertions(+), 2 deletions(-)   Full
//	1 file changed, 5 insertions(+)                     PlusOnly
//	1 file changed, 5 deletions(-)                      MinusOnly
//	4 files changed                                     CountOnly
type StatKind int

// All shortstat line kinds.
const (
	NoData StatKind = iota
	CountOnly
	PlusOnly
	MinusOnly
	Full
	Malformed
)

// String returns the kind name.
func (k StatKind) String() string {
	switch k {
	case NoData:
		return "NoData"
	case CountOnly:
		return "CountOnly"
	case PlusOnly:
		return "PlusOnly"
	case MinusOnly:
		return "MinusOnly"
	case Full:
		return "Full"
	default:
		return "Malformed"
	}
}

// LineStat is the tagged result of parsing one summary line.
type LineStat struct {
	Kind       StatKind
	Files      int
	Insertions int
	Deletions  int
}

// Triple returns the normalized counts. It reports false for NoData and
// Malformed lines, which contribute nothing to totals.
func (s LineStat) Triple() (schema.StatTriple, bool) {
	switch s.Kind {
	case CountOnly, PlusOnly, MinusOnly, Full:
		return schema.StatTriple{Files: s.Files, Insertions: s.Insertions, Deletions: s.Deletions}, true
	default:
		return schema.StatTriple{}, false
	}
}

var digitsRe = regexp.MustCompile(`\d+`)

// ParseStatLine parses a single shortstat summary line.
func ParseStatLine(line string) LineStat {
	groups := digitsRe.FindAllString(line, -1)
	nums := make([]int, 0, len(groups))
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil {
			// Only overflow gets here.
			return LineStat{Kind: Malformed}
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 0:
		return LineStat{Kind: NoData}
	case 1:
		return LineStat{Kind: CountOnly, Files: nums[0]}
	case 2:
		switch {
		case strings.Contains(line, "(+)"):
			return LineStat{Kind: PlusOnly, Files: nums[0], Insertions: nums[1]}
		case strings.Contains(line, "(-)"):
			return LineStat{Kind: MinusOnly, Files: nums[0], Deletions: nums[1]}
		default:
			return LineStat{Kind: Malformed}
		}
	case 3:
		return LineStat{Kind: Full, Files: nums[0], Insertions: nums[1], Deletions: nums[2]}
	default:
		return LineStat{Kind: Malformed}
	}
}
