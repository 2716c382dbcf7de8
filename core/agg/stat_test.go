package agg

import (
	"testing"

	"github.com/huangsam/gitcount/schema"
	"github.com/stretchr/testify/assert"
)

func TestParseStatLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected LineStat
	}{
		{
			name:     "full summary",
			line:     " 3 files changed, 10 insertions(+), 2 deletions(-)",
			expected: LineStat{Kind: Full, Files: 3, Insertions: 10, Deletions: 2},
		},
		{
			name:     "insertions only",
			line:     " 1 file changed, 5 insertions(+)",
			expected: LineStat{Kind: PlusOnly, Files: 1, Insertions: 5},
		},
		{
			name:     "deletions only",
			line:     " 1 file changed, 5 deletions(-)",
			expected: LineStat{Kind: MinusOnly, Files: 1, Deletions: 5},
		},
		{
			name:     "file count only",
			line:     " 4 files changed",
			expected: LineStat{Kind: CountOnly, Files: 4},
		},
		{
			name:     "no digits",
			line:     "nothing to see here",
			expected: LineStat{Kind: NoData},
		},
		{
			name:     "empty line",
			line:     "",
			expected: LineStat{Kind: NoData},
		},
		{
			name:     "two numbers without a tag",
			line:     " 2 files changed, 7 lines",
			expected: LineStat{Kind: Malformed},
		},
		{
			name:     "too many numbers",
			line:     " 1 2 3 4",
			expected: LineStat{Kind: Malformed},
		},
		{
			name:     "singular insertion",
			line:     " 1 file changed, 1 insertion(+), 1 deletion(-)",
			expected: LineStat{Kind: Full, Files: 1, Insertions: 1, Deletions: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStatLine(tt.line))
		})
	}
}

func TestLineStatTriple(t *testing.T) {
	triple, ok := ParseStatLine(" 1 file changed, 5 insertions(+)").Triple()
	assert.True(t, ok)
	assert.Equal(t, schema.StatTriple{Files: 1, Insertions: 5, Deletions: 0}, triple)

	triple, ok = ParseStatLine(" 1 file changed, 5 deletions(-)").Triple()
	assert.True(t, ok)
	assert.Equal(t, schema.StatTriple{Files: 1, Insertions: 0, Deletions: 5}, triple)

	_, ok = ParseStatLine("abc").Triple()
	assert.False(t, ok, "NoData should not produce a triple")

	_, ok = ParseStatLine(" 2 files, 7").Triple()
	assert.False(t, ok, "Malformed should not produce a triple")
}

func TestStatKindString(t *testing.T) {
	assert.Equal(t, "Full", Full.String())
	assert.Equal(t, "PlusOnly", PlusOnly.String())
	assert.Equal(t, "Malformed", Malformed.String())
	assert.Equal(t, "Malformed", StatKind(42).String())
}
