package strftime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytech/duckdb-strftime/calendar"
)

func mustCompile(t *testing.T, format string, role Role) *Program {
	t.Helper()
	p, err := Compile(format, role)
	require.NoError(t, err)
	return p
}

func ts(year, month, day, hour, min, sec, micro int) calendar.Timestamp {
	return calendar.TimestampFrom(
		calendar.DateFromYMD(year, month, day),
		calendar.TimeFromHMSU(hour, min, sec, micro),
	)
}

func TestFormatScenarios(t *testing.T) {
	tests := []struct {
		name   string
		format string
		ts     calendar.Timestamp
		want   string
	}{
		{"weekday and full month", "%a, %-d %B %Y", ts(1992, 1, 1, 0, 0, 0, 0), "Wed, 1 January 1992"},
		{"full timestamp", "%Y-%m-%d %H:%M:%S", ts(1992, 3, 2, 7, 8, 9, 0), "1992-03-02 07:08:09"},
		{"12 hour pm", "%I:%M %p", ts(1992, 3, 2, 19, 8, 9, 0), "07:08 PM"},
		{"negative year", "%Y", ts(-1, 12, 31, 0, 0, 0, 0), "-1"},
		{"week sunday first", "%U", ts(1992, 9, 20, 0, 0, 0, 0), "38"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustCompile(t, tt.format, Format)
			got := Format(p, tt.ts)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLengthExactness(t *testing.T) {
	formats := []string{
		"%Y-%m-%d %H:%M:%S", "%a, %-d %B %Y", "%c", "%x", "%X",
		"%I:%M %p", "%-j %U %W", "%f",
	}
	timestamps := []calendar.Timestamp{
		ts(1992, 1, 1, 0, 0, 0, 0),
		ts(2000, 12, 31, 23, 59, 59, 999999),
		ts(-1, 12, 31, 0, 0, 0, 0),
		ts(10001, 6, 15, 5, 4, 3, 120),
		ts(68, 2, 29, 12, 0, 0, 0),
	}

	for _, format := range formats {
		p := mustCompile(t, format, Format)
		for _, v := range timestamps {
			predicted := PredictLength(p, v)
			got := Format(p, v)
			assert.Equal(t, predicted, len(got), "format %q timestamp %+v", format, v)
		}
	}
}

func TestCompositeFormatByteIdentical(t *testing.T) {
	composite := mustCompile(t, "X%cY", Format)
	explicit := mustCompile(t, "X%Y-%m-%d %H:%M:%SY", Format)

	v := ts(1992, 3, 2, 7, 8, 9, 0)
	assert.Equal(t, Format(explicit, v), Format(composite, v))
}

func TestTimeZoneSpecifiersFormatEmpty(t *testing.T) {
	p := mustCompile(t, "[%z][%Z]", Format)
	got := Format(p, ts(2000, 1, 1, 0, 0, 0, 0))
	assert.Equal(t, "[][]", got)
}
