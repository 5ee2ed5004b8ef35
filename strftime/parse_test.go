package strftime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	p := mustCompile(t, "%-d %b %Y", Parse)
	tup, ampm, err := Parse(p, "5 Dec 1992")
	require.NoError(t, err)
	assert.Equal(t, AMPMNone, ampm)
	assert.Equal(t, Tuple{Year: 1992, Month: 12, Day: 5}, tup)
}

func TestParseHour12OutOfRange(t *testing.T) {
	p := mustCompile(t, "%-I %p", Parse)
	_, _, err := Parse(p, "13 PM")
	require.Error(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, "Hour12 out of range, expected a value between 1 and 12", perr.Message)
	assert.Equal(t, 0, perr.Position)
}

func TestParseWhitespaceIdempotence(t *testing.T) {
	p := mustCompile(t, "%Y-%m-%d", Parse)
	base, _, err := Parse(p, "1992-03-02")
	require.NoError(t, err)

	padded, _, err := Parse(p, "   1992-03-02   ")
	require.NoError(t, err)
	assert.Equal(t, base, padded)
}

func TestParseLiteralMismatch(t *testing.T) {
	p := mustCompile(t, "%Y/%m/%d", Parse)
	_, _, err := Parse(p, "1992-03-02")
	require.Error(t, err)
	perr := err.(*ParseError)
	assert.Equal(t, "Literal does not match, expected /", perr.Message)
}

func TestParseTrailingCharacters(t *testing.T) {
	p := mustCompile(t, "%Y", Parse)
	_, _, err := Parse(p, "1992x")
	require.Error(t, err)
	perr := err.(*ParseError)
	assert.Equal(t, "Full specifier did not match: trailing characters", perr.Message)
	assert.Equal(t, 4, perr.Position)
}

func TestParseAccumulatorOverflow(t *testing.T) {
	p := mustCompile(t, "%Y", Parse)
	_, _, err := Parse(p, "99999999999")
	require.Error(t, err)
	perr := err.(*ParseError)
	assert.Equal(t, "Number is out of range of format specifier", perr.Message)
}

func TestParseAMPMResolution(t *testing.T) {
	p := mustCompile(t, "%I:%M %p", Parse)

	tup, _, err := Parse(p, "12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, tup.Hour)

	tup, _, err = Parse(p, "12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 12, tup.Hour)

	tup, _, err = Parse(p, "07:08 PM")
	require.NoError(t, err)
	assert.Equal(t, 19, tup.Hour)
}

func TestRoundTrip24Hour(t *testing.T) {
	fp := mustCompile(t, "%Y-%m-%d %H:%M:%S", Format)
	pp := mustCompile(t, "%Y-%m-%d %H:%M:%S", Parse)

	for year := 1990; year < 1995; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 28; day++ {
				for hour := 0; hour <= 23; hour += 5 {
					v := ts(year, month, day, hour, 30, 15, 0)
					s := Format(fp, v)
					tup, _, err := Parse(pp, s)
					require.NoError(t, err)
					assert.Equal(t, year, tup.Year)
					assert.Equal(t, month, tup.Month)
					assert.Equal(t, day, tup.Day)
					assert.Equal(t, hour, tup.Hour)
					assert.Equal(t, 30, tup.Minute)
					assert.Equal(t, 15, tup.Second)
				}
			}
		}
	}
}

func TestRoundTrip12Hour(t *testing.T) {
	fp := mustCompile(t, "%Y-%m-%d %I:%M:%S %p", Format)
	pp := mustCompile(t, "%Y-%m-%d %I:%M:%S %p", Parse)

	for hour := 0; hour <= 23; hour++ {
		v := ts(1992, 6, 15, hour, 0, 0, 0)
		s := Format(fp, v)
		tup, _, err := Parse(pp, s)
		require.NoError(t, err)
		assert.Equal(t, hour, tup.Hour)
	}
}

func TestRoundTripMicrosecond(t *testing.T) {
	fp := mustCompile(t, "%Y-%m-%d %H:%M:%S.%f", Format)
	pp := mustCompile(t, "%Y-%m-%d %H:%M:%S.%f", Parse)

	v := ts(2020, 2, 3, 4, 5, 6, 7)
	s := Format(fp, v)
	assert.Equal(t, "2020-02-03 04:05:06.000007", s)

	tup, _, err := Parse(pp, s)
	require.NoError(t, err)
	assert.Equal(t, 7, tup.Micro)
}
