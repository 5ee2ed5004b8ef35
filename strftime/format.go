package strftime

import (
	"strconv"

	"github.com/moneytech/duckdb-strftime/calendar"
)

// PredictLength returns the exact number of bytes FormatAppend will write
// for ts under p. The formatter never probes length and width
// separately at runtime for any other reason; this is the sole oracle.
func PredictLength(p *Program, ts calendar.Timestamp) int {
	total := p.ConstantSize
	for _, spec := range p.Specifiers {
		if _, ok := constantSize[spec]; ok {
			continue
		}
		total += variableLength(spec, ts)
	}
	return total
}

func variableLength(spec Specifier, ts calendar.Timestamp) int {
	d := ts.Date()
	t := ts.Time()
	switch spec {
	case WeekdayFull:
		return len(calendar.WeekdayName(d.Weekday()))
	case MonthFull:
		return len(calendar.MonthName(d.Month()))
	case YearFull:
		return yearFieldLen(d.Year())
	case DayUnpadded:
		return unpaddedLen(d.Day())
	case MonthUnpadded:
		return unpaddedLen(d.Month())
	case Year2Unpadded:
		return unpaddedLen(normalizeYear2(d.Year()))
	case Hour24Unpadded:
		return unpaddedLen(t.Hour)
	case Hour12Unpadded:
		return unpaddedLen(hour12(t.Hour))
	case MinuteUnpadded:
		return unpaddedLen(t.Minute)
	case SecondUnpadded:
		return unpaddedLen(t.Second)
	case DayOfYearUnpadded:
		return decimalLen(d.DayOfYear())
	case TZOffset, TZName:
		return 0
	default:
		return 0
	}
}

// Format renders ts under p into a freshly allocated string of exactly
// PredictLength(p, ts) bytes.
func Format(p *Program, ts calendar.Timestamp) string {
	buf := make([]byte, 0, PredictLength(p, ts))
	buf = FormatAppend(buf, p, ts)
	return string(buf)
}

// FormatAppend appends the rendering of ts under p to buf and returns the
// extended slice. The number of bytes appended equals PredictLength(p,
// ts).
func FormatAppend(buf []byte, p *Program, ts calendar.Timestamp) []byte {
	d := ts.Date()
	t := ts.Time()

	for i, spec := range p.Specifiers {
		buf = append(buf, p.Literals[i]...)
		buf = appendSpecifier(buf, spec, d, t)
	}
	return append(buf, p.Literals[len(p.Literals)-1]...)
}

func appendSpecifier(buf []byte, spec Specifier, d calendar.Date, t calendar.Time) []byte {
	switch spec {
	case WeekdayAbbrev:
		return append(buf, calendar.WeekdayNameAbbreviated(d.Weekday())...)
	case WeekdayFull:
		return append(buf, calendar.WeekdayName(d.Weekday())...)
	case WeekdayNum:
		return append(buf, byte('0'+d.Weekday()))
	case DayPadded:
		return appendPadded2(buf, d.Day())
	case DayUnpadded:
		return appendUnpadded(buf, d.Day())
	case MonthAbbrev:
		return append(buf, calendar.MonthNameAbbreviated(d.Month())...)
	case MonthFull:
		return append(buf, calendar.MonthName(d.Month())...)
	case MonthPadded:
		return appendPadded2(buf, d.Month())
	case MonthUnpadded:
		return appendUnpadded(buf, d.Month())
	case Year2Padded:
		return appendPadded2(buf, normalizeYear2(d.Year()))
	case Year2Unpadded:
		return appendUnpadded(buf, normalizeYear2(d.Year()))
	case YearFull:
		return appendYear4(buf, d.Year())
	case Hour24Padded:
		return appendPadded2(buf, t.Hour)
	case Hour24Unpadded:
		return appendUnpadded(buf, t.Hour)
	case Hour12Padded:
		return appendPadded2(buf, hour12(t.Hour))
	case Hour12Unpadded:
		return appendUnpadded(buf, hour12(t.Hour))
	case AMPM:
		if t.Hour >= 12 {
			return append(buf, "PM"...)
		}
		return append(buf, "AM"...)
	case MinutePadded:
		return appendPadded2(buf, t.Minute)
	case MinuteUnpadded:
		return appendUnpadded(buf, t.Minute)
	case SecondPadded:
		return appendPadded2(buf, t.Second)
	case SecondUnpadded:
		return appendUnpadded(buf, t.Second)
	case Microsecond:
		return appendPadded6(buf, t.Microsecond)
	case TZOffset, TZName:
		return buf
	case DayOfYearPadded:
		return appendPadded3(buf, d.DayOfYear())
	case DayOfYearUnpadded:
		return append(buf, strconv.Itoa(d.DayOfYear())...)
	case WeekSundayFirst:
		return appendPadded2(buf, d.WeekNumberRegular(false))
	case WeekMondayFirst:
		return appendPadded2(buf, d.WeekNumberRegular(true))
	default:
		return buf
	}
}

// appendYear4 writes %Y: zero-padded to 4 digits for 0 <= year <= 9999,
// else a leading '-' for negative years followed by the unsigned
// magnitude.
func appendYear4(buf []byte, year int) []byte {
	if year >= 0 && year <= 9999 {
		buf = appendPadded2(buf, year/100)
		return appendPadded2(buf, year%100)
	}
	if year < 0 {
		buf = append(buf, '-')
		year = -year
	}
	return append(buf, strconv.Itoa(year)...)
}

// yearFieldLen returns the length %Y will occupy: always 4 for years in
// 0..9999 (zero-padded), otherwise a leading '-' for negative years plus
// the decimal length of the magnitude.
func yearFieldLen(year int) int {
	if year >= 0 && year <= 9999 {
		return 4
	}
	if year < 0 {
		return 1 + decimalLen(-year)
	}
	return decimalLen(year)
}

func normalizeYear2(year int) int {
	y := year % 100
	if y < 0 {
		y += 100
	}
	return y
}

// hour12 maps a 24-hour value into 1..12.
func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}
