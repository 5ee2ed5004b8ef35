package strftime

import (
	"fmt"

	"github.com/moneytech/duckdb-strftime/calendar"
)

// ParseError is the (message, position) pair the parser contract
// returns on failure. Position is a byte index into the string that was
// being parsed.
type ParseError struct {
	Message  string
	Position int
}

func (e *ParseError) Error() string { return e.Message }

const maxAccumulator = 1_000_000

// Parse walks input against p left to right, consuming literals and
// specifier-driven fields, and returns the resulting Calendar Tuple and
// AM/PM flag. Leading and trailing whitespace in input is tolerated;
// interior whitespace must match the literal fragments exactly.
func Parse(p *Program, input string) (Tuple, AMPM, error) {
	tup := NewTuple()
	ampm := AMPMNone

	pos := skipSpaces(input, 0)

	for i, spec := range p.Specifiers {
		lit := p.Literals[i]
		var err error
		if pos, err = matchLiteral(input, pos, lit); err != nil {
			return tup, ampm, err
		}
		if pos, err = consumeSpecifier(input, pos, spec, &tup, &ampm); err != nil {
			return tup, ampm, err
		}
	}

	lastLit := p.Literals[len(p.Literals)-1]
	pos2, err := matchLiteral(input, pos, lastLit)
	if err != nil {
		return tup, ampm, err
	}
	pos = pos2

	pos = skipSpaces(input, pos)
	if pos < len(input) {
		return tup, ampm, &ParseError{
			Message:  "Full specifier did not match: trailing characters",
			Position: pos,
		}
	}

	tup.Hour = ampm.ResolveHour(tup.Hour)
	return tup, ampm, nil
}

func matchLiteral(input string, pos int, lit string) (int, error) {
	if pos+len(lit) > len(input) || input[pos:pos+len(lit)] != lit {
		return pos, &ParseError{
			Message:  fmt.Sprintf("Literal does not match, expected %s", lit),
			Position: pos,
		}
	}
	return pos + len(lit), nil
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || (s[pos] >= '\t' && s[pos] <= '\r')) {
		pos++
	}
	return pos
}

func consumeSpecifier(input string, pos int, spec Specifier, tup *Tuple, ampm *AMPM) (int, error) {
	if isNumericSpecifier[spec] {
		return consumeNumeric(input, pos, spec, tup)
	}
	switch spec {
	case AMPM:
		return consumeAMPM(input, pos, ampm)
	case WeekdayAbbrev, WeekdayFull:
		word, newPos := consumeWord(input, pos)
		if calendar.WeekdayByName(asciiLowerStr(word)) < 0 {
			return pos, &ParseError{Message: "Expected a weekday name", Position: pos}
		}
		return newPos, nil
	case MonthAbbrev, MonthFull:
		word, newPos := consumeWord(input, pos)
		month := calendar.MonthByName(asciiLowerStr(word))
		if month == 0 {
			return pos, &ParseError{Message: "Expected a month name", Position: pos}
		}
		tup.Month = month
		return newPos, nil
	default:
		// Only TZOffset and TZName reach here: they are not consumed by
		// the parser and fail. The non-invertible specifiers are numeric
		// and are rejected at compile time for Role == Parse anyway.
		return pos, &ParseError{Message: "cannot parse this specifier", Position: pos}
	}
}

func consumeNumeric(input string, pos int, spec Specifier, tup *Tuple) (int, error) {
	start := pos
	var acc uint64
	for pos < len(input) && isDigit(input[pos]) {
		acc = acc*10 + uint64(input[pos]-'0')
		if acc > maxAccumulator {
			return pos, &ParseError{Message: "Number is out of range of format specifier", Position: start}
		}
		pos++
	}
	if pos == start {
		return pos, &ParseError{Message: "Expected a number", Position: start}
	}
	n := int(acc)

	switch spec {
	case DayPadded, DayUnpadded:
		if n < 1 || n > 31 {
			return pos, rangeError("Day", 1, 31, start)
		}
		tup.Day = n
	case MonthPadded, MonthUnpadded:
		if n < 1 || n > 12 {
			return pos, rangeError("Month", 1, 12, start)
		}
		tup.Month = n
	case Year2Padded, Year2Unpadded:
		if n < 0 || n > 99 {
			return pos, rangeError("Year", 0, 99, start)
		}
		if n >= 69 {
			tup.Year = 1900 + n
		} else {
			tup.Year = 2000 + n
		}
	case YearFull:
		tup.Year = n
	case Hour24Padded, Hour24Unpadded:
		if n < 0 || n > 23 {
			return pos, rangeError("Hour24", 0, 23, start)
		}
		tup.Hour = n
	case Hour12Padded, Hour12Unpadded:
		if n < 1 || n > 12 {
			return pos, rangeError("Hour12", 1, 12, start)
		}
		tup.Hour = n
	case MinutePadded, MinuteUnpadded:
		if n < 0 || n > 59 {
			return pos, rangeError("Minute", 0, 59, start)
		}
		tup.Minute = n
	case SecondPadded, SecondUnpadded:
		if n < 0 || n > 59 {
			return pos, rangeError("Second", 0, 59, start)
		}
		tup.Second = n
	case Microsecond:
		if n < 0 || n > 999999 {
			return pos, rangeError("Microsecond", 0, 999999, start)
		}
		tup.Micro = n
	}
	return pos, nil
}

func consumeAMPM(input string, pos int, ampm *AMPM) (int, error) {
	if pos+2 > len(input) {
		return pos, &ParseError{Message: "Expected AM/PM marker", Position: pos}
	}
	first, second := lowerByte(input[pos]), lowerByte(input[pos+1])
	if second != 'm' || (first != 'a' && first != 'p') {
		return pos, &ParseError{Message: "Expected AM/PM marker", Position: pos}
	}
	if first == 'a' {
		*ampm = AM
	} else {
		*ampm = PM
	}
	return pos + 2, nil
}

func rangeError(field string, lo, hi, pos int) error {
	return &ParseError{
		Message:  fmt.Sprintf("%s out of range, expected a value between %d and %d", field, lo, hi),
		Position: pos,
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func consumeWord(s string, pos int) (string, int) {
	start := pos
	for pos < len(s) && isAlpha(s[pos]) {
		pos++
	}
	return s[start:pos], pos
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func asciiLowerStr(s string) string {
	b := []byte(s)
	for i, c := range b {
		b[i] = lowerByte(c)
	}
	return string(b)
}
