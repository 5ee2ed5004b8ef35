// Package strftime compiles printf-style date/time format strings into a
// Program, then formats calendar.Timestamp values with it or parses
// strings back into calendar fields with it.
//
// The format language is the classic strftime/strptime specifier set
// (%Y, %m, %d, %H, ...), bit-compatible with the subset listed on the
// Specifier constants. Time zone specifiers (%z, %Z) format as empty strings and are
// never consumed while parsing; locale-dependent names are not supported,
// only the fixed English set from package calendar.
package strftime

// Specifier is a single calendar/clock field kind recognized by the
// format language.
type Specifier int

const (
	WeekdayAbbrev     Specifier = iota // %a
	WeekdayFull                        // %A
	WeekdayNum                         // %w  (0..6, Sunday = 0)
	DayPadded                         // %d
	DayUnpadded                       // %-d
	MonthAbbrev                       // %b, %h
	MonthFull                         // %B
	MonthPadded                       // %m
	MonthUnpadded                     // %-m
	Year2Padded                       // %y
	Year2Unpadded                     // %-y
	YearFull                          // %Y
	Hour24Padded                      // %H
	Hour24Unpadded                    // %-H
	Hour12Padded                      // %I
	Hour12Unpadded                    // %-I
	AMPM                              // %p
	MinutePadded                      // %M
	MinuteUnpadded                    // %-M
	SecondPadded                      // %S
	SecondUnpadded                    // %-S
	Microsecond                       // %f
	TZOffset                          // %z (always formats empty, never parsed)
	TZName                            // %Z (always formats empty, never parsed)
	DayOfYearPadded                   // %j
	DayOfYearUnpadded                 // %-j
	WeekSundayFirst                   // %U
	WeekMondayFirst                   // %W
)

// constantSize holds the fixed output width of every specifier whose
// width does not depend on the formatted value. Specifiers absent from
// this map are variable-length.
var constantSize = map[Specifier]int{
	WeekdayAbbrev:    3,
	MonthAbbrev:      3,
	DayOfYearPadded:  3,
	WeekdayNum:       1,
	DayPadded:        2,
	MonthPadded:      2,
	Year2Padded:      2,
	Hour24Padded:     2,
	Hour12Padded:     2,
	MinutePadded:     2,
	SecondPadded:     2,
	AMPM:             2,
	WeekSundayFirst:  2,
	WeekMondayFirst:  2,
	Microsecond:      6,
}

// isDateSpecifier reports whether formatting the specifier requires the
// date component of a timestamp (as opposed to only the time-of-day).
var isDateSpecifier = map[Specifier]bool{
	WeekdayAbbrev:     true,
	WeekdayFull:       true,
	WeekdayNum:        true,
	DayPadded:         true,
	DayUnpadded:       true,
	MonthAbbrev:       true,
	MonthFull:         true,
	MonthPadded:       true,
	MonthUnpadded:     true,
	Year2Padded:       true,
	Year2Unpadded:     true,
	YearFull:          true,
	DayOfYearPadded:   true,
	DayOfYearUnpadded: true,
	WeekSundayFirst:   true,
	WeekMondayFirst:   true,
}

// isNumericSpecifier reports whether the parser consumes a run of ASCII
// digits for this specifier, as opposed to an enumerated token (a name or
// AM/PM marker).
var isNumericSpecifier = map[Specifier]bool{
	DayPadded:         true,
	DayUnpadded:       true,
	MonthPadded:       true,
	MonthUnpadded:     true,
	Year2Padded:       true,
	Year2Unpadded:     true,
	YearFull:          true,
	Hour24Padded:      true,
	Hour24Unpadded:    true,
	Hour12Padded:      true,
	Hour12Unpadded:    true,
	MinutePadded:      true,
	MinuteUnpadded:    true,
	SecondPadded:      true,
	SecondUnpadded:    true,
	Microsecond:       true,
	DayOfYearPadded:   true,
	DayOfYearUnpadded: true,
	WeekdayNum:        true,
	WeekSundayFirst:   true,
	WeekMondayFirst:   true,
}

// notInvertible is the set of specifiers strptime cannot consume: they
// have no well-defined inverse in this engine.
var notInvertible = map[Specifier]bool{
	DayOfYearPadded:   true,
	DayOfYearUnpadded: true,
	WeekdayNum:        true,
	WeekSundayFirst:   true,
	WeekMondayFirst:   true,
}
