package calendar

// English weekday and month name tables, indexed the way the format
// specifiers consume them: day names Sunday..Saturday (index 0..6, the
// same indexing as Date.Weekday and ISODow mod 7), month names
// January..December (index 0..11, i.e. month-1).
//
// Locale-dependent names are explicitly out of scope; this is the fixed
// English set.

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var dayNamesAbbreviated = [7]string{
	"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthNamesAbbreviated = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WeekdayName returns the full English weekday name for Date.Weekday()'s
// (Sunday = 0) indexing.
func WeekdayName(sundayZeroIndex int) string { return dayNames[sundayZeroIndex] }

// WeekdayNameAbbreviated returns the abbreviated English weekday name.
func WeekdayNameAbbreviated(sundayZeroIndex int) string { return dayNamesAbbreviated[sundayZeroIndex] }

// MonthName returns the full English month name for month 1..12.
func MonthName(month int) string { return monthNames[month-1] }

// MonthNameAbbreviated returns the abbreviated English month name.
func MonthNameAbbreviated(month int) string { return monthNamesAbbreviated[month-1] }

// WeekdayByName resolves a weekday name (full or abbreviated, matched
// case-insensitively by the caller) to its Sunday = 0 index. It returns
// -1 if no name matches.
func WeekdayByName(lowered string) int {
	for i, name := range dayNames {
		if asciiLower(name) == lowered {
			return i
		}
	}
	for i, name := range dayNamesAbbreviated {
		if asciiLower(name) == lowered {
			return i
		}
	}
	return -1
}

// MonthByName resolves a month name to its 1..12 value, or 0 if no name
// matches.
func MonthByName(lowered string) int {
	for i, name := range monthNames {
		if asciiLower(name) == lowered {
			return i + 1
		}
	}
	for i, name := range monthNamesAbbreviated {
		if asciiLower(name) == lowered {
			return i + 1
		}
	}
	return 0
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
