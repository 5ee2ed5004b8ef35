package strftime

import "strconv"

// twoDigits is a constant lookup table mapping 0..99 to its two-character
// decimal rendering, used to write every 2-digit field without going
// through strconv in the hot formatting path.
var twoDigits = [100]string{
	"00", "01", "02", "03", "04", "05", "06", "07", "08", "09",
	"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
	"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
	"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
	"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
	"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
	"60", "61", "62", "63", "64", "65", "66", "67", "68", "69",
	"70", "71", "72", "73", "74", "75", "76", "77", "78", "79",
	"80", "81", "82", "83", "84", "85", "86", "87", "88", "89",
	"90", "91", "92", "93", "94", "95", "96", "97", "98", "99",
}

// appendPadded2 appends the 2-digit zero-padded rendering of v (0..99) to
// buf.
func appendPadded2(buf []byte, v int) []byte {
	return append(buf, twoDigits[v]...)
}

// appendPadded3 appends the 3-digit zero-padded rendering of v (0..999) to
// buf, as a hundreds digit followed by the 2-digit remainder.
func appendPadded3(buf []byte, v int) []byte {
	hundreds := v / 100
	buf = append(buf, byte('0'+hundreds))
	return appendPadded2(buf, v%100)
}

// appendPadded6 appends the 6-digit zero-padded rendering of v
// (0..999999) to buf, as three 2-digit chunks, least significant last.
func appendPadded6(buf []byte, v int) []byte {
	buf = appendPadded2(buf, v/10000)
	buf = appendPadded2(buf, (v/100)%100)
	return appendPadded2(buf, v%100)
}

// appendUnpadded appends v (0..99) without a leading zero.
func appendUnpadded(buf []byte, v int) []byte {
	if v < 10 {
		return append(buf, byte('0'+v))
	}
	return appendPadded2(buf, v)
}

// unpaddedLen returns the decimal length of v (0..99) written without a
// leading zero: 1 if v < 10, else 2.
func unpaddedLen(v int) int {
	if v < 10 {
		return 1
	}
	return 2
}

// decimalLen returns the length of the base-10 rendering of v, including
// a leading '-' for negative values.
func decimalLen(v int) int {
	return len(strconv.Itoa(v))
}
