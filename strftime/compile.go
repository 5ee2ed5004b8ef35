package strftime

import "fmt"

// Role selects which metadata Compile precomputes: Format programs carry
// IsDateSpecifier (the formatter's per-specifier metadata), Parse
// programs carry IsNumeric and reject the specifiers that have no
// inverse.
type Role int

const (
	Format Role = iota
	Parse
)

// specifierTable maps every single format character (after a bare '%')
// to the Specifier it compiles to. Unpadded forms ("%-d" and friends) are
// handled separately by the scanner, since they share the same trailing
// character as their padded counterpart.
var specifierTable = map[byte]Specifier{
	'a': WeekdayAbbrev,
	'A': WeekdayFull,
	'w': WeekdayNum,
	'd': DayPadded,
	'b': MonthAbbrev,
	'h': MonthAbbrev,
	'B': MonthFull,
	'm': MonthPadded,
	'y': Year2Padded,
	'Y': YearFull,
	'H': Hour24Padded,
	'I': Hour12Padded,
	'p': AMPM,
	'M': MinutePadded,
	'S': SecondPadded,
	'f': Microsecond,
	'z': TZOffset,
	'Z': TZName,
	'j': DayOfYearPadded,
	'U': WeekSundayFirst,
	'W': WeekMondayFirst,
}

// unpaddedTable maps the character following "%-" to its unpadded
// Specifier. Only these eight specifiers have an unpadded form.
var unpaddedTable = map[byte]Specifier{
	'd': DayUnpadded,
	'm': MonthUnpadded,
	'y': Year2Unpadded,
	'H': Hour24Unpadded,
	'I': Hour12Unpadded,
	'M': MinuteUnpadded,
	'S': SecondUnpadded,
	'j': DayOfYearUnpadded,
}

// compositePatterns gives the canonical sub-pattern each composite
// locale specifier expands to.
var compositePatterns = map[byte]string{
	'c': "%Y-%m-%d %H:%M:%S",
	'x': "%Y-%m-%d",
	'X': "%H:%M:%S",
}

// Program is the Compiled Program: literal fragments interleaved with
// typed specifiers, plus the metadata the formatter or parser needs.
//
// Output (when formatting) is literals[0] + specifiers[0] + literals[1] +
// ... + specifiers[n-1] + literals[n]; len(Literals) == len(Specifiers)+1
// always holds.
type Program struct {
	Literals   []string
	Specifiers []Specifier

	Role Role

	// ConstantSize is the sum of literal lengths plus the fixed widths
	// of every constant-size specifier. Variable specifiers contribute
	// 0 here; their length is probed at format time.
	ConstantSize int

	// IsDateSpecifier is parallel to Specifiers. Populated for Role ==
	// Format.
	IsDateSpecifier []bool

	// IsNumeric is parallel to Specifiers. Populated for Role == Parse.
	IsNumeric []bool
}

// compileError is the single-line error string the compiler contract
// returns on failure. It carries no position: compile errors are about
// the format string itself, not an input being parsed against it.
type compileError struct{ msg string }

func (e *compileError) Error() string { return e.msg }

// Compile scans format and produces a Program for the given role. It
// never fails for a recognized specifier the parser would later reject;
// such specifiers are rejected here only when role == Parse.
func Compile(format string, role Role) (*Program, error) {
	p := &Program{Role: role}
	if err := compileInto(p, format); err != nil {
		return nil, err
	}
	for _, lit := range p.Literals {
		p.ConstantSize += len(lit)
	}
	return p, nil
}

// compileInto appends the compiled form of format onto p, which may
// already carry literals/specifiers from a parent compilation (composite
// specifier splicing prepends the parent's pending literal onto the
// sub-program's first literal, then splices the rest in verbatim).
func compileInto(p *Program, format string) error {
	var pending []byte
	i, pos, n := 0, 0, len(format)

	flush := func(upto int) {
		pending = append(pending, format[pos:upto]...)
	}

	emitLiteralSpecifier := func(spec Specifier) error {
		if role := p.Role; role == Parse && notInvertible[spec] {
			return &compileError{msg: fmt.Sprintf("strptime specifier not implemented: %s", specName(spec))}
		}
		p.Literals = append(p.Literals, string(pending))
		pending = pending[:0]
		p.Specifiers = append(p.Specifiers, spec)
		if p.Role == Format {
			p.IsDateSpecifier = append(p.IsDateSpecifier, isDateSpecifier[spec])
		} else {
			p.IsNumeric = append(p.IsNumeric, isNumericSpecifier[spec])
		}
		if width, ok := constantSize[spec]; ok {
			p.ConstantSize += width
		}
		return nil
	}

	for i < n {
		if format[i] != '%' {
			i++
			continue
		}
		flush(i)
		i++
		if i >= n {
			return &compileError{msg: "Trailing format character %"}
		}
		c := format[i]

		switch {
		case c == '%':
			pending = append(pending, '%')
			i++
			pos = i
			continue

		case c == '-':
			i++
			if i >= n {
				return &compileError{msg: "Trailing format character %-"}
			}
			sub := format[i]
			spec, ok := unpaddedTable[sub]
			if !ok {
				return &compileError{msg: fmt.Sprintf("Unrecognized format for strftime/strptime: %%-%c", sub)}
			}
			if err := emitLiteralSpecifier(spec); err != nil {
				return err
			}
			i++
			pos = i
			continue

		case c == 'c' || c == 'x' || c == 'X':
			// Prepend the currently pending literal onto the
			// sub-program's first literal, then splice the child's
			// (literal, specifier) pairs into the parent.
			child := &Program{Role: p.Role}
			if err := compileInto(child, compositePatterns[c]); err != nil {
				return err
			}
			if len(child.Literals) == 0 {
				child.Literals = []string{""}
			}
			child.Literals[0] = string(pending) + child.Literals[0]
			pending = pending[:0]
			p.Literals = append(p.Literals, child.Literals[:len(child.Literals)-1]...)
			p.Specifiers = append(p.Specifiers, child.Specifiers...)
			p.IsDateSpecifier = append(p.IsDateSpecifier, child.IsDateSpecifier...)
			p.IsNumeric = append(p.IsNumeric, child.IsNumeric...)
			p.ConstantSize += child.ConstantSize
			// child.Literals' tail element is the trailing literal of
			// the sub-pattern; fold it into the parent's pending text so
			// it can absorb whatever literal text follows in the parent
			// format string.
			pending = append(pending, child.Literals[len(child.Literals)-1]...)
			i++
			pos = i
			continue

		default:
			spec, ok := specifierTable[c]
			if !ok {
				return &compileError{msg: fmt.Sprintf("Unrecognized format for strftime/strptime: %%%c", c)}
			}
			if err := emitLiteralSpecifier(spec); err != nil {
				return err
			}
			i++
			pos = i
			continue
		}
	}

	flush(n)
	p.Literals = append(p.Literals, string(pending))
	return nil
}

func specName(spec Specifier) string {
	for ch, s := range specifierTable {
		if s == spec {
			return fmt.Sprintf("%%%c", ch)
		}
	}
	for ch, s := range unpaddedTable {
		if s == spec {
			return fmt.Sprintf("%%-%c", ch)
		}
	}
	return "<unknown>"
}
