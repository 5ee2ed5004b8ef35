package sqlfn

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrFormatMustBeConstant is returned at bind time when the format
	// argument to strftime or strptime is not a compile-time scalar.
	ErrFormatMustBeConstant = errors.NewKind("%s format must be a constant")

	// ErrCompileFailed wraps a format-compiler error with the offending
	// format string, at bind time.
	ErrCompileFailed = errors.NewKind("Failed to parse format specifier %s: %s")
)

// parseFailure formats a per-row strptime parse error into the
// multi-line "caret" message: the input, a line pointing at the failing
// byte, and the underlying message.
func parseFailure(input, format string, position int, cause error) error {
	caret := make([]byte, position)
	for i := range caret {
		caret[i] = ' '
	}
	return &strptimeParseError{
		input:    input,
		format:   format,
		position: position,
		caretLine: string(caret) + "^",
		cause:    cause,
	}
}

type strptimeParseError struct {
	input     string
	format    string
	position  int
	caretLine string
	cause     error
}

func (e *strptimeParseError) Error() string {
	return "Could not parse string \"" + e.input + "\" according to format specifier \"" + e.format + "\"\n" +
		e.input + "\n" + e.caretLine + "\n" +
		"Error: " + e.cause.Error()
}

func (e *strptimeParseError) Unwrap() error { return e.cause }
