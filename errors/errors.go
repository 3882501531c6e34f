package errors

import "fmt"

// DuplicateError indicates that two definitions were registered under the
// same long name or the same one-letter name. This is a setup-time bug in
// the calling program, not a user input problem; callers are expected to
// abort rather than recover.
type DuplicateError struct{ Name string }

func (e DuplicateError) Error() string {
	return fmt.Sprintf("two different arguments have the same name: %q", e.Name)
}

// UnknownArgumentError indicates the user supplied a long name that was
// never registered. Suggestion, if present, is a close match the user may
// have intended.
type UnknownArgumentError struct{ Name, Suggestion string }

func (e UnknownArgumentError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid argument: --%s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("invalid argument: --%s", e.Name)
}

// UnknownLetterError indicates an unregistered one-letter name inside a
// short token such as "-tx".
type UnknownLetterError struct{ Letter byte }

func (e UnknownLetterError) Error() string {
	return fmt.Sprintf("invalid argument letter: %q", string(e.Letter))
}

// SyntaxError indicates a malformed token, e.g. a bare "--".
type SyntaxError struct{ Msg string }

func (e SyntaxError) Error() string { return e.Msg }

// MultipleArgumentsError indicates that two letters in one short cluster
// both resolve to value-carrying arguments; each would need its own value
// token, so only one is allowed per cluster.
type MultipleArgumentsError struct{ Letter byte }

func (e MultipleArgumentsError) Error() string {
	return fmt.Sprintf("when multiple options are provided after a single dash, "+
		"only one of them can be an argument: %q requires a separate parameter "+
		"value; please separate the extra arguments", string(e.Letter))
}

// TooManyOperandsError indicates more positional values were supplied than
// operand definitions exist, while the operand count is restricted.
type TooManyOperandsError struct{ Max int }

func (e TooManyOperandsError) Error() string {
	return fmt.Sprintf("the maximal number of operands is restricted to %d", e.Max)
}

// InvalidIntegerError indicates a value token that is not a whole number.
type InvalidIntegerError struct{ Value string }

func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer value: %q", e.Value)
}

// IntegerRangeError indicates a whole number outside the native int range.
type IntegerRangeError struct{ Value string }

func (e IntegerRangeError) Error() string {
	return fmt.Sprintf("integer value out of range: %q", e.Value)
}

// InvalidDoubleError indicates a value token that is not a floating-point
// number.
type InvalidDoubleError struct{ Value string }

func (e InvalidDoubleError) Error() string {
	return fmt.Sprintf("invalid double value: %q", e.Value)
}

// DoubleRangeError indicates a floating-point value outside the float64
// range.
type DoubleRangeError struct{ Value string }

func (e DoubleRangeError) Error() string {
	return fmt.Sprintf("double value out of range: %q", e.Value)
}

// LayoutError indicates the column renderer was invoked with parameters it
// cannot satisfy: mismatched vector lengths, non-positive weights, negative
// paddings, or a window too narrow to hold every column.
type LayoutError struct{ Msg string }

func (e LayoutError) Error() string { return e.Msg }

// Diagnostic wraps a parse-time error together with the reconstructed
// command line, the byte position of the offending token within it, and the
// rendered caret snippet. Error returns the rendered snippet so printing
// the error shows the full diagnostic; Unwrap exposes the underlying kind
// for errors.As.
type Diagnostic struct {
	Err      error
	Line     string
	Position int
	Rendered string
}

func (e *Diagnostic) Error() string { return e.Rendered }
func (e *Diagnostic) Unwrap() error { return e.Err }

// Helper constructors
func NewDuplicate(name string) error             { return DuplicateError{Name: name} }
func NewUnknownArgument(name, sugg string) error { return UnknownArgumentError{Name: name, Suggestion: sugg} }
func NewUnknownLetter(letter byte) error         { return UnknownLetterError{Letter: letter} }
func NewSyntax(msg string) error                 { return SyntaxError{Msg: msg} }
func NewMultipleArguments(letter byte) error     { return MultipleArgumentsError{Letter: letter} }
func NewTooManyOperands(max int) error           { return TooManyOperandsError{Max: max} }
func NewInvalidInteger(value string) error       { return InvalidIntegerError{Value: value} }
func NewIntegerRange(value string) error         { return IntegerRangeError{Value: value} }
func NewInvalidDouble(value string) error        { return InvalidDoubleError{Value: value} }
func NewDoubleRange(value string) error          { return DoubleRangeError{Value: value} }
func NewLayout(format string, args ...any) error {
	return LayoutError{Msg: fmt.Sprintf(format, args...)}
}
