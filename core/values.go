package core

import (
	"strconv"

	"github.com/MonetDB/cmdline/errors"
)

// valueStore is the parse output: typed value maps keyed by long name, the
// set of activated option names, and the positional values in encounter
// order. It is seeded with defaults at registration time and written by the
// parser; after Parse returns it is only read, through Arguments.
type valueStore struct {
	strings map[string]string
	ints    map[string]int
	doubles map[string]float64
	options map[string]struct{}

	operands   []string
	executable string
}

func newValueStore() valueStore {
	return valueStore{
		strings: map[string]string{},
		ints:    map[string]int{},
		doubles: map[string]float64{},
		options: map[string]struct{}{},
	}
}

// seedDefault pre-populates the store with the declared default of an
// optional argument. Mandatory arguments and options leave no trace until
// the user supplies them.
func (s *valueStore) seedDefault(def Definition) {
	if def.kind != KindArgument || !def.optional {
		return
	}
	switch def.argType {
	case TypeInt:
		s.ints[def.name] = def.intDefault
	case TypeDouble:
		s.doubles[def.name] = def.doubleDefault
	default:
		s.strings[def.name] = def.stringDefault
	}
}

// setValue converts value to the declared type of def and stores it,
// overwriting any seeded default.
func (s *valueStore) setValue(def Definition, value string) error {
	switch def.argType {
	case TypeInt:
		n, err := strconv.ParseInt(value, 10, strconv.IntSize)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				return errors.NewIntegerRange(value)
			}
			return errors.NewInvalidInteger(value)
		}
		s.ints[def.name] = int(n)
	case TypeDouble:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				return errors.NewDoubleRange(value)
			}
			return errors.NewInvalidDouble(value)
		}
		s.doubles[def.name] = f
	default:
		s.strings[def.name] = value
	}
	return nil
}

func (s *valueStore) activateOption(name string) {
	s.options[name] = struct{}{}
}

// Arguments is the read accessor over a completed parse. It is returned by
// Parser.Parse and must not be used after a parse error.
type Arguments struct {
	store *valueStore
	reg   *Registry
}

// String returns the value of a string argument and whether it is present.
func (a *Arguments) String(name string) (string, bool) {
	v, ok := a.store.strings[name]
	return v, ok
}

// Int returns the value of an integer argument and whether it is present.
func (a *Arguments) Int(name string) (int, bool) {
	v, ok := a.store.ints[name]
	return v, ok
}

// Double returns the value of a floating-point argument and whether it is
// present.
func (a *Arguments) Double(name string) (float64, bool) {
	v, ok := a.store.doubles[name]
	return v, ok
}

// IsSet reports whether the named option was activated on the command line.
func (a *Arguments) IsSet(option string) bool {
	_, ok := a.store.options[option]
	return ok
}

// Operands returns the positional values in encounter order. Binding them
// to operand definitions by position is the caller's responsibility.
func (a *Arguments) Operands() []string {
	return a.store.operands
}

// Executable returns the trimmed program name (token 0 of the argument
// vector).
func (a *Arguments) Executable() string {
	return a.store.executable
}

// IsHelpRequested reports whether the generated documentation should be
// shown. It is true when an option named "help" was activated, and also
// when no operand definitions exist, no options were activated and nothing
// at all was registered. Note that the second clause makes a tool with zero
// registered definitions always request help.
func (a *Arguments) IsHelpRequested() bool {
	if len(a.reg.operands) < 1 && len(a.store.options) < 1 && len(a.reg.defs) < 1 {
		return true
	}
	return a.IsSet("help")
}
