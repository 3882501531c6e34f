package core

// ArgKind classifies a definition: a value-carrying argument, a boolean
// option, or a positional operand.
type ArgKind int

const (
	KindArgument ArgKind = iota + 1
	KindOption
	KindOperand
)

// ArgType is the value type of an argument.
type ArgType int

const (
	TypeString ArgType = iota + 1
	TypeInt
	TypeDouble
	TypeBool
)

// Definition describes one registered option, argument or operand. Values
// are immutable after registration; the parser and the doc generator only
// ever read them.
type Definition struct {
	name      string
	valueName string
	letter    byte
	kind      ArgKind
	argType   ArgType
	optional  bool

	stringDefault string
	intDefault    int
	doubleDefault float64

	description string
}

// Name returns the long name of the definition.
func (d Definition) Name() string { return d.name }

// ValueName returns the short value placeholder shown in the generated doc
// after the names of a value-carrying argument.
func (d Definition) ValueName() string { return d.valueName }

// Letter returns the one-letter name, or 0 when none was registered.
func (d Definition) Letter() byte { return d.letter }

// Kind returns the definition class.
func (d Definition) Kind() ArgKind { return d.kind }

// Type returns the value type of the definition.
func (d Definition) Type() ArgType { return d.argType }

// Optional reports whether the definition carries a default value.
func (d Definition) Optional() bool { return d.optional }

// Description returns the human-readable description used by the doc
// generator. It may contain attribute escapes and soft-hyphen markers.
func (d Definition) Description() string { return d.description }

func newOption(name string, letter byte, description string) Definition {
	return Definition{name: name, letter: letter, kind: KindOption, argType: TypeBool, description: description}
}

func newOperand(name, description string) Definition {
	return Definition{name: name, kind: KindOperand, argType: TypeString, description: description}
}

func newArgument(name string, letter byte, argType ArgType, valueName, description string) Definition {
	return Definition{name: name, valueName: valueName, letter: letter, kind: KindArgument,
		argType: argType, description: description}
}
