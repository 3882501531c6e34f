package core

import (
	"github.com/MonetDB/cmdline/errors"
)

// Registry owns the table of definitions plus two index maps into it, one
// keyed by long name and one by one-letter name. Operand definitions are
// additionally tracked in declaration order, which defines their positional
// binding.
type Registry struct {
	defs     []Definition
	byName   map[string]int
	byLetter map[byte]int
	operands []int

	restrictOperands bool
}

func newRegistry() Registry {
	return Registry{byName: map[string]int{}, byLetter: map[byte]int{}}
}

// add appends def to the table and indexes it. Both the long name and the
// one-letter name (when present) must be unique across all definitions.
func (r *Registry) add(def Definition) error {
	if _, ok := r.byName[def.name]; ok {
		return errors.NewDuplicate(def.name)
	}
	if def.letter != 0 {
		if _, ok := r.byLetter[def.letter]; ok {
			return errors.NewDuplicate(string(def.letter))
		}
	}

	idx := len(r.defs)
	r.defs = append(r.defs, def)
	r.byName[def.name] = idx
	if def.letter != 0 {
		r.byLetter[def.letter] = idx
	}
	if def.kind == KindOperand {
		r.operands = append(r.operands, idx)
	}
	return nil
}

func (r *Registry) lookupName(name string) (Definition, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[idx], true
}

func (r *Registry) lookupLetter(letter byte) (Definition, bool) {
	idx, ok := r.byLetter[letter]
	if !ok {
		return Definition{}, false
	}
	return r.defs[idx], true
}

// longNames returns every registered long name, for suggestion lookups.
func (r *Registry) longNames() []string {
	names := make([]string, 0, len(r.defs))
	for _, def := range r.defs {
		names = append(names, def.name)
	}
	return names
}

// === Definition API ===

// define registers def and seeds its default value, if any, into the store.
// A non-nil error means the program's argument declarations are broken;
// callers should treat it as fatal.
func (p *Parser) define(def Definition) error {
	if err := p.reg.add(def); err != nil {
		return err
	}
	p.store.seedDefault(def)
	return nil
}

// Option registers a boolean flag under a long name and an optional
// one-letter name (0 disables the letter form).
func (p *Parser) Option(name string, letter byte, description string) error {
	return p.define(newOption(name, letter, description))
}

// Operand registers a positional string parameter. Operands bind to
// positional tokens in declaration order.
func (p *Parser) Operand(name, description string) error {
	return p.define(newOperand(name, description))
}

// String registers a mandatory string argument. valueName is the value
// placeholder shown in the generated doc.
func (p *Parser) String(name string, letter byte, valueName, description string) error {
	return p.define(newArgument(name, letter, TypeString, valueName, description))
}

// StringDefault registers an optional string argument with a default.
func (p *Parser) StringDefault(name string, letter byte, def, valueName, description string) error {
	d := newArgument(name, letter, TypeString, valueName, description)
	d.optional = true
	d.stringDefault = def
	return p.define(d)
}

// Int registers a mandatory integer argument.
func (p *Parser) Int(name string, letter byte, valueName, description string) error {
	return p.define(newArgument(name, letter, TypeInt, valueName, description))
}

// IntDefault registers an optional integer argument with a default.
func (p *Parser) IntDefault(name string, letter byte, def int, valueName, description string) error {
	d := newArgument(name, letter, TypeInt, valueName, description)
	d.optional = true
	d.intDefault = def
	return p.define(d)
}

// Double registers a mandatory floating-point argument.
func (p *Parser) Double(name string, letter byte, valueName, description string) error {
	return p.define(newArgument(name, letter, TypeDouble, valueName, description))
}

// DoubleDefault registers an optional floating-point argument with a default.
func (p *Parser) DoubleDefault(name string, letter byte, def float64, valueName, description string) error {
	d := newArgument(name, letter, TypeDouble, valueName, description)
	d.optional = true
	d.doubleDefault = def
	return p.define(d)
}

// RestrictOperands prohibits supplying more positional values than there
// are registered operand definitions.
func (p *Parser) RestrictOperands() {
	p.reg.restrictOperands = true
}
