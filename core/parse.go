package core

import (
	"strings"

	"github.com/MonetDB/cmdline/display"
	"github.com/MonetDB/cmdline/errors"
	"github.com/MonetDB/cmdline/internal/common"
)

// Parser accumulates definitions and parses an argument vector against
// them. One Parser serves one invocation; it is not safe for concurrent
// use and never mutates the caller's argument strings.
type Parser struct {
	args  []string
	reg   Registry
	store valueStore

	screenWidth int
}

// NewParser creates a Parser over an argument vector. args must include the
// program name as its first element, the way os.Args does.
func NewParser(args []string) *Parser {
	return &Parser{
		args:        args,
		reg:         newRegistry(),
		store:       newValueStore(),
		screenWidth: detectWidth(),
	}
}

// Parse consumes the argument vector and returns the read accessor over the
// parsed values. Call it only after all definitions are registered. On the
// first malformed token it aborts and returns an *errors.Diagnostic whose
// message renders the reconstructed command line with a caret under the
// offending byte; no value read is valid after an error.
func (p *Parser) Parse() (*Arguments, error) {
	var line strings.Builder
	expectValue := false
	var pending Definition

	// fail completes the reconstructed line with the not yet consumed
	// tokens and wraps err with the rendered caret snippet.
	fail := func(err error, position, next int) error {
		for j := next; j < len(p.args); j++ {
			tok := common.TrimToken(p.args[j])
			if line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(tok)
		}
		full := line.String()
		return &errors.Diagnostic{
			Err:      err,
			Line:     full,
			Position: position,
			Rendered: display.RenderDiagnostic(err.Error(), full, position, p.screenWidth),
		}
	}

	for i, raw := range p.args {
		arg := common.TrimToken(raw)

		position := line.Len()
		if position > 0 {
			line.WriteByte(' ')
			position++
		}
		line.WriteString(arg)

		if i == 0 {
			p.store.executable = arg
			continue
		}

		switch {
		case len(arg) == 0:
			// Ignore empty argument.

		case expectValue:
			// The pending definition consumes this token as its value,
			// regardless of any leading dashes.
			if err := p.store.setValue(pending, arg); err != nil {
				return nil, fail(err, position, i+1)
			}
			expectValue = false

		case strings.HasPrefix(arg, "--"):
			if len(arg) == 2 {
				return nil, fail(errors.NewSyntax("syntax error: two dashes without a name"), position, i+1)
			}
			name := arg[2:]
			def, ok := p.reg.lookupName(name)
			if !ok {
				sugg := closestMatch(name, p.reg.longNames())
				return nil, fail(errors.NewUnknownArgument(name, sugg), position, i+1)
			}
			if def.kind == KindOption {
				p.store.activateOption(name)
			} else {
				pending = def
				expectValue = true
			}

		case len(arg) > 1 && arg[0] == '-':
			// One or more one-letter names after a single dash. At most
			// one of them may be a value-carrying argument, since each
			// would need its own value token.
			foundArgument := false
			for k := 1; k < len(arg); k++ {
				letter := arg[k]
				def, ok := p.reg.lookupLetter(letter)
				if !ok {
					return nil, fail(errors.NewUnknownLetter(letter), position+k, i+1)
				}
				if def.kind == KindOption {
					p.store.activateOption(def.name)
					continue
				}
				if foundArgument {
					return nil, fail(errors.NewMultipleArguments(letter), position+k, i+1)
				}
				pending = def
				foundArgument = true
				expectValue = true
			}

		default:
			// Operand; a lone dash lands here too.
			if err := p.addOperand(arg); err != nil {
				return nil, fail(err, position, i+1)
			}
		}
	}

	return &Arguments{store: &p.store, reg: &p.reg}, nil
}

// addOperand appends a positional value, enforcing the declared operand
// count when RestrictOperands was called.
func (p *Parser) addOperand(value string) error {
	if p.reg.restrictOperands && len(p.store.operands) >= len(p.reg.operands) {
		return errors.NewTooManyOperands(len(p.reg.operands))
	}
	p.store.operands = append(p.store.operands, value)
	return nil
}
