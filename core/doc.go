package core

import (
	"sort"
	"strings"

	"github.com/MonetDB/cmdline/display"
)

// Doc renders the generated documentation table: one two-column row per
// registered option and argument (operands are excluded), sorted by long
// name. The left column carries the bold long/short name pair, with the
// value placeholder of arguments shown dim and underlined; the right column
// is the description. Widths split 40/60 with one column of outer padding.
// softHyphen marks preferred break points inside the descriptions; breakAll
// is reserved and currently ignored.
func (p *Parser) Doc(softHyphen byte, breakAll bool) (string, error) {
	names := make([]string, 0, len(p.reg.defs))
	for _, def := range p.reg.defs {
		if def.kind == KindArgument || def.kind == KindOption {
			names = append(names, def.name)
		}
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		def, _ := p.reg.lookupName(name)

		row, err := display.Columns(
			p.screenWidth,
			[]float64{40, 60},
			[]string{docLabel(def), def.description},
			[]int{1, 0},
			[]int{1, 0},
			softHyphen, breakAll,
		)
		if err != nil {
			return "", err
		}
		out.WriteString(row)
	}
	return out.String(), nil
}

// docLabel builds the left column of a doc row: "--name, -l value" with
// bold names and a dim underlined value placeholder. The placeholder is
// attached with a non-breaking space so it never wraps away from the letter.
func docLabel(def Definition) string {
	var b strings.Builder
	b.WriteString("\x1b[1m--")
	b.WriteString(def.name)
	b.WriteString("\x1b[0m")
	if def.letter != 0 {
		b.WriteString(", \x1b[1m-")
		b.WriteByte(def.letter)
	}
	if def.kind == KindArgument && def.valueName != "" {
		b.WriteByte(display.NonBreakingSpace)
		b.WriteString("\x1b[2m\x1b[4m")
		b.WriteString(def.valueName)
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// WrapText word-wraps free text across the full screen width with the given
// paddings. It is a single-column convenience over the column renderer,
// meant for help preambles and examples.
func (p *Parser) WrapText(text string, leftPad, rightPad int, softHyphen byte, breakAll bool) (string, error) {
	return display.Columns(
		p.screenWidth,
		[]float64{1},
		[]string{text},
		[]int{leftPad},
		[]int{rightPad},
		softHyphen, breakAll,
	)
}
