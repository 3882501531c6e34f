package display

import (
	"strconv"
	"strings"

	"github.com/MonetDB/cmdline/internal/common"
)

const (
	// NonBreakingSpace is rendered as an ordinary space but never treated
	// as a break point.
	NonBreakingSpace byte = 0x1D

	escByte byte = 0x1B
)

// isAttrDigit reports whether b selects a text attribute the formatter
// passes through: 0 (reset), 1 (bold), 2 (dim), 4 (underline), 5 (blink),
// 7 (reverse), 8 (hidden).
func isAttrDigit(b byte) bool {
	return b >= '0' && b <= '8' && b != '3' && b != '6'
}

// Formatter word-wraps one text run into fixed-width lines, one line per
// Line call. The run may embed attribute escapes of the form ESC[<d>m,
// which are emitted verbatim and contribute nothing to the visible width,
// an optional single-byte soft hyphen marking a preferred break point, and
// NonBreakingSpace bytes that render as spaces but never break.
//
// The byte cursor and the carried text attribute persist across calls, so
// several Formatters can be driven side by side to fill columns row by row.
type Formatter struct {
	text       string
	softHyphen byte

	cursor int
	attr   int
}

// Scanner states of one Line call. A line is built by alternating between
// accumulating a pending word and committing it at break points; multi-byte
// sequences suspend width counting until they close.
type scanState int

const (
	scanningWord scanState = iota
	inMultiByte
)

// NewFormatter returns a Formatter over text. softHyphen is the designated
// elidable break marker byte; 0 disables the feature.
func NewFormatter(text string, softHyphen byte) *Formatter {
	return &Formatter{text: text, softHyphen: softHyphen}
}

// Done reports whether the whole run has been consumed.
func (f *Formatter) Done() bool {
	return f.cursor >= len(f.text)
}

// Line appends exactly one line of at most limit visible columns to out,
// padded with spaces to exactly limit columns, and advances the cursor to
// the first unconsumed byte. limit must be at least 1. The carried text
// attribute is re-opened at the start of every line so a run that changed
// attributes mid-text keeps them across wraps.
func (f *Formatter) Line(limit int, out *strings.Builder) {
	var word strings.Builder
	state := scanningWord
	wordCount := 0     // visible characters in the pending word
	lineCount := 0     // visible characters committed to the line
	mbRemain := 0      // continuation bytes still expected
	breakPos := -1     // byte position of the last break point on this line
	hyphenBreak := false
	attrCaptured := false // pending word already captured an attribute change

	out.WriteString("\x1b[")
	out.WriteString(strconv.Itoa(f.attr))
	out.WriteByte('m')

	text := f.text
	n := len(text)

	// Left-trim break bytes, without consuming an escape introducer.
	for f.cursor < n {
		c := text[f.cursor]
		if c == escByte || (common.IsPrint(c) && c != ' ') {
			break
		}
		f.cursor++
	}

	for ; f.cursor < n; f.cursor++ {
		c := text[f.cursor]

		if state == inMultiByte {
			if c&0xC0 == 0x80 {
				word.WriteByte(c)
				mbRemain--
				if mbRemain == 0 {
					state = scanningWord
				}
				continue
			}
			// Unexpected continuation pattern: abort the sequence and
			// re-evaluate c as a fresh character.
			state = scanningWord
			mbRemain = 0
		}

		if lineCount+wordCount+1 > limit {
			atBreak := c != f.softHyphen && c != NonBreakingSpace &&
				(!common.IsPrint(c) || c == ' ')
			if atBreak || lineCount == 0 {
				// Either the pending word ends exactly at the limit, or
				// the line holds nothing but one overlong word, which is
				// broken mid-word to guarantee forward progress.
				out.WriteString(word.String())
				return
			}
			// Drop the pending word: rewind to the last break point and
			// close the line there, hyphenating if the break point was a
			// soft hyphen.
			if hyphenBreak {
				out.WriteByte('-')
				lineCount++
			}
			f.cursor = breakPos
			break
		}

		switch {
		case c&0xE0 == 0xC0:
			mbRemain = 1
		case c&0xF0 == 0xE0:
			mbRemain = 2
		case c&0xF8 == 0xF0:
			mbRemain = 3
		}
		if mbRemain > 0 {
			state = inMultiByte
			word.WriteByte(c)
			wordCount++ // the whole sequence counts as one character
			continue
		}

		if c == escByte && f.cursor+3 < n && text[f.cursor+1] == '[' &&
			text[f.cursor+3] == 'm' && isAttrDigit(text[f.cursor+2]) {
			// Only the first attribute change of the pending word is
			// carried over, so a word that wraps keeps the state it
			// started the next line with.
			if !attrCaptured {
				f.attr = int(text[f.cursor+2] - '0')
				attrCaptured = true
			}
			word.WriteString(text[f.cursor : f.cursor+4])
			f.cursor += 3
			continue
		}

		if f.softHyphen != 0 && c == f.softHyphen {
			// Preferred break point: commit the pending word. The marker
			// itself is only rendered if the line later breaks here.
			breakPos = f.cursor
			hyphenBreak = true
			lineCount += wordCount
			wordCount = 0
			out.WriteString(word.String())
			word.Reset()
			attrCaptured = false
			continue
		}

		if (!common.IsPrint(c) || c == ' ') && c != NonBreakingSpace {
			// Ordinary break point; the separator is carried into the
			// next word slot as a one-column space.
			breakPos = f.cursor
			hyphenBreak = false
			lineCount += wordCount
			wordCount = 1
			out.WriteString(word.String())
			word.Reset()
			word.WriteByte(' ')
			attrCaptured = false
			continue
		}

		if c == NonBreakingSpace {
			word.WriteByte(' ')
		} else {
			word.WriteByte(c)
		}
		wordCount++
	}

	if f.cursor >= n {
		// Run exhausted before the limit: flush the final word.
		out.WriteString(word.String())
		lineCount += wordCount
	}

	for i := lineCount; i < limit; i++ {
		out.WriteByte(' ')
	}
}
